package source

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/failsafe-go/failsafe-go/circuitbreaker"

	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/domain"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/metrics"
)

const (
	breakerFailureThreshold = 3
	breakerOpenDelay        = 30 * time.Second
)

// Breaker wraps a Source with a circuit breaker. When the feed fails
// repeatedly the circuit opens and Fetch fails fast until the open delay
// elapses; the streaming loop treats that like any other fetch failure and
// retries after its pacing delay.
type Breaker struct {
	source domain.Source
	cb     circuitbreaker.CircuitBreaker[any]
}

var _ domain.Source = (*Breaker)(nil)

func NewBreaker(source domain.Source) *Breaker {
	return newBreaker(source, breakerOpenDelay)
}

func newBreaker(source domain.Source, openDelay time.Duration) *Breaker {
	cb := circuitbreaker.NewBuilder[any]().
		WithFailureThreshold(breakerFailureThreshold).
		WithDelay(openDelay).
		WithSuccessThreshold(1).
		OnStateChanged(func(e circuitbreaker.StateChangedEvent) {
			slog.Warn("Source circuit breaker state changed",
				"from", e.OldState.String(),
				"to", e.NewState.String(),
			)
			metrics.SourceCircuitState.Set(breakerStateValue(e.NewState))
		}).
		Build()

	return &Breaker{source: source, cb: cb}
}

func (b *Breaker) Fetch(ctx context.Context, keyword string, count int) ([]domain.Post, error) {
	if !b.cb.TryAcquirePermit() {
		metrics.SourceFetchFailures.Inc()
		return nil, fmt.Errorf("source circuit open: %w", circuitbreaker.ErrOpen)
	}

	posts, err := b.source.Fetch(ctx, keyword, count)
	if err != nil {
		b.cb.RecordError(err)
		metrics.SourceFetchFailures.Inc()
		return nil, fmt.Errorf("source fetch failed: %w", err)
	}

	b.cb.RecordSuccess()
	return posts, nil
}

func breakerStateValue(state circuitbreaker.State) float64 {
	switch state {
	case circuitbreaker.ClosedState:
		return 0
	case circuitbreaker.HalfOpenState:
		return 1
	case circuitbreaker.OpenState:
		return 2
	default:
		return -1
	}
}
