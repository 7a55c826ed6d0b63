package alert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/domain"
	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/metrics"
)

const (
	// DefaultSpikeThreshold is the negative share at which a spike fires.
	DefaultSpikeThreshold = 0.4
	// DefaultChangeDelta is the negative-share increase between two
	// snapshots at which a sudden change fires.
	DefaultChangeDelta = 0.2
	// highSeverityShare upgrades a spike to high severity. Fixed by design.
	highSeverityShare = 0.6
)

// Engine runs the two detectors and appends fired alerts to the shared
// history. Detectors never fail: degenerate input (zero totals) yields no
// alert.
type Engine struct {
	store          Store
	clock          clockwork.Clock
	spikeThreshold float64
	changeDelta    float64
}

func NewEngine(store Store, clock clockwork.Clock, spikeThreshold, changeDelta float64) *Engine {
	return &Engine{
		store:          store,
		clock:          clock,
		spikeThreshold: spikeThreshold,
		changeDelta:    changeDelta,
	}
}

// CheckSpike fires when the negative share of the snapshot reaches the spike
// threshold. An empty window never fires.
func (e *Engine) CheckSpike(ctx context.Context, keyword string, counts domain.SentimentCounts) *domain.Alert {
	if counts.Total == 0 {
		return nil
	}

	share := counts.NegativeShare()
	if share < e.spikeThreshold {
		return nil
	}

	severity := domain.SeverityMedium
	if share >= highSeverityShare {
		severity = domain.SeverityHigh
	}

	alert := domain.Alert{
		ID:        uuid.NewString(),
		Type:      domain.AlertNegativeSpike,
		Severity:  severity,
		Message:   fmt.Sprintf("High negative sentiment detected (%.1f%%)", share*100),
		Keyword:   keyword,
		Timestamp: e.clock.Now(),
		Current:   counts,
	}
	e.record(ctx, alert)
	return &alert
}

// CheckSuddenChange fires when the negative share increased by at least the
// configured delta between two snapshots. Either snapshot being empty
// suppresses firing, since no meaningful delta exists.
func (e *Engine) CheckSuddenChange(ctx context.Context, keyword string, prev, curr domain.SentimentCounts) *domain.Alert {
	if prev.Total == 0 || curr.Total == 0 {
		return nil
	}

	change := curr.NegativeShare() - prev.NegativeShare()
	if change < e.changeDelta {
		return nil
	}

	alert := domain.Alert{
		ID:        uuid.NewString(),
		Type:      domain.AlertSuddenChange,
		Severity:  domain.SeverityHigh,
		Message:   fmt.Sprintf("Sudden increase in negative sentiment (+%.1f%%)", change*100),
		Keyword:   keyword,
		Timestamp: e.clock.Now(),
		Current:   curr,
		Previous:  prev,
	}
	e.record(ctx, alert)
	return &alert
}

// Recent returns the last limit alerts, newest last.
func (e *Engine) Recent(ctx context.Context, limit int) ([]domain.Alert, error) {
	return e.store.Recent(ctx, limit)
}

func (e *Engine) record(ctx context.Context, alert domain.Alert) {
	metrics.AlertsFiredTotal.WithLabelValues(string(alert.Type), string(alert.Severity)).Inc()
	if err := e.store.Append(ctx, alert); err != nil {
		// History is best-effort; the alert is still delivered to callers.
		slog.Error("Failed to append alert to history", "keyword", alert.Keyword, "error", err)
	}
}
