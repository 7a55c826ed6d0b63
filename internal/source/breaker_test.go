package source

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/failsafe-go/failsafe-go/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/domain"
)

type faultySource struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (f *faultySource) Fetch(_ context.Context, keyword string, _ int) ([]domain.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []domain.Post{{ID: "p1", Text: "all good", Author: "user", Keyword: keyword}}, nil
}

func (f *faultySource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *faultySource) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func TestBreakerPassesThroughWhileClosed(t *testing.T) {
	inner := &faultySource{}
	b := NewBreaker(inner)

	posts, err := b.Fetch(context.Background(), "tesla", 5)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "tesla", posts[0].Keyword)
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	inner := &faultySource{err: errors.New("feed unavailable")}
	b := newBreaker(inner, time.Minute)
	ctx := context.Background()

	for i := 0; i < breakerFailureThreshold; i++ {
		_, err := b.Fetch(ctx, "tesla", 5)
		require.Error(t, err)
		assert.NotErrorIs(t, err, circuitbreaker.ErrOpen)
	}
	require.Equal(t, breakerFailureThreshold, inner.callCount())

	_, err := b.Fetch(ctx, "tesla", 5)
	require.ErrorIs(t, err, circuitbreaker.ErrOpen)
	assert.Equal(t, breakerFailureThreshold, inner.callCount(),
		"open circuit must fail fast without hitting the source")
}

func TestBreakerRecoversAfterOpenDelay(t *testing.T) {
	inner := &faultySource{err: errors.New("feed unavailable")}
	b := newBreaker(inner, 20*time.Millisecond)
	ctx := context.Background()

	for i := 0; i < breakerFailureThreshold; i++ {
		_, err := b.Fetch(ctx, "tesla", 5)
		require.Error(t, err)
	}
	_, err := b.Fetch(ctx, "tesla", 5)
	require.ErrorIs(t, err, circuitbreaker.ErrOpen)

	inner.setErr(nil)
	time.Sleep(50 * time.Millisecond)

	// Half-open: one permitted call succeeds and closes the circuit.
	posts, err := b.Fetch(ctx, "tesla", 5)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	_, err = b.Fetch(ctx, "tesla", 5)
	assert.NoError(t, err)
}
