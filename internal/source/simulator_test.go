package source

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatorFetch(t *testing.T) {
	sim := NewSimulator(clockwork.NewFakeClock(), 0)

	posts, err := sim.Fetch(context.Background(), "Tesla", 20)
	require.NoError(t, err)
	require.Len(t, posts, 20)

	seen := make(map[string]bool)
	for _, p := range posts {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Text)
		assert.NotEmpty(t, p.Author)
		assert.Equal(t, "Tesla", p.Keyword)
		assert.False(t, seen[p.ID], "post IDs must be unique")
		seen[p.ID] = true
	}
}

func TestSimulatorFetchUnknownKeywordUsesDefaultPool(t *testing.T) {
	sim := NewSimulator(clockwork.NewFakeClock(), 0)

	posts, err := sim.Fetch(context.Background(), "SomethingNobodyTracks", 5)
	require.NoError(t, err)
	require.Len(t, posts, 5)
	for _, p := range posts {
		assert.Equal(t, "SomethingNobodyTracks", p.Keyword)
	}
}

func TestSimulatorFetchCancelled(t *testing.T) {
	clock := clockwork.NewFakeClock()
	sim := NewSimulator(clock, 500*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.Fetch(ctx, "Tesla", 5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCrisisBatchIsMostlyNegative(t *testing.T) {
	sim := NewSimulator(clockwork.NewFakeClock(), 0)

	posts := sim.CrisisBatch("Tesla")
	require.Len(t, posts, CrisisBatchSize)

	negative := 0
	for _, p := range posts {
		for _, known := range samplePosts["Tesla"].negative {
			if p.Text == known {
				negative++
				break
			}
		}
	}
	assert.Equal(t, 8, negative)
}
