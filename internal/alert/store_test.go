package alert

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/domain"
)

func testAlert(keyword string) domain.Alert {
	return domain.Alert{
		ID:      keyword,
		Type:    domain.AlertNegativeSpike,
		Keyword: keyword,
		Current: domain.SentimentCounts{Negative: 50, Positive: 50, Total: 100},
	}
}

func TestMemoryStoreCapsHistory(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for i := 0; i < HistoryCap+10; i++ {
		require.NoError(t, s.Append(ctx, testAlert(fmt.Sprintf("kw%d", i))))
	}

	all, err := s.Recent(ctx, HistoryCap)
	require.NoError(t, err)
	assert.Len(t, all, HistoryCap)
	// the ten oldest entries were evicted
	assert.Equal(t, "kw10", all[0].Keyword)
	assert.Equal(t, fmt.Sprintf("kw%d", HistoryCap+9), all[len(all)-1].Keyword)
}

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newRedisStore(t)

	require.NoError(t, s.Append(ctx, testAlert("first")))
	require.NoError(t, s.Append(ctx, testAlert("second")))
	require.NoError(t, s.Append(ctx, testAlert("third")))

	recent, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	// newest last, like the memory store
	assert.Equal(t, "second", recent[0].Keyword)
	assert.Equal(t, "third", recent[1].Keyword)
}

func TestRedisStoreCapsHistory(t *testing.T) {
	ctx := context.Background()
	s := newRedisStore(t)

	for i := 0; i < HistoryCap+5; i++ {
		require.NoError(t, s.Append(ctx, testAlert(fmt.Sprintf("kw%d", i))))
	}

	all, err := s.Recent(ctx, HistoryCap+5)
	require.NoError(t, err)
	assert.Len(t, all, HistoryCap)
	assert.Equal(t, fmt.Sprintf("kw%d", HistoryCap+4), all[len(all)-1].Keyword)
}

func TestRecentOnEmptyStores(t *testing.T) {
	ctx := context.Background()

	mem, err := NewMemoryStore().Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, mem)

	red, err := newRedisStore(t).Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, red)
}
