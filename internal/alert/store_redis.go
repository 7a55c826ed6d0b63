package alert

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/domain"
)

const alertsKey = "sentilytics:alerts"

// RedisStore keeps the alert history in a capped Redis list so alerts survive
// process restarts when a deployment opts in via REDIS_URL. Newest entries
// sit at the head of the list; LTRIM enforces HistoryCap.
type RedisStore struct {
	rdb *goredis.Client
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(rdb *goredis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Append(ctx context.Context, alert domain.Alert) error {
	data, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.LPush(ctx, alertsKey, data)
	pipe.LTrim(ctx, alertsKey, 0, HistoryCap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append alert: %w", err)
	}
	return nil
}

func (s *RedisStore) Recent(ctx context.Context, limit int) ([]domain.Alert, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	raw, err := s.rdb.LRange(ctx, alertsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read alerts: %w", err)
	}

	// LRANGE returns newest first; callers expect newest last.
	alerts := make([]domain.Alert, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var a domain.Alert
		if err := json.Unmarshal([]byte(raw[i]), &a); err != nil {
			return nil, fmt.Errorf("decode alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	return alerts, nil
}
