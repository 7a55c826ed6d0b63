package alert

import (
	"context"
	"sync"

	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/domain"
)

// MemoryStore is the default single-instance alert history.
type MemoryStore struct {
	mu     sync.Mutex
	alerts []domain.Alert
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, alert domain.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerts = append(s.alerts, alert)
	if len(s.alerts) > HistoryCap {
		s.alerts = s.alerts[1:]
	}
	return nil
}

func (s *MemoryStore) Recent(_ context.Context, limit int) ([]domain.Alert, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	alerts := s.alerts
	if len(alerts) > limit {
		alerts = alerts[len(alerts)-limit:]
	}
	out := make([]domain.Alert, len(alerts))
	copy(out, alerts)
	return out, nil
}
