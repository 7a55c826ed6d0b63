package domain

import "context"

// Source produces posts for a keyword. Fetch must be safe to call repeatedly
// and may block; implementations honour ctx cancellation.
type Source interface {
	Fetch(ctx context.Context, keyword string, count int) ([]Post, error)
}
