// Package alert detects anomalous sentiment shifts and keeps the bounded
// alert history. The detectors are pure functions over the snapshots they are
// given; the engine owns only the history log.
package alert

import (
	"context"

	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/domain"
)

// HistoryCap bounds the stored alert history so long-running processes do
// not grow without limit.
const HistoryCap = 500

// DefaultRecentLimit is the number of alerts Recent returns when callers
// pass 0.
const DefaultRecentLimit = 10

// Store is the shared alert history. Append is called concurrently from
// multiple keyword loops; implementations must be safe under concurrent use
// and evict the oldest entry past HistoryCap.
type Store interface {
	Append(ctx context.Context, alert domain.Alert) error
	Recent(ctx context.Context, limit int) ([]domain.Alert, error)
}
