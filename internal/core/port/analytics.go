package port

import (
	"context"
	"time"

	"mesa-rewards/internal/core/domain"
)

// Analytics receives lifecycle events. Calls are fire-and-forget and must
// not block the caller.
type Analytics interface {
	LogEvent(name string, params map[string]any)
}

// EventStore persists analytics events. It is an outbound port; the
// analytics recorder is its only writer.
type EventStore interface {
	// InsertEvents stores a batch of events atomically.
	InsertEvents(ctx context.Context, events []domain.AnalyticsEvent) error
	// GetStats returns aggregated counters for a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// StatsReq selects the period and, optionally, the reward kind to aggregate.
type StatsReq struct {
	From       time.Time
	To         time.Time
	RewardKind *domain.RewardKind
}

// StatsResp contains aggregated event counts for a period. Granted sums
// the amounts of all earned rewards.
type StatsResp struct {
	Impressions int64 `json:"impressions"`
	Completed   int64 `json:"completed"`
	Skipped     int64 `json:"skipped"`
	ShowFailed  int64 `json:"show_failed"`
	LoadFailed  int64 `json:"load_failed"`
	Granted     int64 `json:"granted"`
}
