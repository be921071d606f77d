package analytics

import (
	"context"
	"log/slog"
	"sync"

	"mesa-rewards/internal/core/domain"
	"mesa-rewards/internal/core/port"
)

// MemoryStore is a port.EventStore that logs every event and keeps the most
// recent ones in memory for GetStats. It is used when no database is
// configured.
type MemoryStore struct {
	logger *slog.Logger
	limit  int

	mu     sync.RWMutex
	events []domain.AnalyticsEvent
}

var _ port.EventStore = (*MemoryStore)(nil)

// NewMemoryStore keeps at most limit events; older ones are discarded.
func NewMemoryStore(logger *slog.Logger, limit int) *MemoryStore {
	if limit <= 0 {
		limit = 10000
	}
	return &MemoryStore{logger: logger, limit: limit}
}

// InsertEvents logs and retains events.
func (s *MemoryStore) InsertEvents(ctx context.Context, events []domain.AnalyticsEvent) error {
	for _, ev := range events {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "analytics event",
			slog.String("event", ev.Name),
			slog.String("reward_kind", string(ev.RewardKind)),
			slog.String("display_id", ev.DisplayID),
			slog.Any("params", ev.Params),
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
	if over := len(s.events) - s.limit; over > 0 {
		s.events = append([]domain.AnalyticsEvent(nil), s.events[over:]...)
	}
	return nil
}

// GetStats aggregates the retained events of the requested period.
func (s *MemoryStore) GetStats(_ context.Context, req port.StatsReq) (*port.StatsResp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var resp port.StatsResp
	for _, ev := range s.events {
		if ev.CreatedAt.Before(req.From) || ev.CreatedAt.After(req.To) {
			continue
		}
		if req.RewardKind != nil && ev.RewardKind != *req.RewardKind {
			continue
		}
		switch ev.Name {
		case domain.EventAdImpression:
			resp.Impressions++
		case domain.EventAdCompleted:
			resp.Completed++
			resp.Granted += int64(ev.Amount)
		case domain.EventAdSkipped:
			resp.Skipped++
		case domain.EventAdShowFailed:
			resp.ShowFailed++
		case domain.EventAdLoadFailed:
			resp.LoadFailed++
		}
	}
	return &resp, nil
}
