// Package analytics turns lifecycle events into stored analytics records.
// The Recorder never blocks the emitting goroutine: events are buffered and
// written in batches by a background worker.
package analytics

import (
	"context"
	"log/slog"
	"maps"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"mesa-rewards/internal/config/configs"
	"mesa-rewards/internal/core/domain"
	"mesa-rewards/internal/core/port"
)

const shutdownFlushTimeout = 5 * time.Second

// Recorder implements port.Analytics on top of a port.EventStore.
type Recorder struct {
	store  port.EventStore
	logger *slog.Logger
	now    func() time.Time

	events        chan domain.AnalyticsEvent
	batchSize     int
	flushInterval time.Duration
	dropped       atomic.Int64
}

var _ port.Analytics = (*Recorder)(nil)

// NewRecorder returns a recorder writing to store. Call Run to start the
// worker.
func NewRecorder(store port.EventStore, logger *slog.Logger, cfg configs.Analytics) *Recorder {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1024
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 2 * time.Second
	}
	return &Recorder{
		store:         store,
		logger:        logger.With(slog.String("component", "analytics")),
		now:           time.Now,
		events:        make(chan domain.AnalyticsEvent, cfg.BufferSize),
		batchSize:     cfg.BatchSize,
		flushInterval: cfg.FlushInterval,
	}
}

// LogEvent enqueues an event. When the buffer is full the event is dropped
// and counted.
func (r *Recorder) LogEvent(name string, params map[string]any) {
	ev := domain.AnalyticsEvent{
		ID:        uuid.NewString(),
		Name:      name,
		Params:    maps.Clone(params),
		CreatedAt: r.now().UTC(),
	}
	if v, ok := params["reward_kind"].(string); ok {
		ev.RewardKind = domain.RewardKind(v)
	}
	if v, ok := params["display_id"].(string); ok {
		ev.DisplayID = v
	}
	if v, ok := params["amount"].(int); ok {
		ev.Amount = v
	}

	select {
	case r.events <- ev:
	default:
		r.dropped.Add(1)
		r.logger.Warn("analytics buffer full, event dropped", slog.String("event", name))
	}
}

// Dropped returns the number of events lost to a full buffer.
func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}

// Run writes buffered events until ctx is done, then flushes what is left
// and returns nil.
func (r *Recorder) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.flushInterval)
	defer ticker.Stop()

	batch := make([]domain.AnalyticsEvent, 0, r.batchSize)
	for {
		select {
		case ev := <-r.events:
			batch = append(batch, ev)
			if len(batch) >= r.batchSize {
				r.flush(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			r.flush(ctx, batch)
			batch = batch[:0]
		case <-ctx.Done():
			batch = r.drain(batch)
			flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownFlushTimeout)
			r.flush(flushCtx, batch)
			cancel()
			return nil
		}
	}
}

func (r *Recorder) drain(batch []domain.AnalyticsEvent) []domain.AnalyticsEvent {
	for {
		select {
		case ev := <-r.events:
			batch = append(batch, ev)
		default:
			return batch
		}
	}
}

func (r *Recorder) flush(ctx context.Context, batch []domain.AnalyticsEvent) {
	if len(batch) == 0 {
		return
	}
	out := make([]domain.AnalyticsEvent, len(batch))
	copy(out, batch)
	if err := r.store.InsertEvents(ctx, out); err != nil {
		r.logger.Error("failed to store analytics events", slog.Int("count", len(out)), slog.Any("error", err))
	}
}
