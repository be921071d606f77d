package analytics

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-rewards/internal/config/configs"
	"mesa-rewards/internal/core/domain"
	"mesa-rewards/internal/core/port"
	"mesa-rewards/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecorderFlushesBatches(t *testing.T) {
	store := mocks.NewMockEventStore(t)

	var (
		mu     sync.Mutex
		stored []domain.AnalyticsEvent
		calls  int
	)
	store.EXPECT().
		InsertEvents(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, events []domain.AnalyticsEvent) error {
			mu.Lock()
			defer mu.Unlock()
			stored = append(stored, events...)
			calls++
			return nil
		})

	rec := NewRecorder(store, discardLogger(), configs.Analytics{BufferSize: 10, BatchSize: 2, FlushInterval: time.Hour})
	rec.LogEvent(domain.EventAdImpression, map[string]any{"reward_kind": "story_unlock", "display_id": "d1"})
	rec.LogEvent(domain.EventAdRewardEarned, map[string]any{"reward_kind": "story_unlock", "display_id": "d1", "amount": 10})
	rec.LogEvent(domain.EventAdCompleted, map[string]any{"reward_kind": "story_unlock", "display_id": "d1", "amount": 10})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rec.Run(ctx) }()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(stored) == 2
	}, time.Second, time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, stored, 3, "remaining event is flushed on shutdown")
	assert.Equal(t, 2, calls)
	assert.Equal(t, domain.EventAdImpression, stored[0].Name)
	assert.Equal(t, domain.RewardStoryUnlock, stored[1].RewardKind)
	assert.Equal(t, "d1", stored[1].DisplayID)
	assert.Equal(t, 10, stored[2].Amount)
	assert.NotEmpty(t, stored[2].ID)
	assert.False(t, stored[2].CreatedAt.IsZero())
}

func TestRecorderDropsWhenFull(t *testing.T) {
	store := mocks.NewMockEventStore(t)
	rec := NewRecorder(store, discardLogger(), configs.Analytics{BufferSize: 1})

	rec.LogEvent(domain.EventAdImpression, nil)
	rec.LogEvent(domain.EventAdImpression, nil)

	assert.EqualValues(t, 1, rec.Dropped())
}

func TestRecorderCopiesParams(t *testing.T) {
	store := NewMemoryStore(discardLogger(), 0)
	rec := NewRecorder(store, discardLogger(), configs.Analytics{BufferSize: 4, BatchSize: 1, FlushInterval: time.Hour})

	params := map[string]any{"reward_kind": "translation"}
	rec.LogEvent(domain.EventAdSkipped, params)
	params["reward_kind"] = "mutated"

	ev := <-rec.events
	assert.Equal(t, "translation", ev.Params["reward_kind"])
}

func TestMemoryStoreStats(t *testing.T) {
	store := NewMemoryStore(discardLogger(), 0)
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	events := []domain.AnalyticsEvent{
		{Name: domain.EventAdImpression, RewardKind: domain.RewardStoryUnlock, CreatedAt: base},
		{Name: domain.EventAdCompleted, RewardKind: domain.RewardStoryUnlock, Amount: 10, CreatedAt: base},
		{Name: domain.EventAdImpression, RewardKind: domain.RewardTranslation, CreatedAt: base},
		{Name: domain.EventAdSkipped, RewardKind: domain.RewardTranslation, CreatedAt: base},
		{Name: domain.EventAdLoadFailed, RewardKind: domain.RewardTranslation, CreatedAt: base},
		{Name: domain.EventAdCompleted, RewardKind: domain.RewardStoryUnlock, Amount: 5, CreatedAt: base.Add(48 * time.Hour)},
	}
	require.NoError(t, store.InsertEvents(context.Background(), events))

	stats, err := store.GetStats(context.Background(), port.StatsReq{From: base, To: base.Add(time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, port.StatsResp{Impressions: 2, Completed: 1, Skipped: 1, LoadFailed: 1, Granted: 10}, *stats)

	kind := domain.RewardTranslation
	stats, err = store.GetStats(context.Background(), port.StatsReq{From: base, To: base.Add(time.Hour), RewardKind: &kind})
	require.NoError(t, err)
	assert.Equal(t, port.StatsResp{Impressions: 1, Skipped: 1, LoadFailed: 1}, *stats)
}

func TestMemoryStoreLimit(t *testing.T) {
	store := NewMemoryStore(discardLogger(), 2)
	now := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, store.InsertEvents(context.Background(), []domain.AnalyticsEvent{
			{Name: domain.EventAdImpression, CreatedAt: now},
		}))
	}
	stats, err := store.GetStats(context.Background(), port.StatsReq{From: now.Add(-time.Minute), To: now.Add(time.Minute)})
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Impressions)
}
