package postgres

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-rewards/internal/config/configs"
	"mesa-rewards/internal/core/domain"
	"mesa-rewards/internal/core/port"
	"mesa-rewards/internal/db"
)

// newTestRepository connects to the database named by PSQL_TEST_ADDRESS and
// skips the test when it is unset.
func newTestRepository(t *testing.T) *EventRepository {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)

	require.NoError(t, db.Migrate(addr, slog.New(slog.NewTextHandler(io.Discard, nil))))
	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewEventRepository(pool)
}

func TestEventRepositoryStats(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	// a random kind keeps runs against a shared database apart
	kind := domain.RewardKind("test_" + uuid.NewString())
	at := time.Now().UTC().Truncate(time.Second)
	events := []domain.AnalyticsEvent{
		{ID: uuid.NewString(), Name: domain.EventAdImpression, RewardKind: kind, DisplayID: "d1", CreatedAt: at},
		{ID: uuid.NewString(), Name: domain.EventAdCompleted, RewardKind: kind, DisplayID: "d1", Amount: 10, CreatedAt: at,
			Params: map[string]any{"amount": 10}},
		{ID: uuid.NewString(), Name: domain.EventAdImpression, RewardKind: kind, DisplayID: "d2", CreatedAt: at},
		{ID: uuid.NewString(), Name: domain.EventAdSkipped, RewardKind: kind, DisplayID: "d2", CreatedAt: at},
	}
	require.NoError(t, repo.InsertEvents(ctx, events))
	// re-inserting the same ids is a no-op
	require.NoError(t, repo.InsertEvents(ctx, events[:1]))

	stats, err := repo.GetStats(ctx, port.StatsReq{From: at.Add(-time.Minute), To: at.Add(time.Minute), RewardKind: &kind})
	require.NoError(t, err)
	assert.Equal(t, port.StatsResp{Impressions: 2, Completed: 1, Skipped: 1, Granted: 10}, *stats)
}
