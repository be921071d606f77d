package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-rewards/internal/core/domain"
	"mesa-rewards/internal/core/port"
)

// EventRepository implements port.EventStore using pgxpool for PostgreSQL.
type EventRepository struct {
	pool *pgxpool.Pool
}

var _ port.EventStore = (*EventRepository)(nil)

// NewEventRepository returns a new repository instance.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// InsertEvents stores a batch of analytics events in one transaction.
// Events already stored under the same id are skipped.
func (r *EventRepository) InsertEvents(ctx context.Context, events []domain.AnalyticsEvent) (err error) {
	if len(events) == 0 {
		return nil
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	batch := &pgx.Batch{}
	for _, ev := range events {
		params := ev.Params
		if params == nil {
			params = map[string]any{}
		}
		var raw []byte
		raw, err = json.Marshal(params)
		if err != nil {
			return fmt.Errorf("encode params of %s: %w", ev.Name, err)
		}
		batch.Queue(`INSERT INTO ad_events (id, name, reward_kind, display_id, amount, params, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT (id) DO NOTHING`,
			ev.ID, ev.Name, string(ev.RewardKind), ev.DisplayID, ev.Amount, raw, ev.CreatedAt)
	}
	err = tx.SendBatch(ctx, batch).Close()
	return err
}

// GetStats returns aggregated events for a period, optionally narrowed to
// one reward kind.
func (r *EventRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []any{req.From, req.To,
		domain.EventAdImpression, domain.EventAdCompleted, domain.EventAdSkipped,
		domain.EventAdShowFailed, domain.EventAdLoadFailed,
	}
	whereKind := ""
	if req.RewardKind != nil {
		whereKind = "AND reward_kind = $8"
		args = append(args, string(*req.RewardKind))
	}
	query := fmt.Sprintf(`SELECT
    count(*) FILTER (WHERE name = $3),
    count(*) FILTER (WHERE name = $4),
    count(*) FILTER (WHERE name = $5),
    count(*) FILTER (WHERE name = $6),
    count(*) FILTER (WHERE name = $7),
    COALESCE(sum(amount) FILTER (WHERE name = $4), 0)
FROM ad_events
WHERE created_at >= $1 AND created_at <= $2 %s`, whereKind)

	var resp port.StatsResp
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&resp.Impressions,
		&resp.Completed,
		&resp.Skipped,
		&resp.ShowFailed,
		&resp.LoadFailed,
		&resp.Granted,
	)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
