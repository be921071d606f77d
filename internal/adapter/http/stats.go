package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"mesa-rewards/internal/core/domain"
	"mesa-rewards/internal/core/port"
)

// handleStatsOverview returns aggregated ad events over a period. It
// accepts optional `from`, `to` (RFC3339 timestamps) and `reward_kind`
// query parameters. If no period is provided, it defaults to the last 24
// hours. Invalid parameters result in HTTP 400; store errors in HTTP 500.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.From = time.Now().Add(-24 * time.Hour)
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.To = time.Now()
	}

	if k := q.Get("reward_kind"); k != "" {
		kind, err := domain.ParseRewardKind(k)
		if err != nil {
			http.Error(w, "invalid reward_kind", http.StatusBadRequest)
			return
		}
		req.RewardKind = &kind
	}

	stats, err := h.stats.GetStats(r.Context(), req)
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
