package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mesa-rewards/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP over the reward use case. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.RewardUseCase
	stats  port.EventStore
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. metrics, when
// not nil, is mounted at /metrics.
func NewHandler(svc port.RewardUseCase, stats port.EventStore, metrics http.Handler, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, stats: stats, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/rewards/{kind}", h.handleRequestReward)
		r.Get("/rewards/{kind}/ready", h.handleAdReady)
		r.Get("/slots", h.handleSlots)
		r.Get("/cooldown", h.handleCooldown)
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
