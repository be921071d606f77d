package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mesa-rewards/internal/core/domain"
)

// handleRequestReward shows a rewarded ad for the {kind} path parameter and
// responds with the outcome once the ad is closed. A declined request is
// still HTTP 200; the body carries the decline reason. Unknown kinds give
// HTTP 400. A client that goes away before the ad closes gets nothing.
func (h *Handler) handleRequestReward(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseRewardKind(chi.URLParam(r, "kind"))
	if err != nil {
		http.Error(w, "unknown reward kind", http.StatusBadRequest)
		return
	}

	outcome, err := h.svc.RequestReward(r.Context(), kind)
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusOK, outcome)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.Info("reward request abandoned", slog.String("reward_kind", string(kind)))
		http.Error(w, "request cancelled", http.StatusServiceUnavailable)
	default:
		h.logger.Error("request reward error", slog.String("reward_kind", string(kind)), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type readyResponse struct {
	RewardKind domain.RewardKind `json:"reward_kind"`
	Ready      bool              `json:"ready"`
}

// handleAdReady reports whether an ad for {kind} can be shown right now.
func (h *Handler) handleAdReady(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseRewardKind(chi.URLParam(r, "kind"))
	if err != nil {
		http.Error(w, "unknown reward kind", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, readyResponse{RewardKind: kind, Ready: h.svc.IsAdReady(kind)})
}

func (h *Handler) handleSlots(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Slots())
}

type cooldownResponse struct {
	CanShow          bool    `json:"can_show"`
	RemainingSeconds float64 `json:"remaining_seconds"`
}

// handleCooldown reports the global cooldown.
func (h *Handler) handleCooldown(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, cooldownResponse{
		CanShow:          h.svc.CanShowAd(),
		RemainingSeconds: h.svc.CooldownRemaining().Seconds(),
	})
}
