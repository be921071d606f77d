package port

import (
	"context"
	"time"

	"mesa-rewards/internal/core/domain"
)

// RewardUseCase is the primary port of the rewarded-ad lifecycle. Screens
// and the HTTP adapter talk to it; nothing else in the core is public.
type RewardUseCase interface {
	// Initialize sets up the ad platform and preloads the default reward
	// kinds. It is idempotent; a failed initialization may be retried by
	// the caller.
	Initialize(ctx context.Context) error

	// RequestReward shows a rewarded ad for kind and blocks until the
	// outcome is known. Declines are reported in the outcome; an error is
	// returned only for configuration defects or when ctx ends first.
	RequestReward(ctx context.Context, kind domain.RewardKind) (domain.RewardOutcome, error)

	// IsAdReady reports whether an ad for kind can be shown right now.
	IsAdReady(kind domain.RewardKind) bool

	// CanShowAd reports whether the global cooldown has elapsed.
	CanShowAd() bool

	// CooldownRemaining returns how long until CanShowAd becomes true.
	CooldownRemaining() time.Duration

	// Slots returns a snapshot of every ad slot.
	Slots() []domain.SlotSnapshot
}
