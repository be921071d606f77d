package domain

import "time"

// DeclineReason explains why a reward request was not granted. Declines are
// routine outcomes and are carried as data, never as errors.
type DeclineReason string

const (
	DeclineNone          DeclineReason = ""
	DeclineCooldown      DeclineReason = "cooldown"
	DeclineNotReady      DeclineReason = "not_ready"
	DeclinePlatformError DeclineReason = "platform_error"
	DeclineDismissed     DeclineReason = "dismissed"   // closed before the reward was earned
	DeclineDailyLimit    DeclineReason = "daily_limit" // MaxDailyAdsShown reached
)

// RewardOutcome is the result of a single reward request. It is built once
// and handed back to the caller; the core never stores it.
type RewardOutcome struct {
	Granted        bool          `json:"granted"`
	Amount         int           `json:"amount,omitempty"`
	RewardType     string        `json:"reward_type,omitempty"`
	RewardKind     RewardKind    `json:"reward_kind,omitempty"`
	UnlockDuration time.Duration `json:"unlock_duration,omitempty"`
	DeclineReason  DeclineReason `json:"decline_reason,omitempty"`
	DisplayID      string        `json:"display_id,omitempty"`
}

// Declined builds a non-granted outcome.
func Declined(kind RewardKind, reason DeclineReason) RewardOutcome {
	return RewardOutcome{RewardKind: kind, DeclineReason: reason}
}
