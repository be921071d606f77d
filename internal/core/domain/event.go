package domain

import "time"

// Analytics event names emitted by the lifecycle orchestrator and the slot pool.
const (
	EventAdImpression   = "ad_impression"
	EventAdRewardEarned = "ad_reward_earned"
	EventAdCompleted    = "ad_completed"
	EventAdSkipped      = "ad_skipped"
	EventAdShowFailed   = "ad_show_failed"
	EventAdLoadFailed   = "ad_load_failed"
)

// AnalyticsEvent is an emitted event as seen by a sink.
type AnalyticsEvent struct {
	ID         string
	Name       string
	RewardKind RewardKind
	DisplayID  string
	Amount     int
	Params     map[string]any
	CreatedAt  time.Time
}
