package domain

import (
	"fmt"
	"time"
)

// RewardKind identifies what a rewarded ad is shown for. It keys both the
// reward catalog and the ad slot pool.
type RewardKind string

const (
	RewardStoryUnlock     RewardKind = "story_unlock"
	RewardTranslation     RewardKind = "translation"
	RewardStreakProtector RewardKind = "streak_protector"
	RewardPremiumTrial    RewardKind = "premium_trial"
)

// AllRewardKinds returns every known reward kind in a stable order.
func AllRewardKinds() []RewardKind {
	return []RewardKind{RewardStoryUnlock, RewardTranslation, RewardStreakProtector, RewardPremiumTrial}
}

// ParseRewardKind validates s and returns the matching RewardKind.
func ParseRewardKind(s string) (RewardKind, error) {
	for _, k := range AllRewardKinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown reward kind %q", ErrConfiguration, s)
}

// Environment selects which set of ad unit ids is used.
type Environment string

const (
	EnvironmentTest       Environment = "test"
	EnvironmentProduction Environment = "production"
)

// AdUnitDescriptor binds a reward kind to a platform ad unit. Loaded once at
// start and never mutated.
type AdUnitDescriptor struct {
	RewardKind  RewardKind
	AdUnitID    string
	Environment Environment
}

// RewardLimits holds the business limits of a reward kind.
type RewardLimits struct {
	DailyFreeAllowance    int
	PerAdGrantAmount      int
	UnlockDurationSeconds int
	MaxDailyAdsShown      int // 0 means unlimited
	CooldownSeconds       int
}

// UnlockDuration returns UnlockDurationSeconds as a time.Duration.
func (l RewardLimits) UnlockDuration() time.Duration {
	return time.Duration(l.UnlockDurationSeconds) * time.Second
}

// Cooldown returns CooldownSeconds as a time.Duration.
func (l RewardLimits) Cooldown() time.Duration {
	return time.Duration(l.CooldownSeconds) * time.Second
}

// PlatformReward is the reward reported by the ad platform when the user
// finishes watching an ad.
type PlatformReward struct {
	Amount int
	Type   string
}
