package configs

// RewardLimits are the business limits of one reward kind. The defaults
// differ per kind, so they are set by DefaultRewards rather than envDefault
// tags.
type RewardLimits struct {
	DailyFreeAllowance    int `env:"DAILY_FREE_ALLOWANCE"`
	PerAdGrantAmount      int `env:"PER_AD_GRANT_AMOUNT"`
	UnlockDurationSeconds int `env:"UNLOCK_DURATION_SECONDS"`
	MaxDailyAdsShown      int `env:"MAX_DAILY_ADS_SHOWN"`
}

// Rewards groups the limits of every reward kind.
type Rewards struct {
	StoryUnlock     RewardLimits `envPrefix:"STORY_UNLOCK_"`
	Translation     RewardLimits `envPrefix:"TRANSLATION_"`
	StreakProtector RewardLimits `envPrefix:"STREAK_PROTECTOR_"`
	PremiumTrial    RewardLimits `envPrefix:"PREMIUM_TRIAL_"`
}

// DefaultRewards returns the limits used when no environment override is
// present.
func DefaultRewards() Rewards {
	return Rewards{
		StoryUnlock: RewardLimits{
			DailyFreeAllowance:    3,
			PerAdGrantAmount:      1,
			UnlockDurationSeconds: 24 * 60 * 60,
			MaxDailyAdsShown:      10,
		},
		Translation: RewardLimits{
			DailyFreeAllowance: 5,
			PerAdGrantAmount:   5,
			MaxDailyAdsShown:   20,
		},
		StreakProtector: RewardLimits{
			PerAdGrantAmount: 1,
			MaxDailyAdsShown: 1,
		},
		PremiumTrial: RewardLimits{
			PerAdGrantAmount:      1,
			UnlockDurationSeconds: 24 * 60 * 60,
			MaxDailyAdsShown:      1,
		},
	}
}
