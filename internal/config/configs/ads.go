package configs

import "time"

// Ads configures the ad platform integration. In the "test" environment
// every reward kind is served from TestUnitID; in "production" each kind
// must have its own unit id.
type Ads struct {
	// Environment is either "test" or "production".
	Environment string `env:"ENVIRONMENT" envDefault:"test"`
	// TestUnitID is the platform's public rewarded test unit.
	TestUnitID string `env:"TEST_UNIT_ID" envDefault:"ca-app-pub-3940256099942544/5224354917"`

	StoryUnlockUnitID     string `env:"STORY_UNLOCK_UNIT_ID"`
	TranslationUnitID     string `env:"TRANSLATION_UNIT_ID"`
	StreakProtectorUnitID string `env:"STREAK_PROTECTOR_UNIT_ID"`
	PremiumTrialUnitID    string `env:"PREMIUM_TRIAL_UNIT_ID"`

	// CooldownSeconds is the global minimum time between two completed
	// displays, shared by all reward kinds.
	CooldownSeconds int `env:"COOLDOWN_SECONDS" envDefault:"30"`
	// PreloadKinds are preloaded right after the platform is initialised.
	PreloadKinds []string `env:"PRELOAD_KINDS" envDefault:"story_unlock,translation" envSeparator:","`
	// LoadRetryDelay delays the automatic reload after a failed load.
	LoadRetryDelay time.Duration `env:"LOAD_RETRY_DELAY" envDefault:"5s"`
	// MaxLoadFailures stops automatic reloads after this many consecutive
	// failures for one kind. Zero disables the cap.
	MaxLoadFailures int `env:"MAX_LOAD_FAILURES" envDefault:"3"`
	// NonPersonalizedOnly is forwarded with every ad request.
	NonPersonalizedOnly bool `env:"NON_PERSONALIZED_ONLY" envDefault:"false"`
	// QuotaTimezone is the location whose calendar day resets the daily
	// display counters.
	QuotaTimezone string `env:"QUOTA_TIMEZONE" envDefault:"UTC"`
}
