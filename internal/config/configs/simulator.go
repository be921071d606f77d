package configs

import "time"

// Simulator configures the in-process ad platform used when no real ad SDK
// is attached. Rates are fractions in [0,1].
type Simulator struct {
	FailInit       bool          `env:"FAIL_INIT" envDefault:"false"`
	LoadLatency    time.Duration `env:"LOAD_LATENCY" envDefault:"500ms"`
	FillRate       float64       `env:"FILL_RATE" envDefault:"0.9"`
	WatchDuration  time.Duration `env:"WATCH_DURATION" envDefault:"2s"`
	CompletionRate float64       `env:"COMPLETION_RATE" envDefault:"0.8"`
	RewardAmount   int           `env:"REWARD_AMOUNT" envDefault:"10"`
	RewardType     string        `env:"REWARD_TYPE" envDefault:"coins"`

	// Seed fixes the random source; zero seeds from the clock.
	Seed int64 `env:"SEED" envDefault:"0"`
}
