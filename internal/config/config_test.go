package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "test", cfg.Ads.Environment)
	assert.Equal(t, 30, cfg.Ads.CooldownSeconds)
	assert.Equal(t, []string{"story_unlock", "translation"}, cfg.Ads.PreloadKinds)
	assert.Equal(t, 5*time.Second, cfg.Ads.LoadRetryDelay)
	assert.Equal(t, "log", cfg.Analytics.Sink)

	assert.Equal(t, 3, cfg.Rewards.StoryUnlock.DailyFreeAllowance)
	assert.Equal(t, 86400, cfg.Rewards.StoryUnlock.UnlockDurationSeconds)
	assert.Equal(t, 5, cfg.Rewards.Translation.PerAdGrantAmount)
	assert.Equal(t, 1, cfg.Rewards.StreakProtector.MaxDailyAdsShown)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADS_ENVIRONMENT", "production")
	t.Setenv("ADS_PRELOAD_KINDS", "premium_trial")
	t.Setenv("ADS_COOLDOWN_SECONDS", "45")
	t.Setenv("REWARDS_TRANSLATION_MAX_DAILY_ADS_SHOWN", "7")
	t.Setenv("SIM_FILL_RATE", "0.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Ads.Environment)
	assert.Equal(t, []string{"premium_trial"}, cfg.Ads.PreloadKinds)
	assert.Equal(t, 45, cfg.Ads.CooldownSeconds)
	assert.Equal(t, 7, cfg.Rewards.Translation.MaxDailyAdsShown)
	// untouched fields of the same kind keep their defaults
	assert.Equal(t, 5, cfg.Rewards.Translation.PerAdGrantAmount)
	assert.InDelta(t, 0.5, cfg.Simulator.FillRate, 1e-9)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("ADS_COOLDOWN_SECONDS", "soon")
	_, err := Load()
	require.Error(t, err)
}
