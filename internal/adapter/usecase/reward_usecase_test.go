package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-rewards/internal/catalog"
	"mesa-rewards/internal/cooldown"
	"mesa-rewards/internal/core/domain"
	"mesa-rewards/internal/core/port/mocks"
	"mesa-rewards/internal/platformtest"
	"mesa-rewards/internal/slotpool"
)

const cooldownSeconds = 30

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	platform  *platformtest.Platform
	analytics *mocks.MockAnalytics
	clock     *clock
	uc        *RewardUseCase
}

func unitFor(kind domain.RewardKind) string { return "unit-" + string(kind) }

func newFixture(t *testing.T, platform *platformtest.Platform) *fixture {
	t.Helper()

	var entries []catalog.Entry
	for _, kind := range domain.AllRewardKinds() {
		limits := domain.RewardLimits{
			PerAdGrantAmount:      1,
			UnlockDurationSeconds: 3600,
			CooldownSeconds:       cooldownSeconds,
		}
		if kind == domain.RewardStreakProtector {
			limits.MaxDailyAdsShown = 1
		}
		entries = append(entries, catalog.Entry{
			Unit:   domain.AdUnitDescriptor{RewardKind: kind, AdUnitID: unitFor(kind), Environment: domain.EnvironmentTest},
			Limits: limits,
		})
	}
	cat, err := catalog.New(entries...)
	require.NoError(t, err)

	pool, err := slotpool.New(platform, cat, slotpool.Options{MaxLoadFailures: 3})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	clk := &clock{now: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
	analytics := mocks.NewMockAnalytics(t)
	uc := NewRewardUseCase(platform, cat, pool, cooldown.NewGate(cooldownSeconds*time.Second), analytics, Options{
		PreloadKinds: []domain.RewardKind{domain.RewardStoryUnlock, domain.RewardTranslation},
		Now:          clk.Now,
	})
	return &fixture{platform: platform, analytics: analytics, clock: clk, uc: uc}
}

// readyPlatform loads every ad immediately and plays script on show.
func readyPlatform(script func(h *platformtest.Handle)) *platformtest.Platform {
	return &platformtest.Platform{
		OnLoad: func(h *platformtest.Handle) { h.EmitLoaded() },
		OnShow: script,
	}
}

func TestInitializePreloadsDefaultKinds(t *testing.T) {
	f := newFixture(t, &platformtest.Platform{})

	require.NoError(t, f.uc.Initialize(context.Background()))
	require.NoError(t, f.uc.Initialize(context.Background()))

	assert.Equal(t, 1, f.platform.InitCalls())
	assert.Equal(t, 1, f.platform.Loads(unitFor(domain.RewardStoryUnlock)))
	assert.Equal(t, 1, f.platform.Loads(unitFor(domain.RewardTranslation)))
	assert.Zero(t, f.platform.Loads(unitFor(domain.RewardPremiumTrial)))
	assert.Zero(t, f.platform.Loads(unitFor(domain.RewardStreakProtector)))
}

func TestInitializeFailureIsNotRetriedInternally(t *testing.T) {
	f := newFixture(t, &platformtest.Platform{InitErr: errors.New("no network")})

	err := f.uc.Initialize(context.Background())
	require.ErrorIs(t, err, domain.ErrPlatformInit)
	assert.Equal(t, 1, f.platform.InitCalls())
	assert.Empty(t, f.platform.Handles(""))

	f.platform.InitErr = nil
	require.NoError(t, f.uc.Initialize(context.Background()))
	assert.Equal(t, 2, f.platform.InitCalls())
	assert.Len(t, f.platform.Handles(""), 2)
}

func TestInitializeConcurrentCallsShareOneInit(t *testing.T) {
	f := newFixture(t, &platformtest.Platform{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.uc.Initialize(context.Background()))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, f.platform.InitCalls())
	assert.Equal(t, 1, f.platform.Loads(unitFor(domain.RewardStoryUnlock)))
}

func TestRequestRewardNotReady(t *testing.T) {
	f := newFixture(t, &platformtest.Platform{})

	outcome, err := f.uc.RequestReward(context.Background(), domain.RewardTranslation)
	require.NoError(t, err)
	assert.Equal(t, domain.RewardOutcome{
		RewardKind:    domain.RewardTranslation,
		DeclineReason: domain.DeclineNotReady,
	}, outcome)
	assert.Equal(t, 1, f.platform.Loads(unitFor(domain.RewardTranslation)), "request should trigger a preload")
	assert.False(t, f.uc.IsAdReady(domain.RewardTranslation))
}

func TestRequestRewardGrantedThenCooldown(t *testing.T) {
	f := newFixture(t, readyPlatform(func(h *platformtest.Handle) {
		h.EmitEarned(10, "coins")
		h.EmitEarned(10, "coins")
		h.EmitClosed()
	}))
	unit := unitFor(domain.RewardStoryUnlock)

	f.analytics.EXPECT().LogEvent(domain.EventAdImpression, mock.Anything).Once()
	f.analytics.EXPECT().
		LogEvent(domain.EventAdRewardEarned, mock.MatchedBy(func(p map[string]any) bool {
			return p["amount"] == 10 && p["reward_type"] == "coins"
		})).
		Once()
	f.analytics.EXPECT().LogEvent(domain.EventAdCompleted, mock.Anything).Once()

	require.NoError(t, f.uc.Initialize(context.Background()))
	require.True(t, f.uc.IsAdReady(domain.RewardStoryUnlock))
	require.True(t, f.uc.CanShowAd())

	outcome, err := f.uc.RequestReward(context.Background(), domain.RewardStoryUnlock)
	require.NoError(t, err)
	assert.True(t, outcome.Granted)
	assert.Equal(t, 10, outcome.Amount)
	assert.Equal(t, "coins", outcome.RewardType)
	assert.Equal(t, domain.RewardStoryUnlock, outcome.RewardKind)
	assert.Equal(t, time.Hour, outcome.UnlockDuration)
	assert.Empty(t, outcome.DeclineReason)
	assert.NotEmpty(t, outcome.DisplayID)

	assert.False(t, f.uc.CanShowAd())
	assert.Len(t, f.platform.Handles(unit), 2, "one refill after close")
	assert.True(t, f.uc.IsAdReady(domain.RewardStoryUnlock))

	f.clock.Advance(5 * time.Second)
	outcome, err = f.uc.RequestReward(context.Background(), domain.RewardStoryUnlock)
	require.NoError(t, err)
	assert.Equal(t, domain.DeclineCooldown, outcome.DeclineReason)
	assert.False(t, outcome.Granted)
	assert.Zero(t, f.platform.Last(unit).Shows(), "cooldown must not reach the platform")
	assert.Equal(t, 25*time.Second, f.uc.CooldownRemaining())

	// cooldown is global across kinds
	outcome, err = f.uc.RequestReward(context.Background(), domain.RewardTranslation)
	require.NoError(t, err)
	assert.Equal(t, domain.DeclineCooldown, outcome.DeclineReason)

	f.clock.Advance(cooldownSeconds * time.Second)
	assert.True(t, f.uc.CanShowAd())
}

func TestRequestRewardFallsBackToCatalogAmount(t *testing.T) {
	f := newFixture(t, readyPlatform(func(h *platformtest.Handle) {
		h.EmitEarned(0, "")
		h.EmitClosed()
	}))
	f.analytics.EXPECT().LogEvent(mock.Anything, mock.Anything).Maybe()

	require.NoError(t, f.uc.Initialize(context.Background()))
	outcome, err := f.uc.RequestReward(context.Background(), domain.RewardTranslation)
	require.NoError(t, err)
	assert.True(t, outcome.Granted)
	assert.Equal(t, 1, outcome.Amount)
}

func TestRequestRewardDismissed(t *testing.T) {
	f := newFixture(t, readyPlatform(func(h *platformtest.Handle) { h.EmitClosed() }))

	f.analytics.EXPECT().LogEvent(domain.EventAdImpression, mock.Anything).Once()
	f.analytics.EXPECT().LogEvent(domain.EventAdSkipped, mock.Anything).Once()

	require.NoError(t, f.uc.Initialize(context.Background()))
	outcome, err := f.uc.RequestReward(context.Background(), domain.RewardTranslation)
	require.NoError(t, err)
	assert.False(t, outcome.Granted)
	assert.Zero(t, outcome.Amount)
	assert.Equal(t, domain.DeclineDismissed, outcome.DeclineReason)
	assert.False(t, f.uc.CanShowAd(), "a dismissed display still starts the cooldown")
	assert.Len(t, f.platform.Handles(unitFor(domain.RewardTranslation)), 2)
}

func TestRequestRewardPlatformError(t *testing.T) {
	platform := readyPlatform(nil)
	platform.ShowErr = errors.New("activity destroyed")
	f := newFixture(t, platform)

	f.analytics.EXPECT().LogEvent(domain.EventAdImpression, mock.Anything).Once()
	f.analytics.EXPECT().LogEvent(domain.EventAdShowFailed, mock.Anything).Once()

	require.NoError(t, f.uc.Initialize(context.Background()))
	outcome, err := f.uc.RequestReward(context.Background(), domain.RewardStoryUnlock)
	require.NoError(t, err)
	assert.Equal(t, domain.DeclinePlatformError, outcome.DeclineReason)
	assert.True(t, f.uc.CanShowAd(), "a failed display does not start the cooldown")
	assert.True(t, f.uc.IsAdReady(domain.RewardStoryUnlock), "pool refills after a failed show")
}

func TestRequestRewardWaitsForPlatformEvents(t *testing.T) {
	f := newFixture(t, readyPlatform(nil))
	unit := unitFor(domain.RewardStoryUnlock)

	f.analytics.EXPECT().LogEvent(domain.EventAdImpression, mock.Anything).Once()
	f.analytics.EXPECT().LogEvent(domain.EventAdRewardEarned, mock.Anything).Once()
	f.analytics.EXPECT().LogEvent(domain.EventAdCompleted, mock.Anything).Once()

	require.NoError(t, f.uc.Initialize(context.Background()))
	h := f.platform.Last(unit)

	result := make(chan domain.RewardOutcome, 1)
	go func() {
		outcome, err := f.uc.RequestReward(context.Background(), domain.RewardStoryUnlock)
		assert.NoError(t, err)
		result <- outcome
	}()

	require.Eventually(t, func() bool { return h.Shows() == 1 }, time.Second, time.Millisecond)
	select {
	case <-result:
		t.Fatal("outcome resolved before the ad closed")
	default:
	}

	h.EmitEarned(10, "coins")
	h.EmitEarned(10, "coins")
	h.EmitClosed()

	select {
	case outcome := <-result:
		assert.True(t, outcome.Granted)
		assert.Equal(t, 10, outcome.Amount)
	case <-time.After(time.Second):
		t.Fatal("outcome not resolved after close")
	}
}

func TestRequestRewardContextCancelled(t *testing.T) {
	f := newFixture(t, readyPlatform(nil))
	unit := unitFor(domain.RewardTranslation)

	f.analytics.EXPECT().LogEvent(domain.EventAdImpression, mock.Anything).Once()
	f.analytics.EXPECT().LogEvent(domain.EventAdSkipped, mock.Anything).Once()

	require.NoError(t, f.uc.Initialize(context.Background()))
	h := f.platform.Last(unit)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := f.uc.RequestReward(ctx, domain.RewardTranslation)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, f.uc.CanShowAd())

	// bookkeeping still happens when the platform finally closes the ad
	h.EmitClosed()
	assert.False(t, f.uc.CanShowAd())
	assert.Len(t, f.platform.Handles(unit), 2)
}

func TestRequestRewardDailyLimit(t *testing.T) {
	f := newFixture(t, readyPlatform(func(h *platformtest.Handle) {
		h.EmitEarned(1, "shield")
		h.EmitClosed()
	}))
	f.analytics.EXPECT().LogEvent(mock.Anything, mock.Anything).Maybe()

	require.NoError(t, f.uc.Initialize(context.Background()))
	_, err := f.uc.RequestReward(context.Background(), domain.RewardStreakProtector)
	require.NoError(t, err)
	f.clock.Advance(time.Minute)
	outcome, err := f.uc.RequestReward(context.Background(), domain.RewardStreakProtector)
	require.NoError(t, err)
	assert.True(t, outcome.Granted)

	f.clock.Advance(time.Minute)
	outcome, err = f.uc.RequestReward(context.Background(), domain.RewardStreakProtector)
	require.NoError(t, err)
	assert.Equal(t, domain.DeclineDailyLimit, outcome.DeclineReason)

	f.clock.Advance(24 * time.Hour)
	outcome, err = f.uc.RequestReward(context.Background(), domain.RewardStreakProtector)
	require.NoError(t, err)
	assert.True(t, outcome.Granted)
}

func TestRequestRewardUnknownKind(t *testing.T) {
	f := newFixture(t, &platformtest.Platform{})

	_, err := f.uc.RequestReward(context.Background(), domain.RewardKind("bonus_chapter"))
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestConcurrentRequestsShowOneAd(t *testing.T) {
	f := newFixture(t, readyPlatform(nil))
	unit := unitFor(domain.RewardStoryUnlock)

	f.analytics.EXPECT().LogEvent(domain.EventAdImpression, mock.Anything).Once()
	f.analytics.EXPECT().LogEvent(domain.EventAdSkipped, mock.Anything).Once()

	require.NoError(t, f.uc.Initialize(context.Background()))
	h := f.platform.Last(unit)

	const callers = 5
	outcomes := make(chan domain.RewardOutcome, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcome, err := f.uc.RequestReward(context.Background(), domain.RewardStoryUnlock)
			assert.NoError(t, err)
			outcomes <- outcome
		}()
	}

	require.Eventually(t, func() bool { return len(outcomes) == callers-1 }, time.Second, time.Millisecond)
	h.EmitClosed()
	wg.Wait()
	close(outcomes)

	reasons := map[domain.DeclineReason]int{}
	for o := range outcomes {
		reasons[o.DeclineReason]++
	}
	assert.Equal(t, map[domain.DeclineReason]int{
		domain.DeclineNotReady:  callers - 1,
		domain.DeclineDismissed: 1,
	}, reasons)
	assert.Equal(t, 1, h.Shows())
}
