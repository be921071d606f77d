package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"mesa-rewards/internal/catalog"
	"mesa-rewards/internal/cooldown"
	"mesa-rewards/internal/core/domain"
	"mesa-rewards/internal/core/port"
	"mesa-rewards/internal/quota"
	"mesa-rewards/internal/slotpool"
)

// Options are the optional collaborators of a RewardUseCase.
type Options struct {
	// PreloadKinds are preloaded once Initialize succeeds.
	PreloadKinds []domain.RewardKind
	// Quota counts displays per day. Nil uses a UTC counter.
	Quota   *quota.Daily
	Metrics port.Metrics
	Logger  *slog.Logger
	// Now is the clock. Nil means time.Now.
	Now func() time.Time
}

// RewardUseCase coordinates the slot pool and the cooldown gate to serve
// reward requests. It implements port.RewardUseCase and is meant to be
// constructed once per process.
type RewardUseCase struct {
	platform  port.AdPlatform
	catalog   *catalog.Catalog
	pool      *slotpool.Pool
	gate      *cooldown.Gate
	quota     *quota.Daily
	analytics port.Analytics
	metrics   port.Metrics
	logger    *slog.Logger
	now       func() time.Time

	preloadKinds []domain.RewardKind
	initGroup    singleflight.Group
	initialized  atomic.Bool
}

var _ port.RewardUseCase = (*RewardUseCase)(nil)

// NewRewardUseCase wires the orchestrator. The pool must have been built
// on the same platform and catalog.
func NewRewardUseCase(
	platform port.AdPlatform,
	cat *catalog.Catalog,
	pool *slotpool.Pool,
	gate *cooldown.Gate,
	analytics port.Analytics,
	opts Options,
) *RewardUseCase {
	u := &RewardUseCase{
		platform:     platform,
		catalog:      cat,
		pool:         pool,
		gate:         gate,
		quota:        opts.Quota,
		analytics:    analytics,
		metrics:      opts.Metrics,
		logger:       opts.Logger,
		now:          opts.Now,
		preloadKinds: opts.PreloadKinds,
	}
	if u.quota == nil {
		u.quota = quota.NewDaily(time.UTC)
	}
	if u.metrics == nil {
		u.metrics = port.NopMetrics{}
	}
	if u.logger == nil {
		u.logger = slog.Default()
	}
	if u.now == nil {
		u.now = time.Now
	}
	return u
}

// Initialize initialises the ad platform once and preloads the configured
// kinds. Concurrent callers share a single platform call. A failure is
// returned as domain.ErrPlatformInit and may be retried by calling again.
func (u *RewardUseCase) Initialize(ctx context.Context) error {
	if u.initialized.Load() {
		return nil
	}
	_, err, _ := u.initGroup.Do("initialize", func() (any, error) {
		if u.initialized.Load() {
			return nil, nil
		}
		if err := u.platform.Initialize(ctx); err != nil {
			u.logger.Error("ad platform initialization failed", slog.Any("error", err))
			return nil, fmt.Errorf("%w: %w", domain.ErrPlatformInit, err)
		}
		u.initialized.Store(true)
		u.logger.Info("ad platform initialized")

		for _, kind := range u.preloadKinds {
			if err := u.pool.Preload(kind); err != nil {
				u.logger.Error("preload failed", slog.String("reward_kind", string(kind)), slog.Any("error", err))
			}
		}
		return nil, nil
	})
	return err
}

// RequestReward shows a rewarded ad for kind and waits for its outcome.
// Cooldown, daily limit, missing ads and platform failures are reported as
// decline reasons. Errors are returned only for an uncatalogued kind or
// when ctx ends before the ad is closed.
func (u *RewardUseCase) RequestReward(ctx context.Context, kind domain.RewardKind) (domain.RewardOutcome, error) {
	unit, limits, err := u.catalog.Lookup(kind)
	if err != nil {
		return domain.RewardOutcome{}, err
	}

	now := u.now()
	if !u.gate.CanShow(now) {
		return u.decline(kind, domain.DeclineCooldown), nil
	}
	if !u.quota.Allow(kind, limits.MaxDailyAdsShown, now) {
		return u.decline(kind, domain.DeclineDailyLimit), nil
	}

	var outcome domain.RewardOutcome
	d, err := u.pool.Show(kind, slotpool.Hooks{
		OnShow: func(d *slotpool.Display) {
			u.analytics.LogEvent(domain.EventAdImpression, map[string]any{
				"reward_kind": string(kind),
				"ad_unit_id":  unit.AdUnitID,
				"display_id":  d.ID,
			})
		},
		OnEarned: func(d *slotpool.Display, reward domain.PlatformReward) {
			u.analytics.LogEvent(domain.EventAdRewardEarned, map[string]any{
				"reward_kind": string(kind),
				"display_id":  d.ID,
				"amount":      reward.Amount,
				"reward_type": reward.Type,
			})
		},
		OnFinished: func(d *slotpool.Display, res slotpool.Result) {
			outcome = u.finishDisplay(d, limits, res)
		},
	})
	if errors.Is(err, domain.ErrAdNotReady) {
		return u.decline(kind, domain.DeclineNotReady), nil
	}
	if err != nil {
		return domain.RewardOutcome{}, err
	}

	if _, err = d.Wait(ctx); err != nil {
		u.logger.Warn("reward request abandoned before ad closed",
			slog.String("reward_kind", string(kind)),
			slog.String("display_id", d.ID),
			slog.Any("error", err),
		)
		return domain.RewardOutcome{}, err
	}
	return outcome, nil
}

// finishDisplay does the close bookkeeping of a display and builds its
// outcome. It runs whether or not the requester is still waiting.
func (u *RewardUseCase) finishDisplay(d *slotpool.Display, limits domain.RewardLimits, res slotpool.Result) domain.RewardOutcome {
	kind := d.Kind
	if res.Err != nil {
		u.logger.Warn("ad failed to show",
			slog.String("reward_kind", string(kind)),
			slog.String("display_id", d.ID),
			slog.Any("error", res.Err),
		)
		u.analytics.LogEvent(domain.EventAdShowFailed, map[string]any{
			"reward_kind": string(kind),
			"display_id":  d.ID,
			"error":       res.Err.Error(),
		})
		outcome := domain.Declined(kind, domain.DeclinePlatformError)
		outcome.DisplayID = d.ID
		u.metrics.RewardResolved(outcome)
		return outcome
	}

	now := u.now()
	u.gate.RecordShown(now)
	u.quota.Record(kind, now)

	var outcome domain.RewardOutcome
	if res.Earned {
		amount := res.Reward.Amount
		if amount <= 0 {
			amount = limits.PerAdGrantAmount
		}
		outcome = domain.RewardOutcome{
			Granted:        true,
			Amount:         amount,
			RewardType:     res.Reward.Type,
			RewardKind:     kind,
			UnlockDuration: limits.UnlockDuration(),
		}
		u.analytics.LogEvent(domain.EventAdCompleted, map[string]any{
			"reward_kind": string(kind),
			"display_id":  d.ID,
			"amount":      amount,
		})
	} else {
		outcome = domain.Declined(kind, domain.DeclineDismissed)
		u.analytics.LogEvent(domain.EventAdSkipped, map[string]any{
			"reward_kind": string(kind),
			"display_id":  d.ID,
		})
	}
	outcome.DisplayID = d.ID
	u.metrics.RewardResolved(outcome)
	return outcome
}

func (u *RewardUseCase) decline(kind domain.RewardKind, reason domain.DeclineReason) domain.RewardOutcome {
	outcome := domain.Declined(kind, reason)
	u.metrics.RewardResolved(outcome)
	u.logger.Debug("reward declined", slog.String("reward_kind", string(kind)), slog.String("reason", string(reason)))
	return outcome
}

// IsAdReady reports whether kind has an ad that can be shown now.
func (u *RewardUseCase) IsAdReady(kind domain.RewardKind) bool {
	return u.pool.IsReady(kind)
}

// CanShowAd reports whether the global cooldown has elapsed.
func (u *RewardUseCase) CanShowAd() bool {
	return u.gate.CanShow(u.now())
}

// CooldownRemaining returns how long until CanShowAd becomes true.
func (u *RewardUseCase) CooldownRemaining() time.Duration {
	return u.gate.Remaining(u.now())
}

// Slots returns the state of every ad slot.
func (u *RewardUseCase) Slots() []domain.SlotSnapshot {
	return u.pool.Snapshots()
}
