// Package simulator is an in-process ad platform. It stands in for a real
// ad SDK so the service can run end to end: ads load after a delay with a
// configurable fill rate, and a shown ad is watched to completion with a
// configurable probability.
package simulator

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"mesa-rewards/internal/config/configs"
	"mesa-rewards/internal/core/domain"
	"mesa-rewards/internal/core/port"
)

var (
	ErrNotInitialized = errors.New("simulator: platform not initialized")
	ErrInitFailed     = errors.New("simulator: initialization failed")
	ErrNoFill         = errors.New("simulator: no fill")
	ErrNotLoaded      = errors.New("simulator: ad not loaded")
)

// Platform implements port.AdPlatform.
type Platform struct {
	cfg    configs.Simulator
	logger *slog.Logger

	initialized atomic.Bool

	mu  sync.Mutex
	rnd *rand.Rand
}

var _ port.AdPlatform = (*Platform)(nil)

// New returns a simulator configured by cfg. seed makes runs reproducible.
func New(cfg configs.Simulator, logger *slog.Logger, seed int64) *Platform {
	return &Platform{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "simulator")),
		rnd:    rand.New(rand.NewSource(seed)),
	}
}

// Initialize fails when FailInit is set, otherwise marks the platform ready.
func (p *Platform) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.cfg.FailInit {
		return ErrInitFailed
	}
	p.initialized.Store(true)
	return nil
}

// CreateAdRequest returns an unloaded ad for adUnitID.
func (p *Platform) CreateAdRequest(adUnitID string, opts port.RequestOptions) (port.AdHandle, error) {
	if !p.initialized.Load() {
		return nil, ErrNotInitialized
	}
	p.logger.Debug("ad requested", slog.String("ad_unit_id", adUnitID), slog.Bool("non_personalized", opts.NonPersonalizedOnly))
	return &ad{platform: p, unitID: adUnitID}, nil
}

// roll returns true with probability rate.
func (p *Platform) roll(rate float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.Float64() < rate
}

type subscriber struct {
	id int
	fn func(port.AdEvent)
}

type ad struct {
	platform *Platform
	unitID   string

	mu      sync.Mutex
	subs    []subscriber
	nextID  int
	loading bool
	loaded  bool
	showing bool
}

func (a *ad) Subscribe(fn func(port.AdEvent)) func() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nextID++
	id := a.nextID
	a.subs = append(a.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			a.mu.Lock()
			defer a.mu.Unlock()
			for i, s := range a.subs {
				if s.id == id {
					a.subs = append(a.subs[:i], a.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (a *ad) Load() {
	a.mu.Lock()
	if a.loading || a.loaded {
		a.mu.Unlock()
		return
	}
	a.loading = true
	a.mu.Unlock()

	time.AfterFunc(a.platform.cfg.LoadLatency, func() {
		filled := a.platform.roll(a.platform.cfg.FillRate)
		a.mu.Lock()
		a.loading = false
		a.loaded = filled
		a.mu.Unlock()
		if filled {
			a.emit(port.AdEvent{Type: port.AdEventLoaded})
			return
		}
		a.emit(port.AdEvent{Type: port.AdEventError, Err: ErrNoFill})
	})
}

func (a *ad) Show() error {
	a.mu.Lock()
	if !a.loaded || a.showing {
		a.mu.Unlock()
		return ErrNotLoaded
	}
	a.loaded = false
	a.showing = true
	a.mu.Unlock()

	cfg := a.platform.cfg
	time.AfterFunc(cfg.WatchDuration, func() {
		if a.platform.roll(cfg.CompletionRate) {
			a.emit(port.AdEvent{
				Type:   port.AdEventEarnedReward,
				Reward: domain.PlatformReward{Amount: cfg.RewardAmount, Type: cfg.RewardType},
			})
		}
		a.mu.Lock()
		a.showing = false
		a.mu.Unlock()
		a.emit(port.AdEvent{Type: port.AdEventClosed})
	})
	return nil
}

func (a *ad) Loaded() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loaded
}

// emit delivers ev without holding a.mu so subscribers may unsubscribe.
func (a *ad) emit(ev port.AdEvent) {
	a.mu.Lock()
	subs := make([]subscriber, len(a.subs))
	copy(subs, a.subs)
	a.mu.Unlock()
	for _, s := range subs {
		s.fn(ev)
	}
}
