// Package slotpool keeps at most one rewarded ad per reward kind and owns
// its load, show and dispose transitions.
package slotpool

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"mesa-rewards/internal/catalog"
	"mesa-rewards/internal/core/domain"
	"mesa-rewards/internal/core/port"
)

const defaultRetryDelay = time.Second

// Options tune the pool. The zero value is usable.
type Options struct {
	// RequestOptions are forwarded with every ad request.
	RequestOptions port.RequestOptions
	// RetryDelay delays the automatic reload after a failed load. Zero
	// reloads immediately on the goroutine that delivered the error.
	RetryDelay time.Duration
	// MaxLoadFailures stops automatic reloads after this many consecutive
	// failures of one kind. Zero disables the cap.
	MaxLoadFailures int

	Metrics   port.Metrics
	Analytics port.Analytics
	Logger    *slog.Logger
}

// Pool holds one slot per catalogued reward kind. The slot set is fixed at
// construction; every mutation of a slot goes through the transition
// methods below while holding that slot's lock.
type Pool struct {
	platform port.AdPlatform
	opts     Options
	metrics  port.Metrics
	logger   *slog.Logger

	slots  map[domain.RewardKind]*slot
	closed atomic.Bool
}

type slot struct {
	kind   domain.RewardKind
	unitID string

	mu          sync.Mutex
	state       domain.SlotState
	handle      port.AdHandle
	unsubscribe func()
	gen         uint64
	lastErr     error
	failures    int
	retry       *time.Timer
}

// New creates a pool with an empty slot for every kind in cat.
func New(platform port.AdPlatform, cat *catalog.Catalog, opts Options) (*Pool, error) {
	if opts.Metrics == nil {
		opts.Metrics = port.NopMetrics{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MaxLoadFailures <= 0 && opts.RetryDelay <= 0 {
		// without a cap an always-failing platform would reload in a loop
		opts.RetryDelay = defaultRetryDelay
	}

	p := &Pool{
		platform: platform,
		opts:     opts,
		metrics:  opts.Metrics,
		logger:   opts.Logger.With(slog.String("component", "slotpool")),
		slots:    make(map[domain.RewardKind]*slot),
	}
	for _, kind := range cat.Kinds() {
		unit, _, err := cat.Lookup(kind)
		if err != nil {
			return nil, err
		}
		p.slots[kind] = &slot{kind: kind, unitID: unit.AdUnitID, state: domain.SlotEmpty}
	}
	return p, nil
}

func (p *Pool) slot(kind domain.RewardKind) (*slot, error) {
	s, ok := p.slots[kind]
	if !ok {
		return nil, fmt.Errorf("%w: no ad slot for %q", domain.ErrConfiguration, kind)
	}
	return s, nil
}

// Preload requests a new ad for kind unless one is already loading, ready
// or showing. Platform failures are recorded on the slot, not returned;
// only an unknown kind is an error.
func (p *Pool) Preload(kind domain.RewardKind) error {
	s, err := p.slot(kind)
	if err != nil {
		return err
	}
	if p.closed.Load() {
		return nil
	}

	s.mu.Lock()
	if s.state != domain.SlotEmpty {
		s.mu.Unlock()
		return nil
	}
	if s.retry != nil {
		s.retry.Stop()
		s.retry = nil
	}

	p.metrics.LoadRequested(kind)
	h, err := p.platform.CreateAdRequest(s.unitID, p.opts.RequestOptions)
	if err != nil {
		failures := p.failLoad(s, err)
		s.mu.Unlock()
		p.afterLoadFailure(s, err, failures)
		return nil
	}

	s.gen++
	gen := s.gen
	s.handle = h
	s.unsubscribe = h.Subscribe(func(ev port.AdEvent) { p.onLifecycleEvent(s, gen, ev) })
	p.transition(s, domain.SlotLoading)
	s.mu.Unlock()

	h.Load()
	return nil
}

// onLifecycleEvent handles load results. Reward and close events belong to
// the Display and are ignored here.
func (p *Pool) onLifecycleEvent(s *slot, gen uint64, ev port.AdEvent) {
	switch ev.Type {
	case port.AdEventLoaded:
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen != gen || s.state != domain.SlotLoading {
			return
		}
		s.failures = 0
		s.lastErr = nil
		p.transition(s, domain.SlotReady)

	case port.AdEventError:
		s.mu.Lock()
		if s.gen != gen || s.state != domain.SlotLoading {
			s.mu.Unlock()
			return
		}
		cause := ev.Err
		if cause == nil {
			cause = errors.New("unknown platform error")
		}
		failures := p.failLoad(s, cause)
		s.mu.Unlock()
		p.afterLoadFailure(s, cause, failures)
	}
}

// failLoad moves s through error back to empty. Callers hold s.mu.
func (p *Pool) failLoad(s *slot, cause error) int {
	s.lastErr = fmt.Errorf("%w: %w", domain.ErrAdLoad, cause)
	s.failures++
	p.transition(s, domain.SlotError)
	p.dispose(s)
	p.transition(s, domain.SlotEmpty)
	return s.failures
}

func (p *Pool) afterLoadFailure(s *slot, cause error, failures int) {
	p.logger.Warn("ad load failed",
		slog.String("reward_kind", string(s.kind)),
		slog.Int("failures", failures),
		slog.Any("error", cause),
	)
	if p.opts.Analytics != nil {
		p.opts.Analytics.LogEvent(domain.EventAdLoadFailed, map[string]any{
			"reward_kind": string(s.kind),
			"ad_unit_id":  s.unitID,
			"failures":    failures,
			"error":       cause.Error(),
		})
	}

	if p.opts.MaxLoadFailures > 0 && failures >= p.opts.MaxLoadFailures {
		p.logger.Warn("automatic reload stopped",
			slog.String("reward_kind", string(s.kind)),
			slog.Int("failures", failures),
		)
		return
	}
	if p.opts.RetryDelay <= 0 {
		_ = p.Preload(s.kind)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.retry != nil {
		s.retry.Stop()
	}
	s.retry = time.AfterFunc(p.opts.RetryDelay, func() { _ = p.Preload(s.kind) })
}

// Show starts displaying the ready ad of kind. When no ad is ready it
// triggers a preload and returns domain.ErrAdNotReady. Otherwise the
// returned Display resolves once the platform reports the ad closed or
// failed; hooks run on the goroutine delivering the platform event.
func (p *Pool) Show(kind domain.RewardKind, hooks Hooks) (*Display, error) {
	s, err := p.slot(kind)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.state != domain.SlotReady {
		s.mu.Unlock()
		_ = p.Preload(kind)
		return nil, fmt.Errorf("%w: %s", domain.ErrAdNotReady, kind)
	}
	if !s.handle.Loaded() {
		// the platform dropped the ad, e.g. it expired
		p.dispose(s)
		p.transition(s, domain.SlotEmpty)
		s.mu.Unlock()
		_ = p.Preload(kind)
		return nil, fmt.Errorf("%w: %s", domain.ErrAdNotReady, kind)
	}

	h := s.handle
	p.transition(s, domain.SlotShowing)
	d := newDisplay(p, s, s.gen, hooks)
	d.mu.Lock()
	d.unsubscribe = h.Subscribe(d.onEvent)
	d.mu.Unlock()
	s.mu.Unlock()

	p.metrics.DisplayStarted(kind)
	if hooks.OnShow != nil {
		hooks.OnShow(d)
	}
	if err := h.Show(); err != nil {
		d.finish(Result{Err: err})
	}
	return d, nil
}

// release ends a display: the slot leaves showing, drops its handle and a
// single preload refills it.
func (p *Pool) release(s *slot, gen uint64, cause error) {
	s.mu.Lock()
	if s.gen != gen || s.state != domain.SlotShowing {
		s.mu.Unlock()
		return
	}
	if cause != nil {
		s.lastErr = cause
		p.transition(s, domain.SlotError)
	} else {
		p.transition(s, domain.SlotConsumed)
	}
	p.dispose(s)
	p.transition(s, domain.SlotEmpty)
	s.mu.Unlock()

	_ = p.Preload(s.kind)
}

// IsReady reports whether kind has a loaded ad that can be shown now.
func (p *Pool) IsReady(kind domain.RewardKind) bool {
	s, err := p.slot(kind)
	if err != nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == domain.SlotReady && s.handle.Loaded()
}

// Snapshot returns the current state of kind's slot.
func (p *Pool) Snapshot(kind domain.RewardKind) (domain.SlotSnapshot, error) {
	s, err := p.slot(kind)
	if err != nil {
		return domain.SlotSnapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := domain.SlotSnapshot{RewardKind: kind, State: s.state, LoadFailures: s.failures}
	if s.lastErr != nil {
		snap.LastError = s.lastErr.Error()
	}
	return snap, nil
}

// Snapshots returns the state of every slot in domain.AllRewardKinds order.
func (p *Pool) Snapshots() []domain.SlotSnapshot {
	out := make([]domain.SlotSnapshot, 0, len(p.slots))
	for _, kind := range domain.AllRewardKinds() {
		if snap, err := p.Snapshot(kind); err == nil {
			out = append(out, snap)
		}
	}
	return out
}

// Close drops every held ad and stops pending reloads. Displays in progress
// still resolve, but no new ads are requested afterwards.
func (p *Pool) Close() {
	if p.closed.Swap(true) {
		return
	}
	for _, s := range p.slots {
		s.mu.Lock()
		if s.retry != nil {
			s.retry.Stop()
			s.retry = nil
		}
		if s.state == domain.SlotLoading || s.state == domain.SlotReady {
			p.dispose(s)
			p.transition(s, domain.SlotEmpty)
		}
		s.mu.Unlock()
	}
}

// transition sets the slot state and reports it. Callers hold s.mu.
func (p *Pool) transition(s *slot, to domain.SlotState) {
	from := s.state
	s.state = to
	p.metrics.SlotTransition(s.kind, from, to)
	p.logger.Debug("slot transition",
		slog.String("reward_kind", string(s.kind)),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
	)
}

// dispose forgets the slot's handle. Callers hold s.mu.
func (p *Pool) dispose(s *slot) {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.unsubscribe = nil
	s.handle = nil
	s.gen++
}
