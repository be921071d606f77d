package slotpool

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"mesa-rewards/internal/core/domain"
	"mesa-rewards/internal/core/port"
)

var errShowFailed = errors.New("ad failed to show")

// Hooks are called by a Display at its lifecycle points. Any hook may be
// nil.
type Hooks struct {
	// OnShow runs right before the platform is asked to show the ad.
	OnShow func(d *Display)
	// OnEarned runs once for the first earned reward event.
	OnEarned func(d *Display, reward domain.PlatformReward)
	// OnFinished runs once when the display ends, before the slot is
	// refilled and before Done is closed.
	OnFinished func(d *Display, res Result)
}

// Result is how a display ended. Err is set when the platform failed to
// show the ad; Earned and Reward reflect the first earned reward event.
type Result struct {
	Earned bool
	Reward domain.PlatformReward
	Err    error
}

// Display is a single showing of an ad. It owns its platform subscription
// and releases it on every exit path.
type Display struct {
	ID   string
	Kind domain.RewardKind

	pool  *Pool
	slot  *slot
	gen   uint64
	hooks Hooks

	mu          sync.Mutex
	unsubscribe func()
	earned      bool
	reward      domain.PlatformReward
	finished    bool
	result      Result
	done        chan struct{}
}

func newDisplay(p *Pool, s *slot, gen uint64, hooks Hooks) *Display {
	return &Display{
		ID:    uuid.NewString(),
		Kind:  s.kind,
		pool:  p,
		slot:  s,
		gen:   gen,
		hooks: hooks,
		done:  make(chan struct{}),
	}
}

func (d *Display) onEvent(ev port.AdEvent) {
	switch ev.Type {
	case port.AdEventEarnedReward:
		d.mu.Lock()
		if d.earned || d.finished {
			// platforms may repeat the event; only the first one counts
			d.mu.Unlock()
			return
		}
		d.earned = true
		d.reward = ev.Reward
		d.mu.Unlock()
		if d.hooks.OnEarned != nil {
			d.hooks.OnEarned(d, ev.Reward)
		}

	case port.AdEventClosed:
		d.mu.Lock()
		res := Result{Earned: d.earned, Reward: d.reward}
		d.mu.Unlock()
		d.finish(res)

	case port.AdEventError:
		d.mu.Lock()
		res := Result{Earned: d.earned, Reward: d.reward, Err: ev.Err}
		d.mu.Unlock()
		if res.Err == nil {
			res.Err = errShowFailed
		}
		d.finish(res)
	}
}

// finish resolves the display exactly once.
func (d *Display) finish(res Result) {
	d.mu.Lock()
	if d.finished {
		d.mu.Unlock()
		return
	}
	d.finished = true
	d.result = res
	unsubscribe := d.unsubscribe
	d.unsubscribe = nil
	d.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if d.hooks.OnFinished != nil {
		d.hooks.OnFinished(d, res)
	}
	d.pool.release(d.slot, d.gen, res.Err)
	d.pool.metrics.DisplayFinished(d.Kind)
	close(d.done)
}

// Done is closed once the display has ended.
func (d *Display) Done() <-chan struct{} {
	return d.done
}

// Result returns how the display ended. It is only meaningful after Done
// is closed.
func (d *Display) Result() Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.result
}

// Wait blocks until the display ends or ctx is done. Giving up on ctx does
// not stop the display; its bookkeeping still runs when the platform
// closes the ad.
func (d *Display) Wait(ctx context.Context) (Result, error) {
	select {
	case <-d.done:
		return d.Result(), nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
