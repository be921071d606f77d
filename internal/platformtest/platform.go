// Package platformtest provides an in-memory ad platform whose events are
// driven by the test, in the spirit of net/http/httptest.
package platformtest

import (
	"context"
	"errors"
	"sync"

	"mesa-rewards/internal/core/domain"
	"mesa-rewards/internal/core/port"
)

// ErrNoFill is a convenience load error.
var ErrNoFill = errors.New("no fill")

// Platform is a fake port.AdPlatform. Every CreateAdRequest returns a new
// Handle that only changes state when the test emits events on it, unless
// OnLoad or OnShow script a behaviour.
type Platform struct {
	// InitErr is returned by Initialize.
	InitErr error
	// CreateErr is returned by CreateAdRequest when set.
	CreateErr error
	// OnLoad and OnShow are copied into every new handle.
	OnLoad func(h *Handle)
	OnShow func(h *Handle)
	// ShowErr is copied into every new handle.
	ShowErr error

	mu        sync.Mutex
	initCalls int
	handles   []*Handle
}

var _ port.AdPlatform = (*Platform)(nil)

// Initialize records the call and returns InitErr.
func (p *Platform) Initialize(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.initCalls++
	return p.InitErr
}

// CreateAdRequest returns a fresh Handle for adUnitID.
func (p *Platform) CreateAdRequest(adUnitID string, opts port.RequestOptions) (port.AdHandle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.CreateErr != nil {
		return nil, p.CreateErr
	}
	h := &Handle{
		UnitID:  adUnitID,
		Options: opts,
		onLoad:  p.OnLoad,
		onShow:  p.OnShow,
		showErr: p.ShowErr,
	}
	p.handles = append(p.handles, h)
	return h, nil
}

// InitCalls returns how many times Initialize was called.
func (p *Platform) InitCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initCalls
}

// Handles returns every handle created for adUnitID, oldest first. An empty
// adUnitID returns all handles.
func (p *Platform) Handles(adUnitID string) []*Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []*Handle
	for _, h := range p.handles {
		if adUnitID == "" || h.UnitID == adUnitID {
			out = append(out, h)
		}
	}
	return out
}

// Last returns the newest handle for adUnitID or nil.
func (p *Platform) Last(adUnitID string) *Handle {
	hs := p.Handles(adUnitID)
	if len(hs) == 0 {
		return nil
	}
	return hs[len(hs)-1]
}

// Loads returns the number of Load calls across the handles of adUnitID.
func (p *Platform) Loads(adUnitID string) int {
	n := 0
	for _, h := range p.Handles(adUnitID) {
		n += h.Loads()
	}
	return n
}

type listener struct {
	id int
	fn func(port.AdEvent)
}

// Handle is a fake port.AdHandle.
type Handle struct {
	UnitID  string
	Options port.RequestOptions

	onLoad  func(h *Handle)
	onShow  func(h *Handle)
	showErr error

	mu        sync.Mutex
	listeners []listener
	nextID    int
	loaded    bool
	loads     int
	shows     int
}

var _ port.AdHandle = (*Handle)(nil)

// Subscribe implements port.AdHandle.
func (h *Handle) Subscribe(fn func(port.AdEvent)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	id := h.nextID
	h.listeners = append(h.listeners, listener{id: id, fn: fn})
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, l := range h.listeners {
			if l.id == id {
				h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
				return
			}
		}
	}
}

// Load implements port.AdHandle.
func (h *Handle) Load() {
	h.mu.Lock()
	h.loads++
	fn := h.onLoad
	h.mu.Unlock()
	if fn != nil {
		fn(h)
	}
}

// Show implements port.AdHandle.
func (h *Handle) Show() error {
	h.mu.Lock()
	h.shows++
	fn, err := h.onShow, h.showErr
	h.mu.Unlock()
	if err != nil {
		return err
	}
	if fn != nil {
		fn(h)
	}
	return nil
}

// Loaded implements port.AdHandle.
func (h *Handle) Loaded() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loaded
}

// Loads returns how many times Load was called.
func (h *Handle) Loads() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loads
}

// Shows returns how many times Show was called.
func (h *Handle) Shows() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.shows
}

// Listeners returns the number of active subscriptions.
func (h *Handle) Listeners() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

// Emit delivers ev to every listener on the calling goroutine. No lock is
// held while listeners run, so they may unsubscribe or call back into the
// handle.
func (h *Handle) Emit(ev port.AdEvent) {
	h.mu.Lock()
	switch ev.Type {
	case port.AdEventLoaded:
		h.loaded = true
	case port.AdEventClosed, port.AdEventError:
		h.loaded = false
	}
	ls := make([]listener, len(h.listeners))
	copy(ls, h.listeners)
	h.mu.Unlock()

	for _, l := range ls {
		l.fn(ev)
	}
}

// EmitLoaded emits a loaded event.
func (h *Handle) EmitLoaded() { h.Emit(port.AdEvent{Type: port.AdEventLoaded}) }

// EmitError emits an error event carrying err.
func (h *Handle) EmitError(err error) { h.Emit(port.AdEvent{Type: port.AdEventError, Err: err}) }

// EmitEarned emits an earned reward event.
func (h *Handle) EmitEarned(amount int, typ string) {
	h.Emit(port.AdEvent{Type: port.AdEventEarnedReward, Reward: domain.PlatformReward{Amount: amount, Type: typ}})
}

// EmitClosed emits a closed event.
func (h *Handle) EmitClosed() { h.Emit(port.AdEvent{Type: port.AdEventClosed}) }
