// Package cooldown enforces a minimum time between two completed ad
// displays. The gate is process-wide and shared by every reward kind.
package cooldown

import (
	"sync"
	"time"
)

// Gate tracks when an ad was last shown.
type Gate struct {
	cooldown time.Duration

	mu        sync.RWMutex
	lastShown time.Time
	everShown bool
}

// NewGate returns a gate that allows a new display once cooldown has
// elapsed since the previous one.
func NewGate(cooldown time.Duration) *Gate {
	return &Gate{cooldown: cooldown}
}

// CanShow reports whether a display may start at now. It is true when no
// ad has been shown yet.
func (g *Gate) CanShow(now time.Time) bool {
	return g.Remaining(now) == 0
}

// Remaining returns how long until CanShow becomes true.
func (g *Gate) Remaining(now time.Time) time.Duration {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.everShown {
		return 0
	}
	left := g.cooldown - now.Sub(g.lastShown)
	if left < 0 {
		return 0
	}
	return left
}

// RecordShown marks a completed display at at. Timestamps older than the
// current one are ignored so the recorded time never goes backwards.
func (g *Gate) RecordShown(at time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.everShown && at.Before(g.lastShown) {
		return
	}
	g.lastShown = at
	g.everShown = true
}

// LastShown returns the time of the last completed display and whether one
// has happened.
func (g *Gate) LastShown() (time.Time, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.lastShown, g.everShown
}
