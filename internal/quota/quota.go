// Package quota counts completed ad displays per reward kind per calendar
// day.
package quota

import (
	"sync"
	"time"

	"mesa-rewards/internal/core/domain"
)

// Daily holds per-kind display counters that reset at midnight in loc.
type Daily struct {
	loc *time.Location

	mu     sync.Mutex
	day    string
	counts map[domain.RewardKind]int
}

// NewDaily returns counters whose day boundary is midnight in loc. A nil
// loc means UTC.
func NewDaily(loc *time.Location) *Daily {
	if loc == nil {
		loc = time.UTC
	}
	return &Daily{loc: loc, counts: make(map[domain.RewardKind]int)}
}

// Allow reports whether another display of kind fits under limit on the
// day of now. A limit of zero or less is unlimited.
func (d *Daily) Allow(kind domain.RewardKind, limit int, now time.Time) bool {
	if limit <= 0 {
		return true
	}
	return d.Count(kind, now) < limit
}

// Count returns the number of displays of kind recorded on the day of now.
func (d *Daily) Count(kind domain.RewardKind, now time.Time) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.roll(now)
	return d.counts[kind]
}

// Record adds one completed display of kind at now.
func (d *Daily) Record(kind domain.RewardKind, now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.roll(now)
	d.counts[kind]++
}

func (d *Daily) roll(now time.Time) {
	day := now.In(d.loc).Format(time.DateOnly)
	if day != d.day {
		d.day = day
		clear(d.counts)
	}
}
