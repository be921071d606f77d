package cooldown

import (
	"testing"
	"time"
)

func TestGate(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		shown  []time.Duration // offsets from start passed to RecordShown
		at     time.Duration
		expect bool
	}{
		{name: "never shown", at: 0, expect: true},
		{name: "within cooldown", shown: []time.Duration{0}, at: 5 * time.Second, expect: false},
		{name: "exactly at cooldown", shown: []time.Duration{0}, at: 30 * time.Second, expect: true},
		{name: "after cooldown", shown: []time.Duration{0}, at: time.Minute, expect: true},
		{name: "older record ignored", shown: []time.Duration{20 * time.Second, 0}, at: 35 * time.Second, expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGate(30 * time.Second)
			for _, off := range tt.shown {
				g.RecordShown(start.Add(off))
			}
			if got := g.CanShow(start.Add(tt.at)); got != tt.expect {
				t.Errorf("CanShow() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestGateRemaining(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	g := NewGate(30 * time.Second)
	g.RecordShown(now)

	if got := g.Remaining(now.Add(10 * time.Second)); got != 20*time.Second {
		t.Fatalf("Remaining() = %v, want 20s", got)
	}
	if got := g.Remaining(now.Add(time.Hour)); got != 0 {
		t.Fatalf("Remaining() = %v, want 0", got)
	}
	last, ok := g.LastShown()
	if !ok || !last.Equal(now) {
		t.Fatalf("LastShown() = %v, %v", last, ok)
	}
}
