// Package dedupe suppresses duplicate loot sightings observed on more than
// one message channel within a short interval.
package dedupe

import (
	"sync"
	"time"
)

// Key identifies a loot sighting for duplicate detection. Two sightings
// collapse only when every field matches.
type Key struct {
	ItemID      uint32
	PlayerName  string
	Quantity    uint32
	HighQuality bool
}

// Window is a sliding duplicate-suppression window. Safe for concurrent use.
type Window struct {
	mu      sync.Mutex
	seen    map[Key]time.Time
	window  time.Duration
	horizon time.Duration

	now func() time.Time
}

// NewWindow creates a Window. Non-positive durations fall back to the
// package defaults.
func NewWindow(window, horizon time.Duration) *Window {
	if window <= 0 {
		window = DefaultWindow
	}
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	if horizon < window {
		horizon = window
	}

	return &Window{
		seen:    make(map[Key]time.Time),
		window:  window,
		horizon: horizon,
		now:     time.Now,
	}
}

// Accept reports whether the sighting is new. The first sighting of a key
// is accepted and remembered; repeats inside the window are rejected.
// A repeat outside the window is accepted again and refreshes the entry.
func (w *Window) Accept(key Key) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	w.purge(now)

	if last, ok := w.seen[key]; ok && now.Sub(last) < w.window {
		return false
	}

	w.seen[key] = now
	return true
}

// Reset drops all remembered sightings.
func (w *Window) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.seen = make(map[Key]time.Time)
}

// purge removes entries older than the horizon. Caller holds the lock.
func (w *Window) purge(now time.Time) {
	for key, at := range w.seen {
		if now.Sub(at) > w.horizon {
			delete(w.seen, key)
		}
	}
}
