// Package actor tracks the local player's identity as reported by the host.
// Classification of self-attributed lines requires it; when no identity is
// present the affected lines are skipped entirely.
package actor

import "sync"

// Info is a snapshot of the local actor's identity and location.
type Info struct {
	Name      string `json:"name"`
	ContentID uint64 `json:"content_id"`
	ZoneID    uint32 `json:"zone_id"`
	ZoneName  string `json:"zone_name"`
}

// Provider supplies the current local-actor identity.
type Provider interface {
	// Info returns the current identity and whether one is available.
	Info() (Info, bool)
}

// State is a mutable Provider the host updates on login/logout and zone
// changes. Safe for concurrent use.
type State struct {
	mu      sync.RWMutex
	info    Info
	present bool
}

// NewState creates an empty State with no active player.
func NewState() *State {
	return &State{}
}

// Set replaces the current identity.
func (s *State) Set(info Info) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.info = info
	s.present = info.Name != ""
}

// Clear removes the current identity (player logged out).
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.info = Info{}
	s.present = false
}

// Info returns the current identity and whether one is available.
func (s *State) Info() (Info, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.info, s.present
}
