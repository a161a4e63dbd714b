package domain

import (
	"sort"
	"time"
)

// RollKind is the need/greed category a participant rolled under.
// Need outranks Greed for winner display ordering.
type RollKind int

const (
	RollNone RollKind = iota
	RollGreed
	RollNeed
)

// String returns the user-facing kind name.
func (k RollKind) String() string {
	switch k {
	case RollNeed:
		return "Need"
	case RollGreed:
		return "Greed"
	default:
		return ""
	}
}

// Roll is a single participant's recorded roll.
type Roll struct {
	Kind  RollKind `json:"kind"`
	Value int      `json:"value"`
}

// PlayerRoll pairs a roll with its (normalized) player name for sorted views.
type PlayerRoll struct {
	Player string   `json:"player"`
	Kind   RollKind `json:"kind"`
	Value  int      `json:"value"`
}

// RollSession is one tracked need/greed contest for a single dropped item
// instance. Multiple sessions may exist concurrently for the same item ID
// (distinct physical drops). A session is open while Winner is empty; once
// a winner is recorded it is immutable except for external deletion.
type RollSession struct {
	ItemID    uint32          `json:"item_id"`
	IconID    uint32          `json:"icon_id"`
	Rarity    int             `json:"rarity"`
	ItemName  string          `json:"item_name"`
	Rolls     map[string]Roll `json:"rolls"` // keyed by normalized player name
	Winner    string          `json:"winner,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Open reports whether the session is still awaiting a winner.
func (s *RollSession) Open() bool {
	return s.Winner == ""
}

// Clone returns a deep copy safe to hand to other goroutines.
func (s *RollSession) Clone() RollSession {
	c := *s
	c.Rolls = make(map[string]Roll, len(s.Rolls))
	for player, roll := range s.Rolls {
		c.Rolls[player] = roll
	}
	return c
}

// SortedRolls returns the session's rolls ordered for presentation:
// Need before Greed, then higher values first. Ties break by player name
// so the view is stable across snapshots.
func (s *RollSession) SortedRolls() []PlayerRoll {
	rolls := make([]PlayerRoll, 0, len(s.Rolls))
	for player, roll := range s.Rolls {
		rolls = append(rolls, PlayerRoll{Player: player, Kind: roll.Kind, Value: roll.Value})
	}

	sort.Slice(rolls, func(i, j int) bool {
		if rolls[i].Kind != rolls[j].Kind {
			return rolls[i].Kind > rolls[j].Kind
		}
		if rolls[i].Value != rolls[j].Value {
			return rolls[i].Value > rolls[j].Value
		}
		return rolls[i].Player < rolls[j].Player
	})

	return rolls
}
