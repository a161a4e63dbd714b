package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking. These represent domain events that can be published
// and consumed by multiple modules.
//
// Event types follow the pattern: <entity>.<action> (e.g., "loot.obtained")
const (
	// EventTypeLootObtained is published once per accepted (non-duplicate)
	// loot event. Consumed by history persistence, statistics aggregation and
	// UI highlight triggers.
	EventTypeLootObtained = "loot.obtained"

	// EventTypeRollsUpdated is published whenever a roll session is opened,
	// gains a roll, or gains a winner. Consumed by the roll-display UI.
	EventTypeRollsUpdated = "rolls.updated"
)

// Reasons carried by rolls.updated payloads.
const (
	RollsUpdateSessionOpened  = "session_opened"
	RollsUpdateRollRecorded   = "roll_recorded"
	RollsUpdateWinnerRecorded = "winner_recorded"
	RollsUpdateCleared        = "cleared"
)
