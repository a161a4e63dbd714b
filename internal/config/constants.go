package config

const (
	// Configuration file paths
	DefaultCatalogPath      = "configs/items/items.json"
	DefaultEventCatalogPath = "configs/items/event_items.json"

	// DefaultEventDeadLetterPath is where exhausted event publishes are
	// appended when EVENT_DEAD_LETTER_PATH is unset
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
)
