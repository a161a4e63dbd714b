package catalog

// Encoded item ID ranges. The host encodes item quality and event-item
// status into the numeric identifier itself.
const (
	// ItemIDHQOffset is added to a base item ID to mark it high quality.
	ItemIDHQOffset uint32 = 1_000_000

	// EventItemIDThreshold marks the start of the event-item ID range.
	EventItemIDThreshold uint32 = 2_000_000

	// EventItemIDModulo remaps an encoded event-item ID to its base ID.
	EventItemIDModulo uint32 = 500_000

	// GilItemID is the catalog ID of the base currency.
	GilItemID uint32 = 1
)

// Resolve cache defaults, used when the caller passes zero values.
const (
	DefaultResolveCacheSize       = 512
	DefaultResolveCacheTTLSeconds = 300
)

// Log message constants
const (
	LogMsgDuplicateCatalogName = "Duplicate catalog name, keeping first entry"
	LogMsgCatalogLoaded        = "Catalog loaded"
)
