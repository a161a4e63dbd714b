package tracker

// DefaultMaxRecentEvents bounds the in-memory recent-events list when the
// caller does not configure a limit.
const DefaultMaxRecentEvents = 1000

// Log message constants
const (
	LogMsgPublishFailed  = "Failed to publish event"
	LogMsgHistoryCleared = "Recent event history cleared"
)
