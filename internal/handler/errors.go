package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgMethodNotAllowed = "Method not allowed"
	ErrMsgInvalidRequest   = "Invalid request body"

	// Query parameter error messages
	ErrMsgInvalidLimit = "Invalid limit parameter"

	// Line ingestion error messages
	ErrMsgLineRequired = "Line text is required"

	// Actor error messages
	ErrMsgActorNameRequired = "Player name is required"
)

// Success messages for API responses
const (
	MsgLineAccepted        = "Line accepted"
	MsgActorSet            = "Active player set"
	MsgActorCleared        = "Active player cleared"
	MsgHistoryCleared      = "Event history cleared"
	MsgCompletedRollsClear = "Completed roll sessions cleared"
	MsgAllRollsCleared     = "All roll sessions cleared"
)
