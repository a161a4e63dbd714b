package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Catalog errors
	ErrMsgCatalogUnavailable = "catalog unavailable"

	// Actor errors
	ErrMsgNoActivePlayer = "no active player"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrItemNotFound is returned when every catalog resolution stage exhausts
	// without a match. Callers treat it as "event recorded with unresolved
	// identity" rather than a hard failure.
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// ErrCatalogUnavailable is returned when the catalog capability itself is
	// missing (e.g. game data not loaded).
	ErrCatalogUnavailable = errors.New(ErrMsgCatalogUnavailable)

	// ErrNoActivePlayer is returned when no local-actor identity is available.
	// This is the only condition that aborts processing of an otherwise
	// classifiable line.
	ErrNoActivePlayer = errors.New(ErrMsgNoActivePlayer)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
