package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Retry configuration constants
const (
	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 5

	// RetryDelaySeconds is the base retry delay in seconds
	RetryDelaySeconds = 2
)

// Dead letter file configuration
const (
	// DefaultDeadLetterPath is where exhausted events land when the caller
	// does not configure a path
	DefaultDeadLetterPath = "logs/event_deadletter.jsonl"

	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644

	// DeadLetterDirPermissions is the permission mode for the containing directory
	DeadLetterDirPermissions = 0755
)

// Log message constants
const (
	LogMsgEventPublishFailed  = "Failed to publish event, initiating async retry"
	LogMsgEventRetryFailed    = "Event retry failed"
	LogMsgEventRetrySucceeded = "Event published after retry"
	LogMsgDeadLetterOpenErr   = "Failed to open dead letter file"
	LogMsgDeadLetterWriteErr  = "Failed to write to dead letter file"
	LogMsgDeadLetterWritten   = "Event written to dead letter queue"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
