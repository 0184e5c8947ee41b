package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Log message constants
const (
	// LogMsgPublishFailed is logged by services when a subscriber rejects an event
	LogMsgPublishFailed = "Event publish failed"

	// LogMsgHandlerErrorFormat wraps the errors returned by subscribers
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
