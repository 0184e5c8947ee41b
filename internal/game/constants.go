package game

// Formatted error messages
const (
	ErrMsgDispatchFmt       = "%s: %w"
	ErrMsgUnknownCommandFmt = "command %d: %w"
)

// Log messages
const (
	LogMsgNewGame         = "Starting new game"
	LogMsgDispatch        = "Dispatching command"
	LogMsgCommandRejected = "Command rejected"
	LogMsgSessionClosed   = "Session closed"
)
