package logger

import "os"

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)

// Log file settings
const (
	LogFileExtension             = ".log"
	LogDirMode       os.FileMode = 0o750
	LogFileMode      os.FileMode = 0o640
)

// Error Messages
const (
	ErrMsgCreateLogDirFmt = "failed to create log directory %s: %w"
	ErrMsgOpenLogFileFmt  = "failed to open log file %s: %w"
)
