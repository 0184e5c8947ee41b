package config

import "time"

// Save backends
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Defaults
const (
	DefaultEnvironment = "dev"
	DefaultServiceName = "textmaple"
	DefaultVersion     = "dev"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"

	DefaultSaveDir          = "saves"
	DefaultSaveSlot         = "default"
	DefaultAutosaveInterval = 10 * time.Minute
	DefaultSaveCacheSize    = 16
	DefaultSaveCacheTTL     = 5 * time.Minute

	DefaultStartingMeso = 1_000_000

	DefaultDBUser     = "postgres"
	DefaultDBPassword = "postgres"
	DefaultDBHost     = "localhost"
	DefaultDBPort     = "5432"
	DefaultDBName     = "textmaple"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)

// Error Messages
const (
	ErrMsgInvalidSeedFmt   = "invalid RNG_SEED value: %w"
	ErrMsgInvalidConfigFmt = "invalid configuration: %w"
)
