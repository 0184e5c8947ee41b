package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string `validate:"required"`

	// Save storage
	SaveBackend      string        `validate:"oneof=file postgres"`
	SaveDir          string        `validate:"required_if=SaveBackend file"`
	SaveSlot         string        `validate:"required,max=64"`
	AutosaveInterval time.Duration `validate:"gte=0"`
	SaveCacheSize    int           `validate:"gte=0"`
	SaveCacheTTL     time.Duration `validate:"gte=0"`

	// Game tuning
	// CatalogPath replaces the embedded catalog when set
	CatalogPath  string `validate:"omitempty,file"`
	RNGSeed      uint64
	StartingMeso int64 `validate:"gte=0"`

	// MetricsAddr is the listen address of the metrics endpoint; empty disables it
	MetricsAddr string `validate:"omitempty,hostname_port"`

	DBUser     string `validate:"required_if=SaveBackend postgres"`
	DBPassword string
	DBHost     string `validate:"required_if=SaveBackend postgres"`
	DBPort     string `validate:"required_if=SaveBackend postgres"`
	DBName     string `validate:"required_if=SaveBackend postgres"`

	// Database connection pool settings
	DBMaxConns        int           `validate:"gt=0"`
	DBMaxConnIdleTime time.Duration `validate:"gte=0"`
	DBMaxConnLifetime time.Duration `validate:"gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),

		SaveBackend:      getEnv("SAVE_BACKEND", BackendFile),
		SaveDir:          getEnv("SAVE_DIR", DefaultSaveDir),
		SaveSlot:         getEnv("SAVE_SLOT", DefaultSaveSlot),
		AutosaveInterval: getEnvAsDuration("AUTOSAVE_INTERVAL", DefaultAutosaveInterval),
		SaveCacheSize:    getEnvAsInt("SAVE_CACHE_SIZE", DefaultSaveCacheSize),
		SaveCacheTTL:     getEnvAsDuration("SAVE_CACHE_TTL", DefaultSaveCacheTTL),

		CatalogPath:  getEnv("CATALOG_PATH", ""),
		StartingMeso: int64(getEnvAsInt("STARTING_MESO", DefaultStartingMeso)),
		MetricsAddr:  getEnv("METRICS_ADDR", ""),

		DBUser:     getEnv("DB_USER", DefaultDBUser),
		DBPassword: getEnv("DB_PASSWORD", DefaultDBPassword),
		DBHost:     getEnv("DB_HOST", DefaultDBHost),
		DBPort:     getEnv("DB_PORT", DefaultDBPort),
		DBName:     getEnv("DB_NAME", DefaultDBName),

		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
	}

	seed, err := strconv.ParseUint(getEnv("RNG_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidSeedFmt, err)
	}
	cfg.RNGSeed = seed

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf(ErrMsgInvalidConfigFmt, err)
	}
	return nil
}

// AutosaveEnabled reports whether the periodic save worker should run
func (c *Config) AutosaveEnabled() bool {
	return c.AutosaveInterval > 0
}

// MetricsEnabled reports whether the metrics endpoint should be served
func (c *Config) MetricsEnabled() bool {
	return c.MetricsAddr != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
