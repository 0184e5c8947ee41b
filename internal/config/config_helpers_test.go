package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  int
	}{
		{"unset uses default", "", false, 42},
		{"empty uses default", "", true, 42},
		{"valid", "100", true, 100},
		{"negative", "-10", true, -10},
		{"zero", "0", true, 0},
		{"not a number", "lots", true, 42},
		{"float", "42.5", true, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_VAR", tt.value)
			if !tt.set {
				unsetForTest(t, "TEST_INT_VAR")
			}
			assert.Equal(t, tt.want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	const fallback = 5 * time.Minute

	tests := []struct {
		name  string
		value string
		set   bool
		want  time.Duration
	}{
		{"unset uses default", "", false, fallback},
		{"empty uses default", "", true, fallback},
		{"minutes", "10m", true, 10 * time.Minute},
		{"compound", "1h30m45s", true, time.Hour + 30*time.Minute + 45*time.Second},
		{"milliseconds", "500ms", true, 500 * time.Millisecond},
		{"zero disables", "0", true, 0},
		{"bare number", "100", true, fallback},
		{"garbage", "soon", true, fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tt.value)
			if !tt.set {
				unsetForTest(t, "TEST_DURATION_VAR")
			}
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION_VAR", fallback))
		})
	}
}

func TestLoad_TuningFallsBackOnBadValues(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("AUTOSAVE_INTERVAL", "every-so-often")
	t.Setenv("SAVE_CACHE_SIZE", "many")
	t.Setenv("SAVE_CACHE_TTL", "forever")
	t.Setenv("DB_MAX_CONNS", "not-a-number")
	t.Setenv("DB_MAX_CONN_IDLE_TIME", "invalid")
	t.Setenv("DB_MAX_CONN_LIFETIME", "bad-duration")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultAutosaveInterval, cfg.AutosaveInterval)
	assert.Equal(t, DefaultSaveCacheSize, cfg.SaveCacheSize)
	assert.Equal(t, DefaultSaveCacheTTL, cfg.SaveCacheTTL)
	assert.Equal(t, 20, cfg.DBMaxConns)
	assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime)
	assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime)
}

func TestLoad_CustomPoolConfig(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("DB_MAX_CONNS", "50")
	t.Setenv("DB_MAX_CONN_IDLE_TIME", "10m")
	t.Setenv("DB_MAX_CONN_LIFETIME", "1h")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 50, cfg.DBMaxConns)
	assert.Equal(t, 10*time.Minute, cfg.DBMaxConnIdleTime)
	assert.Equal(t, time.Hour, cfg.DBMaxConnLifetime)
}
