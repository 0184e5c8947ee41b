package savestore

import "time"

// File store settings
const (
	// SlotFileExtension is appended to the slot name to form the file name
	SlotFileExtension = ".json"
	saveFileMode      = 0o600
	saveDirMode       = 0o750
	tempFilePattern   = ".save-*.tmp"
)

// Postgres store settings
const (
	DefaultCacheSize = 16
	DefaultCacheTTL  = 5 * time.Minute
)

// Formatted error messages
const (
	ErrMsgInvalidSlotFmt    = "invalid save slot %q: %w"
	ErrMsgSlotNotFoundFmt   = "slot %q: %w"
	ErrMsgCreateSaveDirFmt  = "failed to create save directory %s: %w"
	ErrMsgReadSaveFileFmt   = "failed to read save file %s: %w"
	ErrMsgWriteTempFileFmt  = "failed to write temp save file: %w"
	ErrMsgReplaceSaveFmt    = "failed to replace save file %s: %w"
	ErrMsgQuerySaveFmt      = "failed to query slot %q: %w"
	ErrMsgUpsertSaveFmt     = "failed to upsert slot %q: %w"
	ErrMsgListSlotsFmt      = "failed to list save slots: %w"
	ErrMsgUnknownBackendFmt = "unknown save backend %q: %w"
)

// Log messages
const (
	LogMsgSaveCacheHit = "Save cache hit"
	LogMsgSaveWritten  = "Save written"
)

// SQL statements
const (
	querySelectSave = `SELECT payload FROM game_saves WHERE slot = $1`
	queryUpsertSave = `INSERT INTO game_saves (slot, payload, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (slot) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()`
	queryListSlots = `SELECT slot FROM game_saves ORDER BY updated_at DESC`
)
