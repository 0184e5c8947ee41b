package persistence

// Formatted error messages
const (
	ErrMsgSchemaDocumentFmt   = "save document does not match schema: %v: %w"
	ErrMsgDecodeDocumentFmt   = "failed to decode save document: %v: %w"
	ErrMsgValidateDocumentFmt = "save document failed validation: %v: %w"
	ErrMsgClassChangeLevelFmt = "class change recorded at level %d: %w"
	ErrMsgEncodeDocumentFmt   = "failed to encode save document: %w"
	ErrMsgWriteSaveFmt        = "failed to write slot %q: %v: %w"
	ErrMsgNilStateFmt         = "nothing to save: %w"
	ErrMsgListSlotsFmt        = "failed to list save slots: %w"
)

// Log messages
const (
	LogMsgNoSaveFound     = "No save found, starting a new game"
	LogMsgSaveLoaded      = "Save loaded"
	LogMsgMalformedSave   = "Save data malformed, falling back to defaults"
	LogMsgSaveReadFailed  = "Failed to read save, falling back to defaults"
	LogMsgSaveNormalized  = "Save data normalized on load"
	LogMsgGameSaved       = "Game saved"
	LogMsgGameSaveFailed  = "Failed to save game"
	LogMsgListSlotsFailed = "Failed to list save slots"
)

// Document encoding
const (
	documentIndent = "  "
)
