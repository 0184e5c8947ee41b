package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Selection errors
	ErrMsgInvalidSelection = "invalid selection"
	ErrMsgItemNotOwned     = "item not owned"

	// Economy errors
	ErrMsgItemEquipped      = "item is equipped"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgAlreadyPurchased  = "already purchased"

	// Progression errors
	ErrMsgAlreadyClassChanged = "already class changed"
	ErrMsgLevelTooLow         = "level too low"

	// Enhancement errors
	ErrMsgMaxEnhancementReached = "max enhancement reached"

	// Combat errors
	ErrMsgNoEncounter         = "no encounter in progress"
	ErrMsgEncounterOver       = "encounter is over"
	ErrMsgEncounterInProgress = "an encounter is in progress"
	ErrMsgUnknownZone         = "unknown zone"

	// Persistence errors
	ErrMsgMalformedSaveData       = "malformed save data"
	ErrMsgPersistenceWriteFailure = "failed to write save data"
	ErrMsgSaveNotFound            = "save not found"

	// Input errors
	ErrMsgInvalidInput   = "invalid input"
	ErrMsgUnknownCommand = "unknown command"
	ErrMsgSessionClosed  = "session is closed"
)

// Formatted error messages shared by several packages
const (
	ErrMsgIndexOutOfRangeFmt = "index %d out of range [0,%d): %w"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("...: %w", domain.ErrXxx) for additional context.
var (
	// Selection errors
	ErrInvalidSelection = errors.New(ErrMsgInvalidSelection)
	ErrItemNotOwned     = errors.New(ErrMsgItemNotOwned)

	// Economy errors
	ErrItemEquipped      = errors.New(ErrMsgItemEquipped)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrAlreadyPurchased  = errors.New(ErrMsgAlreadyPurchased)

	// Progression errors
	ErrAlreadyClassChanged = errors.New(ErrMsgAlreadyClassChanged)
	ErrLevelTooLow         = errors.New(ErrMsgLevelTooLow)

	// Enhancement errors
	ErrMaxEnhancementReached = errors.New(ErrMsgMaxEnhancementReached)

	// Combat errors
	ErrNoEncounter         = errors.New(ErrMsgNoEncounter)
	ErrEncounterOver       = errors.New(ErrMsgEncounterOver)
	ErrEncounterInProgress = errors.New(ErrMsgEncounterInProgress)
	ErrUnknownZone         = errors.New(ErrMsgUnknownZone)

	// Persistence errors
	ErrMalformedSaveData       = errors.New(ErrMsgMalformedSaveData)
	ErrPersistenceWriteFailure = errors.New(ErrMsgPersistenceWriteFailure)
	ErrSaveNotFound            = errors.New(ErrMsgSaveNotFound)

	// Input errors
	ErrInvalidInput   = errors.New(ErrMsgInvalidInput)
	ErrUnknownCommand = errors.New(ErrMsgUnknownCommand)
	ErrSessionClosed  = errors.New(ErrMsgSessionClosed)
)
