package persistence

import (
	"time"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/event"
)

// NewGameSavedEvent creates the event for a written save
func NewGameSavedEvent(slot string, size int) event.Event {
	return event.New(domain.EventTypeGameSaved, domain.GameSavedPayload{
		Slot:      slot,
		Bytes:     size,
		Timestamp: time.Now().Unix(),
	})
}

// NewGameSaveFailedEvent creates the event for a failed save
func NewGameSaveFailedEvent(slot string, err error) event.Event {
	return event.New(domain.EventTypeGameSaveFailed, domain.GameSaveFailedPayload{
		Slot:      slot,
		Error:     err.Error(),
		Timestamp: time.Now().Unix(),
	})
}
