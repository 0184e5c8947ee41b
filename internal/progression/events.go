package progression

import (
	"time"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/event"
)

// NewLevelUpEvent creates the event for a single level gained
func NewLevelUpEvent(oldLevel, newLevel int) event.Event {
	return event.New(domain.EventTypeLevelUp, domain.LevelUpPayload{
		OldLevel:  oldLevel,
		NewLevel:  newLevel,
		Timestamp: time.Now().Unix(),
	})
}

// NewClassChangeAvailableEvent creates the notification that advancement is unlocked
func NewClassChangeAvailableEvent(level int) event.Event {
	return event.New(domain.EventTypeClassChangeAvailable, domain.ClassChangeAvailablePayload{
		Level:     level,
		Timestamp: time.Now().Unix(),
	})
}

// NewClassChangedEvent creates the event for a completed advancement
func NewClassChangedEvent(job domain.Job, level int) event.Event {
	return event.New(domain.EventTypeClassChanged, domain.ClassChangedPayload{
		Job:       job,
		Level:     level,
		Timestamp: time.Now().Unix(),
	})
}
