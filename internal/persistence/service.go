package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/event"
	"github.com/osse101/TextMaple_Go/internal/logger"
)

// Store reads and writes raw save documents by slot name.
// Read returns an error wrapping domain.ErrSaveNotFound when the slot is empty.
type Store interface {
	Read(ctx context.Context, slot string) ([]byte, error)
	Write(ctx context.Context, slot string, data []byte) error
	Slots(ctx context.Context) ([]string, error)
}

// LoadResult describes where the loaded state came from
type LoadResult struct {
	State *domain.SaveState
	// Fresh is set when no save existed
	Fresh bool
	// Recovered is set when a save existed but could not be used and defaults were substituted
	Recovered bool
	// Err is the read or decode failure behind Recovered
	Err error
}

// Service defines save and load operations for one slot
type Service interface {
	Load(ctx context.Context) *LoadResult
	Save(ctx context.Context, state *domain.SaveState) error
	Slot() string
	Slots(ctx context.Context) ([]string, error)
}

type service struct {
	store  Store
	slot   string
	events *event.Emitter
}

// NewService creates a persistence service bound to a save slot. publisher may be nil.
func NewService(store Store, slot string, publisher event.Publisher) Service {
	return &service{store: store, slot: slot, events: event.NewEmitter(publisher)}
}

func (s *service) Slot() string {
	return s.slot
}

// Slots lists every slot the store holds a save for
func (s *service) Slots(ctx context.Context) ([]string, error) {
	slots, err := s.store.Slots(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgListSlotsFailed, "error", err)
		return nil, fmt.Errorf(ErrMsgListSlotsFmt, err)
	}
	return slots, nil
}

// Load never fails: a missing save yields a fresh default state, and an
// unreadable or malformed one is logged and replaced by defaults.
func (s *service) Load(ctx context.Context) *LoadResult {
	log := logger.FromContext(ctx)

	data, err := s.store.Read(ctx, s.slot)
	if errors.Is(err, domain.ErrSaveNotFound) {
		log.Info(LogMsgNoSaveFound, "slot", s.slot)
		return &LoadResult{State: defaultState(), Fresh: true}
	}
	if err != nil {
		log.Error(LogMsgSaveReadFailed, "slot", s.slot, "error", err)
		return &LoadResult{State: defaultState(), Recovered: true, Err: err}
	}

	state, normalized, err := decode(data)
	if err != nil {
		log.Warn(LogMsgMalformedSave, "slot", s.slot, "error", err)
		return &LoadResult{State: defaultState(), Recovered: true, Err: err}
	}
	if normalized {
		log.Warn(LogMsgSaveNormalized, "slot", s.slot)
	}

	log.Info(LogMsgSaveLoaded, "slot", s.slot, "level", state.Character.Level, "items", len(state.Character.Inventory))
	return &LoadResult{State: state}
}

// Save encodes and writes the state. Failures wrap domain.ErrPersistenceWriteFailure.
func (s *service) Save(ctx context.Context, state *domain.SaveState) error {
	log := logger.FromContext(ctx)

	data, err := Encode(state)
	if err == nil {
		err = s.store.Write(ctx, s.slot, data)
	}
	if err != nil {
		wrapped := fmt.Errorf(ErrMsgWriteSaveFmt, s.slot, err, domain.ErrPersistenceWriteFailure)
		log.Error(LogMsgGameSaveFailed, "slot", s.slot, "error", err)
		s.events.Emit(ctx, NewGameSaveFailedEvent(s.slot, err))
		return wrapped
	}

	log.Info(LogMsgGameSaved, "slot", s.slot, "bytes", len(data))
	s.events.Emit(ctx, NewGameSavedEvent(s.slot, len(data)))
	return nil
}

func defaultState() *domain.SaveState {
	return &domain.SaveState{Character: domain.NewCharacter()}
}
