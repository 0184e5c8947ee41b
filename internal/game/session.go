// Package game owns the live game state and dispatches player commands to
// the engine services. Every command and every save runs under one mutex.
package game

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/TextMaple_Go/internal/catalog"
	"github.com/osse101/TextMaple_Go/internal/combat"
	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/economy"
	"github.com/osse101/TextMaple_Go/internal/enhancement"
	"github.com/osse101/TextMaple_Go/internal/equipment"
	"github.com/osse101/TextMaple_Go/internal/event"
	"github.com/osse101/TextMaple_Go/internal/logger"
	"github.com/osse101/TextMaple_Go/internal/persistence"
	"github.com/osse101/TextMaple_Go/internal/progression"
	"github.com/osse101/TextMaple_Go/internal/utils"
)

// Options tune a new session
type Options struct {
	// Rand drives combat loot and enhancement rolls; nil uses a clock-seeded source
	Rand utils.Rand
	// Publisher receives domain events; may be nil
	Publisher event.Publisher
	// StartingMeso replaces the default purse of a new game when positive
	StartingMeso int64
}

// Session is one running game
type Session struct {
	mu        sync.Mutex
	character *domain.Character
	shop      *economy.Shop
	encounter *combat.Encounter
	closed    bool

	catalog     *catalog.Catalog
	saves       persistence.Service
	equipment   equipment.Service
	progression progression.Service
	combat      combat.Service
	enhancement enhancement.Service
	economy     economy.Service
}

// New loads the save slot and builds the session around it. A missing or
// unusable save starts a new game with the catalog's starter kit.
func New(ctx context.Context, cat *catalog.Catalog, saves persistence.Service, opts Options) (*Session, *persistence.LoadResult) {
	rnd := opts.Rand
	if rnd == nil {
		rnd = utils.NewRand(0)
	}
	progressionSvc := progression.NewService(opts.Publisher)

	s := &Session{
		catalog:     cat,
		saves:       saves,
		equipment:   equipment.NewService(opts.Publisher),
		progression: progressionSvc,
		combat:      combat.NewService(cat, progressionSvc, rnd, opts.Publisher),
		enhancement: enhancement.NewService(rnd, opts.Publisher),
		economy:     economy.NewService(opts.Publisher),
	}

	loaded := saves.Load(ctx)
	s.character, s.shop = persistence.Restore(loaded.State, cat.Shop())

	if loaded.Fresh || loaded.Recovered {
		if opts.StartingMeso > 0 {
			s.character.Meso = opts.StartingMeso
		}
		for _, def := range cat.StarterKit() {
			s.character.AddItem(domain.NewItem(def))
		}
		logger.FromContext(ctx).Info(LogMsgNewGame, "slot", saves.Slot(), "starter_items", len(s.character.Inventory), "recovered", loaded.Recovered)
	}

	return s, loaded
}

// Dispatch runs one command. Gameplay errors wrap domain sentinels and leave
// the state unchanged; save failures come back as Result.Warning.
func (s *Session) Dispatch(ctx context.Context, req Request) (*Result, error) {
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, fmt.Errorf(ErrMsgDispatchFmt, req.Command, domain.ErrSessionClosed)
	}
	if s.encounter != nil && req.Command.mutatesOutsideCombat() {
		return nil, fmt.Errorf(ErrMsgDispatchFmt, req.Command, domain.ErrEncounterInProgress)
	}

	log.Debug(LogMsgDispatch, "command", req.Command.String(), "index", req.Index, "zone", req.ZoneID)

	res, err := s.dispatch(ctx, req)
	if err != nil {
		log.Info(LogMsgCommandRejected, "command", req.Command.String(), "error", err)
		return nil, fmt.Errorf(ErrMsgDispatchFmt, req.Command, err)
	}
	res.Command = req.Command
	return res, nil
}

func (s *Session) dispatch(ctx context.Context, req Request) (*Result, error) {
	c := s.character

	if action, ok := req.Command.combatAction(); ok {
		return s.resolve(ctx, action)
	}

	switch req.Command {
	case CommandViewStatus:
		return &Result{Status: newStatusView(c, s.encounter != nil)}, nil

	case CommandViewInventory:
		return &Result{Inventory: newInventoryView(c)}, nil

	case CommandViewZones:
		return &Result{Zones: newZonesView(s.catalog.Zones())}, nil

	case CommandOpenShop:
		return &Result{Shop: newShopView(s.shop, c.Meso)}, nil

	case CommandEquipToggle:
		toggle, err := s.equipment.ToggleAt(ctx, c, req.Index)
		if err != nil {
			return nil, err
		}
		return &Result{Toggle: toggle, Inventory: newInventoryView(c)}, nil

	case CommandEnhanceQuote:
		quote, err := s.enhancement.Quote(ctx, c, req.Index)
		if err != nil {
			return nil, err
		}
		return &Result{Quote: quote}, nil

	case CommandEnhance:
		res, err := s.enhancement.Enhance(ctx, c, req.Index)
		if err != nil {
			return nil, err
		}
		return &Result{Enhancement: res, Inventory: newInventoryView(c)}, nil

	case CommandPurchase:
		res, err := s.economy.Purchase(ctx, c, s.shop, req.Index)
		if err != nil {
			return nil, err
		}
		return &Result{Purchase: res, Shop: newShopView(s.shop, c.Meso)}, nil

	case CommandSell:
		res, err := s.economy.Sell(ctx, c, req.Index)
		if err != nil {
			return nil, err
		}
		return &Result{Sale: res, Inventory: newInventoryView(c)}, nil

	case CommandRest:
		res, err := s.economy.Rest(ctx, c)
		if err != nil {
			return nil, err
		}
		return &Result{Rest: res, Status: newStatusView(c, false)}, nil

	case CommandClassChange:
		if err := s.progression.ClassChange(ctx, c); err != nil {
			return nil, err
		}
		return &Result{Status: newStatusView(c, false)}, nil

	case CommandEnterZone:
		enc, err := s.combat.Start(ctx, req.ZoneID)
		if err != nil {
			return nil, err
		}
		s.encounter = enc
		return &Result{Encounter: newEncounterView(enc, c)}, nil

	case CommandViewSaves:
		slots, err := s.saves.Slots(ctx)
		if err != nil {
			return nil, err
		}
		return &Result{Saves: &SavesView{Current: s.saves.Slot(), Slots: slots}}, nil

	case CommandSave:
		res := &Result{Saved: true}
		if err := s.save(ctx); err != nil {
			res.Saved = false
			res.Warning = err.Error()
		}
		return res, nil

	case CommandQuit:
		res := &Result{Quit: true, Saved: true}
		s.encounter = nil
		if err := s.save(ctx); err != nil {
			res.Saved = false
			res.Warning = err.Error()
		}
		s.closed = true
		logger.FromContext(ctx).Info(LogMsgSessionClosed, "slot", s.saves.Slot(), "saved", res.Saved)
		return res, nil
	}

	return nil, fmt.Errorf(ErrMsgUnknownCommandFmt, int(req.Command), domain.ErrUnknownCommand)
}

func (s *Session) resolve(ctx context.Context, action combat.Action) (*Result, error) {
	if s.encounter == nil {
		return nil, domain.ErrNoEncounter
	}
	turn, err := s.combat.Resolve(ctx, s.character, s.encounter, action)
	if err != nil {
		return nil, err
	}
	res := &Result{Turn: turn, Encounter: newEncounterView(s.encounter, s.character)}
	if s.encounter.Over() {
		s.encounter = nil
	}
	return res, nil
}

// save must be called with mu held
func (s *Session) save(ctx context.Context) error {
	return s.saves.Save(ctx, persistence.Snapshot(s.character, s.shop))
}

// Save writes the current state to the slot. It is safe to call from another
// goroutine while commands are being dispatched.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrSessionClosed
	}
	return s.save(ctx)
}

// Snapshot returns an independent copy of the persistent state
func (s *Session) Snapshot() *domain.SaveState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return persistence.Snapshot(s.character, s.shop)
}

// Closed reports whether Quit has run
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// IsGameplayError reports whether err is a rejected command the player can
// recover from, as opposed to an infrastructure failure.
func IsGameplayError(err error) bool {
	for _, target := range gameplayErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var gameplayErrors = []error{
	domain.ErrInvalidSelection,
	domain.ErrItemNotOwned,
	domain.ErrItemEquipped,
	domain.ErrInsufficientFunds,
	domain.ErrAlreadyPurchased,
	domain.ErrAlreadyClassChanged,
	domain.ErrLevelTooLow,
	domain.ErrMaxEnhancementReached,
	domain.ErrNoEncounter,
	domain.ErrEncounterOver,
	domain.ErrEncounterInProgress,
	domain.ErrUnknownZone,
	domain.ErrInvalidInput,
	domain.ErrUnknownCommand,
}
