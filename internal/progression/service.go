// Package progression grants experience, cascades level-ups and handles the
// one-time job advancement.
package progression

import (
	"context"
	"fmt"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/equipment"
	"github.com/osse101/TextMaple_Go/internal/event"
	"github.com/osse101/TextMaple_Go/internal/logger"
)

// LevelResult describes the outcome of an experience grant
type LevelResult struct {
	ExpGained    int
	OldLevel     int
	NewLevel     int
	LevelsGained int
	// ClassChangeAvailable is set when the grant leaves an unadvanced character at level 10 or above
	ClassChangeAvailable bool
}

// LeveledUp reports whether at least one level was gained
func (r *LevelResult) LeveledUp() bool {
	return r.LevelsGained > 0
}

// Service defines progression operations
type Service interface {
	AddExperience(ctx context.Context, c *domain.Character, amount int) (*LevelResult, error)
	ClassChange(ctx context.Context, c *domain.Character) error
}

type service struct {
	events *event.Emitter
}

// NewService creates a new progression service. publisher may be nil.
func NewService(publisher event.Publisher) Service {
	return &service{events: event.NewEmitter(publisher)}
}

// AddExperience adds amount and applies every level-up it pays for.
// A negative amount is rejected without touching the character.
func (s *service) AddExperience(ctx context.Context, c *domain.Character, amount int) (*LevelResult, error) {
	if amount < 0 {
		return nil, fmt.Errorf(ErrMsgNegativeExpFmt, amount, domain.ErrInvalidInput)
	}

	log := logger.FromContext(ctx)
	oldLevel := c.Level

	c.Exp += amount
	gained := ApplyLevelUps(c)

	log.Debug(LogMsgExperienceGained, "amount", amount, "exp", c.Exp, "exp_to_next", c.ExpToNextLevel)

	for lvl := oldLevel + 1; lvl <= c.Level; lvl++ {
		log.Info(LogMsgLevelUp, "old_level", lvl-1, "new_level", lvl)
		s.events.Emit(ctx, NewLevelUpEvent(lvl-1, lvl))
	}

	result := &LevelResult{
		ExpGained:    amount,
		OldLevel:     oldLevel,
		NewLevel:     c.Level,
		LevelsGained: gained,
	}

	if ClassChangeAvailable(c) {
		result.ClassChangeAvailable = true
		log.Info(LogMsgClassChangeAvailable, "level", c.Level)
		s.events.Emit(ctx, NewClassChangeAvailableEvent(c.Level))
	}

	return result, nil
}

// ClassChange advances a Novice of level 10 or above to Mage, adding 15 to
// base attack, base defense and max HP. The transition happens once.
func (s *service) ClassChange(ctx context.Context, c *domain.Character) error {
	if c.ClassChanged {
		return fmt.Errorf(ErrMsgAlreadyClassChangedFmt, c.Name, c.Job, domain.ErrAlreadyClassChanged)
	}
	if c.Level < domain.ClassChangeMinLevel {
		return fmt.Errorf(ErrMsgLevelTooLowFmt, domain.ClassChangeMinLevel, c.Level, domain.ErrLevelTooLow)
	}

	c.Job = domain.JobMage
	c.BaseAttack += domain.ClassChangeStatBonus
	c.BaseDefense += domain.ClassChangeStatBonus
	c.MaxHP += domain.ClassChangeStatBonus
	c.ClassChanged = true
	equipment.ClampHP(c)

	logger.FromContext(ctx).Info(LogMsgClassChanged, "job", c.Job, "level", c.Level)
	s.events.Emit(ctx, NewClassChangedEvent(c.Job, c.Level))
	return nil
}
