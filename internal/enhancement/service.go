// Package enhancement implements paid, stochastic star upgrades for items.
package enhancement

import (
	"context"
	"fmt"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/equipment"
	"github.com/osse101/TextMaple_Go/internal/event"
	"github.com/osse101/TextMaple_Go/internal/logger"
	"github.com/osse101/TextMaple_Go/internal/utils"
)

// Result is the outcome of one enhancement attempt
type Result struct {
	Item        *domain.Item
	Outcome     Outcome
	Cost        int64
	Roll        int
	LevelBefore int
	LevelAfter  int
	PowerBefore int
	PowerAfter  int
}

// Service defines enhancement operations
type Service interface {
	Quote(ctx context.Context, c *domain.Character, index int) (*Quote, error)
	Enhance(ctx context.Context, c *domain.Character, index int) (*Result, error)
}

type service struct {
	rnd    utils.Rand
	events *event.Emitter
}

// NewService creates a new enhancement service. publisher may be nil.
func NewService(rnd utils.Rand, publisher event.Publisher) Service {
	return &service{rnd: rnd, events: event.NewEmitter(publisher)}
}

// Quote previews the next attempt on the item at index without mutating anything
func (s *service) Quote(_ context.Context, c *domain.Character, index int) (*Quote, error) {
	item, err := c.ItemAt(index)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSelectItemFmt, err)
	}
	q := QuoteFor(item, c.Meso)
	return &q, nil
}

// Enhance pays the cost and draws one outcome. The cost is spent whatever the
// outcome; a maxed item or short funds rejects the attempt before any payment.
func (s *service) Enhance(ctx context.Context, c *domain.Character, index int) (*Result, error) {
	item, err := c.ItemAt(index)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSelectItemFmt, err)
	}
	if item.EnhancementLevel >= domain.MaxEnhancementLevel {
		return nil, fmt.Errorf(ErrMsgMaxEnhancementFmt, item.Name, item.EnhancementLevel, domain.ErrMaxEnhancementReached)
	}

	cost := Cost(item)
	if c.Meso < cost {
		return nil, fmt.Errorf(ErrMsgEnhanceFundsFmt, item.DisplayName(), cost, c.Meso, domain.ErrInsufficientFunds)
	}

	c.Meso -= cost

	res := &Result{
		Item:        item,
		Cost:        cost,
		LevelBefore: item.EnhancementLevel,
		PowerBefore: item.Power,
	}

	res.Roll = s.rnd.IntN(rollSides) + 1
	multiplier := 0
	if BandsFor(item.EnhancementLevel).Classify(res.Roll) == OutcomeSuccess {
		multiplier = utils.RandomInt(s.rnd, 1, maxBoostMultiplier)
	}
	change := ApplyRoll(item, res.Roll, multiplier)

	res.Outcome = change.Outcome
	res.LevelAfter = item.EnhancementLevel
	res.PowerAfter = item.Power

	if item.Equipped {
		equipment.ClampHP(c)
	}

	logger.FromContext(ctx).Info(LogMsgEnhanceAttempt,
		"item", item.Name,
		"outcome", res.Outcome.String(),
		"roll", res.Roll,
		"cost", cost,
		"level", res.LevelAfter,
		"power", res.PowerAfter)
	s.events.Emit(ctx, NewItemEnhancedEvent(res))
	return res, nil
}
