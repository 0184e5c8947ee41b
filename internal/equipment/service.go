// Package equipment aggregates equipped item bonuses and enforces the
// one-item-per-slot rule.
package equipment

import (
	"context"
	"fmt"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/event"
	"github.com/osse101/TextMaple_Go/internal/logger"
)

// ToggleResult reports what an equip toggle changed
type ToggleResult struct {
	Item *domain.Item
	// Equipped is the item's state after the toggle
	Equipped bool
	// Replaced is the previous occupant of the slot, unequipped to make room
	Replaced *domain.Item
}

// Service defines equipment operations
type Service interface {
	ToggleAt(ctx context.Context, c *domain.Character, index int) (*ToggleResult, error)
	Toggle(ctx context.Context, c *domain.Character, item *domain.Item) (*ToggleResult, error)
}

type service struct {
	events *event.Emitter
}

// NewService creates a new equipment service. publisher may be nil.
func NewService(publisher event.Publisher) Service {
	return &service{events: event.NewEmitter(publisher)}
}

// ToggleAt toggles the inventory item at index
func (s *service) ToggleAt(ctx context.Context, c *domain.Character, index int) (*ToggleResult, error) {
	item, err := c.ItemAt(index)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSelectItemFmt, err)
	}
	return s.Toggle(ctx, c, item)
}

// Toggle unequips an equipped item, or equips an unequipped one after
// clearing its slot. HP is clamped afterwards.
func (s *service) Toggle(ctx context.Context, c *domain.Character, item *domain.Item) (*ToggleResult, error) {
	if !c.Owns(item) {
		name := ""
		if item != nil {
			name = item.Name
		}
		return nil, fmt.Errorf(ErrMsgItemNotOwnedFmt, name, domain.ErrItemNotOwned)
	}

	log := logger.FromContext(ctx)

	if item.Equipped {
		item.Equipped = false
		ClampHP(c)
		log.Info(LogMsgItemUnequipped, "item", item.DisplayName(), "slot", item.Slot.String())
		s.events.Emit(ctx, NewItemUnequippedEvent(item, false))
		return &ToggleResult{Item: item, Equipped: false}, nil
	}

	result := &ToggleResult{Item: item, Equipped: true}
	// item is unequipped here, so Occupant never returns it
	for other := Occupant(c, item.Slot); other != nil; other = Occupant(c, item.Slot) {
		other.Equipped = false
		if result.Replaced == nil {
			result.Replaced = other
		}
		log.Info(LogMsgSlotDisplaced, "item", other.DisplayName(), "slot", other.Slot.String())
		s.events.Emit(ctx, NewItemUnequippedEvent(other, true))
	}

	item.Equipped = true
	ClampHP(c)
	log.Info(LogMsgItemEquipped, "item", item.DisplayName(), "slot", item.Slot.String())
	s.events.Emit(ctx, NewItemEquippedEvent(item))
	return result, nil
}
