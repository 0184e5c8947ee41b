package equipment

import (
	"time"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/event"
)

// NewItemEquippedEvent creates the event for an item being equipped
func NewItemEquippedEvent(item *domain.Item) event.Event {
	return event.New(domain.EventTypeItemEquipped, domain.ItemEquipPayload{
		ItemName:  item.DisplayName(),
		Slot:      item.Slot,
		Timestamp: time.Now().Unix(),
	})
}

// NewItemUnequippedEvent creates the event for an item leaving its slot.
// displaced marks the implicit unequip caused by equipping another item.
func NewItemUnequippedEvent(item *domain.Item, displaced bool) event.Event {
	return event.New(domain.EventTypeItemUnequipped, domain.ItemEquipPayload{
		ItemName:  item.DisplayName(),
		Slot:      item.Slot,
		Displaced: displaced,
		Timestamp: time.Now().Unix(),
	})
}
