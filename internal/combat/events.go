package combat

import (
	"time"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/event"
)

// NewMonsterDefeatedEvent creates the event for a won encounter
func NewMonsterDefeatedEvent(enc *Encounter) event.Event {
	return event.New(domain.EventTypeMonsterDefeated, domain.MonsterDefeatedPayload{
		ZoneID:      enc.Zone.ID,
		MonsterName: enc.Monster.Name,
		Exp:         enc.Monster.ExpReward,
		Meso:        enc.Monster.MesoReward,
		Turns:       enc.Turns,
		Timestamp:   time.Now().Unix(),
	})
}

// NewPlayerDefeatedEvent creates the event for a lost encounter
func NewPlayerDefeatedEvent(enc *Encounter, recoveredHP int) event.Event {
	return event.New(domain.EventTypePlayerDefeated, domain.PlayerDefeatedPayload{
		ZoneID:      enc.Zone.ID,
		MonsterName: enc.Monster.Name,
		RecoveredHP: recoveredHP,
		Timestamp:   time.Now().Unix(),
	})
}

// NewCombatFledEvent creates the event for an abandoned encounter
func NewCombatFledEvent(enc *Encounter) event.Event {
	return event.New(domain.EventTypeCombatFled, domain.CombatFledPayload{
		ZoneID:      enc.Zone.ID,
		MonsterName: enc.Monster.Name,
		Timestamp:   time.Now().Unix(),
	})
}

// NewItemDroppedEvent creates the event for a single loot drop
func NewItemDroppedEvent(enc *Encounter, item *domain.Item) event.Event {
	return event.New(domain.EventTypeItemDropped, domain.ItemDroppedPayload{
		ItemName:    item.Name,
		MonsterName: enc.Monster.Name,
		ZoneID:      enc.Zone.ID,
		Timestamp:   time.Now().Unix(),
	})
}
