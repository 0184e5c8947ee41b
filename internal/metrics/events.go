package metrics

import (
	"context"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/event"
	"github.com/osse101/TextMaple_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		domain.EventTypeLevelUp,
		domain.EventTypeClassChangeAvailable,
		domain.EventTypeClassChanged,
		domain.EventTypeRested,
		domain.EventTypeItemEquipped,
		domain.EventTypeItemUnequipped,
		domain.EventTypeItemEnhanced,
		domain.EventTypeItemBought,
		domain.EventTypeItemSold,
		domain.EventTypeItemDropped,
		domain.EventTypeMonsterDefeated,
		domain.EventTypePlayerDefeated,
		domain.EventTypeCombatFled,
		domain.EventTypeGameSaved,
		domain.EventTypeGameSaveFailed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics. Undecodable payloads are
// counted and logged but never fail the publisher.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := record(evt); err != nil {
		EventDecodeErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func record(evt event.Event) error {
	switch evt.Type {
	case domain.EventTypeItemSold:
		p, err := event.DecodePayload[domain.ItemSoldPayload](evt.Payload)
		if err != nil {
			return err
		}
		ItemsSold.WithLabelValues(p.ItemName).Inc()
		MesoEarned.WithLabelValues(SourceSale).Add(float64(p.Price))

	case domain.EventTypeItemBought:
		p, err := event.DecodePayload[domain.ItemBoughtPayload](evt.Payload)
		if err != nil {
			return err
		}
		ItemsBought.WithLabelValues(p.ItemName).Inc()
		MesoSpent.WithLabelValues(SourcePurchase).Add(float64(p.Price))

	case domain.EventTypeItemDropped:
		p, err := event.DecodePayload[domain.ItemDroppedPayload](evt.Payload)
		if err != nil {
			return err
		}
		ItemsDropped.WithLabelValues(p.ItemName).Inc()

	case domain.EventTypeItemEnhanced:
		p, err := event.DecodePayload[domain.ItemEnhancedPayload](evt.Payload)
		if err != nil {
			return err
		}
		EnhancementAttempts.WithLabelValues(p.Outcome).Inc()
		MesoSpent.WithLabelValues(SourceEnhancement).Add(float64(p.Cost))

	case domain.EventTypeRested:
		p, err := event.DecodePayload[domain.RestedPayload](evt.Payload)
		if err != nil {
			return err
		}
		MesoSpent.WithLabelValues(SourceRest).Add(float64(p.Cost))

	case domain.EventTypeMonsterDefeated:
		p, err := event.DecodePayload[domain.MonsterDefeatedPayload](evt.Payload)
		if err != nil {
			return err
		}
		EncountersFinished.WithLabelValues(p.ZoneID, ResultVictory).Inc()
		MesoEarned.WithLabelValues(SourceCombat).Add(float64(p.Meso))

	case domain.EventTypePlayerDefeated:
		p, err := event.DecodePayload[domain.PlayerDefeatedPayload](evt.Payload)
		if err != nil {
			return err
		}
		EncountersFinished.WithLabelValues(p.ZoneID, ResultDefeat).Inc()

	case domain.EventTypeCombatFled:
		p, err := event.DecodePayload[domain.CombatFledPayload](evt.Payload)
		if err != nil {
			return err
		}
		EncountersFinished.WithLabelValues(p.ZoneID, ResultFled).Inc()

	case domain.EventTypeLevelUp:
		p, err := event.DecodePayload[domain.LevelUpPayload](evt.Payload)
		if err != nil {
			return err
		}
		LevelUps.Inc()
		CharacterLevel.Set(float64(p.NewLevel))

	case domain.EventTypeGameSaved:
		SavesTotal.WithLabelValues(ResultSuccess).Inc()

	case domain.EventTypeGameSaveFailed:
		SavesTotal.WithLabelValues(ResultFailure).Inc()
	}
	return nil
}
