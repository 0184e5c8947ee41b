package enhancement

import (
	"time"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/event"
)

// NewItemEnhancedEvent creates the event for a paid enhancement attempt
func NewItemEnhancedEvent(res *Result) event.Event {
	return event.New(domain.EventTypeItemEnhanced, domain.ItemEnhancedPayload{
		ItemName:    res.Item.Name,
		Outcome:     res.Outcome.String(),
		Cost:        res.Cost,
		LevelBefore: res.LevelBefore,
		LevelAfter:  res.LevelAfter,
		PowerBefore: res.PowerBefore,
		PowerAfter:  res.PowerAfter,
		Timestamp:   time.Now().Unix(),
	})
}
