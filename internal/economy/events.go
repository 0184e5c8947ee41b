package economy

import (
	"time"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/event"
)

// NewItemBoughtEvent creates the event for a shop purchase
func NewItemBoughtEvent(listing *domain.ShopListing) event.Event {
	return event.New(domain.EventTypeItemBought, domain.ItemBoughtPayload{
		ItemName:  listing.Item.Name,
		Price:     listing.Price,
		Timestamp: time.Now().Unix(),
	})
}

// NewItemSoldEvent creates the event for a sale to the shop
func NewItemSoldEvent(item *domain.Item, price int64) event.Event {
	return event.New(domain.EventTypeItemSold, domain.ItemSoldPayload{
		ItemName:  item.DisplayName(),
		Price:     price,
		Timestamp: time.Now().Unix(),
	})
}

// NewRestedEvent creates the event for a paid full heal
func NewRestedEvent(cost int64, hp int) event.Event {
	return event.New(domain.EventTypeRested, domain.RestedPayload{
		Cost:      cost,
		HP:        hp,
		Timestamp: time.Now().Unix(),
	})
}
