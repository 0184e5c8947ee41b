package economy

import (
	"context"
	"fmt"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/logger"
)

// Purchase buys the listing at index: the price is deducted, a fresh copy of
// the item is appended to the inventory and the listing is marked purchased.
func (s *service) Purchase(ctx context.Context, c *domain.Character, shop *Shop, index int) (*PurchaseResult, error) {
	listing, err := shop.Listing(index)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSelectListingFmt, err)
	}
	if err := validatePurchase(c, listing); err != nil {
		return nil, err
	}

	c.Meso -= listing.Price
	item := domain.NewItem(listing.Item)
	c.AddItem(item)
	listing.Purchased = true

	logger.FromContext(ctx).Info(LogMsgItemPurchased, "item", item.Name, "price", listing.Price, "meso", c.Meso)
	s.events.Emit(ctx, NewItemBoughtEvent(listing))

	return &PurchaseResult{Item: item, Price: listing.Price, Remaining: c.Meso}, nil
}
