package economy

import (
	"context"
	"fmt"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/logger"
)

// Sell sells the inventory item at index
func (s *service) Sell(ctx context.Context, c *domain.Character, index int) (*SaleResult, error) {
	item, err := c.ItemAt(index)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSelectItemFmt, err)
	}
	return s.SellItem(ctx, c, item)
}

// SellItem sells exactly this item instance for power x 500. Equipped items
// are refused. Other entries with the same name are left alone.
func (s *service) SellItem(ctx context.Context, c *domain.Character, item *domain.Item) (*SaleResult, error) {
	if err := validateSale(c, item); err != nil {
		return nil, err
	}

	price := item.SalePrice()
	c.RemoveItem(item)
	c.Meso += price

	logger.FromContext(ctx).Info(LogMsgItemSold, "item", item.DisplayName(), "price", price, "meso", c.Meso)
	s.events.Emit(ctx, NewItemSoldEvent(item, price))

	return &SaleResult{Item: item, Price: price, Remaining: c.Meso}, nil
}
