package economy

import (
	"fmt"

	"github.com/osse101/TextMaple_Go/internal/domain"
)

func validatePurchase(c *domain.Character, listing *domain.ShopListing) error {
	if listing.Purchased {
		return fmt.Errorf(ErrMsgAlreadyPurchasedFmt, listing.Item.Name, domain.ErrAlreadyPurchased)
	}
	if c.Meso < listing.Price {
		return fmt.Errorf(ErrMsgPurchaseFundsFmt, listing.Item.Name, listing.Price, c.Meso, domain.ErrInsufficientFunds)
	}
	return nil
}

func validateSale(c *domain.Character, item *domain.Item) error {
	if !c.Owns(item) {
		name := ""
		if item != nil {
			name = item.Name
		}
		return fmt.Errorf(ErrMsgItemNotOwnedFmt, name, domain.ErrItemNotOwned)
	}
	if item.Equipped {
		return fmt.Errorf(ErrMsgItemEquippedFmt, item.DisplayName(), domain.ErrItemEquipped)
	}
	return nil
}
