package economy

import (
	"fmt"

	"github.com/osse101/TextMaple_Go/internal/domain"
)

// Shop is the fixed catalog of one-time listings. It is rebuilt from
// definitions on every run; only the purchased flags persist.
type Shop struct {
	Listings []*domain.ShopListing
}

// NewShop builds listings in definition order, none purchased
func NewShop(defs []domain.ItemDef) *Shop {
	listings := make([]*domain.ShopListing, len(defs))
	for i, def := range defs {
		listings[i] = domain.NewShopListing(def)
	}
	return &Shop{Listings: listings}
}

// Listing returns the listing at index
func (s *Shop) Listing(index int) (*domain.ShopListing, error) {
	if index < 0 || index >= len(s.Listings) {
		return nil, fmt.Errorf(ErrMsgListingOutOfRangeFmt, index, len(s.Listings), domain.ErrInvalidSelection)
	}
	return s.Listings[index], nil
}

// Flags returns the purchased flag of every listing, in listing order
func (s *Shop) Flags() []bool {
	flags := make([]bool, len(s.Listings))
	for i, l := range s.Listings {
		flags[i] = l.Purchased
	}
	return flags
}

// ApplyFlags sets purchased flags positionally. Extra flags are ignored and
// listings without a flag are left unpurchased.
func (s *Shop) ApplyFlags(flags []bool) {
	for i, l := range s.Listings {
		l.Purchased = i < len(flags) && flags[i]
	}
}
