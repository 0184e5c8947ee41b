// Package economy implements the shop: one-time purchases, sales and the paid rest.
package economy

import (
	"context"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/event"
)

// PurchaseResult contains the result of a purchase
type PurchaseResult struct {
	Item      *domain.Item
	Price     int64
	Remaining int64
}

// SaleResult contains the result of a sale
type SaleResult struct {
	Item      *domain.Item
	Price     int64
	Remaining int64
}

// RestResult contains the result of a rest
type RestResult struct {
	Cost      int64
	HP        int
	Remaining int64
}

// Service defines the interface for economy operations
type Service interface {
	Purchase(ctx context.Context, c *domain.Character, shop *Shop, index int) (*PurchaseResult, error)
	Sell(ctx context.Context, c *domain.Character, index int) (*SaleResult, error)
	SellItem(ctx context.Context, c *domain.Character, item *domain.Item) (*SaleResult, error)
	Rest(ctx context.Context, c *domain.Character) (*RestResult, error)
}

type service struct {
	events *event.Emitter
}

// NewService creates a new economy service. publisher may be nil.
func NewService(publisher event.Publisher) Service {
	return &service{events: event.NewEmitter(publisher)}
}
