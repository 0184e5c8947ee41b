package economy

import (
	"context"
	"fmt"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/equipment"
	"github.com/osse101/TextMaple_Go/internal/logger"
)

// Rest pays for a full heal to effective max HP. The fee is charged even at full health.
func (s *service) Rest(ctx context.Context, c *domain.Character) (*RestResult, error) {
	if c.Meso < domain.RestCost {
		return nil, fmt.Errorf(ErrMsgRestFundsFmt, domain.RestCost, c.Meso, domain.ErrInsufficientFunds)
	}

	c.Meso -= domain.RestCost
	c.HP = equipment.Effective(c).MaxHP

	logger.FromContext(ctx).Info(LogMsgRested, "hp", c.HP, "meso", c.Meso)
	s.events.Emit(ctx, NewRestedEvent(domain.RestCost, c.HP))

	return &RestResult{Cost: domain.RestCost, HP: c.HP, Remaining: c.Meso}, nil
}
