package economy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextMaple_Go/internal/domain"
)

func testShop() *Shop {
	return NewShop([]domain.ItemDef{
		{Name: "Mushmom Spore", StatType: domain.StatVitality, Slot: domain.SlotHat, Power: 50},
		{Name: "White Doros Robe", StatType: domain.StatDefense, Slot: domain.SlotArmor, Power: 29},
		{Name: "Old Wooden Staff", StatType: domain.StatAttack, Slot: domain.SlotWeapon, Power: 35},
	})
}

func TestShop_Flags(t *testing.T) {
	shop := testShop()
	assert.Equal(t, []bool{false, false, false}, shop.Flags())
	assert.Equal(t, int64(50000), shop.Listings[0].Price)

	tests := []struct {
		name  string
		flags []bool
		want  []bool
	}{
		{"exact", []bool{true, false, true}, []bool{true, false, true}},
		{"missing trailing flags are unpurchased", []bool{true}, []bool{true, false, false}},
		{"extra flags are ignored", []bool{false, true, false, true, true}, []bool{false, true, false}},
		{"nil resets", nil, []bool{false, false, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shop.ApplyFlags(tt.flags)
			assert.Equal(t, tt.want, shop.Flags())
		})
	}
}

func TestPurchase(t *testing.T) {
	ctx := context.Background()
	pub := new(MockPublisher)
	pub.On("Publish", mock.Anything, eventOfType(domain.EventTypeItemBought)).Return(nil).Once()
	svc := NewService(pub)
	shop := testShop()
	c := domain.NewCharacter()

	res, err := svc.Purchase(ctx, c, shop, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(29000), res.Price)
	assert.Equal(t, domain.DefaultMeso-29000, c.Meso)
	assert.Equal(t, c.Meso, res.Remaining)
	require.Len(t, c.Inventory, 1)
	assert.Same(t, res.Item, c.Inventory[0])
	assert.Equal(t, "White Doros Robe", res.Item.Name)
	assert.False(t, res.Item.Equipped)
	assert.True(t, shop.Listings[1].Purchased)
	assert.Equal(t, []bool{false, true, false}, shop.Flags())
	pub.AssertExpectations(t)

	t.Run("already purchased", func(t *testing.T) {
		meso := c.Meso
		_, err := svc.Purchase(ctx, c, shop, 1)
		assert.ErrorIs(t, err, domain.ErrAlreadyPurchased)
		assert.Equal(t, meso, c.Meso)
		assert.Len(t, c.Inventory, 1)
	})

	t.Run("invalid selection", func(t *testing.T) {
		_, err := svc.Purchase(ctx, c, shop, 3)
		assert.ErrorIs(t, err, domain.ErrInvalidSelection)
		_, err = svc.Purchase(ctx, c, shop, -1)
		assert.ErrorIs(t, err, domain.ErrInvalidSelection)
	})

	pub.AssertNumberOfCalls(t, "Publish", 1)
}

func TestPurchase_InsufficientFunds(t *testing.T) {
	svc := NewService(nil)
	shop := testShop()
	c := domain.NewCharacter()
	c.Meso = 49999

	_, err := svc.Purchase(context.Background(), c, shop, 0)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, int64(49999), c.Meso)
	assert.Empty(t, c.Inventory)
	assert.False(t, shop.Listings[0].Purchased)

	c.Meso = 50000
	_, err = svc.Purchase(context.Background(), c, shop, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), c.Meso)
}

func TestPurchase_CopiesDefinition(t *testing.T) {
	svc := NewService(nil)
	shop := testShop()
	c := domain.NewCharacter()

	res, err := svc.Purchase(context.Background(), c, shop, 2)
	require.NoError(t, err)

	res.Item.Power = 999
	assert.Equal(t, 35, shop.Listings[2].Item.Power)
}

func TestSell(t *testing.T) {
	ctx := context.Background()
	pub := new(MockPublisher)
	pub.On("Publish", mock.Anything, eventOfType(domain.EventTypeItemSold)).Return(nil)
	svc := NewService(pub)

	c := domain.NewCharacter()
	first := &domain.Item{Name: "Wooden Staff", Power: 3}
	second := &domain.Item{Name: "Wooden Staff", Power: 3, EnhancementLevel: 4}
	hat := &domain.Item{Name: "Shabby Hat", Power: 3}
	c.AddItem(first)
	c.AddItem(second)
	c.AddItem(hat)

	res, err := svc.Sell(ctx, c, 1)
	require.NoError(t, err)
	assert.Same(t, second, res.Item)
	assert.Equal(t, int64(1500), res.Price)
	assert.Equal(t, domain.DefaultMeso+1500, c.Meso)
	assert.Equal(t, []*domain.Item{first, hat}, c.Inventory, "only that instance is removed")
	pub.AssertNumberOfCalls(t, "Publish", 1)
}

func TestSell_Equipped(t *testing.T) {
	svc := NewService(nil)
	c := domain.NewCharacter()
	item := &domain.Item{Name: "White Doros Robe", Power: 29, Equipped: true}
	c.AddItem(item)

	_, err := svc.Sell(context.Background(), c, 0)
	assert.ErrorIs(t, err, domain.ErrItemEquipped)
	assert.Equal(t, domain.DefaultMeso, c.Meso)
	assert.Len(t, c.Inventory, 1)
	assert.True(t, item.Equipped)
}

func TestSell_Errors(t *testing.T) {
	svc := NewService(nil)
	c := domain.NewCharacter()

	_, err := svc.Sell(context.Background(), c, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)

	_, err = svc.SellItem(context.Background(), c, &domain.Item{Name: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrItemNotOwned)

	_, err = svc.SellItem(context.Background(), c, nil)
	assert.ErrorIs(t, err, domain.ErrItemNotOwned)
}

func TestRest(t *testing.T) {
	ctx := context.Background()
	svc := NewService(nil)
	c := domain.NewCharacter()
	c.AddItem(&domain.Item{Name: "Shabby Hat", StatType: domain.StatVitality, Power: 3, Equipped: true})
	c.HP = 12

	res, err := svc.Rest(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, 103, c.HP)
	assert.Equal(t, 103, res.HP)
	assert.Equal(t, domain.DefaultMeso-domain.RestCost, c.Meso)

	c.Meso = domain.RestCost - 1
	c.HP = 1
	_, err = svc.Rest(ctx, c)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 1, c.HP)
	assert.Equal(t, domain.RestCost-1, c.Meso)
}

func TestPublisherFailureDoesNotFailCommand(t *testing.T) {
	pub := new(MockPublisher)
	pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("subscriber down"))
	svc := NewService(pub)
	c := domain.NewCharacter()

	_, err := svc.Rest(context.Background(), c)
	assert.NoError(t, err)
	pub.AssertExpectations(t)
}
