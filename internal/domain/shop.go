package domain

// ShopListing is one fixed catalog entry. Each listing can be bought once per game.
type ShopListing struct {
	Item      ItemDef
	Price     int64
	Purchased bool
}

// NewShopListing prices the definition at power x 1000
func NewShopListing(def ItemDef) *ShopListing {
	return &ShopListing{
		Item:  def,
		Price: int64(def.Power) * ItemPriceMultiplier,
	}
}

// SaveState is a consistent snapshot of everything that persists between sessions.
// ShopPurchases is aligned positionally with the fixed shop catalog.
type SaveState struct {
	Character     *Character
	ShopPurchases []bool
	ClassChanged  bool
}
