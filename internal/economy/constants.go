package economy

// ==================== Error Messages ====================

// Formatted error messages
const (
	ErrMsgSelectListingFmt     = "failed to select listing: %w"
	ErrMsgSelectItemFmt        = "failed to select item: %w"
	ErrMsgListingOutOfRangeFmt = "listing %d out of range [0,%d): %w"
	ErrMsgAlreadyPurchasedFmt  = "%s has already been purchased: %w"
	ErrMsgPurchaseFundsFmt     = "%s costs %d meso, have %d: %w"
	ErrMsgItemEquippedFmt      = "%s must be unequipped before selling: %w"
	ErrMsgItemNotOwnedFmt      = "item %q is not in the inventory: %w"
	ErrMsgRestFundsFmt         = "resting costs %d meso, have %d: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgItemPurchased = "Item purchased"
	LogMsgItemSold      = "Item sold"
	LogMsgRested        = "Character rested"
)
