package equipment

// Formatted error messages
const (
	ErrMsgSelectItemFmt   = "failed to select item: %w"
	ErrMsgItemNotOwnedFmt = "item %q is not in the inventory: %w"
)

// Log messages
const (
	LogMsgItemEquipped   = "Item equipped"
	LogMsgItemUnequipped = "Item unequipped"
	LogMsgSlotDisplaced  = "Slot occupant unequipped"
)
