package catalog

// Formatted error messages
const (
	ErrMsgParseCatalogFmt      = "failed to parse catalog: %w"
	ErrMsgReadCatalogFmt       = "failed to read catalog file %s: %w"
	ErrMsgValidateCatalogFmt   = "catalog validation failed: %v: %w"
	ErrMsgDuplicateItemFmt     = "item %q defined twice: %w"
	ErrMsgDuplicateZoneFmt     = "zone %q defined twice: %w"
	ErrMsgUnknownItemRefFmt    = "%s references unknown item %q: %w"
	ErrMsgInvalidItemFieldFmt  = "item %q: %v: %w"
	ErrMsgUnknownZoneFmt       = "zone %q: %w"
	ErrMsgDropChanceOutOfRange = "drop chance must be within [0,1]"
)

// Reference contexts used in validation errors
const (
	refStarterKit = "starter kit"
	refShop       = "shop"
	refLootFmt    = "loot table of zone %q"
)
