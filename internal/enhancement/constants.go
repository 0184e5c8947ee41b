package enhancement

// Enhancement tuning
const (
	// CostPerLevelMultiplier scales power x (1 + level) into the meso cost
	CostPerLevelMultiplier = 100

	baseSuccessChance     = 80
	successDecayPerLevel  = 2
	minSuccessChance      = 20
	baseDowngradeChance   = 5
	downgradeGainPerLevel = 1
	rollSides             = 100
	maxBoostMultiplier    = 3
)

// Formatted error messages
const (
	ErrMsgSelectItemFmt     = "failed to select item: %w"
	ErrMsgMaxEnhancementFmt = "%s is already at %d stars: %w"
	ErrMsgEnhanceFundsFmt   = "enhancing %s costs %d meso, have %d: %w"
)

// Log messages
const (
	LogMsgEnhanceAttempt = "Enhancement attempted"
)
