package domain

// Character defaults for a fresh game and for fields absent from a save file
const (
	DefaultCharacterName  = "Captain"
	DefaultLevel          = 1
	DefaultAttack         = 10
	DefaultDefense        = 5
	DefaultMaxHP          = 100
	DefaultMeso           = int64(1_000_000)
	DefaultExpToNextLevel = 100
)

// Progression tuning
const (
	// ExpToNextLevelIncrement is added to the threshold on every level-up
	ExpToNextLevelIncrement = 10

	// LevelUpStatIncrement is added to base attack, base defense and max HP per level
	LevelUpStatIncrement = 5

	// ClassChangeMinLevel is the level required for the first job advancement
	ClassChangeMinLevel = 10

	// ClassChangeStatBonus is added to base attack, base defense and max HP on advancement
	ClassChangeStatBonus = 15
)

// Item pricing and enhancement bounds
const (
	ItemPriceMultiplier     = 1000
	ItemSalePriceMultiplier = 500
	MaxEnhancementLevel     = 30

	ItemDisplayNameEnhancedFmt = "%s (%d★)"
)

// Combat and town services
const (
	// DefeatRecoveryRatio is the share of effective max HP restored after a defeat
	DefeatRecoveryRatio = 0.5

	// RestCost is the meso price of a full heal at the hot spring
	RestCost = int64(500)
)
