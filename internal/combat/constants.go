package combat

// Formatted error messages
const (
	ErrMsgStartEncounterFmt  = "failed to start encounter: %w"
	ErrMsgEncounterOverFmt   = "encounter in %s already ended in %s: %w"
	ErrMsgUnknownActionFmt   = "unknown combat action %d: %w"
	ErrMsgGrantExperienceFmt = "failed to grant experience: %w"
)

// Log messages
const (
	LogMsgEncounterStarted = "Encounter started"
	LogMsgPlayerAttacked   = "Player attacked"
	LogMsgMonsterAttacked  = "Monster counter-attacked"
	LogMsgMonsterDefeated  = "Monster defeated"
	LogMsgPlayerDefeated   = "Player defeated"
	LogMsgPlayerFled       = "Player fled"
	LogMsgPlayerDefended   = "Player defended"
	LogMsgLootDropped      = "Loot dropped"
)
