package progression

// Formatted error messages
const (
	ErrMsgNegativeExpFmt         = "experience amount %d is negative: %w"
	ErrMsgAlreadyClassChangedFmt = "%s is already a %s: %w"
	ErrMsgLevelTooLowFmt         = "class change requires level %d, character is level %d: %w"
)

// Log messages
const (
	LogMsgExperienceGained     = "Experience gained"
	LogMsgLevelUp              = "Character leveled up"
	LogMsgClassChangeAvailable = "Class change available"
	LogMsgClassChanged         = "Character class changed"
)
