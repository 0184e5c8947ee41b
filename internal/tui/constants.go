package tui

// Screen titles and prompts
const (
	TitleBanner     = "-- TextMaple --"
	TitleTown       = "Henesys"
	TitleStatus     = "Character"
	TitleInventory  = "Inventory"
	TitleShop       = "Shop"
	TitleZones      = "Hunting grounds"
	TitleEnhance    = "Star force"
	TitleEncounter  = "Battle"
	TitleSaves      = "Save slots"
	MsgGoodbye      = "See you next time.\n"
	MsgWorking      = "Working..."
	MsgEmptyList    = "  (nothing here)"
	MsgPressAnyKey  = "Press any key to return to town"
	MsgSaved        = "Game saved."
	MsgWarningFmt   = "Warning: %s"
	MsgErrorFmt     = "Error: %v"
	MsgRejectedFmt  = "Can't do that: %v"
	MsgEnterZoneFmt = "A wild %s appears in %s!"
)

// Key help lines
const (
	HelpTown      = "[1] Status  [2] Inventory  [3] Shop  [4] Hunt  [5] Rest (500)  [6] Class change  [7] Save  [8] Slots  [q] Quit"
	HelpBack      = "[esc] Back"
	HelpInventory = "[↑/↓] Select  [e] Equip/unequip  [u] Enhance  [s] Sell  [esc] Back"
	HelpShop      = "[↑/↓] Select  [enter] Buy  [esc] Back"
	HelpZones     = "[↑/↓] Select  [enter] Hunt  [esc] Back"
	HelpEnhance   = "[y] Enhance  [esc] Back"
	HelpEncounter = "[a] Attack  [d] Defend  [f] Flee"
)

// Key bindings
const (
	KeyQuit    = "q"
	KeyCtrlC   = "ctrl+c"
	KeyBack    = "esc"
	KeyEnter   = "enter"
	KeyUp      = "up"
	KeyDown    = "down"
	KeyUpAlt   = "k"
	KeyDownAlt = "j"
	KeyStatus  = "1"
	KeyItems   = "2"
	KeyShop    = "3"
	KeyHunt    = "4"
	KeyRest    = "5"
	KeyAdvance = "6"
	KeySave    = "7"
	KeySaves   = "8"
	KeyEquip   = "e"
	KeyEnhance = "u"
	KeySell    = "s"
	KeyConfirm = "y"
	KeyAttack  = "a"
	KeyDefend  = "d"
	KeyFlee    = "f"
)

// Log messages
const (
	LogMsgCommandFailed = "Command failed"
	LogMsgQuitUnsaved   = "Quit without a final save"
)
