package game

import (
	"fmt"

	"github.com/osse101/TextMaple_Go/internal/combat"
	"github.com/osse101/TextMaple_Go/internal/economy"
	"github.com/osse101/TextMaple_Go/internal/enhancement"
	"github.com/osse101/TextMaple_Go/internal/equipment"
)

// Command is one player intent understood by the session
type Command int

const (
	CommandViewStatus Command = iota
	CommandViewInventory
	CommandViewZones
	CommandEquipToggle
	CommandEnhanceQuote
	CommandEnhance
	CommandOpenShop
	CommandPurchase
	CommandSell
	CommandEnterZone
	CommandAttack
	CommandDefend
	CommandFlee
	CommandClassChange
	CommandRest
	CommandSave
	CommandQuit
	CommandViewSaves
)

var commandNames = [...]string{
	CommandViewStatus:    "view_status",
	CommandViewInventory: "view_inventory",
	CommandViewZones:     "view_zones",
	CommandEquipToggle:   "equip_toggle",
	CommandEnhanceQuote:  "enhance_quote",
	CommandEnhance:       "enhance",
	CommandOpenShop:      "open_shop",
	CommandPurchase:      "purchase",
	CommandSell:          "sell",
	CommandEnterZone:     "enter_zone",
	CommandAttack:        "attack",
	CommandDefend:        "defend",
	CommandFlee:          "flee",
	CommandClassChange:   "class_change",
	CommandRest:          "rest",
	CommandSave:          "save",
	CommandQuit:          "quit",
	CommandViewSaves:     "view_saves",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandNames[c]
}

// mutatesOutsideCombat reports commands that are refused while a fight is on
func (c Command) mutatesOutsideCombat() bool {
	switch c {
	case CommandEquipToggle, CommandEnhance, CommandPurchase, CommandSell,
		CommandEnterZone, CommandClassChange, CommandRest:
		return true
	}
	return false
}

func (c Command) combatAction() (combat.Action, bool) {
	switch c {
	case CommandAttack:
		return combat.ActionAttack, true
	case CommandDefend:
		return combat.ActionDefend, true
	case CommandFlee:
		return combat.ActionFlee, true
	}
	return 0, false
}

// Request is a command plus its argument. Index is a 0-based position in the
// inventory or shop list; ZoneID names a hunting ground.
type Request struct {
	Command Command
	Index   int
	ZoneID  string
}

// Result is the structured outcome of a dispatched request. Only the fields
// relevant to the command are set.
type Result struct {
	Command Command
	Status  *StatusView

	Inventory []ItemView
	Shop      []ListingView
	Zones     []ZoneView
	Encounter *EncounterView
	Saves     *SavesView

	Toggle      *equipment.ToggleResult
	Quote       *enhancement.Quote
	Enhancement *enhancement.Result
	Purchase    *economy.PurchaseResult
	Sale        *economy.SaleResult
	Rest        *economy.RestResult
	Turn        *combat.TurnResult

	Saved bool
	Quit  bool
	// Warning carries a non-fatal problem, such as a failed save
	Warning string
}
