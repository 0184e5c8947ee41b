package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking. These represent domain events that can be published
// and consumed by multiple modules.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.sold")
const (
	// EventTypeLevelUp is published once per level gained during an experience grant
	EventTypeLevelUp = "character.level_up"

	// EventTypeClassChangeAvailable is published when a grant leaves an unadvanced character at level 10+
	EventTypeClassChangeAvailable = "character.class_change_available"

	// EventTypeClassChanged is published after a successful job advancement
	EventTypeClassChanged = "character.class_changed"

	// EventTypeRested is published when the character pays for a full heal
	EventTypeRested = "character.rested"

	// EventTypeItemEquipped is published when an item is equipped
	EventTypeItemEquipped = "item.equipped"

	// EventTypeItemUnequipped is published when an item is unequipped, including
	// the implicit unequip of a slot's previous occupant
	EventTypeItemUnequipped = "item.unequipped"

	// EventTypeItemEnhanced is published after every paid enhancement attempt
	EventTypeItemEnhanced = "item.enhanced"

	// EventTypeItemBought is published when a shop listing is purchased
	EventTypeItemBought = "item.bought"

	// EventTypeItemSold is published when an item is sold to the shop
	EventTypeItemSold = "item.sold"

	// EventTypeItemDropped is published for every loot entry that drops
	EventTypeItemDropped = "item.dropped"

	// EventTypeMonsterDefeated is published when an encounter ends in victory
	EventTypeMonsterDefeated = "combat.monster_defeated"

	// EventTypePlayerDefeated is published when an encounter ends in defeat
	EventTypePlayerDefeated = "combat.player_defeated"

	// EventTypeCombatFled is published when the player flees an encounter
	EventTypeCombatFled = "combat.fled"

	// EventTypeGameSaved is published after a save document is written
	EventTypeGameSaved = "game.saved"

	// EventTypeGameSaveFailed is published when writing a save document fails
	EventTypeGameSaveFailed = "game.save_failed"
)
