package domain

// LevelUpPayload is the event payload for character.level_up events
type LevelUpPayload struct {
	OldLevel  int   `json:"old_level"`
	NewLevel  int   `json:"new_level"`
	Timestamp int64 `json:"timestamp"`
}

// ClassChangeAvailablePayload is the event payload for character.class_change_available events
type ClassChangeAvailablePayload struct {
	Level     int   `json:"level"`
	Timestamp int64 `json:"timestamp"`
}

// ClassChangedPayload is the event payload for character.class_changed events
type ClassChangedPayload struct {
	Job       Job   `json:"job"`
	Level     int   `json:"level"`
	Timestamp int64 `json:"timestamp"`
}

// RestedPayload is the event payload for character.rested events
type RestedPayload struct {
	Cost      int64 `json:"cost"`
	HP        int   `json:"hp"`
	Timestamp int64 `json:"timestamp"`
}

// ItemEquipPayload is the event payload for item.equipped and item.unequipped events
type ItemEquipPayload struct {
	ItemName string        `json:"item_name"`
	Slot     EquipmentSlot `json:"slot"`
	// Displaced is true when the item was unequipped to make room in its slot
	Displaced bool  `json:"displaced,omitempty"`
	Timestamp int64 `json:"timestamp"`
}

// ItemEnhancedPayload is the event payload for item.enhanced events
type ItemEnhancedPayload struct {
	ItemName    string `json:"item_name"`
	Outcome     string `json:"outcome"`
	Cost        int64  `json:"cost"`
	LevelBefore int    `json:"level_before"`
	LevelAfter  int    `json:"level_after"`
	PowerBefore int    `json:"power_before"`
	PowerAfter  int    `json:"power_after"`
	Timestamp   int64  `json:"timestamp"`
}

// ItemBoughtPayload is the event payload for item.bought events
type ItemBoughtPayload struct {
	ItemName  string `json:"item_name"`
	Price     int64  `json:"price"`
	Timestamp int64  `json:"timestamp"`
}

// ItemSoldPayload is the event payload for item.sold events
type ItemSoldPayload struct {
	ItemName  string `json:"item_name"`
	Price     int64  `json:"price"`
	Timestamp int64  `json:"timestamp"`
}

// ItemDroppedPayload is the event payload for item.dropped events
type ItemDroppedPayload struct {
	ItemName    string `json:"item_name"`
	MonsterName string `json:"monster_name"`
	ZoneID      string `json:"zone_id"`
	Timestamp   int64  `json:"timestamp"`
}

// MonsterDefeatedPayload is the event payload for combat.monster_defeated events
type MonsterDefeatedPayload struct {
	ZoneID      string `json:"zone_id"`
	MonsterName string `json:"monster_name"`
	Exp         int    `json:"exp"`
	Meso        int64  `json:"meso"`
	Turns       int    `json:"turns"`
	Timestamp   int64  `json:"timestamp"`
}

// PlayerDefeatedPayload is the event payload for combat.player_defeated events
type PlayerDefeatedPayload struct {
	ZoneID      string `json:"zone_id"`
	MonsterName string `json:"monster_name"`
	RecoveredHP int    `json:"recovered_hp"`
	Timestamp   int64  `json:"timestamp"`
}

// CombatFledPayload is the event payload for combat.fled events
type CombatFledPayload struct {
	ZoneID      string `json:"zone_id"`
	MonsterName string `json:"monster_name"`
	Timestamp   int64  `json:"timestamp"`
}

// GameSavedPayload is the event payload for game.saved events
type GameSavedPayload struct {
	Slot      string `json:"slot"`
	Bytes     int    `json:"bytes"`
	Timestamp int64  `json:"timestamp"`
}

// GameSaveFailedPayload is the event payload for game.save_failed events
type GameSaveFailedPayload struct {
	Slot      string `json:"slot"`
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
}
