package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StatType is the character stat an item contributes to when equipped
type StatType int

const (
	StatAttack StatType = iota
	StatDefense
	StatVitality
)

var statTypeNames = [...]string{
	StatAttack:   "Attack",
	StatDefense:  "Defense",
	StatVitality: "Vitality",
}

func (s StatType) String() string {
	if s < 0 || int(s) >= len(statTypeNames) {
		return fmt.Sprintf("StatType(%d)", int(s))
	}
	return statTypeNames[s]
}

// Valid reports whether s is one of the declared stat types
func (s StatType) Valid() bool {
	return s >= StatAttack && s <= StatVitality
}

// MarshalText encodes the stat type by name so save files and catalogs stay readable
func (s StatType) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: stat type %d", ErrInvalidInput, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a stat type name (case-insensitive)
func (s *StatType) UnmarshalText(text []byte) error {
	parsed, err := ParseStatType(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// UnmarshalJSON accepts either the name or the numeric ordinal
func (s *StatType) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if !StatType(n).Valid() {
			return fmt.Errorf("%w: stat type %d", ErrInvalidInput, n)
		}
		*s = StatType(n)
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("%w: stat type: %v", ErrInvalidInput, err)
	}
	return s.UnmarshalText([]byte(name))
}

// ParseStatType resolves a stat type name
func ParseStatType(name string) (StatType, error) {
	for i, n := range statTypeNames {
		if strings.EqualFold(n, name) {
			return StatType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown stat type %q", ErrInvalidInput, name)
}

// EquipmentSlot is the body slot an item occupies; one equipped item per slot
type EquipmentSlot int

const (
	SlotHat EquipmentSlot = iota
	SlotWeapon
	SlotSecondary
	SlotArmor
	SlotGloves
	SlotShoes
	SlotCape
)

var equipmentSlotNames = [...]string{
	SlotHat:       "Hat",
	SlotWeapon:    "Weapon",
	SlotSecondary: "Secondary",
	SlotArmor:     "Armor",
	SlotGloves:    "Gloves",
	SlotShoes:     "Shoes",
	SlotCape:      "Cape",
}

func (s EquipmentSlot) String() string {
	if s < 0 || int(s) >= len(equipmentSlotNames) {
		return fmt.Sprintf("EquipmentSlot(%d)", int(s))
	}
	return equipmentSlotNames[s]
}

// Valid reports whether s is one of the declared slots
func (s EquipmentSlot) Valid() bool {
	return s >= SlotHat && s <= SlotCape
}

// MarshalText encodes the slot by name
func (s EquipmentSlot) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: equipment slot %d", ErrInvalidInput, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a slot name (case-insensitive)
func (s *EquipmentSlot) UnmarshalText(text []byte) error {
	parsed, err := ParseEquipmentSlot(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// UnmarshalJSON accepts either the name or the numeric ordinal
func (s *EquipmentSlot) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if !EquipmentSlot(n).Valid() {
			return fmt.Errorf("%w: equipment slot %d", ErrInvalidInput, n)
		}
		*s = EquipmentSlot(n)
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("%w: equipment slot: %v", ErrInvalidInput, err)
	}
	return s.UnmarshalText([]byte(name))
}

// ParseEquipmentSlot resolves a slot name
func ParseEquipmentSlot(name string) (EquipmentSlot, error) {
	for i, n := range equipmentSlotNames {
		if strings.EqualFold(n, name) {
			return EquipmentSlot(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown equipment slot %q", ErrInvalidInput, name)
}

// ItemDef is the immutable definition an item instance is created from.
// Shop listings, loot tables and the starter kit all hold definitions.
type ItemDef struct {
	Name        string
	StatType    StatType
	Slot        EquipmentSlot
	Power       int
	Description string
}

// Item is an owned item instance. Identity is the pointer: two items built
// from the same definition are distinct inventory entries.
type Item struct {
	Name             string
	StatType         StatType
	Slot             EquipmentSlot
	Power            int
	Description      string
	Equipped         bool
	EnhancementLevel int
}

// NewItem creates a fresh, unequipped, unenhanced item from a definition
func NewItem(def ItemDef) *Item {
	return &Item{
		Name:        def.Name,
		StatType:    def.StatType,
		Slot:        def.Slot,
		Power:       def.Power,
		Description: def.Description,
	}
}

// DisplayName returns the base name with the enhancement level appended when above zero
func (i *Item) DisplayName() string {
	if i.EnhancementLevel > 0 {
		return fmt.Sprintf(ItemDisplayNameEnhancedFmt, i.Name, i.EnhancementLevel)
	}
	return i.Name
}

// Price is the catalog value of the item
func (i *Item) Price() int64 {
	return int64(i.Power) * ItemPriceMultiplier
}

// SalePrice is what the shop pays for the item
func (i *Item) SalePrice() int64 {
	return int64(i.Power) * ItemSalePriceMultiplier
}

// Clone returns an independent copy with the same runtime state
func (i *Item) Clone() *Item {
	c := *i
	return &c
}
