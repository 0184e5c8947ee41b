// Package persistence converts game state to and from the save document and
// loads or stores it through a pluggable Store.
package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/economy"
	"github.com/osse101/TextMaple_Go/internal/equipment"
	"github.com/osse101/TextMaple_Go/internal/progression"
	"github.com/osse101/TextMaple_Go/internal/validation"
)

var (
	documentSchema    = validation.NewSchemaValidator(nil)
	documentValidator = validator.New()
)

// Snapshot captures a deep, independent copy of the persistent state
func Snapshot(c *domain.Character, shop *economy.Shop) *domain.SaveState {
	var flags []bool
	if shop != nil {
		flags = shop.Flags()
	}
	return &domain.SaveState{
		Character:     c.Clone(),
		ShopPurchases: flags,
		ClassChanged:  c.ClassChanged,
	}
}

// Encode renders a save state as an indented JSON document
func Encode(state *domain.SaveState) ([]byte, error) {
	if state == nil || state.Character == nil {
		return nil, fmt.Errorf(ErrMsgNilStateFmt, domain.ErrInvalidInput)
	}

	doc := Document{
		Character:     newCharacterRecord(state.Character),
		Inventory:     make([]ItemRecord, len(state.Character.Inventory)),
		ShopPurchases: append([]bool{}, state.ShopPurchases...),
		ClassChanged:  state.ClassChanged || state.Character.ClassChanged,
	}
	for i, item := range state.Character.Inventory {
		doc.Inventory[i] = newItemRecord(item)
	}

	data, err := json.MarshalIndent(doc, "", documentIndent)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgEncodeDocumentFmt, err)
	}
	return data, nil
}

// Decode parses, validates and normalizes a save document. Every failure
// wraps domain.ErrMalformedSaveData.
func Decode(data []byte) (*domain.SaveState, error) {
	state, _, err := decode(data)
	return state, err
}

// decode also reports whether normalization had to change anything
func decode(data []byte) (*domain.SaveState, bool, error) {
	if err := documentSchema.ValidateBytes(data, validation.SaveSchema); err != nil {
		return nil, false, fmt.Errorf(ErrMsgSchemaDocumentFmt, err, domain.ErrMalformedSaveData)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf(ErrMsgDecodeDocumentFmt, err, domain.ErrMalformedSaveData)
	}
	if err := documentValidator.Struct(doc); err != nil {
		return nil, false, fmt.Errorf(ErrMsgValidateDocumentFmt, err, domain.ErrMalformedSaveData)
	}

	c := doc.Character.toCharacter()
	c.ClassChanged = c.ClassChanged || doc.ClassChanged
	for _, rec := range doc.Inventory {
		c.Inventory = append(c.Inventory, rec.toItem())
	}

	changed := normalize(c)

	if c.ClassChanged && c.Level < domain.ClassChangeMinLevel {
		return nil, false, fmt.Errorf(ErrMsgClassChangeLevelFmt, c.Level, domain.ErrMalformedSaveData)
	}

	return &domain.SaveState{
		Character:     c,
		ShopPurchases: append([]bool{}, doc.ShopPurchases...),
		ClassChanged:  c.ClassChanged,
	}, changed, nil
}

// normalize restores the character invariants: job follows the class-change
// flag, exp sits below the threshold, one equipped item per slot, HP in range.
// Returns true when anything was adjusted.
func normalize(c *domain.Character) bool {
	changed := false

	job := domain.JobNovice
	if c.ClassChanged {
		job = domain.JobMage
	}
	c.Job = job

	if progression.ApplyLevelUps(c) > 0 {
		changed = true
	}

	occupied := make(map[domain.EquipmentSlot]bool)
	for _, item := range c.Inventory {
		if !item.Equipped {
			continue
		}
		if occupied[item.Slot] {
			item.Equipped = false
			changed = true
			continue
		}
		occupied[item.Slot] = true
	}

	hp := c.HP
	equipment.ClampHP(c)
	if c.HP != hp {
		changed = true
	}

	return changed
}

// Restore rebuilds the live character and the shop. The shop always comes
// from the fixed definitions; saved flags are applied positionally.
func Restore(state *domain.SaveState, shopDefs []domain.ItemDef) (*domain.Character, *economy.Shop) {
	shop := economy.NewShop(shopDefs)
	if state == nil || state.Character == nil {
		return domain.NewCharacter(), shop
	}
	shop.ApplyFlags(state.ShopPurchases)
	c := state.Character.Clone()
	if state.ClassChanged {
		c.ClassChanged = true
		c.Job = domain.JobMage
	}
	return c, shop
}
