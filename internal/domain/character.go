package domain

import "fmt"

// Job is the character's class
type Job string

const (
	JobNovice Job = "Novice"
	JobMage   Job = "Mage"
)

// Stats are the three aggregate combat stats
type Stats struct {
	Attack  int
	Defense int
	MaxHP   int
}

// Character is the player. Attack, Defense and MaxHP are base values;
// equipment bonuses are derived on read (see the equipment package).
type Character struct {
	Name           string
	Job            Job
	Level          int
	BaseAttack     int
	BaseDefense    int
	HP             int
	MaxHP          int
	Meso           int64
	Exp            int
	ExpToNextLevel int
	ClassChanged   bool
	Inventory      []*Item
}

// NewCharacter returns a level 1 Novice with the documented defaults and an empty inventory
func NewCharacter() *Character {
	return &Character{
		Name:           DefaultCharacterName,
		Job:            JobNovice,
		Level:          DefaultLevel,
		BaseAttack:     DefaultAttack,
		BaseDefense:    DefaultDefense,
		HP:             DefaultMaxHP,
		MaxHP:          DefaultMaxHP,
		Meso:           DefaultMeso,
		Exp:            0,
		ExpToNextLevel: DefaultExpToNextLevel,
		Inventory:      []*Item{},
	}
}

// BaseStats returns the pre-equipment stats
func (c *Character) BaseStats() Stats {
	return Stats{Attack: c.BaseAttack, Defense: c.BaseDefense, MaxHP: c.MaxHP}
}

// ItemAt returns the inventory item at index
func (c *Character) ItemAt(index int) (*Item, error) {
	if index < 0 || index >= len(c.Inventory) {
		return nil, fmt.Errorf(ErrMsgIndexOutOfRangeFmt, index, len(c.Inventory), ErrInvalidSelection)
	}
	return c.Inventory[index], nil
}

// IndexOf returns the inventory position of item by identity, or -1
func (c *Character) IndexOf(item *Item) int {
	for i, it := range c.Inventory {
		if it == item {
			return i
		}
	}
	return -1
}

// Owns reports whether item is in the inventory (identity, not name)
func (c *Character) Owns(item *Item) bool {
	return item != nil && c.IndexOf(item) >= 0
}

// AddItem appends item in acquisition order. Adding an item already owned is a no-op.
func (c *Character) AddItem(item *Item) {
	if item == nil || c.Owns(item) {
		return
	}
	c.Inventory = append(c.Inventory, item)
}

// RemoveItem removes exactly this item instance, preserving the order of the rest
func (c *Character) RemoveItem(item *Item) bool {
	idx := c.IndexOf(item)
	if idx < 0 {
		return false
	}
	c.Inventory = append(c.Inventory[:idx], c.Inventory[idx+1:]...)
	return true
}

// Clone deep-copies the character including every inventory item
func (c *Character) Clone() *Character {
	cp := *c
	cp.Inventory = make([]*Item, len(c.Inventory))
	for i, it := range c.Inventory {
		cp.Inventory[i] = it.Clone()
	}
	return &cp
}
