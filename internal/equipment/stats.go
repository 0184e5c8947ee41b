package equipment

import "github.com/osse101/TextMaple_Go/internal/domain"

// Effective returns the character's base stats plus the power of every
// equipped item of the matching stat type. Vitality adds to max HP.
func Effective(c *domain.Character) domain.Stats {
	stats := c.BaseStats()
	bonus := Bonus(c)
	stats.Attack += bonus.Attack
	stats.Defense += bonus.Defense
	stats.MaxHP += bonus.MaxHP
	return stats
}

// Bonus returns only the equipment contribution
func Bonus(c *domain.Character) domain.Stats {
	var bonus domain.Stats
	for _, item := range Equipped(c) {
		switch item.StatType {
		case domain.StatAttack:
			bonus.Attack += item.Power
		case domain.StatDefense:
			bonus.Defense += item.Power
		case domain.StatVitality:
			bonus.MaxHP += item.Power
		}
	}
	return bonus
}

// ClampHP pulls HP back into [0, effective max HP]. Call after any change
// to equipment or max HP.
func ClampHP(c *domain.Character) {
	maxHP := Effective(c).MaxHP
	if c.HP > maxHP {
		c.HP = maxHP
	}
	if c.HP < 0 {
		c.HP = 0
	}
}

// Occupant returns the equipped item in slot, or nil
func Occupant(c *domain.Character, slot domain.EquipmentSlot) *domain.Item {
	for _, item := range c.Inventory {
		if item.Equipped && item.Slot == slot {
			return item
		}
	}
	return nil
}

// Equipped returns the equipped items in inventory order
func Equipped(c *domain.Character) []*domain.Item {
	var out []*domain.Item
	for _, item := range c.Inventory {
		if item.Equipped {
			out = append(out, item)
		}
	}
	return out
}
