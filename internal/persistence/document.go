package persistence

import "github.com/osse101/TextMaple_Go/internal/domain"

// Document is the persisted save layout. Pointer fields distinguish an absent
// value, which takes the documented default, from an explicit zero.
type Document struct {
	Character     *CharacterRecord `json:"character"`
	Inventory     []ItemRecord     `json:"inventory" validate:"dive"`
	ShopPurchases []bool           `json:"shopPurchases"`
	ClassChanged  bool             `json:"classChanged"`
}

// CharacterRecord is the character part of a save
type CharacterRecord struct {
	Name           *string `json:"name,omitempty"`
	Job            string  `json:"job,omitempty"`
	Level          *int    `json:"level,omitempty" validate:"omitempty,gte=1"`
	Attack         *int    `json:"attack,omitempty" validate:"omitempty,gte=0"`
	Defense        *int    `json:"defense,omitempty" validate:"omitempty,gte=0"`
	HP             *int    `json:"hp,omitempty" validate:"omitempty,gte=0"`
	MaxHP          *int    `json:"maxHp,omitempty" validate:"omitempty,gte=1"`
	Meso           *int64  `json:"meso,omitempty" validate:"omitempty,gte=0"`
	Exp            *int    `json:"exp,omitempty" validate:"omitempty,gte=0"`
	ExpToNextLevel *int    `json:"expToNextLevel,omitempty" validate:"omitempty,gte=1"`
	ClassChanged   bool    `json:"classChanged"`
}

// ItemRecord is one inventory entry
type ItemRecord struct {
	Name             string               `json:"name" validate:"required"`
	StatType         domain.StatType      `json:"statType"`
	Power            int                  `json:"power" validate:"gte=0"`
	Description      string               `json:"description"`
	EquipmentSlot    domain.EquipmentSlot `json:"equipmentSlot"`
	Equipped         bool                 `json:"equipped"`
	EnhancementLevel int                  `json:"enhancementLevel" validate:"gte=0,lte=30"`
}

func newCharacterRecord(c *domain.Character) *CharacterRecord {
	name := c.Name
	level := c.Level
	attack := c.BaseAttack
	defense := c.BaseDefense
	hp := c.HP
	maxHP := c.MaxHP
	meso := c.Meso
	exp := c.Exp
	expToNext := c.ExpToNextLevel
	return &CharacterRecord{
		Name:           &name,
		Job:            string(c.Job),
		Level:          &level,
		Attack:         &attack,
		Defense:        &defense,
		HP:             &hp,
		MaxHP:          &maxHP,
		Meso:           &meso,
		Exp:            &exp,
		ExpToNextLevel: &expToNext,
		ClassChanged:   c.ClassChanged,
	}
}

func newItemRecord(item *domain.Item) ItemRecord {
	return ItemRecord{
		Name:             item.Name,
		StatType:         item.StatType,
		Power:            item.Power,
		Description:      item.Description,
		EquipmentSlot:    item.Slot,
		Equipped:         item.Equipped,
		EnhancementLevel: item.EnhancementLevel,
	}
}

func (r ItemRecord) toItem() *domain.Item {
	return &domain.Item{
		Name:             r.Name,
		StatType:         r.StatType,
		Slot:             r.EquipmentSlot,
		Power:            r.Power,
		Description:      r.Description,
		Equipped:         r.Equipped,
		EnhancementLevel: r.EnhancementLevel,
	}
}

// toCharacter applies defaults for every absent field
func (r *CharacterRecord) toCharacter() *domain.Character {
	c := domain.NewCharacter()
	if r == nil {
		return c
	}
	if r.Name != nil && *r.Name != "" {
		c.Name = *r.Name
	}
	setInt(&c.Level, r.Level)
	setInt(&c.BaseAttack, r.Attack)
	setInt(&c.BaseDefense, r.Defense)
	setInt(&c.MaxHP, r.MaxHP)
	c.HP = c.MaxHP
	setInt(&c.HP, r.HP)
	if r.Meso != nil {
		c.Meso = *r.Meso
	}
	setInt(&c.Exp, r.Exp)
	setInt(&c.ExpToNextLevel, r.ExpToNextLevel)
	c.ClassChanged = r.ClassChanged
	return c
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
