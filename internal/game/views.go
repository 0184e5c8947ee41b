package game

import (
	"github.com/osse101/TextMaple_Go/internal/combat"
	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/economy"
	"github.com/osse101/TextMaple_Go/internal/equipment"
	"github.com/osse101/TextMaple_Go/internal/progression"
)

// StatusView is the character sheet
type StatusView struct {
	Name                 string
	Job                  domain.Job
	Level                int
	Exp                  int
	ExpToNextLevel       int
	Base                 domain.Stats
	Effective            domain.Stats
	Bonus                domain.Stats
	HP                   int
	Meso                 int64
	ClassChanged         bool
	ClassChangeAvailable bool
	InEncounter          bool
}

// ItemView is one inventory row
type ItemView struct {
	Index            int
	Name             string
	DisplayName      string
	StatType         domain.StatType
	Slot             domain.EquipmentSlot
	Power            int
	Description      string
	Equipped         bool
	EnhancementLevel int
	SalePrice        int64
}

// ListingView is one shop row
type ListingView struct {
	Index       int
	Name        string
	StatType    domain.StatType
	Slot        domain.EquipmentSlot
	Power       int
	Description string
	Price       int64
	Purchased   bool
	Affordable  bool
}

// ZoneView is one hunting ground on the zone list
type ZoneView struct {
	ID          string
	Name        string
	MonsterName string
	Boss        bool
	ExpReward   int
	MesoReward  int64
}

// EncounterView is the state of the current or just-finished fight
type EncounterView struct {
	ZoneID       string
	ZoneName     string
	MonsterName  string
	MonsterHP    int
	MonsterMaxHP int
	PlayerHP     int
	PlayerMaxHP  int
	State        combat.State
	Turns        int
}

// SavesView lists the save slots in the store
type SavesView struct {
	// Current is the slot this session writes to
	Current string
	Slots   []string
}

func newStatusView(c *domain.Character, inEncounter bool) *StatusView {
	return &StatusView{
		Name:                 c.Name,
		Job:                  c.Job,
		Level:                c.Level,
		Exp:                  c.Exp,
		ExpToNextLevel:       c.ExpToNextLevel,
		Base:                 c.BaseStats(),
		Effective:            equipment.Effective(c),
		Bonus:                equipment.Bonus(c),
		HP:                   c.HP,
		Meso:                 c.Meso,
		ClassChanged:         c.ClassChanged,
		ClassChangeAvailable: progression.ClassChangeAvailable(c),
		InEncounter:          inEncounter,
	}
}

func newInventoryView(c *domain.Character) []ItemView {
	views := make([]ItemView, len(c.Inventory))
	for i, item := range c.Inventory {
		views[i] = ItemView{
			Index:            i,
			Name:             item.Name,
			DisplayName:      item.DisplayName(),
			StatType:         item.StatType,
			Slot:             item.Slot,
			Power:            item.Power,
			Description:      item.Description,
			Equipped:         item.Equipped,
			EnhancementLevel: item.EnhancementLevel,
			SalePrice:        item.SalePrice(),
		}
	}
	return views
}

func newShopView(shop *economy.Shop, meso int64) []ListingView {
	views := make([]ListingView, len(shop.Listings))
	for i, l := range shop.Listings {
		views[i] = ListingView{
			Index:       i,
			Name:        l.Item.Name,
			StatType:    l.Item.StatType,
			Slot:        l.Item.Slot,
			Power:       l.Item.Power,
			Description: l.Item.Description,
			Price:       l.Price,
			Purchased:   l.Purchased,
			Affordable:  meso >= l.Price,
		}
	}
	return views
}

func newZonesView(zones []domain.Zone) []ZoneView {
	views := make([]ZoneView, len(zones))
	for i, z := range zones {
		views[i] = ZoneView{
			ID:          z.ID,
			Name:        z.Name,
			MonsterName: z.MonsterName,
			Boss:        z.Boss,
			ExpReward:   z.ExpReward,
			MesoReward:  z.MesoReward,
		}
	}
	return views
}

func newEncounterView(enc *combat.Encounter, c *domain.Character) *EncounterView {
	return &EncounterView{
		ZoneID:       enc.Zone.ID,
		ZoneName:     enc.Zone.Name,
		MonsterName:  enc.Monster.Name,
		MonsterHP:    enc.Monster.HP,
		MonsterMaxHP: enc.Monster.MaxHP,
		PlayerHP:     c.HP,
		PlayerMaxHP:  equipment.Effective(c).MaxHP,
		State:        enc.State,
		Turns:        enc.Turns,
	}
}
