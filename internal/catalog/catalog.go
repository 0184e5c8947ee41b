// Package catalog holds the fixed game data: item definitions, the starter kit,
// the shop listings and the hunting grounds. The default catalog is embedded
// in the binary; CATALOG_PATH points the game at an alternative file.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/TextMaple_Go/internal/domain"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Sentinel errors for catalog loading
var (
	ErrDuplicateItem = errors.New("duplicate item definition")
	ErrDuplicateZone = errors.New("duplicate zone id")
	ErrInvalidItem   = errors.New("invalid item reference")
	ErrInvalidConfig = errors.New("invalid catalog configuration")
)

// File is the on-disk catalog layout
type File struct {
	Version     string     `yaml:"version" validate:"required"`
	Description string     `yaml:"description"`
	Items       []ItemSpec `yaml:"items" validate:"required,dive"`
	StarterKit  []string   `yaml:"starter_kit"`
	Shop        []string   `yaml:"shop"`
	Zones       []ZoneSpec `yaml:"zones" validate:"required,dive"`
}

// ItemSpec is a single item definition
type ItemSpec struct {
	Name        string `yaml:"name" validate:"required"`
	StatType    string `yaml:"stat_type" validate:"required"`
	Slot        string `yaml:"slot" validate:"required"`
	Power       int    `yaml:"power" validate:"gte=0"`
	Description string `yaml:"description"`
}

// MonsterSpec describes the monster a zone spawns
type MonsterSpec struct {
	Name    string `yaml:"name" validate:"required"`
	HP      int    `yaml:"hp" validate:"gt=0"`
	Attack  int    `yaml:"attack" validate:"gte=0"`
	Defense int    `yaml:"defense" validate:"gte=0"`
}

// LootSpec references an item by name with its drop chance
type LootSpec struct {
	Item       string  `yaml:"item" validate:"required"`
	DropChance float64 `yaml:"drop_chance" validate:"gte=0,lte=1"`
}

// ZoneSpec is one hunting ground
type ZoneSpec struct {
	ID         string      `yaml:"id" validate:"required"`
	Name       string      `yaml:"name" validate:"required"`
	Boss       bool        `yaml:"boss"`
	Monster    MonsterSpec `yaml:"monster"`
	ExpReward  int         `yaml:"exp_reward" validate:"gte=0"`
	MesoReward int64       `yaml:"meso_reward" validate:"gte=0"`
	Loot       []LootSpec  `yaml:"loot" validate:"dive"`
}

// Catalog is the resolved, immutable game data
type Catalog struct {
	items      map[string]domain.ItemDef
	starterKit []domain.ItemDef
	shop       []domain.ItemDef
	zones      []domain.Zone
	zoneIndex  map[string]int
}

// Default returns the catalog embedded in the binary
func Default() (*Catalog, error) {
	return Parse(defaultCatalogYAML)
}

// Open returns the catalog at path, or the embedded one when path is empty
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Load reads and resolves a catalog file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFmt, path, err)
	}
	return Parse(data)
}

// Parse decodes, validates and resolves catalog YAML. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFmt, errors.Join(ErrInvalidConfig, err))
	}

	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf(ErrMsgValidateCatalogFmt, err, ErrInvalidConfig)
	}

	return resolve(&file)
}

func resolve(file *File) (*Catalog, error) {
	c := &Catalog{
		items:     make(map[string]domain.ItemDef, len(file.Items)),
		zoneIndex: make(map[string]int, len(file.Zones)),
	}

	for _, spec := range file.Items {
		if _, exists := c.items[spec.Name]; exists {
			return nil, fmt.Errorf(ErrMsgDuplicateItemFmt, spec.Name, ErrDuplicateItem)
		}
		def, err := spec.toDef()
		if err != nil {
			return nil, err
		}
		c.items[spec.Name] = def
	}

	var err error
	if c.starterKit, err = c.lookupAll(refStarterKit, file.StarterKit); err != nil {
		return nil, err
	}
	if c.shop, err = c.lookupAll(refShop, file.Shop); err != nil {
		return nil, err
	}

	for _, zs := range file.Zones {
		if _, exists := c.zoneIndex[zs.ID]; exists {
			return nil, fmt.Errorf(ErrMsgDuplicateZoneFmt, zs.ID, ErrDuplicateZone)
		}
		zone := domain.Zone{
			ID:             zs.ID,
			Name:           zs.Name,
			MonsterName:    zs.Monster.Name,
			MonsterHP:      zs.Monster.HP,
			MonsterAttack:  zs.Monster.Attack,
			MonsterDefense: zs.Monster.Defense,
			ExpReward:      zs.ExpReward,
			MesoReward:     zs.MesoReward,
			Boss:           zs.Boss,
		}
		for _, ls := range zs.Loot {
			def, ok := c.items[ls.Item]
			if !ok {
				return nil, fmt.Errorf(ErrMsgUnknownItemRefFmt, fmt.Sprintf(refLootFmt, zs.ID), ls.Item, ErrInvalidItem)
			}
			zone.Loot = append(zone.Loot, domain.LootEntry{Item: def, DropChance: ls.DropChance})
		}
		c.zoneIndex[zs.ID] = len(c.zones)
		c.zones = append(c.zones, zone)
	}

	return c, nil
}

func (s ItemSpec) toDef() (domain.ItemDef, error) {
	stat, err := domain.ParseStatType(s.StatType)
	if err != nil {
		return domain.ItemDef{}, fmt.Errorf(ErrMsgInvalidItemFieldFmt, s.Name, err, ErrInvalidConfig)
	}
	slot, err := domain.ParseEquipmentSlot(s.Slot)
	if err != nil {
		return domain.ItemDef{}, fmt.Errorf(ErrMsgInvalidItemFieldFmt, s.Name, err, ErrInvalidConfig)
	}
	return domain.ItemDef{
		Name:        s.Name,
		StatType:    stat,
		Slot:        slot,
		Power:       s.Power,
		Description: s.Description,
	}, nil
}

func (c *Catalog) lookupAll(ref string, names []string) ([]domain.ItemDef, error) {
	defs := make([]domain.ItemDef, 0, len(names))
	for _, name := range names {
		def, ok := c.items[name]
		if !ok {
			return nil, fmt.Errorf(ErrMsgUnknownItemRefFmt, ref, name, ErrInvalidItem)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Item returns a definition by name
func (c *Catalog) Item(name string) (domain.ItemDef, bool) {
	def, ok := c.items[name]
	return def, ok
}

// StarterKit returns the items seeded into a fresh game, in order
func (c *Catalog) StarterKit() []domain.ItemDef {
	return append([]domain.ItemDef(nil), c.starterKit...)
}

// Shop returns the shop definitions in their fixed listing order
func (c *Catalog) Shop() []domain.ItemDef {
	return append([]domain.ItemDef(nil), c.shop...)
}

// Zones returns every hunting ground in declaration order
func (c *Catalog) Zones() []domain.Zone {
	return append([]domain.Zone(nil), c.zones...)
}

// Zone looks up a hunting ground by id
func (c *Catalog) Zone(id string) (domain.Zone, error) {
	idx, ok := c.zoneIndex[id]
	if !ok {
		return domain.Zone{}, fmt.Errorf(ErrMsgUnknownZoneFmt, id, domain.ErrUnknownZone)
	}
	return c.zones[idx], nil
}
