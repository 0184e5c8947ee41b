package domain

// LootEntry pairs an item definition with its independent drop probability (0..1)
type LootEntry struct {
	Item       ItemDef
	DropChance float64
}

// Zone is a fixed hunting ground that spawns one monster type
type Zone struct {
	ID             string
	Name           string
	MonsterName    string
	MonsterHP      int
	MonsterAttack  int
	MonsterDefense int
	ExpReward      int
	MesoReward     int64
	Boss           bool
	Loot           []LootEntry
}

// Monster is the ephemeral opponent of a single encounter
type Monster struct {
	Name       string
	HP         int
	MaxHP      int
	Attack     int
	Defense    int
	ExpReward  int
	MesoReward int64
	Loot       []LootEntry
}

// Spawn instantiates the zone's monster at full health
func (z Zone) Spawn() *Monster {
	loot := make([]LootEntry, len(z.Loot))
	copy(loot, z.Loot)
	return &Monster{
		Name:       z.MonsterName,
		HP:         z.MonsterHP,
		MaxHP:      z.MonsterHP,
		Attack:     z.MonsterAttack,
		Defense:    z.MonsterDefense,
		ExpReward:  z.ExpReward,
		MesoReward: z.MesoReward,
		Loot:       loot,
	}
}
