// Package combat resolves turn-based encounters and distributes victory rewards.
package combat

import (
	"context"
	"fmt"
	"math"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/equipment"
	"github.com/osse101/TextMaple_Go/internal/event"
	"github.com/osse101/TextMaple_Go/internal/logger"
	"github.com/osse101/TextMaple_Go/internal/progression"
	"github.com/osse101/TextMaple_Go/internal/utils"
)

// ZoneSource resolves hunting grounds by id
type ZoneSource interface {
	Zone(id string) (domain.Zone, error)
}

// Service defines combat operations
type Service interface {
	Start(ctx context.Context, zoneID string) (*Encounter, error)
	Resolve(ctx context.Context, c *domain.Character, enc *Encounter, action Action) (*TurnResult, error)
}

type service struct {
	zones       ZoneSource
	progression progression.Service
	rnd         utils.Rand
	events      *event.Emitter
}

// NewService creates a new combat service. publisher may be nil.
func NewService(zones ZoneSource, progressionSvc progression.Service, rnd utils.Rand, publisher event.Publisher) Service {
	return &service{
		zones:       zones,
		progression: progressionSvc,
		rnd:         rnd,
		events:      event.NewEmitter(publisher),
	}
}

// Start spawns the zone's monster at full health
func (s *service) Start(ctx context.Context, zoneID string) (*Encounter, error) {
	zone, err := s.zones.Zone(zoneID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgStartEncounterFmt, err)
	}

	enc := &Encounter{Zone: zone, Monster: zone.Spawn(), State: StateOngoing}
	logger.FromContext(ctx).Info(LogMsgEncounterStarted, "zone", zone.ID, "monster", enc.Monster.Name, "monster_hp", enc.Monster.HP)
	return enc, nil
}

// Resolve applies one player command. Attack resolves one exchange: the player
// strikes, and a surviving monster strikes back in the same turn.
func (s *service) Resolve(ctx context.Context, c *domain.Character, enc *Encounter, action Action) (*TurnResult, error) {
	if enc == nil {
		return nil, domain.ErrNoEncounter
	}
	if enc.Over() {
		return nil, fmt.Errorf(ErrMsgEncounterOverFmt, enc.Zone.Name, enc.State, domain.ErrEncounterOver)
	}

	switch action {
	case ActionAttack:
		return s.attack(ctx, c, enc)
	case ActionDefend:
		enc.Turns++
		logger.FromContext(ctx).Info(LogMsgPlayerDefended, "zone", enc.Zone.ID)
		return s.result(c, enc, action), nil
	case ActionFlee:
		enc.Turns++
		enc.State = StateFled
		logger.FromContext(ctx).Info(LogMsgPlayerFled, "zone", enc.Zone.ID, "monster", enc.Monster.Name)
		s.events.Emit(ctx, NewCombatFledEvent(enc))
		return s.result(c, enc, action), nil
	default:
		return nil, fmt.Errorf(ErrMsgUnknownActionFmt, int(action), domain.ErrInvalidInput)
	}
}

func (s *service) attack(ctx context.Context, c *domain.Character, enc *Encounter) (*TurnResult, error) {
	log := logger.FromContext(ctx)
	stats := equipment.Effective(c)
	monster := enc.Monster
	enc.Turns++

	dealt := Damage(stats.Attack, monster.Defense)
	monster.HP -= dealt
	log.Debug(LogMsgPlayerAttacked, "damage", dealt, "monster_hp", monster.HP)

	if monster.HP <= 0 {
		enc.State = StateVictory
		rewards, err := s.distributeRewards(ctx, c, enc)
		if err != nil {
			return nil, err
		}
		res := s.result(c, enc, ActionAttack)
		res.DamageDealt = dealt
		res.Rewards = rewards
		return res, nil
	}

	taken := Damage(monster.Attack, stats.Defense)
	c.HP -= taken
	log.Debug(LogMsgMonsterAttacked, "damage", taken, "player_hp", c.HP)

	res := &TurnResult{Action: ActionAttack, DamageDealt: dealt, DamageTaken: taken}
	if c.HP <= 0 {
		enc.State = StateDefeat
		c.HP = int(math.Floor(float64(stats.MaxHP) * domain.DefeatRecoveryRatio))
		res.RecoveredHP = c.HP
		log.Info(LogMsgPlayerDefeated, "zone", enc.Zone.ID, "monster", monster.Name, "recovered_hp", c.HP)
		s.events.Emit(ctx, NewPlayerDefeatedEvent(enc, c.HP))
	}

	res.MonsterHP = monster.HP
	res.PlayerHP = c.HP
	res.State = enc.State
	return res, nil
}

// distributeRewards grants experience, then meso, then rolls the loot table in
// declared order with one independent draw per entry
func (s *service) distributeRewards(ctx context.Context, c *domain.Character, enc *Encounter) (*Rewards, error) {
	log := logger.FromContext(ctx)
	monster := enc.Monster

	level, err := s.progression.AddExperience(ctx, c, monster.ExpReward)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGrantExperienceFmt, err)
	}
	c.Meso += monster.MesoReward

	rewards := &Rewards{Exp: monster.ExpReward, Meso: monster.MesoReward, Level: level}
	for _, entry := range monster.Loot {
		if !utils.Chance(s.rnd, entry.DropChance) {
			continue
		}
		item := domain.NewItem(entry.Item)
		c.AddItem(item)
		rewards.Drops = append(rewards.Drops, item)
		log.Info(LogMsgLootDropped, "item", item.Name, "monster", monster.Name)
		s.events.Emit(ctx, NewItemDroppedEvent(enc, item))
	}

	log.Info(LogMsgMonsterDefeated, "zone", enc.Zone.ID, "monster", monster.Name, "turns", enc.Turns, "exp", rewards.Exp, "meso", rewards.Meso, "drops", len(rewards.Drops))
	s.events.Emit(ctx, NewMonsterDefeatedEvent(enc))
	return rewards, nil
}

func (s *service) result(c *domain.Character, enc *Encounter, action Action) *TurnResult {
	return &TurnResult{
		Action:    action,
		MonsterHP: enc.Monster.HP,
		PlayerHP:  c.HP,
		State:     enc.State,
	}
}
