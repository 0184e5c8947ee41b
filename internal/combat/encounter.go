package combat

import (
	"fmt"

	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/progression"
)

// State is the lifecycle of an encounter. Everything but Ongoing is terminal.
type State int

const (
	StateOngoing State = iota
	StateVictory
	StateDefeat
	StateFled
)

func (s State) String() string {
	switch s {
	case StateOngoing:
		return "ongoing"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	case StateFled:
		return "fled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further actions are accepted
func (s State) Terminal() bool {
	return s != StateOngoing
}

// Action is a player command inside an encounter
type Action int

const (
	ActionAttack Action = iota
	ActionDefend
	ActionFlee
)

func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionDefend:
		return "defend"
	case ActionFlee:
		return "flee"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Encounter is one fight against a monster spawned from a zone
type Encounter struct {
	Zone    domain.Zone
	Monster *domain.Monster
	State   State
	Turns   int
}

// Over reports whether the encounter has reached a terminal state
func (e *Encounter) Over() bool {
	return e.State.Terminal()
}

// Rewards is what a victory paid out
type Rewards struct {
	Exp   int
	Meso  int64
	Drops []*domain.Item
	Level *progression.LevelResult
}

// TurnResult is the outcome of one player command
type TurnResult struct {
	Action Action
	// DamageDealt is the damage the player did to the monster
	DamageDealt int
	// DamageTaken is the counter-attack damage the player received
	DamageTaken int
	MonsterHP   int
	PlayerHP    int
	State       State
	Rewards     *Rewards
	// RecoveredHP is the HP the player respawned with after a defeat
	RecoveredHP int
}

// Damage is attack minus defense, never below 1
func Damage(attack, defense int) int {
	return max(1, attack-defense)
}
