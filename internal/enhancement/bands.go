package enhancement

import (
	"fmt"

	"github.com/osse101/TextMaple_Go/internal/domain"
)

// Outcome is the result category of one enhancement draw
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailure
	OutcomeDowngrade
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeDowngrade:
		return "downgrade"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Bands are the percentage chances of each outcome. They always sum to 100.
type Bands struct {
	Success   int
	Failure   int
	Downgrade int
}

// BandsFor returns the outcome bands at an enhancement level.
// Success decays 2 points per level down to a floor of 20, downgrade grows one
// point per level from 5, and failure takes the remainder.
func BandsFor(level int) Bands {
	if level < 0 {
		level = 0
	}
	success := max(baseSuccessChance-successDecayPerLevel*level, minSuccessChance)
	downgrade := min(baseDowngradeChance+downgradeGainPerLevel*level, rollSides-success)
	return Bands{
		Success:   success,
		Failure:   rollSides - success - downgrade,
		Downgrade: downgrade,
	}
}

// Classify maps a roll in [1,100] to an outcome: [1,S] success,
// (S,S+F] failure, the rest downgrade
func (b Bands) Classify(roll int) Outcome {
	switch {
	case roll <= b.Success:
		return OutcomeSuccess
	case roll <= b.Success+b.Failure:
		return OutcomeFailure
	default:
		return OutcomeDowngrade
	}
}

// Cost is power x (1 + level) x 100
func Cost(item *domain.Item) int64 {
	return int64(item.Power) * int64(1+item.EnhancementLevel) * CostPerLevelMultiplier
}

// Quote is a preview of the next enhancement attempt
type Quote struct {
	Item  *domain.Item
	Cost  int64
	Bands Bands
	// Maxed is set when the item cannot be enhanced further
	Maxed bool
	// Affordable is set when the character holds at least Cost meso
	Affordable bool
}

// QuoteFor previews enhancing item for a character holding meso
func QuoteFor(item *domain.Item, meso int64) Quote {
	cost := Cost(item)
	return Quote{
		Item:       item,
		Cost:       cost,
		Bands:      BandsFor(item.EnhancementLevel),
		Maxed:      item.EnhancementLevel >= domain.MaxEnhancementLevel,
		Affordable: meso >= cost,
	}
}

// Change is the effect of an outcome on an item
type Change struct {
	Outcome Outcome
	// Boost is the power added on success or removed on downgrade
	Boost int
}

// ApplyRoll applies a pre-drawn outcome roll and boost multiplier (1..3) to
// item. The item is mutated; meso is not touched.
func ApplyRoll(item *domain.Item, roll, multiplier int) Change {
	level := item.EnhancementLevel
	outcome := BandsFor(level).Classify(roll)

	switch outcome {
	case OutcomeSuccess:
		boost := multiplier * level
		item.Power += boost
		item.EnhancementLevel++
		return Change{Outcome: outcome, Boost: boost}
	case OutcomeDowngrade:
		before := item.Power
		item.Power = max(1, item.Power-level)
		return Change{Outcome: outcome, Boost: before - item.Power}
	default:
		return Change{Outcome: outcome}
	}
}
