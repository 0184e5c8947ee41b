package progression

import "github.com/osse101/TextMaple_Go/internal/domain"

// ApplyLevelUps consumes experience while it meets the threshold. Each level
// raises the threshold by 10 and base attack, base defense and max HP by 5.
// Current HP is not restored. Returns the number of levels gained.
func ApplyLevelUps(c *domain.Character) int {
	if c.ExpToNextLevel <= 0 {
		c.ExpToNextLevel = domain.DefaultExpToNextLevel
	}

	gained := 0
	for c.Exp >= c.ExpToNextLevel {
		c.Exp -= c.ExpToNextLevel
		c.Level++
		c.ExpToNextLevel += domain.ExpToNextLevelIncrement
		c.BaseAttack += domain.LevelUpStatIncrement
		c.BaseDefense += domain.LevelUpStatIncrement
		c.MaxHP += domain.LevelUpStatIncrement
		gained++
	}
	return gained
}

// ClassChangeAvailable reports whether the character could advance right now
func ClassChangeAvailable(c *domain.Character) bool {
	return !c.ClassChanged && c.Level >= domain.ClassChangeMinLevel
}
