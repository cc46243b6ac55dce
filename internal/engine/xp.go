package engine

// LevelStep is how much the next-level threshold grows on each level-up.
const LevelStep = 100

// GainExp adds exp and applies the level-up rule as many times as needed.
// Exp accumulates; crossing a threshold raises it by LevelStep rather than
// consuming exp. It returns the number of levels gained.
func (c *Character) GainExp(exp int) int {
	if exp < 0 {
		exp = 0
	}
	if c.ExpToNext < 1 {
		c.ExpToNext = 1
	}
	if c.Level < 1 {
		c.Level = 1
	}
	c.Exp += exp

	gained := 0
	for c.Exp >= c.ExpToNext {
		c.Level++
		c.ExpToNext += LevelStep
		gained++
	}
	return gained
}
