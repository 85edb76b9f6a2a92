// internal/battle/stats.go
package battle

import (
	"math"

	"github.com/jason-s-yu/guessit/engine"
)

// WilsonCI95 returns the 95% Wilson score interval for wins out of total
// Bernoulli trials. With no trials the interval is [0, 1].
func WilsonCI95(wins, total int) (low, hi float64) {
	if total <= 0 {
		return 0, 1
	}
	z := 1.96
	n := float64(total)
	p := float64(wins) / n
	den := 1 + (z*z)/n
	center := p + (z*z)/(2*n)
	half := z * math.Sqrt((p*(1-p))/n+(z*z)/(4*n*n))
	return (center - half) / den, (center + half) / den
}

// turnCounter observes a game and counts resolved actions.
type turnCounter struct {
	asks, guesses int
}

func (c *turnCounter) PlayerAsked(_ engine.Player, _ engine.AskAction, _ bool)     { c.asks++ }
func (c *turnCounter) PlayerGuessed(_ engine.Player, _ engine.GuessAction, _ bool) { c.guesses++ }

func (c *turnCounter) total() int { return c.asks + c.guesses }
