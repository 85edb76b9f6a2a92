package agent

import (
	"math/rand/v2"

	engine "github.com/jason-s-yu/guessit/engine"
)

// RandomAI picks uniformly among the legal actions.
type RandomAI struct {
	name string
	rng  *rand.Rand
}

// NewRandomAI creates a random player with its own generator.
func NewRandomAI(name string, seed uint64) *RandomAI {
	return &RandomAI{name: name, rng: rand.New(rand.NewPCG(seed, 0))}
}

func (r *RandomAI) Name() string { return r.name }

// SelectAction implements engine.Player.
func (r *RandomAI) SelectAction(actions engine.ActionList) (engine.Action, error) {
	all := actions.All()
	return all[r.rng.IntN(len(all))], nil
}
