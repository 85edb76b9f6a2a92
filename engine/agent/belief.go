// Package agent implements computer players for Guess It: a uniform random
// baseline and SmartAI, which tracks a belief about the hidden card and the
// opponent's bluffs.
package agent

import (
	"slices"

	engine "github.com/jason-s-yu/guessit/engine"
)

// Belief is SmartAI's private estimate of the game.
//
//   - RestCards: candidates for the hidden card (never cards of our own hand).
//   - BluffCards: cards of our own hand still worth asking about as a bluff.
//   - MaybeCard: a card believed to be the hidden one, or nil.
type Belief struct {
	RestCards  []engine.Card
	BluffCards []engine.Card
	MaybeCard  *engine.Card
}

// newBelief returns the belief held at the start of a game with hand.
func newBelief(hand engine.Hand) Belief {
	var b Belief
	for _, c := range engine.AllCards() {
		if !hand.Has(c) {
			b.RestCards = append(b.RestCards, c)
		}
	}
	b.BluffCards = hand.Cards()
	return b
}

// clone returns a deep copy safe to hand out to callers.
func (b Belief) clone() Belief {
	out := Belief{
		RestCards:  slices.Clone(b.RestCards),
		BluffCards: slices.Clone(b.BluffCards),
	}
	if b.MaybeCard != nil {
		c := *b.MaybeCard
		out.MaybeCard = &c
	}
	return out
}

// removeCard deletes c from cards, reporting whether it was present.
func removeCard(cards *[]engine.Card, c engine.Card) bool {
	i := slices.Index(*cards, c)
	if i < 0 {
		return false
	}
	*cards = slices.Delete(*cards, i, i+1)
	return true
}
