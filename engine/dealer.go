package engine

import "math/rand/v2"

// Dealer shuffles and deals the nine cards. Each Dealer owns its generator,
// so dealers seeded alike produce the same sequence of deals.
type Dealer struct {
	rng *rand.Rand
}

// NewDealer creates a dealer seeded with seed.
func NewDealer(seed uint64) *Dealer {
	return &Dealer{rng: rand.New(rand.NewPCG(seed, 0))}
}

// Deal shuffles the universe and splits it into two hands and the rest card.
func (d *Dealer) Deal() Deal {
	cards := AllCards()
	// Fisher-Yates shuffle.
	for i := len(cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}

	p0, err := NewHand(cards[:HandSize]...)
	if err != nil {
		panic(err)
	}
	p1, err := NewHand(cards[HandSize : 2*HandSize]...)
	if err != nil {
		panic(err)
	}
	deal, err := NewDeal(p0, p1, cards[NumCards-1])
	if err != nil {
		panic(err)
	}
	return deal
}
