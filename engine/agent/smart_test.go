package agent

import (
	"math"
	"math/rand/v2"
	"testing"

	engine "github.com/jason-s-yu/guessit/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource always yields the same word. fixedSource(lowWord) makes Float64
// return ~0 and IntN return 0; fixedSource(highWord) makes Float64 return ~1
// and IntN return n-1.
type fixedSource uint64

func (s fixedSource) Uint64() uint64 { return uint64(s) }

const (
	lowWord  = 1 << 11
	highWord = math.MaxUint64
)

func lowRand() *rand.Rand  { return rand.New(fixedSource(lowWord)) }
func highRand() *rand.Rand { return rand.New(fixedSource(highWord)) }

var testHand = engine.MustHand(1, 2, 3, 4)

func cards(numbers ...int) []engine.Card {
	out := make([]engine.Card, len(numbers))
	for i, n := range numbers {
		out[i] = engine.MustCard(n)
	}
	return out
}

func cardPtr(n int) *engine.Card {
	c := engine.MustCard(n)
	return &c
}

// afterAsk returns the action list offered after prev was asked.
func afterAsk(hand engine.Hand, prev int) engine.ActionList {
	ask := engine.Ask(engine.MustCard(prev))
	return engine.AvailableActions(hand, &ask)
}

// opponent stands in for the other player in notifications.
var opponent = NewRandomAI("opponent", 0)

func TestSmartAI_InitialBelief(t *testing.T) {
	for _, seed := range []uint64{0, 1, 42} {
		ai := NewSmartAI("ai", testHand, seed)
		b := ai.Belief()
		assert.Equal(t, cards(5, 6, 7, 8, 9), b.RestCards)
		assert.Equal(t, cards(1, 2, 3, 4), b.BluffCards)
		assert.Nil(t, b.MaybeCard)
	}
}

func TestSmartAI_BeliefIsCopied(t *testing.T) {
	ai := NewSmartAI("ai", testHand, 0)
	b := ai.Belief()
	b.RestCards[0] = 1
	b.BluffCards = nil
	assert.Equal(t, cards(5, 6, 7, 8, 9), ai.Belief().RestCards)
	assert.Equal(t, cards(1, 2, 3, 4), ai.Belief().BluffCards)
}

func TestSmartAI_OwnAsk(t *testing.T) {
	tests := []struct {
		name      string
		card      int
		isHit     bool
		wantRest  []engine.Card
		wantBluff []engine.Card
		wantMaybe *engine.Card
	}{
		{
			name:      "question hit",
			card:      5,
			isHit:     true,
			wantRest:  cards(6, 7, 8, 9),
			wantBluff: cards(1, 2, 3, 4),
		},
		{
			name:      "question miss marks hidden card",
			card:      5,
			isHit:     false,
			wantRest:  cards(6, 7, 8, 9),
			wantBluff: cards(1, 2, 3, 4),
			wantMaybe: cardPtr(5),
		},
		{
			name:      "bluff spends the card",
			card:      1,
			isHit:     false,
			wantRest:  cards(5, 6, 7, 8, 9),
			wantBluff: cards(2, 3, 4),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := NewSmartAI("ai", testHand, 0)
			ai.PlayerAsked(ai, engine.Ask(engine.MustCard(tt.card)), tt.isHit)
			b := ai.Belief()
			assert.Equal(t, tt.wantRest, b.RestCards)
			assert.Equal(t, tt.wantBluff, b.BluffCards)
			assert.Equal(t, tt.wantMaybe, b.MaybeCard)
		})
	}
}

func TestSmartAI_OwnAskUnknownCardPanics(t *testing.T) {
	ai := NewSmartAI("ai", testHand, 0)
	// The opponent spoils bluff card 1; the AI itself can no longer ask it.
	ai.PlayerAsked(opponent, engine.Ask(1), true)
	assertContractPanic(t, func() { ai.PlayerAsked(ai, engine.Ask(1), false) })
}

func TestSmartAI_OpponentAskHit(t *testing.T) {
	ai := NewSmartAI("ai", testHand, 0)
	ai.PlayerAsked(opponent, engine.Ask(1), true)
	b := ai.Belief()
	assert.Equal(t, cards(5, 6, 7, 8, 9), b.RestCards)
	assert.Equal(t, cards(2, 3, 4), b.BluffCards)
	assert.Nil(t, b.MaybeCard)
}

func TestSmartAI_OpponentAskMiss(t *testing.T) {
	t.Run("treated as bluff", func(t *testing.T) {
		ai := NewSmartAIWithRand("ai", testHand, highRand())
		ai.PlayerAsked(opponent, engine.Ask(9), false)
		b := ai.Belief()
		assert.Equal(t, cards(5, 6, 7, 8), b.RestCards)
		assert.Equal(t, cards(1, 2, 3, 4), b.BluffCards)
		assert.Nil(t, b.MaybeCard)
	})
	t.Run("treated as hidden card", func(t *testing.T) {
		ai := NewSmartAIWithRand("ai", testHand, lowRand())
		ai.PlayerAsked(opponent, engine.Ask(9), false)
		b := ai.Belief()
		assert.Equal(t, cards(5, 6, 7, 8, 9), b.RestCards)
		assert.Equal(t, cards(1, 2, 3, 4), b.BluffCards)
		assert.Equal(t, cardPtr(9), b.MaybeCard)
	})
	t.Run("resolved card ignored", func(t *testing.T) {
		ai := NewSmartAIWithRand("ai", testHand, highRand())
		ai.PlayerAsked(opponent, engine.Ask(9), false)
		ai.PlayerAsked(opponent, engine.Ask(9), false)
		b := ai.Belief()
		assert.Equal(t, cards(5, 6, 7, 8), b.RestCards)
		assert.Nil(t, b.MaybeCard)
	})
}

// TestSmartAI_PlayerGuessedResets verifies any guess restores the initial belief.
func TestSmartAI_PlayerGuessedResets(t *testing.T) {
	for _, isHit := range []bool{true, false} {
		ai := NewSmartAIWithRand("ai", testHand, highRand())
		ai.PlayerAsked(ai, engine.Ask(5), false)
		ai.PlayerAsked(ai, engine.Ask(2), false)
		ai.PlayerAsked(opponent, engine.Ask(3), true)
		ai.PlayerAsked(opponent, engine.Ask(7), false)

		ai.PlayerGuessed(opponent, engine.Guess(5), isHit)
		b := ai.Belief()
		assert.Equal(t, cards(5, 6, 7, 8, 9), b.RestCards)
		assert.Equal(t, cards(1, 2, 3, 4), b.BluffCards)
		assert.Nil(t, b.MaybeCard)

		ai.PlayerAsked(ai, engine.Ask(6), true)
		ai.PlayerGuessed(ai, engine.Guess(9), isHit)
		assert.Equal(t, NewSmartAI("fresh", testHand, 0).Belief(), ai.Belief())
	}
}

// TestSmartAI_ResetReseeds verifies a seeded AI replays its choices after a reset.
func TestSmartAI_ResetReseeds(t *testing.T) {
	ai := NewSmartAI("ai", testHand, 99)
	actions := afterAsk(testHand, 1)

	var first []engine.Action
	for i := 0; i < 20; i++ {
		a, err := ai.SelectAction(actions)
		require.NoError(t, err)
		first = append(first, a)
	}
	ai.PlayerGuessed(opponent, engine.Guess(5), false)
	for i := 0; i < 20; i++ {
		a, err := ai.SelectAction(actions)
		require.NoError(t, err)
		assert.Equal(t, first[i], a, "choice %d after reset", i)
	}
}

func TestSmartAI_SelectAction(t *testing.T) {
	tests := []struct {
		name    string
		rng     func() *rand.Rand
		prepare func(ai *SmartAI)
		actions engine.ActionList
		want    engine.Action
	}{
		{
			name:    "first turn bluffs on low draw",
			rng:     lowRand,
			actions: engine.AvailableActions(testHand, nil),
			want:    engine.Ask(1),
		},
		{
			name:    "first turn asks a candidate on high draw",
			rng:     highRand,
			actions: engine.AvailableActions(testHand, nil),
			want:    engine.Ask(9),
		},
		{
			name:    "guesses a candidate on low draw",
			rng:     lowRand,
			actions: afterAsk(testHand, 2),
			want:    engine.Guess(5),
		},
		{
			name:    "asks a candidate on high draw",
			rng:     highRand,
			actions: afterAsk(testHand, 2),
			want:    engine.Ask(9),
		},
		{
			name: "single candidate is guessed",
			rng:  highRand,
			prepare: func(ai *SmartAI) {
				for _, n := range []int{5, 6, 7, 8} {
					ai.PlayerAsked(opponent, engine.Ask(engine.MustCard(n)), false)
				}
			},
			actions: afterAsk(testHand, 8),
			want:    engine.Guess(9),
		},
		{
			name: "believed hidden card is guessed",
			rng:  highRand,
			prepare: func(ai *SmartAI) {
				ai.PlayerAsked(ai, engine.Ask(6), false)
			},
			actions: afterAsk(testHand, 1),
			want:    engine.Guess(6),
		},
		{
			name: "no candidates falls back to a random guess",
			rng:  lowRand,
			prepare: func(ai *SmartAI) {
				for _, n := range []int{5, 6, 7, 8, 9} {
					ai.PlayerAsked(ai, engine.Ask(engine.MustCard(n)), true)
				}
			},
			actions: afterAsk(testHand, 1),
			want:    engine.Guess(5),
		},
		{
			name: "no bluff cards left skips bluffing",
			rng:  highRand,
			prepare: func(ai *SmartAI) {
				for _, n := range []int{1, 2, 3, 4} {
					ai.PlayerAsked(ai, engine.Ask(engine.MustCard(n)), false)
				}
			},
			actions: afterAsk(testHand, 4),
			want:    engine.Ask(9),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := NewSmartAIWithRand("ai", testHand, tt.rng())
			if tt.prepare != nil {
				tt.prepare(ai)
			}
			got, err := ai.SelectAction(tt.actions)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, tt.actions.Contains(got))
		})
	}
}

// TestSmartAI_IllegalPolicyPanics verifies an action outside the list is fatal.
func TestSmartAI_IllegalPolicyPanics(t *testing.T) {
	ai := NewSmartAIWithRand("ai", testHand, highRand())
	ai.PlayerAsked(ai, engine.Ask(6), false)
	// Guessing is not legal on the opening turn.
	assertContractPanic(t, func() { _, _ = ai.SelectAction(engine.AvailableActions(testHand, nil)) })
}

// TestSmartAI_BluffRates checks the bluff frequency for each bluff pool size.
func TestSmartAI_BluffRates(t *testing.T) {
	const draws = 40000
	for spent := 0; spent < 4; spent++ {
		ai := NewSmartAIWithRand("ai", testHand, rand.New(rand.NewPCG(42, uint64(spent))))
		for n := 1; n <= spent; n++ {
			ai.PlayerAsked(opponent, engine.Ask(engine.MustCard(n)), true)
		}
		left := 4 - spent
		want := float64(5-left) / 20

		actions := engine.AvailableActions(testHand, nil)
		bluffs := 0
		for i := 0; i < draws; i++ {
			a, err := ai.SelectAction(actions)
			require.NoError(t, err)
			if testHand.Has(a.Card()) {
				bluffs++
			}
		}
		got := float64(bluffs) / draws
		assert.InDelta(t, want, got, 0.01, "bluff rate with %d bluff cards", left)
	}
}

// TestSmartAI_GuessRate checks the spontaneous guess frequency is 1/|candidates|.
func TestSmartAI_GuessRate(t *testing.T) {
	const draws = 40000
	ai := NewSmartAIWithRand("ai", testHand, rand.New(rand.NewPCG(7, 7)))
	// The opponent's question spoils 1 as a bluff, so the AI never repeats it.
	ai.PlayerAsked(opponent, engine.Ask(engine.MustCard(1)), true)
	actions := afterAsk(testHand, 1)
	guesses := 0
	for i := 0; i < draws; i++ {
		a, err := ai.SelectAction(actions)
		require.NoError(t, err)
		if _, ok := a.(engine.GuessAction); ok {
			guesses++
		}
	}
	assert.InDelta(t, 0.2, float64(guesses)/draws, 0.01)
}

// TestSmartAI_NeverRepeatsSpoiledBluff: after the opponent asks about one of
// the AI's cards, the AI's answer to the next list never reuses that card.
func TestSmartAI_NeverRepeatsSpoiledBluff(t *testing.T) {
	for prev := 1; prev <= 4; prev++ {
		ai := NewSmartAIWithRand("ai", testHand, rand.New(rand.NewPCG(uint64(prev), 3)))
		ai.PlayerAsked(opponent, engine.Ask(engine.MustCard(prev)), true)
		actions := afterAsk(testHand, prev)
		for i := 0; i < 5000; i++ {
			a, err := ai.SelectAction(actions)
			require.NoError(t, err)
			require.True(t, actions.Contains(a), "action %v not offered", a)
		}
	}
}

func assertContractPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		_, ok := r.(*engine.ContractError)
		assert.True(t, ok, "panic value %T, want *engine.ContractError", r)
	}()
	f()
}
