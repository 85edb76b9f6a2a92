package agent

import (
	"io"
	"math/rand/v2"
	"slices"

	engine "github.com/jason-s-yu/guessit/engine"
	"github.com/sirupsen/logrus"
)

// Bluff rate grows as bluff cards are spent:
// 4 left → 5%, 3 → 10%, 2 → 15%, 1 → 20%.
const (
	bluffRateBase    = 5
	bluffRateDivisor = 20
)

// SmartAI is a player that models the opponent. It is both an engine.Player
// and an engine.GameObserver; register it with Game.AddObserver so that it
// sees every question and guess, including its own.
type SmartAI struct {
	name string
	hand engine.Hand

	seed   uint64
	seeded bool
	rng    *rand.Rand

	belief Belief
	log    logrus.FieldLogger
}

// NewSmartAI creates a SmartAI for hand. The generator is seeded with seed
// and re-seeded whenever a game ends, so a rematch replays the same random
// choices given the same opponent moves.
func NewSmartAI(name string, hand engine.Hand, seed uint64) *SmartAI {
	a := &SmartAI{name: name, hand: hand, seed: seed, seeded: true, log: discardLogger()}
	a.reset()
	return a
}

// NewSmartAIWithRand creates a SmartAI drawing from rng. rng is never re-seeded.
func NewSmartAIWithRand(name string, hand engine.Hand, rng *rand.Rand) *SmartAI {
	a := &SmartAI{name: name, hand: hand, rng: rng, log: discardLogger()}
	a.reset()
	return a
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger enables debug tracing of decisions and belief updates.
func (a *SmartAI) SetLogger(l logrus.FieldLogger) {
	a.log = l.WithField("player", a.name)
}

func (a *SmartAI) Name() string { return a.name }

// Hand returns the hand this AI was dealt.
func (a *SmartAI) Hand() engine.Hand { return a.hand }

// Belief returns a copy of the current belief state.
func (a *SmartAI) Belief() Belief { return a.belief.clone() }

func (a *SmartAI) reset() {
	a.belief = newBelief(a.hand)
	if a.seeded {
		a.rng = rand.New(rand.NewPCG(a.seed, 0))
	}
}

// ---------------------------------------------------------------------------
// Policy
// ---------------------------------------------------------------------------

// SelectAction implements engine.Player. Rules are tried in order:
//  1. guess when one candidate is left or a card is believed hidden;
//  2. when guessing is legal, guess at random with probability 1/|candidates|;
//  3. bluff with a card of our own hand with a rate growing as bluffs are spent;
//  4. otherwise ask about a random candidate.
func (a *SmartAI) SelectAction(actions engine.ActionList) (engine.Action, error) {
	selected, ok := a.forcedGuess()
	if !ok {
		selected, ok = a.mayGuess(actions.Guesses())
	}
	if !ok {
		selected, ok = a.mayBluff()
	}
	if !ok {
		selected = a.ask(actions)
	}
	if !actions.Contains(selected) {
		panic(&engine.ContractError{Who: a.name, Action: selected, Available: actions})
	}
	a.log.WithField("action", selected).Debug("selected action")
	return selected, nil
}

func (a *SmartAI) forcedGuess() (engine.Action, bool) {
	if len(a.belief.RestCards) == 1 {
		return engine.Guess(a.belief.RestCards[0]), true
	}
	if a.belief.MaybeCard != nil {
		return engine.Guess(*a.belief.MaybeCard), true
	}
	return nil, false
}

func (a *SmartAI) mayGuess(guesses []engine.GuessAction) (engine.Action, bool) {
	if len(guesses) == 0 {
		return nil, false
	}
	rest := a.belief.RestCards
	if len(rest) == 0 {
		// Every candidate was written off as a bluff that wasn't one.
		return guesses[a.rng.IntN(len(guesses))], true
	}
	if a.rng.Float64() <= 1/float64(len(rest)) {
		return engine.Guess(rest[a.rng.IntN(len(rest))]), true
	}
	return nil, false
}

func (a *SmartAI) mayBluff() (engine.Action, bool) {
	bluffs := a.belief.BluffCards
	if len(bluffs) == 0 {
		return nil, false
	}
	rate := float64(bluffRateBase-len(bluffs)) / bluffRateDivisor
	if a.rng.Float64() <= rate {
		return engine.Ask(bluffs[a.rng.IntN(len(bluffs))]), true
	}
	return nil, false
}

func (a *SmartAI) ask(actions engine.ActionList) engine.Action {
	rest := a.belief.RestCards
	if len(rest) == 0 {
		panic(&engine.ContractError{Who: a.name, Available: actions})
	}
	return engine.Ask(rest[a.rng.IntN(len(rest))])
}

// ---------------------------------------------------------------------------
// Belief updates
// ---------------------------------------------------------------------------

// PlayerAsked implements engine.GameObserver.
func (a *SmartAI) PlayerAsked(player engine.Player, ask engine.AskAction, isHit bool) {
	card := ask.Card()
	if player == engine.Player(a) {
		a.ownAsked(card, isHit)
	} else {
		a.opponentAsked(card, isHit)
	}
	a.log.WithFields(logrus.Fields{
		"asker":  player.Name(),
		"card":   card,
		"hit":    isHit,
		"rest":   a.belief.RestCards,
		"bluffs": a.belief.BluffCards,
		"maybe":  a.belief.MaybeCard,
	}).Debug("belief updated")
}

// ownAsked: a spent bluff leaves the bluff pool; a genuine question leaves the
// candidates, and a miss proves the card is not in the opponent's hand, so it
// must be the hidden card.
func (a *SmartAI) ownAsked(card engine.Card, isHit bool) {
	if removeCard(&a.belief.BluffCards, card) {
		return
	}
	if !removeCard(&a.belief.RestCards, card) {
		panic(&engine.ContractError{Who: a.name, Action: engine.Ask(card)})
	}
	if !isHit {
		a.belief.MaybeCard = &card
	}
}

// opponentAsked: a question about one of our cards spoils it as a bluff. A
// missed question is either the hidden card or a bluff from the opponent's
// hand; the fewer candidates remain, the likelier it is the hidden card.
func (a *SmartAI) opponentAsked(card engine.Card, isHit bool) {
	removeCard(&a.belief.BluffCards, card)
	if isHit {
		return
	}
	rest := a.belief.RestCards
	if len(rest) == 0 || !slices.Contains(rest, card) {
		return
	}
	if a.rng.Float64() <= 1/float64(len(rest)) {
		a.belief.MaybeCard = &card
		return
	}
	removeCard(&a.belief.RestCards, card)
}

// PlayerGuessed implements engine.GameObserver. Any guess ends the game, so
// the belief is reset for a rematch with the same hand.
func (a *SmartAI) PlayerGuessed(player engine.Player, guess engine.GuessAction, isHit bool) {
	a.reset()
	a.log.WithFields(logrus.Fields{
		"guesser": player.Name(),
		"card":    guess.Card(),
		"hit":     isHit,
	}).Debug("game over, belief reset")
}
