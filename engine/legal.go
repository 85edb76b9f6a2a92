package engine

import (
	"slices"
	"strings"
)

// ActionList is the set of actions legal for the acting player this turn,
// split into questions and guesses. It is rebuilt every turn.
type ActionList struct {
	asks    []AskAction
	guesses []GuessAction
}

// NewActionList builds a list from explicit actions.
func NewActionList(asks []AskAction, guesses []GuessAction) ActionList {
	return ActionList{asks: slices.Clone(asks), guesses: slices.Clone(guesses)}
}

// AvailableActions returns the legal actions for a player holding hand when
// the previous action of the game was prev (nil on the first turn).
//
// Every card may be asked except the one asked immediately before. Guesses
// are only legal once something has been asked, and only for cards outside
// the acting player's hand.
func AvailableActions(hand Hand, prev *AskAction) ActionList {
	var l ActionList
	l.asks = make([]AskAction, 0, NumCards)
	for _, c := range AllCards() {
		if prev != nil && prev.Card() == c {
			continue
		}
		l.asks = append(l.asks, Ask(c))
	}
	if prev == nil {
		return l
	}
	l.guesses = make([]GuessAction, 0, NumCards-HandSize)
	for _, c := range AllCards() {
		if !hand.Has(c) {
			l.guesses = append(l.guesses, Guess(c))
		}
	}
	return l
}

// Asks returns the legal questions.
func (l ActionList) Asks() []AskAction { return slices.Clone(l.asks) }

// Guesses returns the legal guesses; empty on the game's first turn.
func (l ActionList) Guesses() []GuessAction { return slices.Clone(l.guesses) }

// All returns questions followed by guesses.
func (l ActionList) All() []Action {
	all := make([]Action, 0, len(l.asks)+len(l.guesses))
	for _, a := range l.asks {
		all = append(all, a)
	}
	for _, g := range l.guesses {
		all = append(all, g)
	}
	return all
}

// Len returns the total number of legal actions.
func (l ActionList) Len() int { return len(l.asks) + len(l.guesses) }

// Contains reports whether action is legal.
func (l ActionList) Contains(action Action) bool {
	switch a := action.(type) {
	case AskAction:
		return slices.Contains(l.asks, a)
	case GuessAction:
		return slices.Contains(l.guesses, a)
	}
	return false
}

func (l ActionList) String() string {
	all := l.All()
	parts := make([]string, len(all))
	for i, a := range all {
		parts[i] = a.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
