package engine

import "fmt"

// Action is one of the two move variants: AskAction or GuessAction.
// Action values are comparable; two actions are equal when they are the same
// variant about the same card.
type Action interface {
	Card() Card
	String() string
	isAction()
}

// AskAction asks whether a card is in the opponent's hand.
type AskAction struct {
	card Card
}

// Ask returns the question about c.
func Ask(c Card) AskAction { return AskAction{card: c} }

func (a AskAction) Card() Card { return a.card }

// IsHit reports whether the asked card is in the given (opponent's) hand.
func (a AskAction) IsHit(opponent Hand) bool { return opponent.Has(a.card) }

func (a AskAction) String() string { return fmt.Sprintf("Ask(%v)", a.card) }

func (AskAction) isAction() {}

// GuessAction claims that a card is the hidden rest card.
type GuessAction struct {
	card Card
}

// Guess returns the guess of c.
func Guess(c Card) GuessAction { return GuessAction{card: c} }

func (g GuessAction) Card() Card { return g.card }

// IsHit reports whether the guess names the rest card.
func (g GuessAction) IsHit(rest Card) bool { return g.card == rest }

func (g GuessAction) String() string { return fmt.Sprintf("Guess(%v)", g.card) }

func (GuessAction) isAction() {}
