// Package engine implements the Guess It card game rules.
//
// Two players each hold four of the nine cards numbered 1 to 9; the ninth
// card is hidden. Players alternate asking whether a card is in the
// opponent's hand or guessing the hidden card. A guess always ends the game.
//
// The package holds immutable value types (Card, Hand, Deal, actions), the
// legal action rule, and the turn state machine (Game). It performs no I/O.
package engine

import (
	"fmt"
	"slices"
	"strings"
)

// Card is a card number in [MinCard, MaxCard].
type Card uint8

// NewCard validates n and returns the corresponding card.
func NewCard(n int) (Card, error) {
	if n < MinCard || n > MaxCard {
		return 0, fmt.Errorf("%w: number %d out of range [%d, %d]", ErrInvalidCard, n, MinCard, MaxCard)
	}
	return Card(n), nil
}

// MustCard is like NewCard but panics on an invalid number.
func MustCard(n int) Card {
	c, err := NewCard(n)
	if err != nil {
		panic(err)
	}
	return c
}

// Value returns the card number.
func (c Card) Value() int { return int(c) }

func (c Card) String() string { return fmt.Sprintf("%d", int(c)) }

// AllCards returns every card of the universe in ascending order.
func AllCards() []Card {
	cards := make([]Card, 0, NumCards)
	for n := MinCard; n <= MaxCard; n++ {
		cards = append(cards, Card(n))
	}
	return cards
}

// ---------------------------------------------------------------------------
// Hand
// ---------------------------------------------------------------------------

// Hand is an immutable, sorted set of HandSize distinct cards.
type Hand struct {
	cards [HandSize]Card
}

// NewHand builds a hand from exactly HandSize distinct cards. The result is
// sorted by value regardless of argument order.
func NewHand(cards ...Card) (Hand, error) {
	var h Hand
	if len(cards) != HandSize {
		return h, fmt.Errorf("%w: want %d cards, got %d %v", ErrInvalidHand, HandSize, len(cards), cards)
	}
	sorted := slices.Clone(cards)
	slices.Sort(sorted)
	for i, c := range sorted {
		if c < MinCard || c > MaxCard {
			return h, fmt.Errorf("%w: %w", ErrInvalidHand, fmt.Errorf("%w: number %d", ErrInvalidCard, c))
		}
		if i > 0 && sorted[i-1] == c {
			return h, fmt.Errorf("%w: duplicate card %v in %v", ErrInvalidHand, c, cards)
		}
		h.cards[i] = c
	}
	return h, nil
}

// MustHand builds a hand from card numbers and panics on error.
func MustHand(numbers ...int) Hand {
	cards := make([]Card, len(numbers))
	for i, n := range numbers {
		cards[i] = MustCard(n)
	}
	h, err := NewHand(cards...)
	if err != nil {
		panic(err)
	}
	return h
}

// Cards returns a copy of the hand's cards in ascending order.
func (h Hand) Cards() []Card { return slices.Clone(h.cards[:]) }

// Has reports whether c is in the hand.
func (h Hand) Has(c Card) bool { return slices.Contains(h.cards[:], c) }

func (h Hand) String() string { return formatCards(h.cards[:]) }

func formatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ---------------------------------------------------------------------------
// Deal
// ---------------------------------------------------------------------------

// Deal is a validated partition of the universe into two hands and the
// hidden rest card.
type Deal struct {
	hands [NumPlayers]Hand
	rest  Card
}

// NewDeal checks that p0, p1 and rest together cover every card exactly once.
func NewDeal(p0, p1 Hand, rest Card) (Deal, error) {
	var seen [MaxCard + 1]bool
	used := append(p0.Cards(), p1.Cards()...)
	used = append(used, rest)
	for _, c := range used {
		if c < MinCard || c > MaxCard || seen[c] {
			return Deal{}, fmt.Errorf("%w: used cards %v", ErrInvalidDeal, used)
		}
		seen[c] = true
	}
	return Deal{hands: [NumPlayers]Hand{p0, p1}, rest: rest}, nil
}

// Player0Hand returns the first player's hand.
func (d Deal) Player0Hand() Hand { return d.hands[0] }

// Player1Hand returns the second player's hand.
func (d Deal) Player1Hand() Hand { return d.hands[1] }

// Hand returns the hand dealt to seat 0 or 1.
func (d Deal) Hand(seat int) Hand { return d.hands[seat] }

// RestCard returns the hidden card.
func (d Deal) RestCard() Card { return d.rest }
