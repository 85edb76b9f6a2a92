package engine

import (
	"fmt"
	"reflect"
	"slices"
)

// Player selects one action per turn from the legal actions it is offered.
//
// SelectAction must return a member of actions. A non-nil error means the
// player stopped playing (ErrPlayerQuit); the game is abandoned and the
// error is returned from Game.Start.
type Player interface {
	Name() string
	SelectAction(actions ActionList) (Action, error)
}

// GameObserver receives a notification after every action is resolved.
// A type may implement both Player and GameObserver.
//
// The registry compares observers with ==, so an observer's dynamic type
// must be comparable. Use a pointer type; AddObserver panics otherwise.
type GameObserver interface {
	PlayerAsked(player Player, ask AskAction, isHit bool)
	PlayerGuessed(player Player, guess GuessAction, isHit bool)
}

// Game runs one deal between two players.
type Game struct {
	deal      Deal
	players   [NumPlayers]Player
	observers []GameObserver
	turns     int
}

// NewGame prepares a game; player0 acts first.
func NewGame(deal Deal, player0, player1 Player) *Game {
	return &Game{
		deal:    deal,
		players: [NumPlayers]Player{player0, player1},
	}
}

// AddObserver registers o. Adding an observer twice has no effect.
// Observers are notified in registration order and compared by identity.
func (g *Game) AddObserver(o GameObserver) {
	if o == nil {
		panic("engine: nil GameObserver")
	}
	if t := reflect.TypeOf(o); !t.Comparable() {
		panic(fmt.Sprintf("engine: GameObserver of type %v is not comparable; register a pointer", t))
	}
	if slices.Contains(g.observers, o) {
		return
	}
	g.observers = append(g.observers, o)
}

// RemoveObserver unregisters o. Removing an unknown observer has no effect.
func (g *Game) RemoveObserver(o GameObserver) {
	if i := slices.Index(g.observers, o); i >= 0 {
		g.observers = slices.Delete(g.observers, i, i+1)
	}
}

// Deal returns the deal being played.
func (g *Game) Deal() Deal { return g.deal }

// Turns returns the number of actions applied by the most recent Start.
func (g *Game) Turns() int { return g.turns }

// Start plays the game to completion and returns the winner.
//
// Players alternate, player0 first. A question is answered against the
// opponent's hand and the turn passes. A guess ends the game: the guesser
// wins if it names the rest card, otherwise the opponent wins.
//
// Start may be called again to replay the same deal from the beginning.
func (g *Game) Start() (Player, error) {
	g.turns = 0
	turnPlayer, opponentPlayer := g.players[0], g.players[1]
	turnHand, opponentHand := g.deal.Player0Hand(), g.deal.Player1Hand()

	var prev *AskAction
	for {
		available := AvailableActions(turnHand, prev)
		action, err := turnPlayer.SelectAction(available)
		if err != nil {
			return nil, fmt.Errorf("turn %d, %s: %w", g.turns+1, turnPlayer.Name(), err)
		}
		if !available.Contains(action) {
			panic(&ContractError{Who: turnPlayer.Name(), Action: action, Available: available})
		}
		g.turns++

		switch a := action.(type) {
		case AskAction:
			isHit := a.IsHit(opponentHand)
			g.notifyAsk(turnPlayer, a, isHit)
			prev = &a
		case GuessAction:
			isHit := a.IsHit(g.deal.RestCard())
			g.notifyGuess(turnPlayer, a, isHit)
			if isHit {
				return turnPlayer, nil
			}
			return opponentPlayer, nil
		}

		turnPlayer, opponentPlayer = opponentPlayer, turnPlayer
		turnHand, opponentHand = opponentHand, turnHand
	}
}

func (g *Game) notifyAsk(p Player, ask AskAction, isHit bool) {
	for _, o := range slices.Clone(g.observers) {
		o.PlayerAsked(p, ask, isHit)
	}
}

func (g *Game) notifyGuess(p Player, guess GuessAction, isHit bool) {
	for _, o := range slices.Clone(g.observers) {
		o.PlayerGuessed(p, guess, isHit)
	}
}
