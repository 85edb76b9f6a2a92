// internal/battle/players.go
package battle

import (
	"fmt"
	"strings"

	"github.com/jason-s-yu/guessit/engine"
	"github.com/jason-s-yu/guessit/engine/agent"
)

// PlayerType names an AI implementation.
type PlayerType string

const (
	TypeRandom PlayerType = "random"
	TypeSmart  PlayerType = "smart"
)

// PlayerTypes lists the accepted player types.
var PlayerTypes = []PlayerType{TypeRandom, TypeSmart}

// ParsePlayerType accepts a player type name, ignoring case.
func ParsePlayerType(s string) (PlayerType, error) {
	t := PlayerType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TypeRandom, TypeSmart:
		return t, nil
	}
	return "", fmt.Errorf("%w (type: %s)", ErrUnknownPlayerType, s)
}

// NewPlayer constructs a fresh AI of type t for one game.
func NewPlayer(t PlayerType, name string, hand engine.Hand, seed uint64) (engine.Player, error) {
	switch t {
	case TypeRandom:
		return agent.NewRandomAI(name, seed), nil
	case TypeSmart:
		return agent.NewSmartAI(name, hand, seed), nil
	}
	return nil, fmt.Errorf("%w (type: %s)", ErrUnknownPlayerType, t)
}
