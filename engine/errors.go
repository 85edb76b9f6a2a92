package engine

import (
	"errors"
	"fmt"
)

// Construction errors. Callers receive them wrapped with details; use
// errors.Is to test for the kind.
var (
	ErrInvalidCard = errors.New("invalid card")
	ErrInvalidHand = errors.New("invalid hand")
	ErrInvalidDeal = errors.New("invalid deal")
)

// ErrPlayerQuit is returned by a Player that was asked to stop playing
// (for example a human typing "exit"). Game.Start passes it through.
var ErrPlayerQuit = errors.New("player quit")

// ContractError is the panic value used when a component breaks the
// selection contract: a Player returning an action outside the list it was
// offered, or an AI policy producing one. It signals a programming error and
// is never returned as an ordinary error.
type ContractError struct {
	Who       string
	Action    Action
	Available ActionList
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("invalid action from %s (action: %v, available: %v)", e.Who, e.Action, e.Available)
}
