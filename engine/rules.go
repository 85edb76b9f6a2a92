package engine

// Card universe and hand shape. Guess It is always played heads-up with
// four cards each and a single hidden card.
const (
	MinCard    = 1
	MaxCard    = 9
	NumCards   = MaxCard - MinCard + 1
	HandSize   = 4
	NumPlayers = 2
)
