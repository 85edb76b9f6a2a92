// internal/terminal/view.go
package terminal

import (
	"fmt"
	"io"

	"github.com/jason-s-yu/guessit/engine"
)

// View prints every resolved action and its outcome.
type View struct {
	out     io.Writer
	palette Palette
}

// NewView creates a view writing to out.
func NewView(out io.Writer) *View {
	return &View{out: out, palette: DefaultPalette}
}

func (v *View) PlayerAsked(player engine.Player, ask engine.AskAction, isHit bool) {
	v.show(player, ask, isHit)
}

func (v *View) PlayerGuessed(player engine.Player, guess engine.GuessAction, isHit bool) {
	v.show(player, guess, isHit)
}

func (v *View) show(player engine.Player, action engine.Action, isHit bool) {
	fmt.Fprintf(v.out, "%s: ", player.Name())
	v.palette.Action.Fprintln(v.out, action)
	if isHit {
		v.palette.Hit.Fprintln(v.out, "Hit.")
	} else {
		v.palette.Miss.Fprintln(v.out, "Miss.")
	}
	fmt.Fprintln(v.out)
}
