// internal/terminal/palette.go
package terminal

import "github.com/fatih/color"

// Palette groups the colors used for terminal output. color.NoColor turns
// all of them into plain text.
type Palette struct {
	Hit, Miss, Action, Error, Info *color.Color
}

// DefaultPalette is used when no palette is supplied.
var DefaultPalette = Palette{
	Hit:    color.New(color.FgGreen),
	Miss:   color.New(color.FgRed),
	Action: color.New(color.FgCyan),
	Error:  color.New(color.FgHiYellow),
	Info:   color.New(color.FgWhite, color.Bold),
}

// DisableColor turns colored output off process-wide.
func DisableColor() { color.NoColor = true }
