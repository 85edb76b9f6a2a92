// internal/terminal/human.go
package terminal

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jason-s-yu/guessit/engine"
	"github.com/peterh/liner"
)

// LineReader reads one line of input after printing a prompt.
// *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// historian is implemented by readers that keep a command history.
type historian interface {
	AppendHistory(item string)
}

// HumanPlayer is an engine.Player driven by commands typed at a terminal.
type HumanPlayer struct {
	name    string
	hand    engine.Hand
	in      LineReader
	out     io.Writer
	palette Palette
}

// NewHumanPlayer creates a human player reading from in and writing to out.
func NewHumanPlayer(name string, hand engine.Hand, in LineReader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{name: name, hand: hand, in: in, out: out, palette: DefaultPalette}
}

// Name returns the player name.
func (h *HumanPlayer) Name() string { return h.name }

// SelectAction prompts until the user enters an available action.
// "exit", Ctrl-C and end of input return engine.ErrPlayerQuit.
func (h *HumanPlayer) SelectAction(actions engine.ActionList) (engine.Action, error) {
	for {
		h.printHelp(actions)

		input, err := h.in.Prompt(h.name + "> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil, engine.ErrPlayerQuit
			}
			return nil, fmt.Errorf("read command: %w", err)
		}
		if hist, ok := h.in.(historian); ok && strings.TrimSpace(input) != "" {
			hist.AppendHistory(input)
		}

		fields := strings.Fields(input)
		if len(fields) == 0 {
			h.fail("Empty Command.")
			continue
		}
		command := strings.ToLower(fields[0])
		if command == "exit" {
			return nil, engine.ErrPlayerQuit
		}

		action, ok := h.parse(command, fields[1:])
		if !ok {
			h.fail("Parse Error.")
			continue
		}
		if !actions.Contains(action) {
			h.fail(fmt.Sprintf("Unavailable. (action: %v)", action))
			continue
		}
		return action, nil
	}
}

// parse builds an action from a command and its arguments, printing the
// reason when it cannot.
func (h *HumanPlayer) parse(command string, args []string) (engine.Action, bool) {
	if command != "ask" && command != "guess" {
		h.palette.Error.Fprintf(h.out, "Unknown Command. (command: %s)\n", command)
		return nil, false
	}
	if len(args) < 1 {
		h.palette.Error.Fprintln(h.out, "Card is not specified.")
		return nil, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		h.palette.Error.Fprintf(h.out, "%s: not a number %q\n", engine.ErrInvalidCard, args[0])
		return nil, false
	}
	card, err := engine.NewCard(n)
	if err != nil {
		h.palette.Error.Fprintln(h.out, err)
		return nil, false
	}
	if command == "ask" {
		return engine.Ask(card), true
	}
	return engine.Guess(card), true
}

func (h *HumanPlayer) fail(msg string) {
	h.palette.Error.Fprintln(h.out, msg)
	fmt.Fprintln(h.out)
}

func (h *HumanPlayer) printHelp(actions engine.ActionList) {
	h.palette.Info.Fprintf(h.out, "Your hand: %s\n", joinCards(h.hand.Cards()))
	h.palette.Info.Fprintln(h.out, "Available commands:")

	asks := make([]engine.Card, 0, len(actions.Asks()))
	for _, a := range actions.Asks() {
		asks = append(asks, a.Card())
	}
	if len(asks) > 0 {
		fmt.Fprintf(h.out, "  ask <card>      (<card>: %s)\n", joinCards(asks))
	}

	guesses := make([]engine.Card, 0, len(actions.Guesses()))
	for _, g := range actions.Guesses() {
		guesses = append(guesses, g.Card())
	}
	if len(guesses) > 0 {
		fmt.Fprintf(h.out, "  guess <card>    (<card>: %s)\n", joinCards(guesses))
	}
	fmt.Fprintln(h.out, "  exit")
}

func joinCards(cards []engine.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
