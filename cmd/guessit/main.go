// cmd/guessit/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jason-s-yu/guessit/engine"
	"github.com/jason-s-yu/guessit/engine/agent"
	"github.com/jason-s-yu/guessit/internal/config"
	"github.com/jason-s-yu/guessit/internal/terminal"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	seed := flag.Uint64("seed", cfg.Seed, "deal seed (0 = time-based)")
	level := flag.String("loglevel", cfg.LogLevel, "log level: debug, info, warn, error")
	noColor := flag.Bool("nocolor", cfg.NoColor, "disable colored output")
	flag.Parse()
	cfg.Seed, cfg.LogLevel, cfg.NoColor = *seed, *level, *noColor

	log := config.NewLogger(cfg)
	if cfg.NoColor {
		terminal.DisableColor()
	}

	resolved := cfg.ResolveSeed()
	log.WithField("seed", resolved).Debug("dealing")
	deal := engine.NewDealer(resolved).Deal()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	player0 := terminal.NewHumanPlayer("Player0", deal.Player0Hand(), line, os.Stdout)
	player1 := agent.NewSmartAI("Player1", deal.Player1Hand(), resolved^0x9e3779b97f4a7c15)
	player1.SetLogger(log)

	game := engine.NewGame(deal, player0, player1)
	game.AddObserver(terminal.NewView(os.Stdout))
	game.AddObserver(player1)

	winner, err := game.Start()
	if errors.Is(err, engine.ErrPlayerQuit) {
		fmt.Println("Goodbye!")
		return
	}
	if err != nil {
		line.Close()
		log.WithError(err).Fatal("game aborted")
	}
	fmt.Printf("%s won.\n", winner.Name())
	log.WithFields(logrus.Fields{"winner": winner.Name(), "turns": game.Turns(), "rest": deal.RestCard()}).Debug("game finished")
}
