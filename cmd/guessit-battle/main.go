// cmd/guessit-battle/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/jason-s-yu/guessit/internal/battle"
	"github.com/jason-s-yu/guessit/internal/config"
)

func usage() {
	types := make([]string, len(battle.PlayerTypes))
	for i, t := range battle.PlayerTypes {
		types[i] = string(t)
	}
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <repeat_count> <player0_type> <player1_type>\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "player types: %s\n\nflags:\n", strings.Join(types, ", "))
	flag.PrintDefaults()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	seed := flag.Uint64("seed", cfg.Seed, "master seed (0 = time-based)")
	level := flag.String("loglevel", cfg.LogLevel, "log level: debug, info, warn, error")
	quiet := flag.Bool("quiet", false, "do not print a line per game")
	flag.Usage = usage
	flag.Parse()
	cfg.Seed, cfg.LogLevel = *seed, *level

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}
	count, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "repeat_count: %v\n", err)
		os.Exit(2)
	}
	var types [2]battle.PlayerType
	for i := range types {
		if types[i], err = battle.ParsePlayerType(flag.Arg(i + 1)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	log := config.NewLogger(cfg)
	runner, err := battle.NewRunner(battle.Config{
		Count:       count,
		Player0Type: types[0],
		Player1Type: types[1],
		Seed:        cfg.Seed,
	}, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if !*quiet {
		runner.Out = os.Stdout
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := runner.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("battle failed")
	}
	if res.Games > 0 {
		battle.WriteSummary(os.Stdout, res)
	}
	if err != nil {
		log.WithField("games", res.Games).Warn("battle interrupted")
	}
}
