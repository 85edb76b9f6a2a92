// internal/battle/battle.go
package battle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/guessit/engine"
	"github.com/jason-s-yu/guessit/engine/agent"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCount      = errors.New("invalid repeat count")
	ErrUnknownPlayerType = errors.New("unknown player type")
)

// Config selects the matchup and length of a battle.
type Config struct {
	Count       int
	Player0Type PlayerType
	Player1Type PlayerType
	Seed        uint64 // 0 selects a time-based seed
}

// Validate reports whether the config can be run.
func (c Config) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("%w (count: %d)", ErrInvalidCount, c.Count)
	}
	for _, t := range []PlayerType{c.Player0Type, c.Player1Type} {
		if !slices.Contains(PlayerTypes, t) {
			return fmt.Errorf("%w (type: %s)", ErrUnknownPlayerType, t)
		}
	}
	return nil
}

// GameResult describes one finished game.
type GameResult struct {
	ID         uuid.UUID
	Index      int
	Winner     int // seat of the winner
	WinnerName string
	Turns      int
}

// OnGameEndFunc is called after each game of a battle.
type OnGameEndFunc func(GameResult)

// Result aggregates a battle.
type Result struct {
	Config     Config
	Seed       uint64 // resolved master seed
	Games      int
	Wins       [engine.NumPlayers]int
	TotalTurns int
}

// WinRate returns the percentage of games won by seat.
func (r Result) WinRate(seat int) float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Wins[seat]) * 100 / float64(r.Games)
}

// CI95 returns the Wilson interval of seat's win rate, in percent.
func (r Result) CI95(seat int) (low, hi float64) {
	low, hi = WilsonCI95(r.Wins[seat], r.Games)
	return low * 100, hi * 100
}

// AvgTurns returns the mean number of actions per game.
func (r Result) AvgTurns() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.TotalTurns) / float64(r.Games)
}

// Runner plays a sequence of AI-vs-AI games.
type Runner struct {
	cfg Config
	log logrus.FieldLogger

	Out       io.Writer     // receives one line per finished game; nil discards
	OnGameEnd OnGameEndFunc // optional
}

// NewRunner validates cfg and prepares a runner.
func NewRunner(cfg Config, log logrus.FieldLogger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Runner{cfg: cfg, log: log}, nil
}

// Run plays cfg.Count games one after another. Every game gets a fresh
// deal and fresh players, all seeded from a master generator so the whole
// battle is reproducible from Result.Seed. Cancelling ctx stops the battle
// between games; the partial result is returned with ctx's error.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	seed := r.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	res := Result{Config: r.cfg, Seed: seed}
	master := rand.New(rand.NewPCG(seed, 0))
	dealer := engine.NewDealer(master.Uint64())
	out := r.Out
	if out == nil {
		out = io.Discard
	}

	r.log.WithFields(logrus.Fields{
		"count":   r.cfg.Count,
		"player0": r.cfg.Player0Type,
		"player1": r.cfg.Player1Type,
		"seed":    seed,
	}).Info("battle started")

	for i := range r.cfg.Count {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		gr, err := r.playOne(i, dealer.Deal(), master)
		if err != nil {
			return res, err
		}

		res.Games++
		res.Wins[gr.Winner]++
		res.TotalTurns += gr.Turns

		fmt.Fprintf(out, "[%d/%d] %s won.\n", i, r.cfg.Count, gr.WinnerName)
		if r.OnGameEnd != nil {
			r.OnGameEnd(gr)
		}
	}

	r.log.WithFields(logrus.Fields{
		"games":     res.Games,
		"wins0":     res.Wins[0],
		"wins1":     res.Wins[1],
		"avg_turns": res.AvgTurns(),
	}).Info("battle finished")
	return res, nil
}

func (r *Runner) playOne(index int, deal engine.Deal, master *rand.Rand) (GameResult, error) {
	id := uuid.New()
	glog := r.log.WithFields(logrus.Fields{"game_id": id, "index": index})

	types := [engine.NumPlayers]PlayerType{r.cfg.Player0Type, r.cfg.Player1Type}
	var players [engine.NumPlayers]engine.Player
	for seat, t := range types {
		p, err := NewPlayer(t, fmt.Sprintf("Player%d", seat), deal.Hand(seat), master.Uint64())
		if err != nil {
			return GameResult{}, err
		}
		players[seat] = p
	}

	game := engine.NewGame(deal, players[0], players[1])
	for _, p := range players {
		if ai, ok := p.(*agent.SmartAI); ok {
			ai.SetLogger(glog)
			game.AddObserver(ai)
		}
	}
	counter := &turnCounter{}
	game.AddObserver(counter)

	winner, err := game.Start()
	if err != nil {
		return GameResult{}, fmt.Errorf("game %d (%s): %w", index, id, err)
	}

	gr := GameResult{ID: id, Index: index, WinnerName: winner.Name(), Turns: counter.total()}
	if winner == players[1] {
		gr.Winner = 1
	}
	glog.WithFields(logrus.Fields{"winner": gr.WinnerName, "turns": gr.Turns}).Debug("game finished")
	return gr, nil
}
