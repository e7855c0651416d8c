package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/pterm/pterm"

	"cardroom/internal/card"
	"cardroom/internal/config"
	"cardroom/internal/console"
	"cardroom/internal/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Printfln("Failed to load config: %v", err)
		os.Exit(1)
	}

	if err := parseArgs(os.Args[1:], cfg); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		pterm.Error.Printfln("Invalid options: %v", err)
		os.Exit(2)
	}

	logger := console.NewLogger(cfg.LogLevel)
	session := newSession(cfg, logger)
	logger.Debug("session created", "session", session.ID.String(), "match_points", cfg.MatchPoints)

	c := console.New(cfg, console.WithLogger(logger))
	if err := c.RunTwentyOne(session); err != nil {
		logger.Error("game stopped", "error", err)
		os.Exit(1)
	}
}

// parseArgs applies command line overrides on top of cfg and validates
// the result.
func parseArgs(args []string, cfg *config.Config) error {
	fs := flag.NewFlagSet("twentyone", flag.ContinueOnError)
	fs.StringVar(&cfg.PlayerName, "name", cfg.PlayerName, "player name")
	fs.IntVar(&cfg.MatchPoints, "points", cfg.MatchPoints, "points needed to win the match")
	fs.IntVar(&cfg.DealerStandsOn, "dealer-stands", cfg.DealerStandsOn, "dealer stops hitting at this total")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "shuffle seed, 0 for random")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg.Validate()
}

func newSession(cfg *config.Config, logger *slog.Logger) *game.Session {
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	return game.NewSession(
		game.Settings{
			PlayerName:     cfg.PlayerName,
			MatchPoints:    cfg.MatchPoints,
			DealerStandsOn: cfg.DealerStandsOn,
		},
		game.WithLogger(logger),
		game.WithDeckFactory(func() card.Drawer {
			if rng == nil {
				return card.NewDeck()
			}
			return card.NewDeck(card.WithRand(rng))
		}),
	)
}
