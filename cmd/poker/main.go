package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"

	"github.com/pterm/pterm"

	"cardroom/internal/card"
	"cardroom/internal/config"
	"cardroom/internal/console"
)

type options struct {
	hand   []card.Card
	rounds int
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Printfln("Failed to load config: %v", err)
		os.Exit(1)
	}

	opts, err := parseArgs(os.Args[1:], cfg)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		pterm.Error.Printfln("Invalid options: %v", err)
		os.Exit(2)
	}

	logger := console.NewLogger(cfg.LogLevel)
	if err := run(cfg, opts, os.Stdout, logger); err != nil {
		logger.Error("poker stopped", "error", err)
		os.Exit(1)
	}
}

// parseArgs applies command line overrides on top of cfg. A -hand value is
// parsed here so a typo is reported before anything is dealt.
func parseArgs(args []string, cfg *config.Config) (options, error) {
	var (
		opts options
		hand string
	)

	fs := flag.NewFlagSet("poker", flag.ContinueOnError)
	fs.StringVar(&hand, "hand", "", `classify one hand, e.g. "10h jh qh kh ah"`)
	fs.IntVar(&opts.rounds, "rounds", 1, "number of deals")
	fs.IntVar(&cfg.PokerHands, "hands", cfg.PokerHands, "hands per deal")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "shuffle seed, 0 for random")
	fs.BoolVar(&cfg.SuitTieBreak, "suit-tiebreak", cfg.SuitTieBreak, "break rank ties by suit when showing high and low cards")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if err := cfg.Validate(); err != nil {
		return options{}, err
	}
	if opts.rounds < 1 {
		return options{}, fmt.Errorf("rounds must be at least 1, got %d", opts.rounds)
	}

	if hand != "" {
		cards, err := card.ParseCards(hand)
		if err != nil {
			return options{}, fmt.Errorf("hand %q: %w", hand, err)
		}
		opts.hand = cards
	}
	return opts, nil
}

func run(cfg *config.Config, opts options, out io.Writer, logger *slog.Logger) error {
	c := console.New(cfg, console.WithLogger(logger), console.WithOutput(out))

	if opts.hand != nil {
		return c.EvaluateHand(opts.hand)
	}

	deckOpts := []card.DeckOption{
		card.WithOnReshuffle(func() {
			logger.Info("dealer shuffles a fresh deck")
		}),
	}
	if cfg.Seed != 0 {
		deckOpts = append(deckOpts, card.WithRand(rand.New(rand.NewSource(cfg.Seed))))
	}
	return c.RunPoker(card.NewDeck(deckOpts...), opts.rounds)
}
