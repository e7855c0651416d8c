package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"cardroom/internal/game"
)

type Config struct {
	PlayerName     string
	MatchPoints    int
	DealerStandsOn int
	Seed           int64
	SuitTieBreak   bool
	PokerHands     int
	LogLevel       slog.Level
}

func Default() *Config {
	return &Config{
		PlayerName:     game.DefaultPlayerName,
		MatchPoints:    game.DefaultMatchPoints,
		DealerStandsOn: game.DefaultDealerStandsOn,
		PokerHands:     4,
		LogLevel:       slog.LevelInfo,
	}
}

// Load reads an optional .env file and then the CARDROOM_* environment.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := Default()

	if name := os.Getenv("CARDROOM_PLAYER_NAME"); name != "" {
		cfg.PlayerName = name
	}

	var err error
	if cfg.MatchPoints, err = intEnv("CARDROOM_MATCH_POINTS", cfg.MatchPoints); err != nil {
		return nil, err
	}
	if cfg.DealerStandsOn, err = intEnv("CARDROOM_DEALER_STANDS_ON", cfg.DealerStandsOn); err != nil {
		return nil, err
	}
	if cfg.PokerHands, err = intEnv("CARDROOM_POKER_HANDS", cfg.PokerHands); err != nil {
		return nil, err
	}

	if v := os.Getenv("CARDROOM_SEED"); v != "" {
		cfg.Seed, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("CARDROOM_SEED: %w", err)
		}
	}

	if v := os.Getenv("CARDROOM_SUIT_TIEBREAK"); v != "" {
		cfg.SuitTieBreak, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("CARDROOM_SUIT_TIEBREAK: %w", err)
		}
	}

	if v := os.Getenv("CARDROOM_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return nil, fmt.Errorf("CARDROOM_LOG_LEVEL: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges. Command line overrides call it again.
func (c *Config) Validate() error {
	if c.MatchPoints < 1 {
		return fmt.Errorf("match points must be at least 1, got %d", c.MatchPoints)
	}
	if c.DealerStandsOn < 2 || c.DealerStandsOn > 21 {
		return fmt.Errorf("dealer stand threshold must be between 2 and 21, got %d", c.DealerStandsOn)
	}
	if c.PokerHands < 1 || c.PokerHands > 10 {
		return fmt.Errorf("poker hands must be between 1 and 10, got %d", c.PokerHands)
	}
	return nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
