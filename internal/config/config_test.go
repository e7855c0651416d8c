package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CARDROOM_PLAYER_NAME", "Ann")
	t.Setenv("CARDROOM_MATCH_POINTS", "3")
	t.Setenv("CARDROOM_DEALER_STANDS_ON", "16")
	t.Setenv("CARDROOM_SEED", "99")
	t.Setenv("CARDROOM_SUIT_TIEBREAK", "true")
	t.Setenv("CARDROOM_POKER_HANDS", "6")
	t.Setenv("CARDROOM_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Ann", cfg.PlayerName)
	assert.Equal(t, 3, cfg.MatchPoints)
	assert.Equal(t, 16, cfg.DealerStandsOn)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.True(t, cfg.SuitTieBreak)
	assert.Equal(t, 6, cfg.PokerHands)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadInvalid(t *testing.T) {
	testCases := []struct {
		key, value string
	}{
		{"CARDROOM_MATCH_POINTS", "five"},
		{"CARDROOM_MATCH_POINTS", "0"},
		{"CARDROOM_DEALER_STANDS_ON", "22"},
		{"CARDROOM_POKER_HANDS", "11"},
		{"CARDROOM_SEED", "x"},
		{"CARDROOM_SUIT_TIEBREAK", "maybe"},
		{"CARDROOM_LOG_LEVEL", "loud"},
	}

	for _, tc := range testCases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir on older toolchains).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
