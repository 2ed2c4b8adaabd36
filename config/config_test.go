package config

import (
	"bytes"
	"strconv"
	"testing"

	"chessbot/bots"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"CHESS_DEPTH", "CHESS_MOBILITY_WEIGHT", "CHESS_FEN", "LOG_STYLE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Engine.Depth)
	require.Equal(t, 0, cfg.Engine.MobilityWeight)
	require.Equal(t, "", cfg.Game.FEN)
	require.Equal(t, "console", cfg.Logs.Style)
	require.Equal(t, "info", cfg.Logs.Level)
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHESS_DEPTH", "5")
	t.Setenv("CHESS_MOBILITY_WEIGHT", "2")
	t.Setenv("CHESS_FEN", " 8/8/8/4k3/8/8/8/4K2Q w - - 0 1 ")
	t.Setenv("LOG_STYLE", "JSON")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Engine.Depth)
	require.Equal(t, 2, cfg.Engine.MobilityWeight)
	require.Equal(t, "8/8/8/4k3/8/8/8/4K2Q w - - 0 1", cfg.Game.FEN)
	require.Equal(t, "json", cfg.Logs.Style)
	require.Equal(t, "debug", cfg.Logs.Level)
}

func TestLoadConfigInvalid(t *testing.T) {
	for _, tc := range []struct {
		key, value string
	}{
		{"CHESS_DEPTH", "deep"},
		{"CHESS_DEPTH", "0"},
		{"CHESS_DEPTH", "65"},
		{"CHESS_MOBILITY_WEIGHT", "1.5"},
		{"LOG_STYLE", "xml"},
	} {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := LoadConfig()
			require.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestLoadConfigDepthBounds(t *testing.T) {
	require.Equal(t, bots.MaxDepth, MaxDepth)

	clearEnv(t)
	t.Setenv("CHESS_DEPTH", strconv.Itoa(bots.MaxDepth))
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, bots.MaxDepth, cfg.Engine.Depth)

	t.Setenv("CHESS_DEPTH", strconv.Itoa(bots.MaxDepth+1))
	_, err = LoadConfig()
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestSetupLogging(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	require.NoError(t, setupLogging(LogConfig{Style: "json", Level: "warn"}, &buf))
	require.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	log.Info().Msg("hidden")
	log.Warn().Str("move", "e2e4").Msg("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"move":"e2e4"`)

	err := setupLogging(LogConfig{Style: "console", Level: "loud"}, &buf)
	require.ErrorIs(t, err, ErrInvalidValue)
}
