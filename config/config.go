package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"chessbot/bots"

	// loads a .env file from the working directory, if there is one
	_ "github.com/joho/godotenv/autoload"
)

var ErrInvalidValue = errors.New("invalid config value")

type Config struct {
	Logs   LogConfig
	Engine EngineConfig
	Game   GameConfig
}

type LogConfig struct {
	Style string // console or json
	Level string
}

type EngineConfig struct {
	Depth          int
	MobilityWeight int
}

type GameConfig struct {
	FEN string // empty for the standard starting position
}

// Bounds for CHESS_DEPTH.
const (
	MinDepth = 1
	MaxDepth = bots.MaxDepth
)

func LoadConfig() (*Config, error) {
	depth, err := intFromEnv("CHESS_DEPTH", 3)
	if err != nil {
		return nil, err
	}
	if depth < MinDepth || depth > MaxDepth {
		return nil, fmt.Errorf("CHESS_DEPTH=%d outside [%d, %d]: %w", depth, MinDepth, MaxDepth, ErrInvalidValue)
	}

	mobility, err := intFromEnv("CHESS_MOBILITY_WEIGHT", 0)
	if err != nil {
		return nil, err
	}

	style := strings.ToLower(stringFromEnv("LOG_STYLE", "console"))
	if style != "console" && style != "json" {
		return nil, fmt.Errorf("LOG_STYLE=%q: %w", style, ErrInvalidValue)
	}

	cfg := &Config{
		Logs: LogConfig{
			Style: style,
			Level: stringFromEnv("LOG_LEVEL", "info"),
		},
		Engine: EngineConfig{
			Depth:          depth,
			MobilityWeight: mobility,
		},
		Game: GameConfig{
			FEN: strings.TrimSpace(os.Getenv("CHESS_FEN")),
		},
	}

	return cfg, nil
}

func stringFromEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intFromEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, errors.Join(ErrInvalidValue, err))
	}
	return v, nil
}
