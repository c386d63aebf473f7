// Package config holds the process-wide settings chosen at startup. A Config
// is built once from the environment and command-line flags, completed by
// the setup prompts, and then passed explicitly to the generator and the
// turn loop.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

var (
	ErrInvalidDifficulty = errors.New("difficulty must be e, m or h")
	ErrInvalidTileScale  = errors.New("tile scale must be a positive integer")
	ErrInvalidGridSize   = errors.New("grid size out of range")
	ErrInvalidLimit      = errors.New("action limit must be at least 1")
)

const (
	DefaultGridSize    = 24
	DefaultActionLimit = 3
	MinGridSize        = 8
	MaxGridSize        = 200
)

// Config is the explicit configuration threaded into the game.
type Config struct {
	Seed        int64      `env:"CRAWLER_SEED"`
	Difficulty  Difficulty `env:"CRAWLER_DIFFICULTY"`
	TileScale   int        `env:"CRAWLER_TILE_SCALE"`
	GridSize    int        `env:"CRAWLER_GRID_SIZE" envDefault:"24"`
	ActionLimit int        `env:"CRAWLER_ACTION_LIMIT" envDefault:"3"`
	Plain       bool       `env:"CRAWLER_PLAIN"`
	LogFile     string     `env:"CRAWLER_LOG"`
}

// Default returns a Config with every prompted field left unset.
func Default() Config {
	return Config{GridSize: DefaultGridSize, ActionLimit: DefaultActionLimit}
}

// FromEnv loads configuration from CRAWLER_* environment variables.
func FromEnv() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields that must be sane before the game starts.
// Difficulty and TileScale may still be unset; the setup prompts fill them.
func (c Config) Validate() error {
	if c.GridSize < MinGridSize || c.GridSize > MaxGridSize {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrInvalidGridSize, c.GridSize, MinGridSize, MaxGridSize)
	}
	if c.ActionLimit < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, c.ActionLimit)
	}
	if c.TileScale < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTileScale, c.TileScale)
	}
	return nil
}

// Complete reports whether no setup prompt is needed.
func (c Config) Complete() bool {
	return c.Difficulty != DifficultyUnset && c.TileScale >= 1
}

// ParseTileScale accepts a decimal integer >= 1.
func ParseTileScale(s string) (int, error) {
	s = strings.TrimSpace(s)
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTileScale, s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTileScale, s)
	}
	return n, nil
}
