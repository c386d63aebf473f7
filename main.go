package main

import (
	"bufio"
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/tui"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one from the clock)")
	flag.TextVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "difficulty e, m or h (prompted when unset)")
	flag.IntVar(&cfg.TileScale, "scale", cfg.TileScale, "tile size, at least 1 (prompted when unset)")
	flag.IntVar(&cfg.GridSize, "size", cfg.GridSize, "room width and height")
	flag.IntVar(&cfg.ActionLimit, "actions", cfg.ActionLimit, "actions per turn")
	flag.BoolVar(&cfg.Plain, "plain", cfg.Plain, "line mode instead of the full-screen interface")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "append a debug log to this file")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	in := bufio.NewReader(os.Stdin)
	cfg, err = tui.Setup(cfg, in, os.Stdout)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("session: start", "seed", seed, "difficulty", cfg.Difficulty.String(),
		"size", cfg.GridSize, "scale", cfg.TileScale)

	if cfg.Plain || !tui.Interactive(os.Stdin) {
		p := tui.NewPlain(in, os.Stdout, cfg.TileScale, cfg.ActionLimit, tui.Interactive(os.Stdout))
		return tui.Run(p, cfg, rng, logger)
	}

	screen, err := tui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()
	return tui.Run(tui.NewApp(screen, cfg.TileScale, cfg.ActionLimit, logger), cfg, rng, logger)
}

// newLogger returns a text logger writing to path, or one that discards
// everything when path is empty. stderr is never used because it would
// tear the full-screen interface.
func newLogger(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), f.Close, nil
}
