// Package tui holds the two frontends, the full-screen tcell App and the
// line-mode Plain, plus the session loop and setup prompts they share.
package tui

import (
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/game"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
)

// Frontend is what a session needs from a user interface.
type Frontend interface {
	// ReadLine shows the snapshot and returns the next line of input.
	ReadLine(s game.Snapshot) (string, error)
	// AskRestart shows the death screen and reports whether to play again.
	AskRestart(s game.Snapshot) (bool, error)
	// Goodbye is called once when the player leaves.
	Goodbye()
}

// Run plays runs on f until the player quits or input ends. A restart
// starts a fresh game with the same configuration.
func Run(f Frontend, cfg config.Config, rng *rand.Rand, logger *slog.Logger) error {
	for {
		g := game.New(cfg, rng, logger)
		again, err := play(f, g)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
		logger.Info("session: restart")
	}
}

// play runs one game to its end and reports whether a new one should start.
func play(f Frontend, g *game.Game) (bool, error) {
	for {
		line, err := f.ReadLine(g.Snapshot())
		if err != nil {
			return false, endOfInput(err)
		}
		switch g.PlayTurn(line) {
		case game.OutcomeQuit:
			f.Goodbye()
			return false, nil
		case game.OutcomeRestart:
			return true, nil
		case game.OutcomeDied:
			again, err := f.AskRestart(g.Snapshot())
			if err != nil {
				return false, endOfInput(err)
			}
			if !again {
				f.Goodbye()
			}
			return again, nil
		}
	}
}

// endOfInput treats a closed input as a clean exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}
