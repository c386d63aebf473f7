package tui

import (
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/game"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"testing"
)

// scriptFrontend replays fixed lines and records what it was shown.
type scriptFrontend struct {
	lines     []string
	readErr   error // returned once lines run out
	restart   []bool
	shown     []game.Snapshot
	deaths    int
	goodbyes  int
	fillLine  string // repeated after lines run out when readErr is nil
	fillLimit int
}

func (f *scriptFrontend) ReadLine(s game.Snapshot) (string, error) {
	f.shown = append(f.shown, s)
	if len(f.lines) > 0 {
		line := f.lines[0]
		f.lines = f.lines[1:]
		return line, nil
	}
	if f.fillLine != "" && f.fillLimit > 0 {
		f.fillLimit--
		return f.fillLine, nil
	}
	if f.readErr != nil {
		return "", f.readErr
	}
	return "", io.EOF
}

func (f *scriptFrontend) AskRestart(s game.Snapshot) (bool, error) {
	f.deaths++
	if len(f.restart) == 0 {
		return false, nil
	}
	again := f.restart[0]
	f.restart = f.restart[1:]
	return again, nil
}

func (f *scriptFrontend) Goodbye() { f.goodbyes++ }

func sessionConfig(d config.Difficulty) config.Config {
	cfg := config.Default()
	cfg.Difficulty = d
	cfg.TileScale = 1
	cfg.GridSize = 12
	return cfg
}

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestRunQuit(t *testing.T) {
	f := &scriptFrontend{lines: []string{"x", "q"}}
	if err := Run(f, sessionConfig(config.DifficultyEasy), rand.New(rand.NewSource(1)), discard()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if f.goodbyes != 1 {
		t.Fatalf("expected one goodbye, got %d", f.goodbyes)
	}
	if len(f.shown) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(f.shown))
	}
}

func TestRunRestartStartsFreshGame(t *testing.T) {
	f := &scriptFrontend{lines: []string{"x", "x", "r", "q"}}
	if err := Run(f, sessionConfig(config.DifficultyEasy), rand.New(rand.NewSource(1)), discard()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(f.shown) != 4 {
		t.Fatalf("expected 4 frames, got %d", len(f.shown))
	}
	if f.shown[2].Run.TurnsPlayed != 2 {
		t.Fatalf("expected 2 turns before restart, got %d", f.shown[2].Run.TurnsPlayed)
	}
	if after := f.shown[3]; after.Run.TurnsPlayed != 0 || after.Room != 1 {
		t.Fatalf("restart should start a new run, got %+v", after.Run)
	}
	if f.goodbyes != 1 {
		t.Fatalf("restart should not say goodbye, got %d", f.goodbyes)
	}
}

func TestRunEndOfInput(t *testing.T) {
	f := &scriptFrontend{lines: []string{"d"}}
	if err := Run(f, sessionConfig(config.DifficultyEasy), rand.New(rand.NewSource(1)), discard()); err != nil {
		t.Fatalf("EOF should end cleanly, got %v", err)
	}
}

func TestRunReadError(t *testing.T) {
	boom := errors.New("boom")
	f := &scriptFrontend{readErr: boom}
	err := Run(f, sessionConfig(config.DifficultyEasy), rand.New(rand.NewSource(1)), discard())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}

// A hard run with 1 hp that only waits is overrun by monsters.
func TestRunDeathAsksRestart(t *testing.T) {
	died := false
	for seed := int64(1); seed <= 5 && !died; seed++ {
		f := &scriptFrontend{fillLine: "x", fillLimit: 300}
		if err := Run(f, sessionConfig(config.DifficultyHard), rand.New(rand.NewSource(seed)), discard()); err != nil {
			t.Fatalf("Run: %v", err)
		}
		if f.deaths > 0 {
			died = true
			if f.goodbyes != 1 {
				t.Fatalf("declining a restart should say goodbye, got %d", f.goodbyes)
			}
		}
	}
	if !died {
		t.Fatal("expected at least one run to end in death")
	}
}
