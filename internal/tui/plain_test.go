package tui

import (
	"bufio"
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/game"
	"math/rand"
	"strings"
	"testing"
)

func TestPlainSession(t *testing.T) {
	var out strings.Builder
	in := bufio.NewReader(strings.NewReader("56840explosive\nq\n"))
	p := NewPlain(in, &out, 1, config.DefaultActionLimit, false)
	if err := Run(p, sessionConfig(config.DifficultyEasy), rand.New(rand.NewSource(1)), discard()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Room: 1  HP: 5  Power-up: None",
		"Power-up: explosive",
		"Cheat activated: explosive power-up granted!",
		"Enter up to 3 actions",
		"Goodbye.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(got, clearScreen) {
		t.Error("clear sequence written with clearing off")
	}
}

func TestPlainClearsScreen(t *testing.T) {
	var out strings.Builder
	p := NewPlain(bufio.NewReader(strings.NewReader("q\n")), &out, 1, 3, true)
	if err := Run(p, sessionConfig(config.DifficultyEasy), rand.New(rand.NewSource(1)), discard()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.HasPrefix(out.String(), clearScreen) {
		t.Fatal("expected the frame to start with a clear")
	}
}

func TestPlainAskRestart(t *testing.T) {
	g := game.New(sessionConfig(config.DifficultyEasy), rand.New(rand.NewSource(1)), nil)
	tests := []struct {
		input string
		want  bool
	}{
		{"R\n", true},
		{"q\n", false},
		{"maybe\n\nr\n", true},
	}
	for _, tt := range tests {
		var out strings.Builder
		p := NewPlain(bufio.NewReader(strings.NewReader(tt.input)), &out, 1, 3, false)
		got, err := p.AskRestart(g.Snapshot())
		if err != nil {
			t.Fatalf("%q: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("%q: restart = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "Final Score: 0") {
			t.Errorf("%q: missing final score", tt.input)
		}
	}
}
