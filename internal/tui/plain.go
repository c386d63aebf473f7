package tui

import (
	"bufio"
	"dungeon-crawler/internal/game"
	"dungeon-crawler/internal/render"
	"fmt"
	"io"
	"strings"
)

// clearScreen moves the cursor home and erases the terminal.
const clearScreen = "\033[H\033[2J"

// Plain is the line-mode frontend: it prints the room as colored text and
// reads one line per turn.
type Plain struct {
	in          *bufio.Reader
	out         io.Writer
	scale       int
	actionLimit int
	clear       bool
}

// NewPlain creates a line-mode frontend. When clear is set the terminal is
// wiped before each frame.
func NewPlain(in *bufio.Reader, out io.Writer, scale, actionLimit int, clear bool) *Plain {
	return &Plain{in: in, out: out, scale: scale, actionLimit: actionLimit, clear: clear}
}

func (p *Plain) ReadLine(s game.Snapshot) (string, error) {
	if p.clear {
		fmt.Fprint(p.out, clearScreen)
	}
	fmt.Fprintln(p.out, render.Text(s, p.scale))
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, s.StatusLine())
	for _, msg := range s.LastMessages(3) {
		fmt.Fprintln(p.out, msg)
	}
	return ask(p.in, p.out, fmt.Sprintf(
		"Enter up to %d actions (WASD to move, F to attack, U to use power-up, Q to quit, R to restart): ",
		p.actionLimit))
}

func (p *Plain) AskRestart(s game.Snapshot) (bool, error) {
	fmt.Fprintln(p.out, s.StatusLine())
	fmt.Fprintf(p.out, "Final Score: %d\n", s.Score)
	fmt.Fprintln(p.out, "=================")
	for {
		answer, err := ask(p.in, p.out, "Press R to restart or Q to quit: ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "r":
			return true, nil
		case "q":
			return false, nil
		}
	}
}

func (p *Plain) Goodbye() {
	fmt.Fprintln(p.out, "Goodbye.")
}
