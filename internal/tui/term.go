package tui

import (
	"os"

	"golang.org/x/term"
)

// Interactive reports whether f is a terminal, which decides between the
// tcell frontend and line mode.
func Interactive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
