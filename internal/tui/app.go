package tui

import (
	"dungeon-crawler/internal/game"
	"dungeon-crawler/internal/render"
	"fmt"
	"io"
	"log/slog"

	"github.com/gdamore/tcell/v2"
)

// App is the full-screen tcell frontend.
type App struct {
	screen   tcell.Screen
	renderer *render.Renderer
	prompt   string
	log      *slog.Logger
}

// NewScreen creates and initializes the terminal screen.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}

// NewApp creates an App drawing onto an initialized screen. The caller
// owns the screen and must Fini it.
func NewApp(screen tcell.Screen, scale, actionLimit int, logger *slog.Logger) *App {
	return &App{
		screen:   screen,
		renderer: render.NewRenderer(screen, scale),
		prompt:   fmt.Sprintf("Actions (up to %d of wasd f u, q quit, r restart)> ", actionLimit),
		log:      logger,
	}
}

// lineEditor accumulates typed runes until Enter.
type lineEditor struct {
	buf []rune
}

// handleKey applies one key. done is true when the line is complete.
// Escape and Ctrl-C submit a quit.
func (e *lineEditor) handleKey(ev *tcell.EventKey) (line string, done bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		line = string(e.buf)
		e.buf = e.buf[:0]
		return line, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(e.buf) > 0 {
			e.buf = e.buf[:len(e.buf)-1]
		}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		e.buf = e.buf[:0]
		return "q", true
	case tcell.KeyRune:
		e.buf = append(e.buf, ev.Rune())
	}
	return "", false
}

func (e *lineEditor) String() string { return string(e.buf) }

func (a *App) ReadLine(s game.Snapshot) (string, error) {
	var ed lineEditor
	for {
		a.renderer.DrawFrame(s)
		a.renderer.DrawPrompt(a.prompt, ed.String())

		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return "", io.EOF
		case *tcell.EventResize:
			a.screen.Sync()
			a.renderer.Resize()
		case *tcell.EventKey:
			if line, done := ed.handleKey(ev); done {
				return line, nil
			}
		}
	}
}

func (a *App) AskRestart(s game.Snapshot) (bool, error) {
	for {
		a.renderer.DrawDeathScreen(s)
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return false, io.EOF
		case *tcell.EventResize:
			a.screen.Sync()
			a.renderer.Resize()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape {
				return false, nil
			}
			switch ev.Rune() {
			case 'r', 'R':
				return true, nil
			case 'q', 'Q':
				return false, nil
			}
		}
	}
}

func (a *App) Goodbye() {
	a.log.Debug("session: goodbye")
}
