package render

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/game"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawHUD renders the status line and the message log at the bottom of the
// screen. The last row is left for the prompt.
func (r *Renderer) DrawHUD(s game.Snapshot) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudHeight

	r.drawHLine(hudY, tcell.ColorGray)
	r.drawText(0, hudY+1, s.StatusLine(), tcell.StyleDefault.Foreground(tcell.ColorWhite))

	for i, msg := range s.LastMessages(hudHeight - 3) {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

// DrawPrompt shows the line being typed on the last row.
func (r *Renderer) DrawPrompt(label, input string) {
	w, h := r.screen.Size()
	for x := range w {
		r.screen.SetContent(x, h-1, ' ', nil, tcell.StyleDefault)
	}
	end := r.drawText(0, h-1, label, tcell.StyleDefault.Foreground(tcell.ColorGray))
	end = r.drawText(end, h-1, input, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.screen.ShowCursor(end, h-1)
	r.screen.Show()
}

// DrawDeathScreen renders the run summary and the restart/quit choice.
func (r *Renderer) DrawDeathScreen(s game.Snapshot) {
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	dim := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	r.screen.Clear()
	r.screen.HideCursor()
	label := func(y int, l, v string) {
		r.drawText(2, y, l, dim)
		r.drawText(22, y, v, white)
	}

	y := 1
	r.drawHLine(y, tcell.ColorGray)
	y += 2
	r.drawText(2, y, "YOU WERE DEFEATED", gold)
	y += 2
	r.drawText(2, y, s.StatusLine(), white)
	y += 2
	label(y, "Final Score:", fmt.Sprint(s.Score))
	y++
	label(y, "Rooms Reached:", fmt.Sprint(s.Run.RoomsReached))
	y++
	label(y, "Turns Survived:", fmt.Sprint(s.Run.TurnsPlayed))
	y++
	label(y, "Power-ups Used:", fmt.Sprint(s.Run.PowerUpsUsed))
	y++
	label(y, "Damage Taken:", fmt.Sprint(s.Run.DamageTaken))
	y++
	if s.Run.CauseOfDeath != "" {
		label(y, "Killed By:", s.Run.CauseOfDeath)
	}
	y += 2
	r.drawHLine(y, tcell.ColorGray)
	y += 2
	r.drawText(2, y, "[R] Restart", green)
	r.drawText(18, y, "[Q] Quit", red)
	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := range w {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x, clipped to the screen width, and
// returns the column after the last rune drawn.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	w, _ := r.screen.Size()
	col := x
	for _, ch := range runewidth.Truncate(text, max(0, w-x), "") {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
	return col
}

func posAt(row, col int) component.Position {
	return component.Position{Row: row, Col: col}
}
