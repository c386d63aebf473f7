// Package render draws game snapshots, either onto a tcell screen or as
// ANSI-colored text for line mode.
package render

import (
	"dungeon-crawler/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudHeight is the number of rows reserved under the map.
const hudHeight = 5

// Renderer draws the game onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	scale  int // terminal columns per map cell
}

// NewRenderer creates a Renderer for the given screen. scale is the tile
// width in columns.
func NewRenderer(screen tcell.Screen, scale int) *Renderer {
	r := &Renderer{screen: screen, scale: max(1, scale)}
	r.Resize()
	return r
}

// Resize refits the viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera = NewCamera(r.scale, w, max(0, h-hudHeight))
}

// DrawFrame renders the map and the HUD, then shows the screen.
func (r *Renderer) DrawFrame(s game.Snapshot) {
	r.screen.Clear()
	r.camera.Center(s.Player.Pos, s.Map.Width, s.Map.Height)
	r.drawMap(s)
	r.DrawHUD(s)
	r.screen.Show()
}

func (r *Renderer) drawMap(s game.Snapshot) {
	for row, cells := range Compose(s) {
		for col, g := range cells {
			sx, sy, onScreen := r.camera.WorldToScreen(posAt(row, col))
			if !onScreen {
				continue
			}
			r.putGlyph(sx, sy, g)
		}
	}
}

// putGlyph draws g in the first column of its tile and pads the rest of
// the tile with spaces. Wide runes take two of those columns.
func (r *Renderer) putGlyph(x, y int, g Glyph) {
	style := g.Style()
	r.screen.SetContent(x, y, g.Rune, nil, style)
	for col := x + runewidth.RuneWidth(g.Rune); col < x+r.scale; col++ {
		r.screen.SetContent(col, y, ' ', nil, style)
	}
}
