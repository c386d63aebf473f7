package render

import (
	"dungeon-crawler/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/gookit/color"
)

// Glyph is how one map cell is drawn. The same table feeds the tcell
// renderer and the plain ANSI renderer.
type Glyph struct {
	Rune rune
	FG   tcell.Color
	Bold bool
	ANSI color.Style
}

var (
	GlyphPlayer              = Glyph{'@', tcell.ColorGreen, false, color.Style{color.FgGreen}}
	GlyphMonster             = Glyph{'M', tcell.ColorRed, false, color.Style{color.FgRed}}
	GlyphInvulnerableMonster = Glyph{'X', tcell.ColorRed, true, color.Style{color.FgRed, color.OpBold}}
	GlyphSpikeDangerous      = Glyph{'▲', tcell.ColorGray, false, color.Style{color.FgDarkGray}}
	GlyphSpikeSafe           = Glyph{'_', tcell.ColorWhite, false, color.Style{color.FgWhite}}
)

// TileGlyphs maps every tile kind to its glyph.
var TileGlyphs = map[gamemap.TileKind]Glyph{
	gamemap.TileWall:       {'■', tcell.ColorSilver, false, color.Style{color.FgDefault}},
	gamemap.TileFloor:      {'.', tcell.ColorDimGray, true, color.Style{color.FgBlack, color.OpBold}},
	gamemap.TileExit:       {'E', tcell.ColorBlue, false, color.Style{color.FgBlue}},
	gamemap.TileShooter:    {'#', tcell.ColorWhite, false, color.Style{color.FgWhite}},
	gamemap.TileHealth:     {'+', tcell.ColorGreen, false, color.Style{color.FgGreen}},
	gamemap.TilePowerUp:    {'P', tcell.ColorBlue, false, color.Style{color.FgBlue}},
	gamemap.TileArrowUp:    {'↑', tcell.ColorWhite, false, color.Style{color.FgWhite}},
	gamemap.TileArrowDown:  {'↓', tcell.ColorWhite, false, color.Style{color.FgWhite}},
	gamemap.TileArrowLeft:  {'←', tcell.ColorWhite, false, color.Style{color.FgWhite}},
	gamemap.TileArrowRight: {'→', tcell.ColorWhite, false, color.Style{color.FgWhite}},
}

// Style returns the tcell style for g on the map background.
func (g Glyph) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(g.FG).Background(tcell.ColorBlack).Bold(g.Bold)
}

// Sprint renders g as an ANSI-colored string.
func (g Glyph) Sprint() string {
	return g.ANSI.Sprint(string(g.Rune))
}
