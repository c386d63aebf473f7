package render

import (
	"dungeon-crawler/internal/game"
	"strings"
)

// Text renders a snapshot as ANSI-colored lines for line mode. Each map
// cell becomes a scale×scale block of "glyph " pairs.
func Text(s game.Snapshot, scale int) string {
	scale = max(1, scale)
	var b strings.Builder
	for _, row := range Compose(s) {
		var line strings.Builder
		for _, g := range row {
			cell := g.Sprint() + " "
			line.WriteString(strings.Repeat(cell, scale))
		}
		for range scale {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(line.String())
		}
	}
	return b.String()
}
