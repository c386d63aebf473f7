package render

import "dungeon-crawler/internal/game"

// Compose layers a snapshot into one glyph per cell: tiles first, then live
// monsters, then spikes, then the player on top.
func Compose(s game.Snapshot) [][]Glyph {
	cells := make([][]Glyph, s.Map.Height)
	for r, row := range s.Map.Tiles {
		cells[r] = make([]Glyph, len(row))
		for c, k := range row {
			cells[r][c] = TileGlyphs[k]
		}
	}
	for i := range s.Monsters {
		m := &s.Monsters[i]
		switch {
		case m.Immortal():
			cells[m.Pos.Row][m.Pos.Col] = GlyphInvulnerableMonster
		case m.Alive():
			cells[m.Pos.Row][m.Pos.Col] = GlyphMonster
		}
	}
	for _, sp := range s.Spikes {
		if sp.Dangerous {
			cells[sp.Pos.Row][sp.Pos.Col] = GlyphSpikeDangerous
		} else {
			cells[sp.Pos.Row][sp.Pos.Col] = GlyphSpikeSafe
		}
	}
	cells[s.Player.Pos.Row][s.Player.Pos.Col] = GlyphPlayer
	return cells
}
