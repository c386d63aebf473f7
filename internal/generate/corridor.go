package generate

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/gamemap"
)

// carvePatch clears the 3×3 block centred on p, clipped to the interior.
func carvePatch(gmap *gamemap.GameMap, p component.Position) {
	for r := p.Row - 1; r <= p.Row+1; r++ {
		for c := p.Col - 1; c <= p.Col+1; c++ {
			cell := component.Position{Row: r, Col: c}
			if gmap.Interior(cell) {
				gmap.Set(cell, gamemap.TileFloor)
			}
		}
	}
}

// carveCorridor random-walks from start to end. Each step flips a coin to
// pick the row or column axis and moves toward end on that axis if it is not
// yet aligned, so the walk wanders but always arrives.
func carveCorridor(gmap *gamemap.GameMap, start, end component.Position, cfg *Config) {
	cur := start
	gmap.Set(cur, gamemap.TileFloor)
	for cur != end {
		if cfg.Rand.Float64() < 0.5 {
			cur.Row += sign(end.Row - cur.Row)
		} else {
			cur.Col += sign(end.Col - cur.Col)
		}
		gmap.Set(cur, gamemap.TileFloor)
	}
}

// carveNoise turns each interior wall into floor with probability density.
func carveNoise(gmap *gamemap.GameMap, density float64, cfg *Config) {
	for r := 1; r < gmap.Height-1; r++ {
		for c := 1; c < gmap.Width-1; c++ {
			p := component.Position{Row: r, Col: c}
			if gmap.At(p) == gamemap.TileWall && cfg.Rand.Float64() < density {
				gmap.Set(p, gamemap.TileFloor)
			}
		}
	}
}

// carveWalker digs floor along a random walk that starts at a random
// interior cell and never leaves the interior.
func carveWalker(gmap *gamemap.GameMap, steps int, cfg *Config) {
	cur := component.Position{
		Row: 1 + cfg.Rand.Intn(gmap.Height-2),
		Col: 1 + cfg.Rand.Intn(gmap.Width-2),
	}
	for range steps {
		gmap.Set(cur, gamemap.TileFloor)
		next := cur.Step(component.Directions[cfg.Rand.Intn(len(component.Directions))])
		cur = component.Position{
			Row: max(1, min(gmap.Height-2, next.Row)),
			Col: max(1, min(gmap.Width-2, next.Col)),
		}
	}
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
