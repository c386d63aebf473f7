package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/gamemap"
)

// openMap returns a w×h map whose interior is all floor.
func openMap(w, h int) *gamemap.GameMap {
	gmap := gamemap.New(w, h)
	for r := 1; r < h-1; r++ {
		for c := 1; c < w-1; c++ {
			gmap.Set(pos(r, c), gamemap.TileFloor)
		}
	}
	return gmap
}

func pos(r, c int) component.Position {
	return component.Position{Row: r, Col: c}
}

// lethalSpike is dangerous at turn 0.
func lethalSpike(p component.Position) component.Spike {
	return component.Spike{Pos: p, Period: 2, Offset: 0}
}

// safeSpike is in its safe phase at turn 0.
func safeSpike(p component.Position) component.Spike {
	return component.Spike{Pos: p, Period: 2, Offset: 1}
}
