package gamemap

import (
	"dungeon-crawler/internal/component"

	"github.com/zyedidia/generic/mapset"
)

// Blocking returns the tile set actors can never pass through.
func Blocking() mapset.Set[TileKind] {
	s := mapset.New[TileKind]()
	s.Put(TileWall)
	s.Put(TileShooter)
	return s
}

// Reachable reports whether goal can be reached from start by orthogonal
// steps that never enter a tile in impassable. Out-of-bounds cells are
// never visited.
func Reachable(m *GameMap, start, goal component.Position, impassable mapset.Set[TileKind]) bool {
	if !m.InBounds(start) || !m.InBounds(goal) {
		return false
	}
	seen := mapset.New[component.Position]()
	seen.Put(start)
	queue := []component.Position{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return true
		}
		for _, d := range component.Directions {
			next := cur.Step(d)
			if !m.InBounds(next) || seen.Has(next) {
				continue
			}
			if impassable.Has(m.At(next)) {
				continue
			}
			seen.Put(next)
			queue = append(queue, next)
		}
	}
	return false
}
