package system

import (
	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK       MoveResult = iota // position updated
	MoveBlocked                    // wall or shooter
	MoveOccupied                   // another live monster holds the cell
)

// TryMove attempts to move actor one step in d. The destination is clamped
// to the map; blocked and occupied destinations leave the actor in place.
func TryMove(gmap *gamemap.GameMap, actor *component.Actor, d component.Direction, monsters []component.Actor) MoveResult {
	dr, dc := d.Delta()
	return moveBy(gmap, actor, dr, dc, monsters)
}

func moveBy(gmap *gamemap.GameMap, actor *component.Actor, dr, dc int, monsters []component.Actor) MoveResult {
	dest := gmap.Clamp(component.Position{Row: actor.Pos.Row + dr, Col: actor.Pos.Col + dc})
	if gmap.At(dest).Blocks() {
		return MoveBlocked
	}
	if Occupied(monsters, dest, actor) {
		return MoveOccupied
	}
	actor.Pos = dest
	return MoveOK
}

// Occupied reports whether a live monster other than self stands at p.
func Occupied(monsters []component.Actor, p component.Position, self *component.Actor) bool {
	for i := range monsters {
		m := &monsters[i]
		if m == self || !m.Alive() {
			continue
		}
		if m.Pos == p {
			return true
		}
	}
	return false
}
