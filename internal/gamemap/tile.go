package gamemap

import "dungeon-crawler/internal/component"

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileExit
	TileShooter
	TileHealth
	TilePowerUp
	TileArrowUp
	TileArrowDown
	TileArrowLeft
	TileArrowRight
)

var tileNames = [...]string{
	TileWall:       "wall",
	TileFloor:      "floor",
	TileExit:       "exit",
	TileShooter:    "shooter",
	TileHealth:     "health",
	TilePowerUp:    "powerup",
	TileArrowUp:    "arrow-up",
	TileArrowDown:  "arrow-down",
	TileArrowLeft:  "arrow-left",
	TileArrowRight: "arrow-right",
}

func (k TileKind) String() string {
	if int(k) < len(tileNames) {
		return tileNames[k]
	}
	return "unknown"
}

// Blocks reports whether actors can never enter the tile.
func (k TileKind) Blocks() bool {
	return k == TileWall || k == TileShooter
}

// ArrowDirection returns the travel direction of an arrow tile.
func (k TileKind) ArrowDirection() (component.Direction, bool) {
	switch k {
	case TileArrowUp:
		return component.DirUp, true
	case TileArrowDown:
		return component.DirDown, true
	case TileArrowLeft:
		return component.DirLeft, true
	case TileArrowRight:
		return component.DirRight, true
	}
	return 0, false
}

// ArrowTile returns the arrow tile that travels in d.
func ArrowTile(d component.Direction) TileKind {
	switch d {
	case component.DirUp:
		return TileArrowUp
	case component.DirDown:
		return TileArrowDown
	case component.DirLeft:
		return TileArrowLeft
	default:
		return TileArrowRight
	}
}
