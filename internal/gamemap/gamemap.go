package gamemap

import "dungeon-crawler/internal/component"

// GameMap holds the tile grid for one room. Tiles are indexed [row][col].
type GameMap struct {
	Width, Height int
	Tiles         [][]TileKind
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	tiles := make([][]TileKind, height)
	for r := range tiles {
		tiles[r] = make([]TileKind, width)
		for c := range tiles[r] {
			tiles[r][c] = TileWall
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// Start is the cell every room is entered at.
func (m *GameMap) Start() component.Position {
	return component.Position{Row: 1, Col: 1}
}

// End is the cell the exit is carved at, near the opposite corner.
func (m *GameMap) End() component.Position {
	return component.Position{Row: m.Height - 2, Col: m.Width - 2}
}

// InBounds reports whether p is within the map boundaries.
func (m *GameMap) InBounds(p component.Position) bool {
	return p.Row >= 0 && p.Row < m.Height && p.Col >= 0 && p.Col < m.Width
}

// Interior reports whether p lies strictly inside the outer wall ring.
func (m *GameMap) Interior(p component.Position) bool {
	return p.Row > 0 && p.Row < m.Height-1 && p.Col > 0 && p.Col < m.Width-1
}

// At returns the tile at p. Panics if out of bounds.
func (m *GameMap) At(p component.Position) TileKind {
	return m.Tiles[p.Row][p.Col]
}

// Set replaces the tile at p.
func (m *GameMap) Set(p component.Position, k TileKind) {
	m.Tiles[p.Row][p.Col] = k
}

// IsWalkable returns true when p is in bounds and not a blocking tile.
func (m *GameMap) IsWalkable(p component.Position) bool {
	if !m.InBounds(p) {
		return false
	}
	return !m.Tiles[p.Row][p.Col].Blocks()
}

// Clamp pulls p back inside the map boundaries.
func (m *GameMap) Clamp(p component.Position) component.Position {
	return component.Position{
		Row: max(0, min(m.Height-1, p.Row)),
		Col: max(0, min(m.Width-1, p.Col)),
	}
}

// Find returns every position holding kind, in row-major order.
func (m *GameMap) Find(kind TileKind) []component.Position {
	var out []component.Position
	for r, row := range m.Tiles {
		for c, k := range row {
			if k == kind {
				out = append(out, component.Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// Clone returns a deep copy of the map.
func (m *GameMap) Clone() *GameMap {
	tiles := make([][]TileKind, len(m.Tiles))
	for r, row := range m.Tiles {
		tiles[r] = append([]TileKind(nil), row...)
	}
	return &GameMap{Width: m.Width, Height: m.Height, Tiles: tiles}
}
