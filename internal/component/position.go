package component

import "math"

// Position is a grid coordinate. Row 0 is the top edge of the map.
type Position struct {
	Row, Col int
}

// Step returns the position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Adjacent reports whether o is exactly one orthogonal step from p.
func (p Position) Adjacent(o Position) bool {
	return abs(p.Row-o.Row)+abs(p.Col-o.Col) == 1
}

// Dist returns the Euclidean distance between p and o.
func (p Position) Dist(o Position) float64 {
	dr := float64(p.Row - o.Row)
	dc := float64(p.Col - o.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
