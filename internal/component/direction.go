package component

// Direction is one of the four cardinal directions.
type Direction uint8

const (
	DirUp Direction = iota
	DirLeft
	DirDown
	DirRight
)

// Directions lists the cardinal directions in the fixed order used for
// target searches (w, a, s, d).
var Directions = [4]Direction{DirUp, DirLeft, DirDown, DirRight}

// Delta returns the (row, col) offset of one step in d.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirLeft:
		return 0, -1
	case DirDown:
		return 1, 0
	case DirRight:
		return 0, 1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	}
	return "?"
}
