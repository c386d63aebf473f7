package render

import "dungeon-crawler/internal/component"

// Camera translates between map cells and screen cells. Each map cell is
// CellWidth terminal columns wide.
type Camera struct {
	OffsetRow  int
	OffsetCol  int
	CellWidth  int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera for a viewport of viewW×viewH terminal cells.
func NewCamera(cellWidth, viewW, viewH int) *Camera {
	return &Camera{CellWidth: max(1, cellWidth), ViewWidth: viewW, ViewHeight: viewH}
}

// Center scrolls so that p is in the middle of the view, without scrolling
// past the edges of a mapW×mapH map.
func (c *Camera) Center(p component.Position, mapW, mapH int) {
	cols := c.ViewWidth / c.CellWidth
	c.OffsetCol = clampOffset(p.Col-cols/2, mapW-cols)
	c.OffsetRow = clampOffset(p.Row-c.ViewHeight/2, mapH-c.ViewHeight)
}

func clampOffset(v, hi int) int {
	return max(0, min(v, hi))
}

// WorldToScreen converts a map cell to the screen column and row of its
// first terminal cell. visible is false when it falls outside the viewport.
func (c *Camera) WorldToScreen(p component.Position) (sx, sy int, visible bool) {
	sx = (p.Col - c.OffsetCol) * c.CellWidth
	sy = p.Row - c.OffsetRow
	visible = sx >= 0 && sx+c.CellWidth <= c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts a screen cell to map coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) component.Position {
	return component.Position{Row: sy + c.OffsetRow, Col: sx/c.CellWidth + c.OffsetCol}
}
