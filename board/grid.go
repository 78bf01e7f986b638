package board

import "math"

// Cell is an integer coordinate addressing one tile of the board.
type Cell struct {
	X int
	Y int
}

// Add returns c shifted by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// IsAdjacent reports whether o is exactly one orthogonal step from c.
func (c Cell) IsAdjacent(o Cell) bool {
	dx := c.X - o.X
	dy := c.Y - o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// Grid maps between cell coordinates and world space. It is read-only
// once constructed; agents query it but never mutate it.
type Grid struct {
	Columns  int
	Rows     int
	CellSize float64
	OriginX  float64
	OriginY  float64
}

// NewGrid creates a grid with the given dimensions in cells.
func NewGrid(columns, rows int, cellSize float64) *Grid {
	if columns < 1 {
		columns = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cellSize <= 0 {
		cellSize = 32
	}
	return &Grid{Columns: columns, Rows: rows, CellSize: cellSize}
}

// Contains reports whether c lies inside the grid bounds.
func (g *Grid) Contains(c Cell) bool {
	if g == nil {
		return false
	}
	return c.X >= 0 && c.X < g.Columns && c.Y >= 0 && c.Y < g.Rows
}

// Clamp returns the nearest in-bounds cell to c.
func (g *Grid) Clamp(c Cell) Cell {
	if g == nil {
		return c
	}
	if c.X < 0 {
		c.X = 0
	}
	if c.X >= g.Columns {
		c.X = g.Columns - 1
	}
	if c.Y < 0 {
		c.Y = 0
	}
	if c.Y >= g.Rows {
		c.Y = g.Rows - 1
	}
	return c
}

// CellToWorld returns the world-space center of c.
func (g *Grid) CellToWorld(c Cell) (float64, float64) {
	if g == nil {
		return 0, 0
	}
	x := g.OriginX + (float64(c.X)+0.5)*g.CellSize
	y := g.OriginY + (float64(c.Y)+0.5)*g.CellSize
	return x, y
}

// WorldToCell returns the clamped cell containing the world point (x, y).
func (g *Grid) WorldToCell(x, y float64) Cell {
	if g == nil {
		return Cell{}
	}
	c := Cell{
		X: int(math.Floor((x - g.OriginX) / g.CellSize)),
		Y: int(math.Floor((y - g.OriginY) / g.CellSize)),
	}
	return g.Clamp(c)
}

// CellRect returns the world-space bounding box of c as min/max corners.
func (g *Grid) CellRect(c Cell) (minX, minY, maxX, maxY float64) {
	if g == nil {
		return 0, 0, 0, 0
	}
	minX = g.OriginX + float64(c.X)*g.CellSize
	minY = g.OriginY + float64(c.Y)*g.CellSize
	return minX, minY, minX + g.CellSize, minY + g.CellSize
}

// Width returns the board width in world units.
func (g *Grid) Width() float64 {
	if g == nil {
		return 0
	}
	return float64(g.Columns) * g.CellSize
}

// Height returns the board height in world units.
func (g *Grid) Height() float64 {
	if g == nil {
		return 0
	}
	return float64(g.Rows) * g.CellSize
}
