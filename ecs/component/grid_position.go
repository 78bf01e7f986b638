package component

import "github.com/milk9111/tactics/board"

// GridPosition is an entity's logical cell on the board. It is always
// in bounds: every write goes through system.SetCell, which clamps
// against the grid. While the entity is mid-walk the logical cell
// already holds the committed destination; only the transform moves.
type GridPosition struct {
	Cell board.Cell
}

var GridPositionComponent = NewComponent[GridPosition]()
