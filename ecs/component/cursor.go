package component

import "github.com/milk9111/tactics/board"

// Cursor is the board cursor. One entity holds it. While a unit is
// selected the cursor accumulates a cell path for the pending walk;
// Locked blocks all selection input until the walk finishes.
type Cursor struct {
	Cell      board.Cell
	Selected  uint64 // entity handle of the selected unit, 0 if none
	PathCells []board.Cell
	Locked    bool
}

var CursorComponent = NewComponent[Cursor]()

// Unit marks an entity as a selectable board unit.
type Unit struct{}

var UnitComponent = NewComponent[Unit]()
