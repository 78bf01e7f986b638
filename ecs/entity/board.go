package entity

import (
	"fmt"

	"github.com/milk9111/tactics/board"
	"github.com/milk9111/tactics/common"
	"github.com/milk9111/tactics/ecs"
	"github.com/milk9111/tactics/prefabs"
)

// BuildBoard constructs the grid and spawns everything a board spec
// places on it: units, plates, and the cursor. The grid is centered in
// the base window.
func BuildBoard(w *ecs.World, spec prefabs.BoardSpec) (*board.Grid, error) {
	if w == nil {
		return nil, fmt.Errorf("board: nil world")
	}

	grid := board.NewGrid(spec.Columns, spec.Rows, spec.CellSize)
	grid.OriginX = (common.BaseWidth - grid.Width()) / 2
	grid.OriginY = (common.BaseHeight - grid.Height()) / 2

	for _, placement := range spec.Units {
		unitSpec, err := prefabs.LoadSpec[prefabs.UnitSpec](placement.Prefab)
		if err != nil {
			return nil, fmt.Errorf("board: unit prefab %s: %w", placement.Prefab, err)
		}
		cell := board.Cell{X: placement.Cell.X, Y: placement.Cell.Y}
		if _, err := NewUnit(w, grid, unitSpec, cell, placement.Name); err != nil {
			return nil, err
		}
	}

	for _, placement := range spec.Plates {
		plateSpec, err := prefabs.LoadSpec[prefabs.PlateSpec](placement.Prefab)
		if err != nil {
			return nil, fmt.Errorf("board: plate prefab %s: %w", placement.Prefab, err)
		}
		cell := board.Cell{X: placement.Cell.X, Y: placement.Cell.Y}
		if _, err := NewPlate(w, grid, plateSpec, cell); err != nil {
			return nil, err
		}
	}

	if _, err := NewCursor(w, grid); err != nil {
		return nil, err
	}

	return grid, nil
}
