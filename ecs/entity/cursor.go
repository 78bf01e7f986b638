package entity

import (
	"fmt"

	"github.com/milk9111/tactics/board"
	"github.com/milk9111/tactics/ecs"
	"github.com/milk9111/tactics/ecs/component"
)

// NewCursor spawns the single board cursor. The render system draws it
// as a cell highlight, so it carries no sprite.
func NewCursor(w *ecs.World, grid *board.Grid) (ecs.Entity, error) {
	if w == nil || grid == nil {
		return 0, fmt.Errorf("cursor: nil world or grid")
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CursorComponent, &component.Cursor{Cell: grid.Clamp(board.Cell{})}); err != nil {
		return 0, fmt.Errorf("cursor: add component: %w", err)
	}
	return e, nil
}
