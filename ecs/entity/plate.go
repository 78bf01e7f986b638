package entity

import (
	"fmt"

	"github.com/milk9111/tactics/board"
	"github.com/milk9111/tactics/ecs"
	"github.com/milk9111/tactics/ecs/component"
	"github.com/milk9111/tactics/ecs/system"
	"github.com/milk9111/tactics/prefabs"
)

// NewPlate spawns an armed trigger plate covering one cell.
func NewPlate(w *ecs.World, grid *board.Grid, spec prefabs.PlateSpec, cell board.Cell) (ecs.Entity, error) {
	if w == nil || grid == nil {
		return 0, fmt.Errorf("plate: nil world or grid")
	}

	e := ecs.CreateEntity(w)
	system.SetCell(w, grid, e, cell)

	gp, _ := ecs.Get(w, e, component.GridPositionComponent)
	x, y := grid.CellToWorld(gp.Cell)
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("plate: add transform: %w", err)
	}

	target := spec.Target
	if target == "" {
		target = "Player"
	}
	riseFrames := spec.RiseFrames
	if riseFrames <= 0 {
		riseFrames = 18
	}
	fadeFrames := spec.FadeFrames
	if fadeFrames <= 0 {
		fadeFrames = 24
	}
	riseY := spec.RiseY
	if riseY == 0 {
		riseY = grid.CellSize * 0.25
	}
	if err := ecs.Add(w, e, component.TriggerPlateComponent, &component.TriggerPlate{
		Target:     target,
		Script:     spec.Script,
		RiseY:      riseY,
		RiseFrames: riseFrames,
		FadeFrames: fadeFrames,
	}); err != nil {
		return 0, fmt.Errorf("plate: add trigger: %w", err)
	}

	_ = ecs.Add(w, e, component.SkinComponent, &component.Skin{
		Name:    spec.Skin.Image,
		OffsetX: spec.Skin.OffsetX,
		OffsetY: spec.Skin.OffsetY,
	})

	layer := spec.RenderLayer.Index
	if layer == 0 {
		layer = 10
	}
	_ = ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: layer})

	if pw := w.PhysicsWorld(); pw != nil {
		minX, minY, maxX, maxY := grid.CellRect(gp.Cell)
		shape := pw.AddPlate(e, minX, minY, maxX, maxY)
		_ = ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Shape: shape})
	}

	return e, nil
}
