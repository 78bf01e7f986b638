package entity

import (
	"fmt"

	"github.com/milk9111/tactics/board"
	"github.com/milk9111/tactics/ecs"
	"github.com/milk9111/tactics/ecs/component"
	"github.com/milk9111/tactics/ecs/system"
	"github.com/milk9111/tactics/prefabs"
)

// NewUnit spawns a walkable unit at cell from a prefab spec. The cell
// is clamped like every other cell write.
func NewUnit(w *ecs.World, grid *board.Grid, spec prefabs.UnitSpec, cell board.Cell, name string) (ecs.Entity, error) {
	if w == nil || grid == nil {
		return 0, fmt.Errorf("unit: nil world or grid")
	}

	e := ecs.CreateEntity(w)
	system.SetCell(w, grid, e, cell)

	gp, _ := ecs.Get(w, e, component.GridPositionComponent)
	x, y := grid.CellToWorld(gp.Cell)
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("unit: add transform: %w", err)
	}

	if name == "" {
		name = spec.Name
	}
	if err := ecs.Add(w, e, component.NameComponent, &component.Name{Value: name}); err != nil {
		return 0, fmt.Errorf("unit: add name: %w", err)
	}

	speed := spec.Speed
	if speed <= 0 {
		speed = 240
	}
	if err := ecs.Add(w, e, component.WalkerComponent, &component.Walker{Speed: speed, Range: spec.Range}); err != nil {
		return 0, fmt.Errorf("unit: add walker: %w", err)
	}

	_ = ecs.Add(w, e, component.UnitComponent, &component.Unit{})
	_ = ecs.Add(w, e, component.SkinComponent, &component.Skin{
		Name:    spec.Skin.Image,
		OffsetX: spec.Skin.OffsetX,
		OffsetY: spec.Skin.OffsetY,
	})

	layer := spec.RenderLayer.Index
	if layer == 0 {
		layer = 20
	}
	_ = ecs.Add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: layer})

	if pw := w.PhysicsWorld(); pw != nil {
		size := grid.CellSize * 0.6
		body, shape := pw.AddActor(e, x, y, size, size)
		_ = ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Body: body, Shape: shape})
	}

	return e, nil
}
