package system

import (
	"github.com/milk9111/tactics/board"
	"github.com/milk9111/tactics/ecs"
	"github.com/milk9111/tactics/ecs/component"
)

// dtPerTick matches ebiten's fixed 60 TPS update cadence.
const dtPerTick = 1.0 / 60.0

// SetCell assigns an entity's logical cell, clamped to grid bounds.
// All cell writes in the repo go through here so the in-bounds
// invariant holds at every mutation site.
func SetCell(w *ecs.World, grid *board.Grid, e ecs.Entity, c board.Cell) {
	clamped := grid.Clamp(c)
	if gp, ok := ecs.Get(w, e, component.GridPositionComponent); ok {
		gp.Cell = clamped
		return
	}
	_ = ecs.Add(w, e, component.GridPositionComponent, &component.GridPosition{Cell: clamped})
}

// StartWalk begins a walk along cells, in order, from the entity's
// current world position. An empty path is a no-op: no state changes
// and no event will fire. The destination cell is committed
// immediately, before any visual movement happens, so logical queries
// see where the unit is going while the transit plays out. Range and
// adjacency are the selection system's responsibility, not checked
// here.
func StartWalk(w *ecs.World, grid *board.Grid, e ecs.Entity, cells []board.Cell) bool {
	if len(cells) == 0 || grid == nil {
		return false
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return false
	}
	// the walk system only visits entities with a Walker; registering
	// anything else would leave the runtime stuck forever
	if !ecs.Has(w, e, component.WalkerComponent) {
		return false
	}

	pts := make([]board.Point, 0, len(cells)+1)
	pts = append(pts, board.Point{X: tr.X, Y: tr.Y})
	for _, c := range cells {
		x, y := grid.CellToWorld(grid.Clamp(c))
		pts = append(pts, board.Point{X: x, Y: y})
	}

	SetCell(w, grid, e, cells[len(cells)-1])

	// adding the runtime is the walk system registration
	_ = ecs.Add(w, e, component.WalkRuntimeComponent, &component.WalkRuntime{
		Path: board.NewPath(pts),
	})
	return true
}

// WalkSystem advances every in-progress walk by arc length each tick.
// Only entities holding a WalkRuntime are visited, so idle units have
// no per-frame cost.
type WalkSystem struct {
	grid *board.Grid
}

func NewWalkSystem(grid *board.Grid) *WalkSystem {
	return &WalkSystem{grid: grid}
}

func (s *WalkSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.WalkRuntimeComponent, component.WalkerComponent, func(e ecs.Entity, rt *component.WalkRuntime, wk *component.Walker) {
		tr, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok || rt.Path == nil {
			ecs.Remove(w, e, component.WalkRuntimeComponent)
			return
		}

		if wk.Speed > 0 {
			rt.Traveled += wk.Speed * dtPerTick
		} else {
			// a speedless walker arrives immediately instead of stalling
			rt.Traveled = rt.Path.Length()
		}

		if rt.Traveled < rt.Path.Length() {
			p := rt.Path.PointAt(rt.Traveled)
			tr.X = p.X
			tr.Y = p.Y
			return
		}

		// arrival: snap to the committed cell center exactly so no
		// interpolation drift survives, then deregister and notify
		if gp, ok := ecs.Get(w, e, component.GridPositionComponent); ok {
			tr.X, tr.Y = s.grid.CellToWorld(gp.Cell)
		} else {
			end := rt.Path.End()
			tr.X, tr.Y = end.X, end.Y
		}
		ecs.Remove(w, e, component.WalkRuntimeComponent)
		w.Events().Push(ecs.Event{Type: ecs.EventWalkFinished, Data: ecs.WalkFinished{Entity: e}})
	})
}
