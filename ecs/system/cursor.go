package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tactics/board"
	"github.com/milk9111/tactics/ecs"
	"github.com/milk9111/tactics/ecs/component"
)

// CursorSystem moves the board cursor and drives unit selection. While
// a unit is selected, moving the cursor draws the walk path one
// adjacent cell at a time, capped at the unit's range; confirming
// starts the walk and locks input until the walk-finished event is
// drained by the game loop.
type CursorSystem struct {
	grid *board.Grid
}

func NewCursorSystem(grid *board.Grid) *CursorSystem {
	return &CursorSystem{grid: grid}
}

func (s *CursorSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.grid == nil {
		return
	}
	cursorEnt, ok := w.First(component.CursorComponent.Kind())
	if !ok {
		return
	}
	cur, ok := ecs.Get(w, cursorEnt, component.CursorComponent)
	if !ok || cur.Locked {
		return
	}

	next := cur.Cell
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA):
		next = s.grid.Clamp(next.Add(board.Cell{X: -1}))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD):
		next = s.grid.Clamp(next.Add(board.Cell{X: 1}))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW):
		next = s.grid.Clamp(next.Add(board.Cell{Y: -1}))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS):
		next = s.grid.Clamp(next.Add(board.Cell{Y: 1}))
	}
	if mx, my := ebiten.CursorPosition(); inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		next = s.grid.WorldToCell(float64(mx), float64(my))
	}

	if next != cur.Cell {
		cur.Cell = next
		if cur.Selected != 0 {
			s.extendPath(w, cur, next)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.confirm(w, cur)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		cur.Selected = 0
		cur.PathCells = nil
	}
}

// extendPath grows or rewinds the drawn path toward next. Stepping
// back onto a cell already in the path truncates to it, and stepping
// onto the unit's own cell clears the draft entirely; a new adjacent
// cell appends while the unit's range allows.
func (s *CursorSystem) extendPath(w *ecs.World, cur *component.Cursor, next board.Cell) {
	// back on the unit's own cell: the draft collapses to nothing
	if gp, ok := ecs.Get(w, ecs.Entity(cur.Selected), component.GridPositionComponent); ok && gp.Cell == next {
		cur.PathCells = nil
		return
	}
	for i, c := range cur.PathCells {
		if c == next {
			cur.PathCells = cur.PathCells[:i+1]
			return
		}
	}

	last := s.selectedCell(w, cur)
	if n := len(cur.PathCells); n > 0 {
		last = cur.PathCells[n-1]
	}
	if !last.IsAdjacent(next) {
		return
	}

	maxRange := 0
	if wk, ok := ecs.Get(w, ecs.Entity(cur.Selected), component.WalkerComponent); ok {
		maxRange = wk.Range
	}
	if maxRange > 0 && len(cur.PathCells) >= maxRange {
		return
	}
	cur.PathCells = append(cur.PathCells, next)
}

func (s *CursorSystem) confirm(w *ecs.World, cur *component.Cursor) {
	if cur.Selected == 0 {
		if unit, ok := s.unitAt(w, cur.Cell); ok {
			cur.Selected = uint64(unit)
			cur.PathCells = nil
		}
		return
	}

	if len(cur.PathCells) == 0 {
		return
	}
	if StartWalk(w, s.grid, ecs.Entity(cur.Selected), cur.PathCells) {
		cur.Locked = true
	}
}

func (s *CursorSystem) unitAt(w *ecs.World, cell board.Cell) (ecs.Entity, bool) {
	for _, e := range w.Query(component.UnitComponent.Kind(), component.GridPositionComponent.Kind()) {
		gp, ok := ecs.Get(w, e, component.GridPositionComponent)
		if !ok || gp.Cell != cell {
			continue
		}
		if ecs.Has(w, e, component.WalkRuntimeComponent) {
			continue
		}
		return e, true
	}
	return 0, false
}

func (s *CursorSystem) selectedCell(w *ecs.World, cur *component.Cursor) board.Cell {
	if gp, ok := ecs.Get(w, ecs.Entity(cur.Selected), component.GridPositionComponent); ok {
		return gp.Cell
	}
	return cur.Cell
}

// UnlockCursor clears the walk lock and the finished selection. The
// game loop calls it when it drains a walk-finished event.
func UnlockCursor(w *ecs.World) {
	cursorEnt, ok := w.First(component.CursorComponent.Kind())
	if !ok {
		return
	}
	if cur, ok := ecs.Get(w, cursorEnt, component.CursorComponent); ok {
		cur.Locked = false
		cur.Selected = 0
		cur.PathCells = nil
	}
}
