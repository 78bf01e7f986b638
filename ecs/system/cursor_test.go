package system

import (
	"testing"

	"github.com/milk9111/tactics/board"
	"github.com/milk9111/tactics/ecs"
	"github.com/milk9111/tactics/ecs/component"
)

func spawnSelectableUnit(t *testing.T, w *ecs.World, grid *board.Grid, cell board.Cell, rng int) ecs.Entity {
	t.Helper()
	e := spawnAgent(t, w, grid, cell, 240)
	if wk, ok := ecs.Get(w, e, component.WalkerComponent); ok {
		wk.Range = rng
	}
	if err := ecs.Add(w, e, component.UnitComponent, &component.Unit{}); err != nil {
		t.Fatalf("add unit: %v", err)
	}
	return e
}

func TestExtendPathAdjacencyAndRange(t *testing.T) {
	w, grid := newWalkWorld(t)
	unit := spawnSelectableUnit(t, w, grid, board.Cell{X: 2, Y: 2}, 3)
	sys := NewCursorSystem(grid)
	cur := &component.Cursor{Cell: board.Cell{X: 2, Y: 2}, Selected: uint64(unit)}

	sys.extendPath(w, cur, board.Cell{X: 3, Y: 2})
	if len(cur.PathCells) != 1 || cur.PathCells[0] != (board.Cell{X: 3, Y: 2}) {
		t.Fatalf("adjacent step not appended: %v", cur.PathCells)
	}

	// a jump is ignored, the draft keeps its last cell
	sys.extendPath(w, cur, board.Cell{X: 6, Y: 2})
	if len(cur.PathCells) != 1 {
		t.Fatalf("non-adjacent step changed the path: %v", cur.PathCells)
	}

	sys.extendPath(w, cur, board.Cell{X: 3, Y: 3})
	sys.extendPath(w, cur, board.Cell{X: 4, Y: 3})
	if len(cur.PathCells) != 3 {
		t.Fatalf("path = %v, want 3 cells", cur.PathCells)
	}

	// range cap: a fourth cell is refused
	sys.extendPath(w, cur, board.Cell{X: 4, Y: 4})
	if len(cur.PathCells) != 3 {
		t.Fatalf("range cap ignored, path = %v", cur.PathCells)
	}
}

func TestExtendPathTruncatesOnRevisit(t *testing.T) {
	w, grid := newWalkWorld(t)
	unit := spawnSelectableUnit(t, w, grid, board.Cell{X: 2, Y: 2}, 6)
	sys := NewCursorSystem(grid)
	cur := &component.Cursor{Cell: board.Cell{X: 2, Y: 2}, Selected: uint64(unit)}

	for _, c := range []board.Cell{{X: 3, Y: 2}, {X: 3, Y: 3}, {X: 3, Y: 4}, {X: 3, Y: 5}} {
		sys.extendPath(w, cur, c)
	}
	if len(cur.PathCells) != 4 {
		t.Fatalf("setup path = %v", cur.PathCells)
	}

	sys.extendPath(w, cur, board.Cell{X: 3, Y: 3})
	want := []board.Cell{{X: 3, Y: 2}, {X: 3, Y: 3}}
	if len(cur.PathCells) != len(want) {
		t.Fatalf("path = %v, want %v", cur.PathCells, want)
	}
	for i, c := range want {
		if cur.PathCells[i] != c {
			t.Fatalf("path[%d] = %v, want %v", i, cur.PathCells[i], c)
		}
	}
}

func TestExtendPathClearsOnUnitCell(t *testing.T) {
	w, grid := newWalkWorld(t)
	unit := spawnSelectableUnit(t, w, grid, board.Cell{X: 2, Y: 2}, 6)
	sys := NewCursorSystem(grid)
	cur := &component.Cursor{Cell: board.Cell{X: 2, Y: 2}, Selected: uint64(unit)}

	sys.extendPath(w, cur, board.Cell{X: 3, Y: 2})
	sys.extendPath(w, cur, board.Cell{X: 3, Y: 3})

	// stepping back onto the unit itself drops the whole draft
	sys.extendPath(w, cur, board.Cell{X: 2, Y: 2})
	if len(cur.PathCells) != 0 {
		t.Fatalf("path = %v, want empty after returning to the unit", cur.PathCells)
	}

	// and drafting can start over from scratch
	sys.extendPath(w, cur, board.Cell{X: 2, Y: 3})
	if len(cur.PathCells) != 1 || cur.PathCells[0] != (board.Cell{X: 2, Y: 3}) {
		t.Fatalf("restart path = %v", cur.PathCells)
	}
}

func TestConfirmSelectsUnitUnderCursor(t *testing.T) {
	w, grid := newWalkWorld(t)
	unit := spawnSelectableUnit(t, w, grid, board.Cell{X: 4, Y: 4}, 6)
	sys := NewCursorSystem(grid)
	cur := &component.Cursor{Cell: board.Cell{X: 4, Y: 4}}

	sys.confirm(w, cur)
	if cur.Selected != uint64(unit) {
		t.Fatalf("Selected = %d, want %d", cur.Selected, uint64(unit))
	}
	if cur.Locked {
		t.Fatalf("selection alone should not lock the cursor")
	}
}

func TestConfirmLocksOnlyWhenWalkStarts(t *testing.T) {
	w, grid := newWalkWorld(t)
	unit := spawnSelectableUnit(t, w, grid, board.Cell{X: 2, Y: 2}, 6)
	sys := NewCursorSystem(grid)
	cur := &component.Cursor{Cell: board.Cell{X: 2, Y: 2}, Selected: uint64(unit)}

	// no drafted path: confirm does nothing
	sys.confirm(w, cur)
	if cur.Locked {
		t.Fatalf("confirm locked with an empty path")
	}

	sys.extendPath(w, cur, board.Cell{X: 3, Y: 2})
	sys.confirm(w, cur)
	if !cur.Locked {
		t.Fatalf("confirm should lock once the walk starts")
	}
	if !ecs.Has(w, unit, component.WalkRuntimeComponent) {
		t.Fatalf("walk runtime not registered on confirm")
	}
}

func TestConfirmDoesNotLockOnRejectedWalk(t *testing.T) {
	w, grid := newWalkWorld(t)
	sys := NewCursorSystem(grid)

	// selected entity has no transform or walker, so the walk is refused
	e := ecs.CreateEntity(w)
	cur := &component.Cursor{
		Cell:      board.Cell{X: 3, Y: 2},
		Selected:  uint64(e),
		PathCells: []board.Cell{{X: 3, Y: 2}},
	}

	sys.confirm(w, cur)
	if cur.Locked {
		t.Fatalf("confirm locked even though the walk was rejected")
	}
}
