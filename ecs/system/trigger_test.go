package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tactics/board"
	"github.com/milk9111/tactics/ecs"
	"github.com/milk9111/tactics/ecs/component"
)

func newTriggerWorld(t *testing.T) (*ecs.World, *board.Grid) {
	t.Helper()
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	return w, board.NewGrid(10, 10, 32)
}

func spawnPlate(t *testing.T, w *ecs.World, grid *board.Grid, cell board.Cell, target string) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	SetCell(w, grid, e, cell)
	x, y := grid.CellToWorld(cell)
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.TriggerPlateComponent, &component.TriggerPlate{
		Target:     target,
		RiseY:      8,
		RiseFrames: 4,
		FadeFrames: 6,
	}); err != nil {
		t.Fatalf("add plate: %v", err)
	}
	_ = ecs.Add(w, e, component.SpriteComponent, &component.Sprite{Image: new(ebiten.Image), Alpha: 1})

	minX, minY, maxX, maxY := grid.CellRect(cell)
	shape := w.PhysicsWorld().AddPlate(e, minX, minY, maxX, maxY)
	_ = ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Shape: shape})
	return e
}

func spawnActor(t *testing.T, w *ecs.World, name string) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.NameComponent, &component.Name{Value: name}); err != nil {
		t.Fatalf("add name: %v", err)
	}
	return e
}

func plateConsumedCount(w *ecs.World) int {
	n := 0
	for _, evt := range w.Events().Drain() {
		if evt.Type == ecs.EventPlateConsumed {
			n++
		}
	}
	return n
}

func TestTriggerConsumesMatchingActor(t *testing.T) {
	w, grid := newTriggerWorld(t)
	sys := NewTriggerSystem(grid, nil)
	plate := spawnPlate(t, w, grid, board.Cell{X: 4, Y: 4}, "Player")
	actor := spawnActor(t, w, "Player")

	w.PhysicsWorld().PushContact(ecs.TriggerContact{Plate: plate, Actor: actor})
	sys.Update(w)

	if !ecs.Has(w, plate, component.TriggerRuntimeComponent) {
		t.Fatalf("matching contact should consume the plate")
	}
	if n := plateConsumedCount(w); n != 1 {
		t.Fatalf("consume emitted %d events, want 1", n)
	}

	// the consume update already ran one rise tick; 3 more finish the
	// rise and 6 finish the fade
	for i := 0; i < 9; i++ {
		if !w.IsAlive(plate) {
			t.Fatalf("plate destroyed early at tick %d", i)
		}
		sys.Update(w)
	}
	if w.IsAlive(plate) {
		t.Fatalf("plate should be destroyed after rise and fade complete")
	}
}

func TestTriggerIgnoresNonMatchingActor(t *testing.T) {
	w, grid := newTriggerWorld(t)
	sys := NewTriggerSystem(grid, nil)
	plate := spawnPlate(t, w, grid, board.Cell{X: 4, Y: 4}, "Player")
	actor := spawnActor(t, w, "Enemy")

	w.PhysicsWorld().PushContact(ecs.TriggerContact{Plate: plate, Actor: actor})
	for i := 0; i < 30; i++ {
		sys.Update(w)
	}

	if ecs.Has(w, plate, component.TriggerRuntimeComponent) {
		t.Fatalf("non-matching actor should not consume the plate")
	}
	if !w.IsAlive(plate) {
		t.Fatalf("plate should stay armed")
	}
	if n := plateConsumedCount(w); n != 0 {
		t.Fatalf("got %d consume events, want 0", n)
	}
}

func TestTriggerConsumeIsIdempotent(t *testing.T) {
	w, grid := newTriggerWorld(t)
	sys := NewTriggerSystem(grid, nil)
	plate := spawnPlate(t, w, grid, board.Cell{X: 4, Y: 4}, "Player")
	actor := spawnActor(t, w, "Player")

	// duplicate contacts in the same frame and again mid-animation
	pw := w.PhysicsWorld()
	pw.PushContact(ecs.TriggerContact{Plate: plate, Actor: actor})
	pw.PushContact(ecs.TriggerContact{Plate: plate, Actor: actor})
	sys.Update(w)
	consumed := plateConsumedCount(w)

	pw.PushContact(ecs.TriggerContact{Plate: plate, Actor: actor})
	sys.Update(w)
	consumed += plateConsumedCount(w)

	if consumed != 1 {
		t.Fatalf("plate consumed %d times, want exactly 1", consumed)
	}
}

func TestTriggerRiseThenFadePhases(t *testing.T) {
	w, grid := newTriggerWorld(t)
	sys := NewTriggerSystem(grid, nil)
	plate := spawnPlate(t, w, grid, board.Cell{X: 2, Y: 2}, "Player")
	actor := spawnActor(t, w, "Player")

	tr, _ := ecs.Get(w, plate, component.TransformComponent)
	baseY := tr.Y

	w.PhysicsWorld().PushContact(ecs.TriggerContact{Plate: plate, Actor: actor})
	sys.Update(w)

	// rise: Y decreases toward baseY - RiseY
	for i := 0; i < 4; i++ {
		sys.Update(w)
	}
	if tr.Y != baseY-8 {
		t.Fatalf("post-rise y = %v, want %v", tr.Y, baseY-8)
	}
	rt, _ := ecs.Get(w, plate, component.TriggerRuntimeComponent)
	if rt.Phase != component.PlateFade {
		t.Fatalf("phase = %v, want PlateFade", rt.Phase)
	}

	// fade: alpha strictly decreases until destruction
	sp, _ := ecs.Get(w, plate, component.SpriteComponent)
	prev := sp.Alpha
	for i := 0; i < 6 && w.IsAlive(plate); i++ {
		sys.Update(w)
		if w.IsAlive(plate) && sp.Alpha >= prev {
			t.Fatalf("alpha did not decrease: %v -> %v", prev, sp.Alpha)
		}
		prev = sp.Alpha
	}
	if w.IsAlive(plate) {
		t.Fatalf("plate should be destroyed when the fade ends")
	}
}
