package system

import (
	"log"

	"github.com/milk9111/tactics/board"
	"github.com/milk9111/tactics/common"
	"github.com/milk9111/tactics/ecs"
	"github.com/milk9111/tactics/ecs/component"
)

// TriggerSystem consumes plate contacts from the overlap space and
// animates consumed plates: position rise first, then an opacity fade,
// then the plate entity and its sensor are destroyed for good.
type TriggerSystem struct {
	grid  *board.Grid
	hooks *ScriptRuntime
}

// NewTriggerSystem creates a trigger system. hooks may be nil; plates
// with a Script then skip their consume hook.
func NewTriggerSystem(grid *board.Grid, hooks *ScriptRuntime) *TriggerSystem {
	return &TriggerSystem{grid: grid, hooks: hooks}
}

func (s *TriggerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	if pw := w.PhysicsWorld(); pw != nil {
		for _, c := range pw.DrainContacts() {
			s.consume(w, c)
		}
	}

	ecs.ForEach2(w, component.TriggerRuntimeComponent, component.TriggerPlateComponent, func(e ecs.Entity, rt *component.TriggerRuntime, plate *component.TriggerPlate) {
		s.animate(w, e, rt, plate)
	})
}

// consume arms-to-consumed transition. The TriggerRuntime component is
// the latch: once present, further contacts are ignored, so a plate is
// consumed at most once no matter how many overlaps arrive before the
// animation finishes.
func (s *TriggerSystem) consume(w *ecs.World, c ecs.TriggerContact) {
	plate, ok := ecs.Get(w, c.Plate, component.TriggerPlateComponent)
	if !ok {
		return
	}
	if ecs.Has(w, c.Plate, component.TriggerRuntimeComponent) {
		return
	}
	name, ok := ecs.Get(w, c.Actor, component.NameComponent)
	if !ok || name.Value != plate.Target {
		return
	}

	tr, ok := ecs.Get(w, c.Plate, component.TransformComponent)
	if !ok {
		return
	}

	_ = ecs.Add(w, c.Plate, component.TriggerRuntimeComponent, &component.TriggerRuntime{
		Phase: component.PlateRise,
		Timer: plate.RiseFrames,
		BaseY: tr.Y,
	})
	w.Events().Push(ecs.Event{Type: ecs.EventPlateConsumed, Data: ecs.PlateConsumed{Plate: c.Plate, Actor: c.Actor}})

	if plate.Script != "" && s.hooks != nil {
		cell := board.Cell{}
		if gp, ok := ecs.Get(w, c.Plate, component.GridPositionComponent); ok {
			cell = gp.Cell
		}
		if err := s.hooks.RunPlateConsumed(plate.Script, cell, name.Value); err != nil {
			log.Printf("trigger: plate %s script %s: %v", c.Plate, plate.Script, err)
		}
	}
}

func (s *TriggerSystem) animate(w *ecs.World, e ecs.Entity, rt *component.TriggerRuntime, plate *component.TriggerPlate) {
	tr, _ := ecs.Get(w, e, component.TransformComponent)

	switch rt.Phase {
	case component.PlateRise:
		if plate.RiseFrames <= 0 {
			rt.Phase = component.PlateFade
			rt.Timer = plate.FadeFrames
			return
		}
		rt.Timer--
		if tr != nil {
			t := 1 - float64(rt.Timer)/float64(plate.RiseFrames)
			tr.Y = common.Lerp(rt.BaseY, rt.BaseY-plate.RiseY, t)
		}
		if rt.Timer <= 0 {
			rt.Phase = component.PlateFade
			rt.Timer = plate.FadeFrames
		}
	case component.PlateFade:
		if plate.FadeFrames <= 0 {
			s.destroy(w, e)
			return
		}
		rt.Timer--
		if sp, ok := ecs.Get(w, e, component.SpriteComponent); ok {
			sp.Alpha = common.Clamp(float64(rt.Timer)/float64(plate.FadeFrames), 0, 1)
		}
		if rt.Timer <= 0 {
			s.destroy(w, e)
		}
	}
}

func (s *TriggerSystem) destroy(w *ecs.World, e ecs.Entity) {
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok {
		if pw := w.PhysicsWorld(); pw != nil {
			pw.RemoveShape(pb.Shape)
		}
	}
	w.DestroyEntity(e)
}
