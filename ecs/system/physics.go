package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tactics/ecs"
	"github.com/milk9111/tactics/ecs/component"
)

// PhysicsSystem repositions actor sensor bodies from their transforms
// and steps the overlap space so plate contacts fire.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(e ecs.Entity, pb *component.PhysicsBody, tr *component.Transform) {
		if pb.Body != nil {
			pb.Body.SetPosition(cp.Vector{X: tr.X, Y: tr.Y})
		}
	})

	pw.Step(dtPerTick)
}
