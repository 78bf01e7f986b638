package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypePlate cp.CollisionType = iota + 1
	collisionTypeActor
)

// TriggerContact records an actor shape entering a trigger plate shape.
type TriggerContact struct {
	Plate Entity
	Actor Entity
}

// PhysicsWorld owns the chipmunk space used for trigger overlap
// detection. Everything in it is a sensor; the space never resolves
// collisions, it only reports begin events.
type PhysicsWorld struct {
	space         *cp.Space
	shapeToEntity map[*cp.Shape]Entity
	contacts      []TriggerContact
}

// NewPhysicsWorld creates an empty overlap space.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	pw := &PhysicsWorld{
		space:         space,
		shapeToEntity: map[*cp.Shape]Entity{},
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// AddPlate registers a static sensor box covering the given world rect
// and maps it to the plate entity.
func (pw *PhysicsWorld) AddPlate(e Entity, minX, minY, maxX, maxY float64) *cp.Shape {
	if pw == nil || pw.space == nil {
		return nil
	}
	bb := cp.BB{L: minX, B: minY, R: maxX, T: maxY}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypePlate)
	pw.space.AddShape(shape)
	pw.shapeToEntity[shape] = e
	return shape
}

// AddActor registers a moving sensor body for an actor entity. The body
// is dynamic with infinite moment so chipmunk generates begin events
// against static plates; callers reposition it directly each tick.
func (pw *PhysicsWorld) AddActor(e Entity, x, y, w, h float64) (*cp.Body, *cp.Shape) {
	if pw == nil || pw.space == nil {
		return nil, nil
	}
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewBox(body, w, h, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeActor)
	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.shapeToEntity[shape] = e
	return body, shape
}

// RemoveShape detaches a shape (and its body, if not the static body)
// from the space.
func (pw *PhysicsWorld) RemoveShape(shape *cp.Shape) {
	if pw == nil || pw.space == nil || shape == nil {
		return
	}
	delete(pw.shapeToEntity, shape)
	pw.space.RemoveShape(shape)
	if body := shape.Body(); body != nil && body != pw.space.StaticBody {
		pw.space.RemoveBody(body)
	}
}

// Step advances the overlap detection by dt seconds.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

// PushContact queues a contact for the trigger system.
func (pw *PhysicsWorld) PushContact(c TriggerContact) {
	if pw == nil {
		return
	}
	pw.contacts = append(pw.contacts, c)
}

// DrainContacts returns all queued contacts and clears the queue.
func (pw *PhysicsWorld) DrainContacts() []TriggerContact {
	if pw == nil || len(pw.contacts) == 0 {
		return nil
	}
	out := pw.contacts
	pw.contacts = nil
	return out
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw == nil || pw.space == nil {
		return
	}

	handler := pw.space.NewCollisionHandler(collisionTypePlate, collisionTypeActor)
	handler.UserData = pw
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		// plates live on the static body; actors carry their own
		plateShape, actorShape := shapeA, shapeB
		if plateShape.Body() != space.StaticBody {
			plateShape, actorShape = shapeB, shapeA
		}
		plate, okP := world.shapeToEntity[plateShape]
		actor, okA := world.shapeToEntity[actorShape]
		if !okP || !okA {
			return true
		}
		world.PushContact(TriggerContact{Plate: plate, Actor: actor})
		return true
	}
}
