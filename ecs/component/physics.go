package component

import "github.com/jakecoffman/cp"

// PhysicsBody links an entity to its chipmunk sensor. Plates only have
// a Shape on the static body; actors also carry a Body the physics
// system repositions from the transform each tick.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
