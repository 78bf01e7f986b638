package ecs

// Event is a world-level notification. Systems push events during
// their update; the game loop drains the queue once per frame, so
// delivery order is the push order.
type Event struct {
	Type string
	Data any
}

const (
	// EventWalkFinished fires exactly once per completed walk.
	EventWalkFinished = "walk_finished"
	// EventPlateConsumed fires when a trigger plate is consumed and
	// begins its rise/fade animation.
	EventPlateConsumed = "plate_consumed"
)

// WalkFinished is the payload for EventWalkFinished.
type WalkFinished struct {
	Entity Entity
}

// PlateConsumed is the payload for EventPlateConsumed.
type PlateConsumed struct {
	Plate Entity
	Actor Entity
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all pending events in push order and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
