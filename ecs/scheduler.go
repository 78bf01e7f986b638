package ecs

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// Scheduler holds the system update order.
type Scheduler struct {
	systems []System
}

// NewScheduler creates a scheduler running systems in the given order.
func NewScheduler(systems ...System) *Scheduler {
	return &Scheduler{systems: append([]System(nil), systems...)}
}

// Add appends a system to the update order.
func (s *Scheduler) Add(system System) {
	if s == nil || system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs all systems once.
func (s *Scheduler) Update(w *World) {
	if s == nil {
		return
	}
	for _, system := range s.systems {
		if system != nil {
			system.Update(w)
		}
	}
}
