package ecs

import "github.com/milk9111/tactics/ecs/component"

// World owns entities, component storage, and the frame event queue.
type World struct {
	entities entityStore
	stores   map[component.Kind]*SparseSet
	events   EventQueue

	physics *PhysicsWorld
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: map[component.Kind]*SparseSet{}}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	id := int(e.id())
	for _, store := range w.stores {
		store.Remove(id)
	}
	return true
}

// IsAlive reports whether an entity handle is still valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Store returns the storage for a component kind, creating it lazily.
func (w *World) Store(k component.Kind) *SparseSet {
	if w == nil || k == 0 {
		return nil
	}
	if w.stores == nil {
		w.stores = map[component.Kind]*SparseSet{}
	}
	s, ok := w.stores[k]
	if !ok {
		s = &SparseSet{}
		w.stores[k] = s
	}
	return s
}

// First returns some entity holding the given component kind.
func (w *World) First(k component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s, ok := w.stores[k]
	if !ok {
		return 0, false
	}
	for _, id := range s.Entities() {
		if e, ok := w.entities.entityFor(id); ok && w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// Query returns all live entities holding every given component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	// iterate the smallest store, probe the rest
	var base *SparseSet
	for _, k := range kinds {
		s, ok := w.stores[k]
		if !ok || s.Len() == 0 {
			return nil
		}
		if base == nil || s.Len() < base.Len() {
			base = s
		}
	}
	out := make([]Entity, 0, base.Len())
	for _, id := range base.Entities() {
		match := true
		for _, k := range kinds {
			if s := w.stores[k]; s == base || s.Has(id) {
				continue
			}
			match = false
			break
		}
		if !match {
			continue
		}
		if e, ok := w.entities.entityFor(id); ok && w.entities.isAlive(e) {
			out = append(out, e)
		}
	}
	return out
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches the trigger overlap space to this world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physics = pw
}

// PhysicsWorld returns the attached overlap space, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physics
}
