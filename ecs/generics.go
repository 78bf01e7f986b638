package ecs

import "github.com/milk9111/tactics/ecs/component"

// CreateEntity allocates a new entity in w.
func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

// Add attaches a component value to an entity.
func Add[T any](w *World, e Entity, h component.Handle[T], v *T) error {
	if w == nil || !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if v == nil {
		return component.ErrNilComponent
	}
	s := w.Store(h.Kind())
	if s == nil {
		return component.ErrInvalidComponentKind
	}
	s.Set(int(e.id()), v)
	return nil
}

// Get returns the component value for an entity. The pointer aliases
// live storage; mutations are visible immediately.
func Get[T any](w *World, e Entity, h component.Handle[T]) (*T, bool) {
	if w == nil || !w.IsAlive(e) {
		return nil, false
	}
	s := w.Store(h.Kind())
	v, ok := s.Get(int(e.id())).(*T)
	if !ok {
		return nil, false
	}
	return v, true
}

// Has reports whether an entity holds the component.
func Has[T any](w *World, e Entity, h component.Handle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return w.Store(h.Kind()).Has(int(e.id()))
}

// Remove detaches the component from an entity.
func Remove[T any](w *World, e Entity, h component.Handle[T]) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	return w.Store(h.Kind()).Remove(int(e.id()))
}

// ForEach calls fn for every live entity holding the component. The
// iteration snapshots the dense id list first, so fn may add or remove
// components (including its own) safely.
func ForEach[T any](w *World, h component.Handle[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.Store(h.Kind())
	if s.Len() == 0 {
		return
	}
	ids := append([]int(nil), s.Entities()...)
	for _, id := range ids {
		e, ok := w.entities.entityFor(id)
		if !ok || !w.entities.isAlive(e) {
			continue
		}
		v, ok := s.Get(id).(*T)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

// ForEach2 calls fn for every live entity holding both components.
func ForEach2[A, B any](w *World, ha component.Handle[A], hb component.Handle[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.Store(ha.Kind())
	sb := w.Store(hb.Kind())
	if sa.Len() == 0 || sb.Len() == 0 {
		return
	}
	ids := append([]int(nil), sa.Entities()...)
	for _, id := range ids {
		e, ok := w.entities.entityFor(id)
		if !ok || !w.entities.isAlive(e) {
			continue
		}
		a, ok := sa.Get(id).(*A)
		if !ok {
			continue
		}
		b, ok := sb.Get(id).(*B)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}
