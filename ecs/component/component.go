package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// Kind identifies a component type at runtime.
type Kind uint32

// Handle is the typed handle used to attach and look up components of
// type T. Handles are created once at package init via NewComponent.
type Handle[T any] struct {
	kind Kind
}

// NewComponent allocates a fresh handle for T.
func NewComponent[T any]() Handle[T] {
	return Handle[T]{kind: Kind(nextKind.Add(1))}
}

// Kind returns the type-erased kind id, used for queries.
func (h Handle[T]) Kind() Kind {
	return h.kind
}

// Valid reports whether the handle was created via NewComponent.
func (h Handle[T]) Valid() bool {
	return h.kind != 0
}

var nextKind atomic.Uint32
