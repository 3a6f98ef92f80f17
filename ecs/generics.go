package ecs

import (
	"fmt"

	"github.com/milk9111/platformer/ecs/component"
)

// Add attaches value to e, replacing any component of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("%w: %s", component.ErrNilComponent, kind)
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("%w: %s on %s", component.ErrEntityNotAlive, kind, e)
	}
	storeFor(w, kind, true).set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	s := storeFor(w, kind, false)
	if s == nil {
		return false
	}
	return s.remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	s := storeFor(w, kind, false)
	return s != nil && s.has(e)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	s := storeFor(w, kind, false)
	if s == nil {
		return nil, false
	}
	return s.get(e)
}

// Count returns how many entities carry a component of kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	s := storeFor(w, kind, false)
	if s == nil {
		return 0
	}
	return s.len()
}
