package ecs

import "github.com/milk9111/platformer/ecs/component"

// ForEach visits every entity with a component of kind a, in insertion order.
func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A)) {
	sa := storeFor(w, a, false)
	if sa == nil || fn == nil {
		return
	}
	ents := sa.snapshot()
	for _, e := range ents {
		if !IsAlive(w, e) {
			continue
		}
		v, ok := sa.get(e)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sb := storeFor(w, b, false)
	if sb == nil {
		return
	}
	ForEach(w, a, func(e Entity, va *A) {
		vb, ok := sb.get(e)
		if !ok {
			return
		}
		fn(e, va, vb)
	})
}

func ForEach3[A, B, C any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sc := storeFor(w, c, false)
	if sc == nil {
		return
	}
	ForEach2(w, a, b, func(e Entity, va *A, vb *B) {
		vc, ok := sc.get(e)
		if !ok {
			return
		}
		fn(e, va, vb, vc)
	})
}

func ForEach4[A, B, C, D any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], d component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sd := storeFor(w, d, false)
	if sd == nil {
		return
	}
	ForEach3(w, a, b, c, func(e Entity, va *A, vb *B, vc *C) {
		vd, ok := sd.get(e)
		if !ok {
			return
		}
		fn(e, va, vb, vc, vd)
	})
}

// First returns the earliest inserted entity carrying kind a.
func First[A any](w *World, a component.ComponentKind[A]) (Entity, bool) {
	sa := storeFor(w, a, false)
	if sa == nil {
		return 0, false
	}
	for _, e := range sa.dense {
		if IsAlive(w, e) {
			return e, true
		}
	}
	return 0, false
}
