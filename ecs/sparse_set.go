package ecs

// componentStore is the type-erased view of a sparse set the world needs for
// entity destruction.
type componentStore interface {
	remove(e Entity) bool
	len() int
}

// sparseSet stores components of one kind densely, indexed by entity id.
type sparseSet[T any] struct {
	dense  []Entity
	values []*T
	sparse []int
}

func newSparseSet[T any]() *sparseSet[T] {
	return &sparseSet[T]{}
}

func (s *sparseSet[T]) index(e Entity) (int, bool) {
	id := int(e.id())
	if id <= 0 || id > len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.dense) || s.dense[idx] != e {
		return 0, false
	}
	return idx, true
}

func (s *sparseSet[T]) has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

func (s *sparseSet[T]) get(e Entity) (*T, bool) {
	idx, ok := s.index(e)
	if !ok {
		return nil, false
	}
	return s.values[idx], true
}

func (s *sparseSet[T]) set(e Entity, v *T) {
	if idx, ok := s.index(e); ok {
		s.values[idx] = v
		return
	}
	id := int(e.id())
	for len(s.sparse) < id {
		s.sparse = append(s.sparse, -1)
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense) - 1
}

// remove keeps insertion order so iteration stays deterministic.
func (s *sparseSet[T]) remove(e Entity) bool {
	idx, ok := s.index(e)
	if !ok {
		return false
	}
	copy(s.dense[idx:], s.dense[idx+1:])
	copy(s.values[idx:], s.values[idx+1:])
	last := len(s.dense) - 1
	s.dense = s.dense[:last]
	s.values[last] = nil
	s.values = s.values[:last]
	s.sparse[e.id()-1] = -1
	for i := idx; i < len(s.dense); i++ {
		s.sparse[s.dense[i].id()-1] = i
	}
	return true
}

func (s *sparseSet[T]) len() int {
	return len(s.dense)
}

// snapshot copies the dense entity list so callers may mutate the set while iterating.
func (s *sparseSet[T]) snapshot() []Entity {
	return append([]Entity(nil), s.dense...)
}
