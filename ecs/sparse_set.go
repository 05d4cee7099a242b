package ecs

// SparseSet stores one component type keyed by entity id. Values live in a
// dense slice so iteration stays cache friendly; removal swaps the last
// element into the hole.
type SparseSet[T any] struct {
	denseEntities []int
	denseValues   []T
	sparse        []int
}

// Has returns true if the entity id exists in the set.
func (s *SparseSet[T]) Has(id int) bool {
	if s == nil || id <= 0 || id-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx] == id
}

// Get returns the component for id.
func (s *SparseSet[T]) Get(id int) (T, bool) {
	var zero T
	if !s.Has(id) {
		return zero, false
	}
	return s.denseValues[s.sparse[id-1]], true
}

// Set inserts or updates a component for id.
func (s *SparseSet[T]) Set(id int, v T) {
	if s == nil || id <= 0 {
		return
	}
	for id-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.Has(id) {
		s.denseValues[s.sparse[id-1]] = v
		return
	}
	s.denseEntities = append(s.denseEntities, id)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseEntities) - 1
}

// Remove deletes the component for id if present.
func (s *SparseSet[T]) Remove(id int) bool {
	if s == nil || !s.Has(id) {
		return false
	}
	idx := s.sparse[id-1]
	last := len(s.denseEntities) - 1
	lastID := s.denseEntities[last]

	s.denseEntities[idx] = s.denseEntities[last]
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastID-1] = idx

	var zero T
	s.denseValues[last] = zero
	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[id-1] = -1
	return true
}

// Len returns the number of stored components.
func (s *SparseSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}

// Entities returns the dense entity id list. Callers must not mutate it.
func (s *SparseSet[T]) Entities() []int {
	if s == nil {
		return nil
	}
	return s.denseEntities
}

// Each calls fn for every stored component in dense order.
func (s *SparseSet[T]) Each(fn func(id int, v T)) {
	if s == nil || fn == nil {
		return
	}
	for i, id := range s.denseEntities {
		fn(id, s.denseValues[i])
	}
}
