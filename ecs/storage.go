package ecs

// entityStore tracks entity generations and free ids.
type entityStore struct {
	gen   []int
	alive []bool
	free  []int
	live  int
}

func (s *entityStore) create() Entity {
	if s == nil {
		return Entity{}
	}
	s.live++
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		s.alive[id-1] = true
		return Entity{ID: id, Gen: s.gen[id-1]}
	}
	s.gen = append(s.gen, 0)
	s.alive = append(s.alive, true)
	return Entity{ID: len(s.gen), Gen: 0}
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.ID - 1
	s.gen[idx]++
	s.alive[idx] = false
	s.free = append(s.free, e.ID)
	s.live--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if s == nil || e.ID <= 0 || e.ID > len(s.gen) {
		return false
	}
	return s.alive[e.ID-1] && s.gen[e.ID-1] == e.Gen
}
