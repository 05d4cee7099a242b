package ecs

// IntersectEntities returns entity IDs present in both sets.
func IntersectEntities[A, B any](a *SparseSet[A], b *SparseSet[B]) []int {
	if a == nil || b == nil {
		return nil
	}
	if a.Len() <= b.Len() {
		return intersect(a.Entities(), b.Has)
	}
	return intersect(b.Entities(), a.Has)
}

func intersect(ids []int, has func(int) bool) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if has(id) {
			out = append(out, id)
		}
	}
	return out
}
