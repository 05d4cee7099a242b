package ecs

import "strconv"

// Entity is a generational handle. A handle whose generation no longer
// matches the store refers to a destroyed entity.
type Entity struct {
	ID  int
	Gen int
}

// Valid reports whether the handle was ever issued.
func (e Entity) Valid() bool {
	return e.ID > 0
}

func (e Entity) String() string {
	return strconv.Itoa(e.ID) + "v" + strconv.Itoa(e.Gen)
}
