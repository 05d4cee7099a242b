package components

// Transform stores position in screen space.
type Transform struct {
	X, Y float64
}

// BarNode marks one column of a bar.
type BarNode struct {
	Index int
	Size  float64
}
