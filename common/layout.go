package common

// NodeLayout returns the left edge and square size of node i when nodes
// columns are spread across a surface of width w.
func NodeLayout(i int, w float64, nodes int, sizeFactor float64) (x, size float64) {
	if nodes <= 0 || sizeFactor <= 0 {
		return 0, 0
	}
	gap := w / float64(nodes+1)
	return gap * float64(i+1), gap / sizeFactor
}

// BarPartY returns the vertical centre of part i. At scale 0 the parts are
// stacked from h/6 downwards; as the part's share of scale reaches 1 it
// slides all the way to h.
func BarPartY(i int, scale, size, h float64, parts int) float64 {
	sci := DivideScale(scale, i, parts)
	initY := h/6 + float64(i)*size
	return Lerp(initY, h, sci)
}
