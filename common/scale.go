package common

import "math"

// MaxScale lags scale by i/n so part i only starts moving once the parts
// before it have had their share.
func MaxScale(scale float64, i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return math.Max(0, scale-float64(i)/float64(n))
}

// DivideScale returns part i's progress in [0,1] for an overall scale that
// is split evenly across n parts.
func DivideScale(scale float64, i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return math.Min(1/float64(n), MaxScale(scale, i, n)) * float64(n)
}
