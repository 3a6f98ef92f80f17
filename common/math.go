package common

// Clamp limits v to [lo, hi]. When hi < lo, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
