package common

import "github.com/jakecoffman/cp"

// Bounds builds a screen-space box from a top-left corner and size. As with the
// static level boxes, B holds the top edge and T the bottom edge (y grows down).
func Bounds(x, y, w, h float64) cp.BB {
	return cp.BB{L: x, B: y, R: x + w, T: y + h}
}

// Overlaps reports strict intersection; boxes that only share an edge do not
// overlap.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R && a.R > b.L && a.B < b.T && a.T > b.B
}
