package component

// Hazard ends the round when the player overlaps it.
// Bounds are relative to Transform (top-left origin).
type Hazard struct {
	Width  float64
	Height float64
}

var HazardComponent = NewComponent[Hazard]()
