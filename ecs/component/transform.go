package component

// Transform places an entity by its top-left corner in screen pixels.
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()
