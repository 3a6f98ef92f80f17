package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
)

// Body is an axis-aligned box that moves by Velocity every tick.
type Body struct {
	Width    float64
	Height   float64
	Velocity cp.Vector
}

// Bounds returns the body's box at transform t.
func (b *Body) Bounds(t *Transform) cp.BB {
	return common.Bounds(t.X, t.Y, b.Width, b.Height)
}

var BodyComponent = NewComponent[Body]()
