package component

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// AnimationDef is one row of a sprite sheet.
type AnimationDef struct {
	Name       string
	Row        int
	ColStart   int
	FrameCount int
	FrameW     int
	FrameH     int
	Loop       bool
}

// Animation advances frames on a wall-clock gate rather than per tick.
type Animation struct {
	Sheet       *ebiten.Image
	Defs        map[string]AnimationDef
	Current     string
	Frame       int
	LastAdvance time.Time
	Playing     bool
}

// Play switches to another definition from its first frame. Playing the
// current definition again is a no-op.
func (a *Animation) Play(name string) {
	if a.Current == name && a.Playing {
		return
	}
	a.Current = name
	a.Frame = 0
	a.LastAdvance = time.Time{}
	a.Playing = true
}

var AnimationComponent = NewComponent[Animation]()
