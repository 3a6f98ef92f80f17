package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PlatformMotionSystem moves oscillating platforms and reverses them at the
// screen edges.
type PlatformMotionSystem struct {
	width float64
}

func NewPlatformMotionSystem(screenWidth int) *PlatformMotionSystem {
	return &PlatformMotionSystem{width: float64(screenWidth)}
}

func (p *PlatformMotionSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, plat *component.Platform, t *component.Transform) {
		osc := plat.Oscillation
		if osc == nil {
			return
		}
		dx := osc.Step()
		t.X += dx
		osc.LastDX = dx
		if t.X+plat.Width >= p.width || t.X <= 0 {
			osc.Direction = -osc.Direction
		}
	})
}

// PlatformCollisionSystem lands the player on platforms. Static platforms are
// resolved before oscillating ones; within a category only the first
// overlapping platform counts.
type PlatformCollisionSystem struct{}

func NewPlatformCollisionSystem() *PlatformCollisionSystem {
	return &PlatformCollisionSystem{}
}

func (p *PlatformCollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	refs, ok := findPlayer(w)
	if !ok {
		return
	}

	p.resolve(w, refs, false)
	p.resolve(w, refs, true)
}

func (p *PlatformCollisionSystem) resolve(w *ecs.World, refs playerRefs, moving bool) {
	hit := false
	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, plat *component.Platform, t *component.Transform) {
		if hit || plat.Moving() != moving {
			return
		}
		box := common.Bounds(t.X, t.Y, plat.Width, plat.Height)
		if !common.Overlaps(refs.bounds(), box) {
			return
		}
		hit = true

		refs.transform.Y = t.Y - refs.body.Height
		refs.body.Velocity.Y = 0
		refs.player.Land()
		if plat.Oscillation != nil {
			refs.transform.X += plat.Oscillation.LastDX
		}
	})
}
