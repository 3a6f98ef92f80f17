package system

import (
	"image"
	"time"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// AnimationSystem advances sprite sheet frames on a wall-clock gate, so the
// animation speed does not depend on the tick rate.
type AnimationSystem struct {
	frame time.Duration
	now   func() time.Time
}

func NewAnimationSystem(frame time.Duration) *AnimationSystem {
	return &AnimationSystem{frame: frame, now: time.Now}
}

// SetClock replaces the time source.
func (a *AnimationSystem) SetClock(now func() time.Time) {
	if a == nil || now == nil {
		return
	}
	a.now = now
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	now := a.now()

	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if player, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
			sprite.FacingLeft = player.FacingLeft
		}

		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		switch {
		case anim.LastAdvance.IsZero():
			anim.LastAdvance = now
		case anim.Playing && now.Sub(anim.LastAdvance) >= a.frame:
			anim.LastAdvance = now
			anim.Frame++
			if anim.Frame >= def.FrameCount {
				if def.Loop {
					anim.Frame = 0
				} else {
					anim.Frame = def.FrameCount - 1
					anim.Playing = false
				}
			}
		}
		if anim.Frame >= def.FrameCount {
			anim.Frame = def.FrameCount - 1
		}

		x := def.ColStart*def.FrameW + anim.Frame*def.FrameW
		y := def.Row * def.FrameH
		sprite.Source = image.Rect(x, y, x+def.FrameW, y+def.FrameH)
		sprite.UseSource = true
		if anim.Sheet != nil {
			sprite.Image = anim.Sheet
		}
	})
}
