package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PhysicsSystem integrates gravity and velocity for the player and clamps it
// to the floor line.
type PhysicsSystem struct {
	gravity float64
	floorY  float64
	width   float64
	clampX  bool
}

func NewPhysicsSystem(cfg common.Config) *PhysicsSystem {
	return &PhysicsSystem{
		gravity: cfg.Gravity,
		floorY:  cfg.FloorY(),
		width:   float64(cfg.ScreenWidth),
		clampX:  cfg.ClampHorizontal,
	}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, player *component.Player, t *component.Transform, body *component.Body) {
		body.Velocity.Y += p.gravity
		t.Y += body.Velocity.Y
		t.X += body.Velocity.X

		if t.Y+body.Height >= p.floorY {
			t.Y = p.floorY - body.Height
			body.Velocity.Y = 0
			player.Land()
		} else {
			player.OnGround = false
		}

		if p.clampX {
			t.X = common.Clamp(t.X, 0, p.width-body.Width)
		}
	})
}
