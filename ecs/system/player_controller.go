package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const jumpSound = "jump"

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, player *component.Player, input *component.Input, body *component.Body) {
		player.Jumped = false

		// A jump with no jumps left is ignored entirely.
		if input.JumpPressed && player.JumpsLeft > 0 {
			body.Velocity.Y = -player.JumpStrength
			player.JumpsLeft--
			player.OnGround = false
			player.Jumped = true
			requestSound(w, e, jumpSound)
			w.Events().Push(ecs.Event{Type: ecs.EventJump, Data: e})
		}

		body.Velocity.X = input.MoveX * player.MoveSpeed
		if input.MoveX < 0 {
			player.FacingLeft = true
		} else if input.MoveX > 0 {
			player.FacingLeft = false
		}
	})
}
