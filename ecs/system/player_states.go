package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// Player state singletons (avoid allocations on transitions).
var (
	playerStateStill   component.PlayerState = &playerStillState{}
	playerStateWalking component.PlayerState = &playerWalkingState{}
	playerStateJumping component.PlayerState = &playerJumpingState{}
)

const (
	StateStill   = "still"
	StateWalking = "walking"
	StateJumping = "jumping"
)

type playerStillState struct{}

type playerWalkingState struct{}

type playerJumpingState struct{}

func (playerStillState) Name() string { return StateStill }
func (playerStillState) Enter(ctx *component.PlayerStateContext) {
	ctx.ChangeAnimation("still")
}
func (playerStillState) Exit(ctx *component.PlayerStateContext) {}
func (playerStillState) HandleInput(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Input == nil || ctx.ChangeState == nil {
		return
	}
	if ctx.Player != nil && ctx.Player.Jumped {
		ctx.ChangeState(playerStateJumping)
		return
	}
	if ctx.Input.MoveX != 0 {
		ctx.ChangeState(playerStateWalking)
	}
}

func (playerWalkingState) Name() string { return StateWalking }
func (playerWalkingState) Enter(ctx *component.PlayerStateContext) {
	ctx.ChangeAnimation("walk")
}
func (playerWalkingState) Exit(ctx *component.PlayerStateContext) {}
func (playerWalkingState) HandleInput(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Input == nil || ctx.ChangeState == nil {
		return
	}
	if ctx.Player != nil && ctx.Player.Jumped {
		ctx.ChangeState(playerStateJumping)
		return
	}
	if ctx.Input.MoveX == 0 {
		ctx.ChangeState(playerStateStill)
	}
}

func (playerJumpingState) Name() string { return StateJumping }
func (playerJumpingState) Enter(ctx *component.PlayerStateContext) {
	ctx.ChangeAnimation("jump")
}
func (playerJumpingState) Exit(ctx *component.PlayerStateContext) {}
func (playerJumpingState) HandleInput(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Input == nil || ctx.ChangeState == nil || ctx.Player == nil {
		return
	}
	if ctx.Player.Jumped || !ctx.Player.OnGround {
		return
	}
	if ctx.Input.MoveX != 0 {
		ctx.ChangeState(playerStateWalking)
		return
	}
	ctx.ChangeState(playerStateStill)
}

// PlayerStateSystem drives the still/walking/jumping machine.
type PlayerStateSystem struct{}

func NewPlayerStateSystem() *PlayerStateSystem { return &PlayerStateSystem{} }

func (p *PlayerStateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerStateMachineComponent.Kind(), component.PlayerComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, sm *component.PlayerStateMachine, player *component.Player, input *component.Input) {
		var pending component.PlayerState
		ctx := &component.PlayerStateContext{
			Input:  input,
			Player: player,
			ChangeState: func(state component.PlayerState) {
				pending = state
			},
			ChangeAnimation: func(name string) {
				anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
				if !ok || anim == nil {
					return
				}
				anim.Play(name)
			},
		}

		if sm.State == nil {
			sm.State = playerStateStill
			sm.State.Enter(ctx)
		}

		sm.State.HandleInput(ctx)
		if pending != nil && pending != sm.State {
			sm.State.Exit(ctx)
			sm.State = pending
			sm.State.Enter(ctx)
		}
	})
}
