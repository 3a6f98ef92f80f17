package component

// PlayerState defines the interface for player state machine states.
type PlayerState interface {
	Name() string
	Enter(ctx *PlayerStateContext)
	Exit(ctx *PlayerStateContext)
	HandleInput(ctx *PlayerStateContext)
}

// PlayerStateContext gives a state access to the player without coupling it
// to the ECS package.
type PlayerStateContext struct {
	Input           *Input
	Player          *Player
	ChangeState     func(state PlayerState)
	ChangeAnimation func(animation string)
}

// PlayerStateMachine stores the active state for the player.
type PlayerStateMachine struct {
	State PlayerState
}

var PlayerStateMachineComponent = NewComponent[PlayerStateMachine]()
