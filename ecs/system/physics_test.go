package system

import (
	"testing"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func TestPhysicsFloorContact(t *testing.T) {
	cfg := common.DefaultConfig()
	w := ecs.NewWorld()
	e := addPlayer(t, w, cfg, 400, cfg.FloorY()-cfg.PlayerHeight)
	player := get(t, w, e, component.PlayerComponent)
	player.JumpsLeft = 0

	NewPhysicsSystem(cfg).Update(w)

	tr := get(t, w, e, component.TransformComponent)
	body := get(t, w, e, component.BodyComponent)
	if tr.Y != cfg.FloorY()-cfg.PlayerHeight {
		t.Fatalf("expected player to stay on the floor, y=%v", tr.Y)
	}
	if body.Velocity.Y != 0 || !player.OnGround {
		t.Fatalf("expected grounded with zero velocity, vy=%v grounded=%v", body.Velocity.Y, player.OnGround)
	}
	if player.JumpsLeft != cfg.MaxJumps {
		t.Fatalf("expected jumps reset to %d, got %d", cfg.MaxJumps, player.JumpsLeft)
	}
}

func TestPhysicsFallingAndClamp(t *testing.T) {
	tests := []struct {
		name   string
		clamp  bool
		x      float64
		moveVX float64
		wantX  float64
	}{
		{"free", false, 10, -20, -10},
		{"clamp_left", true, 10, -20, 0},
		{"clamp_right", true, 745, 10, 750},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := common.DefaultConfig()
			cfg.ClampHorizontal = tc.clamp
			w := ecs.NewWorld()
			e := addPlayer(t, w, cfg, tc.x, 100)
			get(t, w, e, component.BodyComponent).Velocity.X = tc.moveVX

			NewPhysicsSystem(cfg).Update(w)

			tr := get(t, w, e, component.TransformComponent)
			if tr.X != tc.wantX {
				t.Fatalf("expected x=%v, got %v", tc.wantX, tr.X)
			}
			if tr.Y != 100.5 {
				t.Fatalf("expected gravity to move y to 100.5, got %v", tr.Y)
			}
			if get(t, w, e, component.PlayerComponent).OnGround {
				t.Fatalf("airborne player should not be grounded")
			}
		})
	}
}

func TestControllerJumpBudget(t *testing.T) {
	cfg := common.DefaultConfig()
	w := ecs.NewWorld()
	e := addPlayer(t, w, cfg, 400, 200)
	player := get(t, w, e, component.PlayerComponent)
	body := get(t, w, e, component.BodyComponent)
	input := get(t, w, e, component.InputComponent)
	audio := get(t, w, e, component.AudioComponent)
	ctrl := NewPlayerControllerSystem()

	input.JumpPressed = true
	for i := 0; i < cfg.MaxJumps; i++ {
		body.Velocity.Y = 3
		ctrl.Update(w)
		if body.Velocity.Y != -cfg.JumpStrength || !player.Jumped {
			t.Fatalf("jump %d: expected impulse, vy=%v", i+1, body.Velocity.Y)
		}
	}
	if player.JumpsLeft != 0 {
		t.Fatalf("expected budget exhausted, got %d", player.JumpsLeft)
	}
	if !audio.Play[0] {
		t.Fatalf("expected jump sound requested")
	}

	body.Velocity.Y = 3
	ctrl.Update(w)
	if body.Velocity.Y != 3 || player.Jumped || player.JumpsLeft != 0 {
		t.Fatalf("jump without budget must not change state: vy=%v jumped=%v", body.Velocity.Y, player.Jumped)
	}
	if n := len(w.Events().Drain()); n != cfg.MaxJumps {
		t.Fatalf("expected %d jump events, got %d", cfg.MaxJumps, n)
	}
}

func TestControllerHorizontal(t *testing.T) {
	cfg := common.DefaultConfig()
	w := ecs.NewWorld()
	e := addPlayer(t, w, cfg, 400, 200)
	input := get(t, w, e, component.InputComponent)
	player := get(t, w, e, component.PlayerComponent)
	body := get(t, w, e, component.BodyComponent)
	ctrl := NewPlayerControllerSystem()

	input.MoveX = -1
	ctrl.Update(w)
	if body.Velocity.X != -cfg.PlayerSpeed || !player.FacingLeft {
		t.Fatalf("expected leftward move, vx=%v facingLeft=%v", body.Velocity.X, player.FacingLeft)
	}

	input.MoveX = 0
	ctrl.Update(w)
	if body.Velocity.X != 0 || !player.FacingLeft {
		t.Fatalf("releasing keys must stop and keep facing, vx=%v facingLeft=%v", body.Velocity.X, player.FacingLeft)
	}
}
