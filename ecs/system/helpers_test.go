package system

import (
	"testing"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func addPlayer(t *testing.T, w *ecs.World, cfg common.Config, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	must(t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	must(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	must(t, ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Width: cfg.PlayerWidth, Height: cfg.PlayerHeight}))
	must(t, ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:    cfg.PlayerSpeed,
		JumpStrength: cfg.JumpStrength,
		MaxJumps:     cfg.MaxJumps,
		JumpsLeft:    cfg.MaxJumps,
	}))
	must(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	must(t, ecs.Add(w, e, component.AudioComponent.Kind(), &component.Audio{
		Names:  []string{"jump", "coin"},
		Volume: []float64{0.6, 0.8},
		Play:   []bool{false, false},
	}))
	return e
}

func addRound(t *testing.T, w *ecs.World) *component.Round {
	t.Helper()
	e := ecs.CreateEntity(w)
	round := &component.Round{}
	must(t, ecs.Add(w, e, component.RoundComponent.Kind(), round))
	return round
}

func addPlatform(t *testing.T, w *ecs.World, x, y, width, height float64, osc *component.Oscillation) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	must(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	must(t, ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{Width: width, Height: height, Oscillation: osc}))
	return e
}

func addCoin(t *testing.T, w *ecs.World, x, y, size float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	must(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	must(t, ecs.Add(w, e, component.CoinComponent.Kind(), &component.Coin{Size: size}))
	return e
}

func get[T any](t *testing.T, w *ecs.World, e ecs.Entity, h component.ComponentHandle[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, h.Kind())
	if !ok {
		t.Fatalf("entity %s has no %s", e, h.Kind())
	}
	return v
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
