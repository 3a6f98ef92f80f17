package entity

import (
	"testing"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
)

func TestLoadDefaultLevel(t *testing.T) {
	cfg := common.DefaultConfig()
	lvl, err := levels.LoadLevelFromFS(cfg.Level)
	if err != nil {
		t.Fatalf("load level: %v", err)
	}

	w := ecs.NewWorld()
	player, err := LoadLevelToWorld(w, lvl, cfg, nil)
	if err != nil {
		t.Fatalf("load level to world: %v", err)
	}

	counts := []struct {
		name string
		got  int
		want int
	}{
		{"platforms", ecs.Count(w, component.PlatformComponent.Kind()), len(lvl.Platforms) + len(lvl.MovingPlatforms)},
		{"hazards", ecs.Count(w, component.HazardComponent.Kind()), len(lvl.Hazards)},
		{"coins", ecs.Count(w, component.CoinComponent.Kind()), len(lvl.Coins)},
		{"rounds", ecs.Count(w, component.RoundComponent.Kind()), 1},
		{"players", ecs.Count(w, component.PlayerTagComponent.Kind()), 1},
		{"backgrounds", ecs.Count(w, component.BackgroundTagComponent.Kind()), 1},
	}
	for _, c := range counts {
		if c.got != c.want {
			t.Fatalf("%s: expected %d, got %d", c.name, c.want, c.got)
		}
	}

	moving := 0
	ecs.ForEach(w, component.PlatformComponent.Kind(), func(_ ecs.Entity, p *component.Platform) {
		if p.Moving() {
			moving++
			if p.Oscillation.Direction != 1 || p.Oscillation.Speed != cfg.MovingPlatformSpeed {
				t.Fatalf("unexpected oscillation %+v", p.Oscillation)
			}
		}
	})
	if moving != len(lvl.MovingPlatforms) {
		t.Fatalf("expected %d moving platforms, got %d", len(lvl.MovingPlatforms), moving)
	}

	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	if tr.X != lvl.Spawn.X || tr.Y != lvl.Spawn.Y {
		t.Fatalf("player not at spawn: %+v", tr)
	}
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	if p.JumpsLeft != cfg.MaxJumps || p.JumpStrength != cfg.JumpStrength {
		t.Fatalf("player tuning not applied: %+v", p)
	}
	anim, ok := ecs.Get(w, player, component.AnimationComponent.Kind())
	if !ok || anim.Current != "still" || len(anim.Defs) != 3 {
		t.Fatalf("expected still animation with three rows, got %+v", anim)
	}
	if tr.ScaleX != cfg.PlayerWidth/32 {
		t.Fatalf("expected sheet frame scaled to the player box, got %v", tr.ScaleX)
	}
	audio, ok := ecs.Get(w, player, component.AudioComponent.Kind())
	if !ok || len(audio.Names) != 2 || len(audio.Play) != 2 {
		t.Fatalf("expected jump and coin sounds, got %+v", audio)
	}
}

func TestPlayerWithoutAnimation(t *testing.T) {
	cfg := common.DefaultConfig()
	cfg.Animation = false
	w := ecs.NewWorld()

	e, err := NewPlayer(w, cfg, levels.Point{X: 10, Y: 20}, nil)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	if ecs.Has(w, e, component.AnimationComponent.Kind()) {
		t.Fatalf("animation disabled: player must not animate")
	}
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok || sprite.UseSource {
		t.Fatalf("static player draws the whole image, got %+v", sprite)
	}
}

func TestCoinArea(t *testing.T) {
	cfg := common.DefaultConfig()
	bb := CoinArea(&levels.Level{}, cfg)
	if bb.L != 0 || bb.B != 0 || bb.R != 800 || bb.T != 600 {
		t.Fatalf("empty area should cover the screen, got %+v", bb)
	}
	bb = CoinArea(&levels.Level{CoinArea: levels.Rect{X: 10, Y: 20, Width: 100, Height: 50}}, cfg)
	if bb.L != 10 || bb.B != 20 || bb.R != 110 || bb.T != 70 {
		t.Fatalf("unexpected area %+v", bb)
	}
}

func TestBuildEntityUnknownPrefab(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := BuildEntity(w, "nope.yaml", common.DefaultConfig(), nil); err == nil {
		t.Fatalf("expected error for missing prefab")
	}
	if n := len(ecs.Entities(w)); n != 0 {
		t.Fatalf("failed builds must not leave entities, got %d", n)
	}
}
