package entity

import (
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
)

// NewPlayer builds the player at spawn from player.yaml and the config tuning.
func NewPlayer(w *ecs.World, cfg common.Config, spawn levels.Point, art *assets.Art) (ecs.Entity, error) {
	e, err := BuildEntity(w, "player.yaml", cfg, art)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, spawn.X, spawn.Y); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Width: cfg.PlayerWidth, Height: cfg.PlayerHeight}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:    cfg.PlayerSpeed,
		JumpStrength: cfg.JumpStrength,
		MaxJumps:     cfg.MaxJumps,
		JumpsLeft:    cfg.MaxJumps,
	}); err != nil {
		return 0, err
	}

	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		return e, nil
	}
	t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	anim, animated := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !animated {
		sprite.UseSource = false
		sprite.Image = art.Block(int(cfg.PlayerWidth), int(cfg.PlayerHeight), cfg.Colors.Player.NRGBA)
		return e, nil
	}

	// Scale a sheet frame up to the collision box.
	if def, ok := anim.Defs[anim.Current]; ok {
		t.ScaleX = cfg.PlayerWidth / float64(def.FrameW)
		t.ScaleY = cfg.PlayerHeight / float64(def.FrameH)
	}
	sprite.Image = anim.Sheet
	return e, nil
}
