package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
)

// LoadLevelToWorld creates the background, platforms, hazards, coins, player
// and round entities of a level, and returns the player.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, cfg common.Config, art *assets.Art) (ecs.Entity, error) {
	if w == nil || lvl == nil {
		return 0, fmt.Errorf("load level: world and level are required")
	}

	if err := NewBackground(w, art); err != nil {
		return 0, err
	}
	for _, r := range lvl.Platforms {
		if _, err := NewPlatform(w, r, nil, art.Block(int(r.Width), int(r.Height), cfg.Colors.Platform.NRGBA)); err != nil {
			return 0, err
		}
	}
	for _, r := range lvl.MovingPlatforms {
		osc := &component.Oscillation{Direction: 1, Speed: cfg.MovingPlatformSpeed}
		if _, err := NewPlatform(w, r, osc, art.Block(int(r.Width), int(r.Height), cfg.Colors.MovingPlatform.NRGBA)); err != nil {
			return 0, err
		}
	}
	for _, r := range lvl.Hazards {
		if _, err := NewHazard(w, r, art.Block(int(r.Width), int(r.Height), cfg.Colors.Hazard.NRGBA)); err != nil {
			return 0, err
		}
	}
	for _, p := range lvl.Coins {
		if _, err := NewCoin(w, cfg, art, p.X, p.Y); err != nil {
			return 0, err
		}
	}
	if _, err := NewRound(w); err != nil {
		return 0, err
	}
	return NewPlayer(w, cfg, lvl.Spawn, art)
}

// CoinArea is the box respawned coins are placed in. An empty level area
// means the whole screen above the floor.
func CoinArea(lvl *levels.Level, cfg common.Config) cp.BB {
	if lvl == nil || lvl.CoinArea.Empty() {
		return common.Bounds(0, 0, float64(cfg.ScreenWidth), cfg.FloorY())
	}
	a := lvl.CoinArea
	return common.Bounds(a.X, a.Y, a.Width, a.Height)
}

func NewPlatform(w *ecs.World, r levels.Rect, osc *component.Oscillation, img *ebiten.Image) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := SetEntityTransform(w, e, r.X, r.Y); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{Width: r.Width, Height: r.Height, Oscillation: osc}); err != nil {
		return 0, err
	}
	return e, addLayeredSprite(w, e, img, LayerLevel)
}

func NewHazard(w *ecs.World, r levels.Rect, img *ebiten.Image) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := SetEntityTransform(w, e, r.X, r.Y); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{Width: r.Width, Height: r.Height}); err != nil {
		return 0, err
	}
	return e, addLayeredSprite(w, e, img, LayerLevel)
}

// NewCoin builds a coin from coin.yaml with its top-left corner at (x, y).
func NewCoin(w *ecs.World, cfg common.Config, art *assets.Art, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, "coin.yaml", cfg, art)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.CoinComponent.Kind(), &component.Coin{Size: cfg.CoinSize}); err != nil {
		return 0, err
	}
	if art == nil || art.Coin == nil {
		return e, nil
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Image = art.Coin
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		b := art.Coin.Bounds()
		if b.Dx() > 0 && b.Dy() > 0 {
			t.ScaleX = cfg.CoinSize / float64(b.Dx())
			t.ScaleY = cfg.CoinSize / float64(b.Dy())
		}
	}
	return e, nil
}

// CoinSpawner binds NewCoin to a config and art set.
func CoinSpawner(cfg common.Config, art *assets.Art) func(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return func(w *ecs.World, x, y float64) (ecs.Entity, error) {
		return NewCoin(w, cfg, art, x, y)
	}
}

func NewBackground(w *ecs.World, art *assets.Art) error {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BackgroundTagComponent.Kind(), &component.BackgroundTag{}); err != nil {
		return err
	}
	if err := SetEntityTransform(w, e, 0, 0); err != nil {
		return err
	}
	var img *ebiten.Image
	if art != nil {
		img = art.Background
	}
	return addLayeredSprite(w, e, img, LayerBackground)
}

func NewRound(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	return e, ecs.Add(w, e, component.RoundComponent.Kind(), &component.Round{})
}
