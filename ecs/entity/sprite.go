package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func addLayeredSprite(w *ecs.World, e ecs.Entity, img *ebiten.Image, layer int) error {
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: img}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer})
}
