package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// drawOrder returns every drawable entity sorted by layer, then by entity.
func drawOrder(w *ecs.World) []ecs.Entity {
	var entities []ecs.Entity
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.Transform, _ *component.Sprite) {
		entities = append(entities, e)
	})

	layerOf := func(e ecs.Entity) int {
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return layer.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layerOf(entities[i]), layerOf(entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
	return entities
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	for _, e := range drawOrder(w) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil {
			continue
		}

		img := s.Image
		if s.UseSource {
			if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
				img = sub
			}
		}

		op := &ebiten.DrawImageOptions{}
		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}
		if s.FacingLeft {
			op.GeoM.Translate(float64(-img.Bounds().Dx()), 0)
			op.GeoM.Scale(-1, 1)
		}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(float64(int(t.X)), float64(int(t.Y)))

		screen.DrawImage(img, op)
	}
}
