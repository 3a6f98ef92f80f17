package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

type playerRefs struct {
	entity    ecs.Entity
	transform *component.Transform
	body      *component.Body
	player    *component.Player
}

func (p playerRefs) bounds() cp.BB {
	return p.body.Bounds(p.transform)
}

func findPlayer(w *ecs.World) (playerRefs, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return playerRefs{}, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		return playerRefs{}, false
	}
	b, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok || b == nil {
		return playerRefs{}, false
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || p == nil {
		return playerRefs{}, false
	}
	return playerRefs{entity: e, transform: t, body: b, player: p}, true
}

func findRound(w *ecs.World) (*component.Round, bool) {
	e, ok := ecs.First(w, component.RoundComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.RoundComponent.Kind())
}

// requestSound flags a named sound on the entity's Audio component.
func requestSound(w *ecs.World, e ecs.Entity, name string) {
	audio, ok := ecs.Get(w, e, component.AudioComponent.Kind())
	if !ok || audio == nil {
		return
	}
	audio.Request(name)
}
