package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

type HazardSystem struct{}

func NewHazardSystem() *HazardSystem { return &HazardSystem{} }

func (h *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	refs, ok := findPlayer(w)
	if !ok {
		return
	}
	round, ok := findRound(w)
	if !ok || round.Lost {
		return
	}

	ecs.ForEach2(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, hz *component.Hazard, t *component.Transform) {
		if round.Lost || hz.Width <= 0 || hz.Height <= 0 {
			return
		}
		if !common.Overlaps(refs.bounds(), common.Bounds(t.X, t.Y, hz.Width, hz.Height)) {
			return
		}
		round.Lost = true
		w.Events().Push(ecs.Event{Type: ecs.EventHazardHit, Data: ecs.HazardHit{
			Player: refs.entity,
			Hazard: e,
			X:      refs.transform.X,
			Y:      refs.transform.Y,
		}})
	})
}
