package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// InputSource produces the input state for one frame.
type InputSource interface {
	Poll() component.Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() component.Input

func (f InputFunc) Poll() component.Input { return f() }

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil || i.source == nil {
		return
	}

	in := i.source.Poll()
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, _ *component.PlayerTag, input *component.Input) {
		*input = in
	})
}
