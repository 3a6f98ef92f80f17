package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// Draw order.
const (
	LayerBackground = 0
	LayerLevel      = 10
	LayerCoins      = 20
	LayerPlayer     = 30
)

type buildContext struct {
	PrefabPath string
	Config     common.Config
	Art        *assets.Art
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":           addPlayerTag,
	"input":                addInput,
	"player_state_machine": addPlayerStateMachine,
	"render_layer":         addRenderLayer,
	"sprite":               addSprite,
	"animation":            addAnimation,
	"audio":                addAudio,
}

var componentBuildOrder = []string{
	"player_tag",
	"input",
	"player_state_machine",
	"render_layer",
	"sprite",
	"animation",
	"audio",
}

// BuildEntity creates an entity from a prefab file.
func BuildEntity(w *ecs.World, prefabPath string, cfg common.Config, art *assets.Art) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, Config: cfg, Art: art}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	build := func(name string, raw any) error {
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, raw, ctx); err != nil {
			return fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		return nil
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := build(name, raw); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
		delete(remaining, name)
	}

	names := make([]string, 0, len(remaining))
	for name := range remaining {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := build(name, remaining[name]); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	return e, nil
}

// SetEntityTransform places e with its top-left corner at (x, y).
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addPlayerStateMachine(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerStateMachineComponent.Kind(), &component.PlayerStateMachine{})
}

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.RenderLayerComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.SpriteComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		UseSource:  spec.UseSource,
		FacingLeft: spec.FacingLeft,
	})
}

func addAnimation(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	// Static variants draw the player as a plain block.
	if !ctx.Config.Animation {
		return nil
	}
	spec, err := prefabs.DecodeComponentSpec[prefabs.AnimationComponentSpec](raw)
	if err != nil {
		return err
	}
	if len(spec.Defs) == 0 {
		return fmt.Errorf("animation has no defs")
	}

	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		if def.FrameCount <= 0 || def.FrameW <= 0 || def.FrameH <= 0 {
			return fmt.Errorf("animation %q: frame_count and frame size must be positive", name)
		}
		defs[name] = component.AnimationDef{
			Name:       name,
			Row:        def.Row,
			ColStart:   def.ColStart,
			FrameCount: def.FrameCount,
			FrameW:     def.FrameW,
			FrameH:     def.FrameH,
			Loop:       def.Loop,
		}
	}
	if _, ok := defs[spec.Current]; !ok {
		return fmt.Errorf("animation: unknown current %q", spec.Current)
	}

	anim := &component.Animation{
		Defs:    defs,
		Current: spec.Current,
		Playing: spec.Playing,
	}
	if ctx.Art != nil && ctx.Art.Character != nil {
		anim.Sheet = ctx.Art.Character
		// Loaded sheets may use another frame size than the prefab.
		fw, fh, err := assets.SheetFrame(ctx.Art.Character.Bounds())
		if err != nil {
			return err
		}
		for name, def := range anim.Defs {
			def.FrameW, def.FrameH = fw, fh
			anim.Defs[name] = def
		}
	}
	return ecs.Add(w, e, component.AnimationComponent.Kind(), anim)
}

func addAudio(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	specs, err := prefabs.DecodeComponentSpec[[]prefabs.AudioComponentSpec](raw)
	if err != nil {
		return err
	}
	audioComp := &component.Audio{
		Names:  make([]string, 0, len(specs)),
		Volume: make([]float64, 0, len(specs)),
		Play:   make([]bool, len(specs)),
	}
	for _, s := range specs {
		if s.Name == "" {
			return fmt.Errorf("audio entry without name")
		}
		vol := s.Volume
		if vol == 0 {
			vol = 1
		}
		audioComp.Names = append(audioComp.Names, s.Name)
		audioComp.Volume = append(audioComp.Volume, vol)
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), audioComp)
}
