package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// SoundPlayer starts a named clip at the given volume.
type SoundPlayer interface {
	Play(name string, volume float64)
}

type AudioSystem struct {
	player SoundPlayer
}

func NewAudioSystem(player SoundPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := min(len(audioComp.Play), len(audioComp.Names))
		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false

			if a.player == nil {
				continue
			}
			volume := 1.0
			if i < len(audioComp.Volume) {
				volume = audioComp.Volume[i]
			}
			a.player.Play(audioComp.Names[i], volume)
		}
	})
}
