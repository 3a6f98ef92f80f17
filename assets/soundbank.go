package assets

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundBank plays named PCM clips through ebiten's audio context. Each clip
// has one player that is rewound when retriggered.
type SoundBank struct {
	ctx     *audio.Context
	clips   map[string][]byte
	players map[string]*audio.Player
	master  float64
}

// NewSoundBank creates the audio context on first use. master scales every
// clip's volume.
func NewSoundBank(clips map[string][]byte, master float64) *SoundBank {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	return &SoundBank{
		ctx:     ctx,
		clips:   clips,
		players: make(map[string]*audio.Player, len(clips)),
		master:  master,
	}
}

func (s *SoundBank) Play(name string, volume float64) {
	if s == nil || s.ctx == nil {
		return
	}
	player, ok := s.players[name]
	if !ok {
		pcm, ok := s.clips[name]
		if !ok {
			log.Printf("assets: unknown sound %q", name)
			return
		}
		player = s.ctx.NewPlayerFromBytes(pcm)
		s.players[name] = player
	}

	player.SetVolume(volume * s.master)
	if err := player.Rewind(); err != nil {
		log.Printf("assets: rewind %s: %v", name, err)
		return
	}
	player.Play()
}

// Close releases every player.
func (s *SoundBank) Close() {
	if s == nil {
		return
	}
	for name, p := range s.players {
		if err := p.Close(); err != nil {
			log.Printf("assets: close %s: %v", name, err)
		}
	}
	s.players = map[string]*audio.Player{}
}
