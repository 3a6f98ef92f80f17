package assets

import (
	"encoding/binary"
	"fmt"
	"io/fs"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/milk9111/platformer/common"
)

// SampleRate is used for every clip and audio device.
const SampleRate = 44100

const (
	SoundCoin = "coin"
	SoundJump = "jump"
)

// SoundNames lists the clips a round uses.
var SoundNames = []string{SoundJump, SoundCoin}

var soundFiles = map[string]string{
	SoundCoin: CoinSoundFile,
	SoundJump: JumpSoundFile,
}

type tone struct {
	freq    float64
	length  time.Duration
	attack  time.Duration
	release time.Duration
}

var soundTones = map[string][]tone{
	SoundJump: {
		{freq: 392, length: 40 * time.Millisecond, attack: 4 * time.Millisecond, release: 10 * time.Millisecond},
		{freq: 523.25, length: 40 * time.Millisecond, attack: 2 * time.Millisecond, release: 10 * time.Millisecond},
		{freq: 659.25, length: 60 * time.Millisecond, attack: 2 * time.Millisecond, release: 40 * time.Millisecond},
	},
	SoundCoin: {
		{freq: 987.77, length: 70 * time.Millisecond, attack: 2 * time.Millisecond, release: 20 * time.Millisecond},
		{freq: 1318.51, length: 180 * time.Millisecond, attack: 2 * time.Millisecond, release: 150 * time.Millisecond},
	},
}

// envelope applies a linear attack and release to a finite stream.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, t tone, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: beep.Take(rate.N(t.length), s),
		attack:   rate.N(t.attack),
		release:  rate.N(t.release),
		total:    rate.N(t.length),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.pos < e.attack && e.attack > 0 {
			vol = float64(e.pos) / float64(e.attack)
		}
		if remaining := e.total - e.pos; remaining < e.release && e.release > 0 {
			vol = math.Max(float64(remaining)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// ClipStreamer synthesises a named clip at the given rate.
func ClipStreamer(name string, rate beep.SampleRate) (beep.Streamer, error) {
	tones, ok := soundTones[name]
	if !ok {
		return nil, fmt.Errorf("%w: sound %q", ErrMissingAsset, name)
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(rate, t.freq)
		if err != nil {
			return nil, fmt.Errorf("assets: tone %v: %w", t.freq, err)
		}
		parts = append(parts, newEnvelope(sine, t, rate))
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: -1}, nil
}

// EncodePCM drains s into 16-bit little-endian stereo PCM.
func EncodePCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(common.Clamp(v, -1, 1)*math.MaxInt16)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

// SynthesizePCM returns the named clip as PCM ready for ebiten's audio player.
func SynthesizePCM(name string, rate int) ([]byte, error) {
	s, err := ClipStreamer(name, beep.SampleRate(rate))
	if err != nil {
		return nil, err
	}
	return EncodePCM(s), nil
}

// LoadClips returns PCM for every clip in SoundNames, read from the asset
// directory when set and synthesised otherwise.
func LoadClips(cfg common.Config, rate int) (map[string][]byte, error) {
	var fsys fs.FS
	if cfg.AssetDir != "" {
		fsys = os.DirFS(cfg.AssetDir)
	}
	return LoadClipsFS(fsys, rate)
}

func LoadClipsFS(fsys fs.FS, rate int) (map[string][]byte, error) {
	clips := make(map[string][]byte, len(SoundNames))
	for _, name := range SoundNames {
		var (
			pcm []byte
			err error
		)
		if fsys != nil {
			pcm, err = LoadPCM(fsys, soundFiles[name], rate)
		} else {
			pcm, err = SynthesizePCM(name, rate)
		}
		if err != nil {
			return nil, err
		}
		clips[name] = pcm
	}
	return clips, nil
}

// SoundFile returns the file a named clip is loaded from.
func SoundFile(name string) (string, bool) {
	f, ok := soundFiles[name]
	return f, ok
}
