package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/milk9111/platformer/assets"
)

var sampleRate = beep.SampleRate(assets.SampleRate)

// speakerBank plays buffered clips through the beep speaker.
type speakerBank struct {
	clips  map[string]*beep.Buffer
	master float64
}

// newSpeakerBank buffers every clip, decoding WAV files from dir when set and
// synthesising them otherwise, then opens the speaker.
func newSpeakerBank(dir string, master float64) (*speakerBank, error) {
	b := &speakerBank{clips: make(map[string]*beep.Buffer, len(assets.SoundNames)), master: master}
	for _, name := range assets.SoundNames {
		buf, err := loadBuffer(dir, name)
		if err != nil {
			return nil, err
		}
		b.clips[name] = buf
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return b, nil
}

func loadBuffer(dir, name string) (*beep.Buffer, error) {
	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	if dir == "" {
		s, err := assets.ClipStreamer(name, sampleRate)
		if err != nil {
			return nil, err
		}
		buf := beep.NewBuffer(format)
		buf.Append(s)
		return buf, nil
	}

	file, _ := assets.SoundFile(name)
	f, err := os.Open(filepath.Join(dir, file))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()
	s, fileFormat, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	defer s.Close()
	buf := beep.NewBuffer(format)
	if fileFormat.SampleRate != sampleRate {
		buf.Append(beep.Resample(4, fileFormat.SampleRate, sampleRate, s))
	} else {
		buf.Append(s)
	}
	return buf, nil
}

func (b *speakerBank) Play(name string, volume float64) {
	buf, ok := b.clips[name]
	if !ok {
		return
	}
	gain := volume * b.master
	if gain <= 0 {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   math.Log2(gain),
	})
}

func (b *speakerBank) Close() {
	if b == nil {
		return
	}
	speaker.Clear()
	speaker.Close()
}
