package common

import (
	"errors"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.FrameDuration() != 100*time.Millisecond {
		t.Fatalf("unexpected frame duration %v", cfg.FrameDuration())
	}
	if cfg.FloorY() != 600 {
		t.Fatalf("unexpected floor %v", cfg.FloorY())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero_width", func(c *Config) { c.ScreenWidth = 0 }},
		{"no_tps", func(c *Config) { c.TPS = 0 }},
		{"negative_gravity", func(c *Config) { c.Gravity = -1 }},
		{"no_jumps", func(c *Config) { c.MaxJumps = 0 }},
		{"player_too_big", func(c *Config) { c.PlayerWidth = 2000 }},
		{"bad_score_mode", func(c *Config) { c.ScoreMode = "lives" }},
		{"bad_restart_mode", func(c *Config) { c.RestartMode = "later" }},
		{"loud", func(c *Config) { c.Volume = 2 }},
		{"no_frame_gate", func(c *Config) { c.AnimationFrameMS = 0 }},
		{"no_level", func(c *Config) { c.Level = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestAnimationFrameGateIgnoredWhenDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Animation = false
	cfg.AnimationFrameMS = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#00B2C8", RGB(0, 178, 200), false},
		{"ff0000", RGB(255, 0, 0), false},
		{"#00000080", Color{}, false},
		{"#12345", Color{}, true},
		{"#GG0000", Color{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.in == "#00000080" {
				if got.A != 0x80 {
					t.Fatalf("expected alpha 0x80, got %#x", got.A)
				}
				return
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestColorTextRoundTrip(t *testing.T) {
	c := RGB(0, 178, 200)
	b, err := c.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "#00B2C8" {
		t.Fatalf("unexpected text %s", b)
	}
	var back Color
	if err := back.UnmarshalText(b); err != nil || back != c {
		t.Fatalf("expected %v, got %v err=%v", c, back, err)
	}
}

func TestOverlaps(t *testing.T) {
	base := Bounds(0, 0, 10, 10)
	tests := []struct {
		name  string
		other cp.BB
		want  bool
	}{
		{"inside", Bounds(2, 2, 2, 2), true},
		{"partial", Bounds(5, 5, 10, 10), true},
		{"touching_right_edge", Bounds(10, 0, 5, 5), false},
		{"touching_bottom_edge", Bounds(0, 10, 5, 5), false},
		{"apart", Bounds(20, 20, 5, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(base, tc.other); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			if got := Overlaps(tc.other, base); got != tc.want {
				t.Fatalf("overlap should be symmetric")
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Fatalf("clamp out of range")
	}
}
