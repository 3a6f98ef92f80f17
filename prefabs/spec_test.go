package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/platformer/common"
)

func TestEmbeddedConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load embedded config: %v", err)
	}
	def := common.DefaultConfig()
	if cfg.Gravity != def.Gravity || cfg.JumpStrength != def.JumpStrength || cfg.MaxJumps != def.MaxJumps {
		t.Fatalf("embedded tuning drifted from defaults: %+v", cfg)
	}
	if cfg.Colors.Player != common.RGB(0, 178, 200) {
		t.Fatalf("unexpected player colour %v", cfg.Colors.Player)
	}
}

func TestDecodeConfig(t *testing.T) {
	tests := []struct {
		name   string
		format string
		data   string
		check  func(t *testing.T, cfg common.Config)
	}{
		{
			name:   "yaml_partial_keeps_defaults",
			format: "yaml",
			data:   "max_jumps: 1\nrestart_mode: immediate\ncolors:\n  coin: \"#112233\"\n",
			check: func(t *testing.T, cfg common.Config) {
				if cfg.MaxJumps != 1 || cfg.RestartMode != common.RestartImmediate {
					t.Fatalf("overrides not applied: %+v", cfg)
				}
				if cfg.Gravity != 0.5 {
					t.Fatalf("expected default gravity, got %v", cfg.Gravity)
				}
				if cfg.Colors.Coin != common.RGB(0x11, 0x22, 0x33) {
					t.Fatalf("unexpected coin colour %v", cfg.Colors.Coin)
				}
				if cfg.Colors.Player != common.RGB(0, 178, 200) {
					t.Fatalf("sibling colour should keep default, got %v", cfg.Colors.Player)
				}
			},
		},
		{
			name:   "toml",
			format: "toml",
			data:   "gravity = 0.75\nshow_menu = false\n\n[colors]\nhazard = \"#FF00FF\"\n",
			check: func(t *testing.T, cfg common.Config) {
				if cfg.Gravity != 0.75 || cfg.ShowMenu {
					t.Fatalf("overrides not applied: %+v", cfg)
				}
				if cfg.Colors.Hazard != common.RGB(255, 0, 255) {
					t.Fatalf("unexpected hazard colour %v", cfg.Colors.Hazard)
				}
			},
		},
		{
			name:   "empty_yaml",
			format: "yaml",
			data:   "",
			check: func(t *testing.T, cfg common.Config) {
				if cfg != common.DefaultConfig() {
					t.Fatalf("expected defaults for empty file")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := DecodeConfig([]byte(tc.data), tc.format, common.DefaultConfig())
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			tc.check(t, cfg)
		})
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		data    string
		invalid bool
	}{
		{"bad_colour", "yaml", "colors:\n  player: nope\n", false},
		{"invalid_value", "yaml", "gravity: -3\n", true},
		{"unknown_format", "ini", "gravity=1", false},
		{"bad_toml", "toml", "gravity = [", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeConfig([]byte(tc.data), tc.format, common.DefaultConfig())
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.invalid && !errors.Is(err, common.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadConfigFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.toml")
	cfg := common.DefaultConfig()
	cfg.PlayerSpeed = 7
	data, err := EncodeConfig(cfg)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != cfg {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestPlayerPrefab(t *testing.T) {
	spec, err := LoadEntityBuildSpec("player.yaml")
	if err != nil {
		t.Fatalf("load player prefab: %v", err)
	}
	anim, err := DecodeComponentSpec[AnimationComponentSpec](spec.Components["animation"])
	if err != nil {
		t.Fatalf("decode animation: %v", err)
	}
	for _, name := range []string{"still", "walk", "jump"} {
		def, ok := anim.Defs[name]
		if !ok {
			t.Fatalf("missing animation %q", name)
		}
		if def.FrameCount != 4 {
			t.Fatalf("%s: expected 4 frames on a 4x4 sheet, got %d", name, def.FrameCount)
		}
	}
	audio, err := DecodeComponentSpec[[]AudioComponentSpec](spec.Components["audio"])
	if err != nil || len(audio) != 2 {
		t.Fatalf("expected two sounds, got %v err=%v", audio, err)
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"coins.tengo", "scripts/coins.tengo", "prefabs/scripts/coins.tengo"} {
		if _, err := LoadScript(name); err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
	}
}
