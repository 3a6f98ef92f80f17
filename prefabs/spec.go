package prefabs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/milk9111/platformer/common"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the embedded tuning used when no config path is given.
const DefaultConfigFile = "game.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadConfig reads a YAML or TOML config file on top of common.DefaultConfig
// and validates the result. An empty path loads the embedded game.yaml.
func LoadConfig(path string) (common.Config, error) {
	var (
		data []byte
		err  error
		name = path
	)
	if path == "" {
		name = DefaultConfigFile
		data, err = Load(DefaultConfigFile)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return common.Config{}, fmt.Errorf("prefabs: load config %s: %w", name, err)
	}
	cfg, err := DecodeConfig(data, formatOf(name), common.DefaultConfig())
	if err != nil {
		return common.Config{}, fmt.Errorf("prefabs: decode config %s: %w", name, err)
	}
	return cfg, nil
}

// DecodeConfig decodes data onto base. Keys absent from data keep base's values.
func DecodeConfig(data []byte, format string, base common.Config) (common.Config, error) {
	cfg := base
	switch format {
	case "toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return common.Config{}, err
		}
	case "yaml":
		if len(bytes.TrimSpace(data)) > 0 {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return common.Config{}, err
			}
		}
	default:
		return common.Config{}, fmt.Errorf("unsupported config format %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return common.Config{}, err
	}
	return cfg, nil
}

// EncodeConfig writes cfg as TOML, the format used for user-saved tunings.
func EncodeConfig(cfg common.Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
}

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type AnimationComponentSpec struct {
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
	Current string                      `yaml:"current"`
	Playing bool                        `yaml:"playing"`
}

type AnimationDefSpec struct {
	Row        int  `yaml:"row"`
	ColStart   int  `yaml:"col_start"`
	FrameCount int  `yaml:"frame_count"`
	FrameW     int  `yaml:"frame_w"`
	FrameH     int  `yaml:"frame_h"`
	Loop       bool `yaml:"loop"`
}

type AudioComponentSpec struct {
	Name   string  `yaml:"name"`
	Volume float64 `yaml:"volume"`
}

type SpriteComponentSpec struct {
	UseSource  bool `yaml:"use_source"`
	FacingLeft bool `yaml:"facing_left"`
}
