package common

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("config: invalid")

const (
	RestartAwait     = "await"
	RestartImmediate = "immediate"

	ScoreCoins = "coins"
	ScoreTicks = "ticks"
)

// Palette holds the colours used for procedural art and text.
type Palette struct {
	Background     Color `yaml:"background" toml:"background"`
	Player         Color `yaml:"player" toml:"player"`
	Platform       Color `yaml:"platform" toml:"platform"`
	MovingPlatform Color `yaml:"moving_platform" toml:"moving_platform"`
	Hazard         Color `yaml:"hazard" toml:"hazard"`
	Coin           Color `yaml:"coin" toml:"coin"`
	Font           Color `yaml:"font" toml:"font"`
}

// Config carries every tunable of a run. It is copied by value into a session
// and never mutated afterwards.
type Config struct {
	Title        string `yaml:"title" toml:"title"`
	ScreenWidth  int    `yaml:"screen_width" toml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height" toml:"screen_height"`
	TPS          int    `yaml:"tps" toml:"tps"`

	PlayerWidth     float64 `yaml:"player_width" toml:"player_width"`
	PlayerHeight    float64 `yaml:"player_height" toml:"player_height"`
	Gravity         float64 `yaml:"gravity" toml:"gravity"`
	JumpStrength    float64 `yaml:"jump_strength" toml:"jump_strength"`
	PlayerSpeed     float64 `yaml:"player_speed" toml:"player_speed"`
	MaxJumps        int     `yaml:"max_jumps" toml:"max_jumps"`
	ClampHorizontal bool    `yaml:"clamp_horizontal" toml:"clamp_horizontal"`

	MovingPlatformSpeed float64 `yaml:"moving_platform_speed" toml:"moving_platform_speed"`

	CoinSize         float64 `yaml:"coin_size" toml:"coin_size"`
	CoinRespawnCount int     `yaml:"coin_respawn_count" toml:"coin_respawn_count"`
	CoinScript       string  `yaml:"coin_script" toml:"coin_script"`

	WinScore    int    `yaml:"win_score" toml:"win_score"`
	ScoreMode   string `yaml:"score_mode" toml:"score_mode"`
	RestartMode string `yaml:"restart_mode" toml:"restart_mode"`
	ShowMenu    bool   `yaml:"show_menu" toml:"show_menu"`

	Animation        bool `yaml:"animation" toml:"animation"`
	AnimationFrameMS int  `yaml:"animation_frame_ms" toml:"animation_frame_ms"`

	Sound  bool    `yaml:"sound" toml:"sound"`
	Volume float64 `yaml:"volume" toml:"volume"`

	FontSize float64 `yaml:"font_size" toml:"font_size"`
	Seed     int64   `yaml:"seed" toml:"seed"`
	AssetDir string  `yaml:"asset_dir" toml:"asset_dir"`
	Level    string  `yaml:"level" toml:"level"`

	Colors Palette `yaml:"colors" toml:"colors"`
}

// DefaultConfig returns the tuning of the most complete game variant.
func DefaultConfig() Config {
	return Config{
		Title:        "Simple 2D Mario-style Game",
		ScreenWidth:  800,
		ScreenHeight: 600,
		TPS:          60,

		PlayerWidth:     50,
		PlayerHeight:    50,
		Gravity:         0.5,
		JumpStrength:    10,
		PlayerSpeed:     5,
		MaxJumps:        2,
		ClampHorizontal: true,

		MovingPlatformSpeed: 2,

		CoinSize:         24,
		CoinRespawnCount: 5,
		CoinScript:       "coins.tengo",

		WinScore:    25,
		ScoreMode:   ScoreCoins,
		RestartMode: RestartAwait,
		ShowMenu:    true,

		Animation:        true,
		AnimationFrameMS: 100,

		Sound:  true,
		Volume: 0.5,

		FontSize: 36,
		Level:    "default.json",

		Colors: Palette{
			Background:     RGB(0, 0, 0),
			Player:         RGB(0, 178, 200),
			Platform:       RGB(0, 255, 0),
			MovingPlatform: RGB(255, 0, 0),
			Hazard:         RGB(255, 140, 0),
			Coin:           RGB(255, 215, 0),
			Font:           RGB(255, 255, 255),
		},
	}
}

// FrameDuration is the wall-clock gate between animation frames.
func (c Config) FrameDuration() time.Duration {
	return time.Duration(c.AnimationFrameMS) * time.Millisecond
}

// FloorY is the floor line the player's bottom edge is clamped to.
func (c Config) FloorY() float64 {
	return float64(c.ScreenHeight)
}

func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		bad("screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight)
	}
	if c.TPS <= 0 {
		bad("tps %d must be positive", c.TPS)
	}
	if c.PlayerWidth <= 0 || c.PlayerHeight <= 0 {
		bad("player size %vx%v must be positive", c.PlayerWidth, c.PlayerHeight)
	}
	if c.PlayerWidth > float64(c.ScreenWidth) || c.PlayerHeight > float64(c.ScreenHeight) {
		bad("player does not fit on screen")
	}
	if c.Gravity <= 0 {
		bad("gravity %v must be positive", c.Gravity)
	}
	if c.JumpStrength <= 0 {
		bad("jump_strength %v must be positive", c.JumpStrength)
	}
	if c.PlayerSpeed < 0 || c.MovingPlatformSpeed < 0 {
		bad("speeds must not be negative")
	}
	if c.MaxJumps < 1 {
		bad("max_jumps %d must be at least 1", c.MaxJumps)
	}
	if c.CoinSize <= 0 {
		bad("coin_size %v must be positive", c.CoinSize)
	}
	if c.CoinRespawnCount < 0 {
		bad("coin_respawn_count %d must not be negative", c.CoinRespawnCount)
	}
	if c.WinScore < 0 {
		bad("win_score %d must not be negative", c.WinScore)
	}
	if c.ScoreMode != ScoreCoins && c.ScoreMode != ScoreTicks {
		bad("score_mode %q must be %q or %q", c.ScoreMode, ScoreCoins, ScoreTicks)
	}
	if c.RestartMode != RestartAwait && c.RestartMode != RestartImmediate {
		bad("restart_mode %q must be %q or %q", c.RestartMode, RestartAwait, RestartImmediate)
	}
	if c.Animation && c.AnimationFrameMS <= 0 {
		bad("animation_frame_ms %d must be positive", c.AnimationFrameMS)
	}
	if c.Volume < 0 || c.Volume > 1 {
		bad("volume %v must be within [0, 1]", c.Volume)
	}
	if c.FontSize <= 0 {
		bad("font_size %v must be positive", c.FontSize)
	}
	if c.Level == "" {
		bad("level must be set")
	}
	return errors.Join(errs...)
}
