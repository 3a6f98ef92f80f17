package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrInvalidLevel = errors.New("levels: invalid level")

// Level is the single screen layout: spawn point, platform categories,
// hazard zones and the initial coins. Coordinates are top-left pixels.
type Level struct {
	Name            string  `json:"name"`
	Spawn           Point   `json:"spawn"`
	Platforms       []Rect  `json:"platforms"`
	MovingPlatforms []Rect  `json:"moving_platforms"`
	Hazards         []Rect  `json:"hazards"`
	Coins           []Point `json:"coins"`

	// CoinArea bounds respawned coins; zero means the whole screen above the floor.
	CoinArea Rect `json:"coin_area"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func LoadLevelFromFS(name string) (*Level, error) {
	return LoadLevel(LevelsFS, name)
}

// LoadLevel reads and validates a level from any filesystem.
func LoadLevel(fsys fs.FS, name string) (*Level, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return &lvl, nil
}

func (l *Level) Validate() error {
	var errs []error
	check := func(kind string, rects []Rect) {
		for i, r := range rects {
			if r.Empty() {
				errs = append(errs, fmt.Errorf("%w: %s[%d] has no area", ErrInvalidLevel, kind, i))
			}
		}
	}
	check("platforms", l.Platforms)
	check("moving_platforms", l.MovingPlatforms)
	check("hazards", l.Hazards)
	return errors.Join(errs...)
}
