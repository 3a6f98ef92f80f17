package system

import (
	"fmt"
	"math/rand"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/prefabs"
)

// CoinPlacer chooses top-left positions for n coins of the given size inside
// area.
type CoinPlacer interface {
	Place(n int, area cp.BB, size float64) ([]cp.Vector, error)
}

// UniformPlacer draws positions uniformly so that each coin fits inside the
// area.
type UniformPlacer struct {
	rng *rand.Rand
}

func NewUniformPlacer(rng *rand.Rand) *UniformPlacer {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &UniformPlacer{rng: rng}
}

func (u *UniformPlacer) Place(n int, area cp.BB, size float64) ([]cp.Vector, error) {
	out := make([]cp.Vector, 0, n)
	spanX := max(area.R-area.L-size, 0)
	spanY := max(area.T-area.B-size, 0)
	for i := 0; i < n; i++ {
		out = append(out, cp.Vector{
			X: float64(int(area.L + u.rng.Float64()*spanX)),
			Y: float64(int(area.B + u.rng.Float64()*spanY)),
		})
	}
	return out, nil
}

// ScriptPlacer runs a tengo script that maps random rolls onto positions. The
// script reads rolls, area and size and must set positions.
type ScriptPlacer struct {
	scriptPath string
	compiled   *tengo.Compiled
	rng        *rand.Rand
}

func NewScriptPlacer(scriptPath string, rng *rand.Rand) (*ScriptPlacer, error) {
	src, err := prefabs.LoadScript(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("coins: load script %s: %w", scriptPath, err)
	}
	return newScriptPlacer(scriptPath, src, rng)
}

func newScriptPlacer(scriptPath string, src []byte, rng *rand.Rand) (*ScriptPlacer, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	if err := script.Add("rolls", []interface{}{}); err != nil {
		return nil, err
	}
	if err := script.Add("area", map[string]interface{}{}); err != nil {
		return nil, err
	}
	if err := script.Add("size", 0.0); err != nil {
		return nil, err
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("coins: compile script %s: %w", scriptPath, err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &ScriptPlacer{scriptPath: scriptPath, compiled: compiled, rng: rng}, nil
}

func (s *ScriptPlacer) Place(n int, area cp.BB, size float64) ([]cp.Vector, error) {
	if s == nil || s.compiled == nil {
		return nil, fmt.Errorf("coins: script placer not initialised")
	}

	rolls := make([]interface{}, 0, n*2)
	for i := 0; i < n*2; i++ {
		rolls = append(rolls, s.rng.Float64())
	}

	c := s.compiled.Clone()
	if err := c.Set("rolls", rolls); err != nil {
		return nil, err
	}
	if err := c.Set("area", map[string]interface{}{
		"min_x": area.L,
		"min_y": area.B,
		"max_x": area.R,
		"max_y": area.T,
	}); err != nil {
		return nil, err
	}
	if err := c.Set("size", size); err != nil {
		return nil, err
	}
	if err := c.Run(); err != nil {
		return nil, fmt.Errorf("coins: run script %s: %w", s.scriptPath, err)
	}

	raw := c.Get("positions").Array()
	out := make([]cp.Vector, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("coins: script %s: position %d is %T, want map", s.scriptPath, i, item)
		}
		x, okX := scriptNumber(m["x"])
		y, okY := scriptNumber(m["y"])
		if !okX || !okY {
			return nil, fmt.Errorf("coins: script %s: position %d needs numeric x and y", s.scriptPath, i)
		}
		out = append(out, cp.Vector{X: x, Y: y})
	}
	return out, nil
}

func scriptNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

// fallbackPlacer tries primary first and uses backup when it fails or returns
// too few positions.
type fallbackPlacer struct {
	primary CoinPlacer
	backup  CoinPlacer
	onError func(error)
}

// WithFallback wraps primary so failures are reported and served by backup.
func WithFallback(primary, backup CoinPlacer, onError func(error)) CoinPlacer {
	if primary == nil {
		return backup
	}
	return &fallbackPlacer{primary: primary, backup: backup, onError: onError}
}

func (f *fallbackPlacer) Place(n int, area cp.BB, size float64) ([]cp.Vector, error) {
	pos, err := f.primary.Place(n, area, size)
	if err == nil && len(pos) == n {
		return pos, nil
	}
	if err == nil {
		err = fmt.Errorf("coins: placer returned %d of %d positions", len(pos), n)
	}
	if f.onError != nil {
		f.onError(err)
	}
	if f.backup == nil {
		return nil, err
	}
	return f.backup.Place(n, area, size)
}
