package common

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an NRGBA colour written as "#RRGGBB" or "#RRGGBBAA" in config files.
type Color struct {
	color.NRGBA
}

func RGB(r, g, b uint8) Color {
	return Color{color.NRGBA{R: r, G: g, B: b, A: 0xff}}
}

func ParseColor(value string) (Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("invalid color format: %q", value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var c Color
	var err error
	if c.R, err = parse(0); err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", value, err)
	}
	if c.G, err = parse(2); err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", value, err)
	}
	if c.B, err = parse(4); err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", value, err)
	}
	c.A = 0xff
	if len(s) == 8 {
		if c.A, err = parse(6); err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", value, err)
		}
	}
	return c, nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
