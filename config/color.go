package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/colornames"
)

// ParseColor parses a clear color.
//
// Supported forms:
//   - "r,g,b" or "r,g,b,a" with components in [0, 1]
//   - "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA"
//   - an SVG color name such as "cornflowerblue"
func ParseColor(s string) (gputypes.Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.Contains(s, ","):
		return parseComponents(s)
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return gputypes.Color{}, fmt.Errorf("unknown color %q", s)
	}
	return gputypes.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}, nil
}

func parseComponents(s string) (gputypes.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return gputypes.Color{}, fmt.Errorf("want 3 or 4 components, got %d", len(parts))
	}
	v := [4]float64{3: 1}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return gputypes.Color{}, err
		}
		if f < 0 || f > 1 {
			return gputypes.Color{}, fmt.Errorf("component %d out of range [0, 1]: %v", i, f)
		}
		v[i] = f
	}
	return gputypes.Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

var errBadHex = errors.New("malformed hex color")

func parseHex(hex string) (gputypes.Color, error) {
	var r, g, b, a uint32
	a = 255

	var err error
	digit := func(s string) uint32 {
		n, perr := strconv.ParseUint(s, 16, 8)
		if perr != nil && err == nil {
			err = errBadHex
		}
		return uint32(n)
	}

	switch len(hex) {
	case 3: // RGB
		r, g, b = digit(hex[0:1])*17, digit(hex[1:2])*17, digit(hex[2:3])*17
	case 4: // RGBA
		r, g, b, a = digit(hex[0:1])*17, digit(hex[1:2])*17, digit(hex[2:3])*17, digit(hex[3:4])*17
	case 6: // RRGGBB
		r, g, b = digit(hex[0:2]), digit(hex[2:4]), digit(hex[4:6])
	case 8: // RRGGBBAA
		r, g, b, a = digit(hex[0:2]), digit(hex[2:4]), digit(hex[4:6]), digit(hex[6:8])
	default:
		return gputypes.Color{}, errBadHex
	}
	if err != nil {
		return gputypes.Color{}, err
	}

	return gputypes.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}
