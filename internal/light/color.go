package light

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a color the light can display: one of the seven named
// presets, or a custom RGB triple.
type Color struct {
	name    string
	R, G, B uint8
}

// Named preset colors.
var (
	Red     = Color{name: "red", R: 255}
	Green   = Color{name: "green", G: 255}
	Yellow  = Color{name: "yellow", R: 255, G: 255}
	Blue    = Color{name: "blue", B: 255}
	White   = Color{name: "white", R: 255, G: 255, B: 255}
	Cyan    = Color{name: "cyan", G: 255, B: 255}
	Magenta = Color{name: "magenta", R: 255, B: 255}
)

var namedColors = map[string]Color{
	"red":     Red,
	"green":   Green,
	"yellow":  Yellow,
	"blue":    Blue,
	"white":   White,
	"cyan":    Cyan,
	"magenta": Magenta,
}

// RGB returns a custom color from raw channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// IsCustom reports whether c is a custom RGB color rather than a named preset.
func (c Color) IsCustom() bool {
	return c.name == ""
}

// String returns the parseable token form: the preset name, or six
// lowercase hex digits for custom colors.
func (c Color) String() string {
	if c.name != "" {
		return c.name
	}
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses a color token, case-insensitively. Besides the
// named presets, any six hex digit string is accepted as a custom
// color. Each channel is taken from the first hex digit of its pair
// only; the second digit is ignored, matching the original Luxafor
// tooling. A custom color therefore does not round-trip its input
// string, only its channel values.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(s)
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if len(s) == 6 && isASCIIHex(s) {
		r, _ := strconv.ParseUint(s[0:1], 16, 8)
		g, _ := strconv.ParseUint(s[2:3], 16, 8)
		b, _ := strconv.ParseUint(s[4:5], 16, 8)
		return RGB(uint8(r), uint8(g), uint8(b)), nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func isASCIIHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
