package light

import (
	"fmt"
	"strconv"
	"strings"
)

// Pattern is a preset animation the light runs on its own.
type Pattern struct {
	name string
	n    uint8
}

// Base patterns, available on every device.
var (
	Police        = Pattern{name: "police"}
	TrafficLights = Pattern{name: "traffic lights"}
)

// Extended patterns, only honored by devices driven through the vendor's
// Windows software. Parsing them is gated by a configuration flag so the
// same binary reports them as unsupported instead of refusing to build.
var (
	Rainbow   = Pattern{name: "rainbow"}
	Sea       = Pattern{name: "sea"}
	WhiteWave = Pattern{name: "white wave"}
	Synthetic = Pattern{name: "synthetic"}
)

// Random returns one of the five preset random patterns, numbered 1 to 5.
func Random(n uint8) (Pattern, error) {
	if n < 1 || n > 5 {
		return Pattern{}, fmt.Errorf("%w: random %d", ErrInvalidPattern, n)
	}
	return Pattern{name: "random", n: n}, nil
}

// RandomIndex returns the index of a random pattern, and whether p is one.
func (p Pattern) RandomIndex() (uint8, bool) {
	return p.n, p.name == "random"
}

func (p Pattern) String() string {
	if p.name == "random" {
		return fmt.Sprintf("random %d", p.n)
	}
	return p.name
}

// ParsePattern parses a pattern token, case-insensitively. The extended
// flag admits the Windows-only tokens; without it they are rejected the
// same as unknown tokens.
func ParsePattern(s string, extended bool) (Pattern, error) {
	s = strings.ToLower(s)
	switch s {
	case "police":
		return Police, nil
	case "traffic lights":
		return TrafficLights, nil
	}
	if rest, ok := strings.CutPrefix(s, "random "); ok {
		n, err := strconv.ParseUint(rest, 10, 8)
		if err != nil {
			return Pattern{}, fmt.Errorf("%w: %q", ErrInvalidPattern, s)
		}
		return Random(uint8(n))
	}
	if extended {
		switch s {
		case "rainbow":
			return Rainbow, nil
		case "sea":
			return Sea, nil
		case "white wave":
			return WhiteWave, nil
		case "synthetic":
			return Synthetic, nil
		}
	}
	return Pattern{}, fmt.Errorf("%w: %q", ErrInvalidPattern, s)
}
