package light

import (
	"fmt"
	"strings"
)

// WaveStyle is the shape of the wave animation. Waves start at the
// bottom of the light, fill it, and fade out at the top.
type WaveStyle uint8

const (
	// WaveShort is a short transition, completed before the next wave starts.
	WaveShort WaveStyle = iota + 1
	// WaveLong is a long transition, completed before the next wave starts.
	WaveLong
	// WaveOverlappingShort is a short transition that does not complete
	// before the next wave starts.
	WaveOverlappingShort
	// WaveOverlappingLong is a long transition that does not complete
	// before the next wave starts.
	WaveOverlappingLong
)

func (w WaveStyle) String() string {
	switch w {
	case WaveShort:
		return "short"
	case WaveLong:
		return "long"
	case WaveOverlappingShort:
		return "overlapping short"
	case WaveOverlappingLong:
		return "overlapping long"
	default:
		return fmt.Sprintf("wave(%d)", uint8(w))
	}
}

// ParseWaveStyle parses a wave style token, case-insensitively.
func ParseWaveStyle(s string) (WaveStyle, error) {
	switch strings.ToLower(s) {
	case "short":
		return WaveShort, nil
	case "long":
		return WaveLong, nil
	case "overlapping short":
		return WaveOverlappingShort, nil
	case "overlapping long":
		return WaveOverlappingLong, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPattern, s)
}
