package light

import (
	"fmt"
	"strconv"
	"strings"
)

// LEDTarget selects which LEDs subsequent solid, fade, and strobe
// commands address on a multi-LED device.
type LEDTarget uint8

// Individual LEDs are numbered 1 to 6; 1..3 are the front (tab) LEDs
// bottom to top, 4..6 the back.
const (
	LED1 LEDTarget = iota + 1
	LED2
	LED3
	LED4
	LED5
	LED6
	LEDAllFront
	LEDAllBack
	LEDAll
)

// LEDNumber returns the target for a single LED, numbered 1 to 6.
func LEDNumber(n uint8) (LEDTarget, error) {
	if n < 1 || n > 6 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLED, n)
	}
	return LEDTarget(n), nil
}

func (t LEDTarget) String() string {
	switch t {
	case LEDAll:
		return "all"
	case LEDAllFront:
		return "front"
	case LEDAllBack:
		return "back"
	default:
		return strconv.Itoa(int(t))
	}
}

// ParseLEDTarget parses an LED target token: "all", "front", "back", or
// a single LED number 1 to 6.
func ParseLEDTarget(s string) (LEDTarget, error) {
	switch strings.ToLower(s) {
	case "all":
		return LEDAll, nil
	case "front":
		return LEDAllFront, nil
	case "back":
		return LEDAllBack, nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLED, s)
	}
	return LEDNumber(uint8(n))
}
