package light

import (
	"context"
	"fmt"
)

// DeviceID names a single light. Webhook devices use the hex identifier
// issued by the Luxafor web service; USB devices derive a composite
// manufacturer::product::serial string when the handle is opened.
type DeviceID string

func (id DeviceID) String() string {
	return string(id)
}

// ParseDeviceID validates the webhook form of a device identifier:
// non-empty, ASCII hex digits only.
func ParseDeviceID(s string) (DeviceID, error) {
	if s == "" || !isASCIIHex(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDeviceID, s)
	}
	return DeviceID(s), nil
}

// Light is the capability contract every backend implements. Calls are
// synchronous: one command performs at most one device write or one
// HTTP round trip, and errors are terminal for that call, never retried
// internally. A Light owns its transport handle exclusively and is not
// safe for concurrent use.
//
// Backends that cannot perform an operation fail with
// ErrUnsupportedCommand instead of silently degrading.
type Light interface {
	// ID returns the identifier of the connected device. No side effects.
	ID() DeviceID
	// TurnOff turns the light off.
	TurnOff(ctx context.Context) error
	// SetSolid sets a continuous solid color, optionally blinking.
	SetSolid(ctx context.Context, c Color, blink bool) error
	// SetFade fades from the current color to c over duration.
	SetFade(ctx context.Context, c Color, duration uint8) error
	// SetStrobe dims and brightens c repeatedly.
	SetStrobe(ctx context.Context, c Color, speed, repeat uint8) error
	// SetWave runs a wave animation in c.
	SetWave(ctx context.Context, c Color, style WaveStyle, speed, repeat uint8) error
	// SetPattern runs one of the preset patterns.
	SetPattern(ctx context.Context, p Pattern, repeat uint8) error
}

// TargetedLight is implemented by backends that can address individual
// LEDs. The target applies to subsequent solid, fade, and strobe calls
// on the same handle until changed again; the default is LEDAll.
type TargetedLight interface {
	Light
	SetTargetLED(t LEDTarget) error
}
