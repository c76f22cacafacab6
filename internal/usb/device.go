package usb

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/dokzlo13/luxctl/internal/light"
)

// HID report layout: byte 0 is the report id (always 0x00), byte 1 the
// mode, remainder mode-specific. Trailing zero bytes are omitted.
const (
	reportID = 0x00

	modeSimple  = 0x00
	modeSolid   = 0x01
	modeFade    = 0x02
	modeStrobe  = 0x03
	modeWave    = 0x04
	modePattern = 0x06

	simpleOff = 'O'
)

// LED wire codes. Single LEDs map through the physical layout of the
// flag rather than linearly; the group codes address a whole face.
const (
	ledFrontBottom = 0x03
	ledFrontMiddle = 0x02
	ledFrontTop    = 0x01
	ledBackBottom  = 0x06
	ledBackMiddle  = 0x05
	ledBackTop     = 0x04
	ledAllFront    = 0x42
	ledAllBack     = 0x41
	ledAll         = 0xFF
)

// SetSolid with blink encodes as a strobe frame; these mirror the CLI
// strobe defaults.
const (
	defaultBlinkSpeed  = 10
	defaultBlinkRepeat = 255
)

// ReportWriter is the injected transport: it submits one HID output
// report and returns the number of bytes accepted.
type ReportWriter interface {
	Write(p []byte) (n int, err error)
}

// Device drives a USB-connected light through an already open HID
// handle. The handle is owned exclusively by one Device for its
// lifetime; Device is not safe for concurrent use.
type Device struct {
	w      ReportWriter
	id     light.DeviceID
	target byte
}

var _ light.TargetedLight = (*Device)(nil)

// NewDevice wraps an open HID handle. Discovery is the caller's
// concern; see Open for the usual wiring.
func NewDevice(w ReportWriter, id light.DeviceID) *Device {
	return &Device{w: w, id: id, target: ledAll}
}

// Close releases the underlying handle, if it supports closing.
func (d *Device) Close() error {
	if c, ok := d.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (d *Device) ID() light.DeviceID {
	return d.id
}

func (d *Device) TurnOff(ctx context.Context) error {
	log.Info().Stringer("device", d.id).Msg("Turning light off")
	return d.write(ctx, []byte{reportID, modeSimple, simpleOff})
}

func (d *Device) SetSolid(ctx context.Context, c light.Color, blink bool) error {
	if blink {
		// The solid frame has no blink flag on the wire.
		return d.SetStrobe(ctx, c, defaultBlinkSpeed, defaultBlinkRepeat)
	}
	log.Info().Stringer("device", d.id).Stringer("color", c).Msg("Setting solid color")
	return d.write(ctx, []byte{reportID, modeSolid, d.target, c.R, c.G, c.B})
}

func (d *Device) SetFade(ctx context.Context, c light.Color, duration uint8) error {
	log.Info().Stringer("device", d.id).Stringer("color", c).Uint8("duration", duration).Msg("Setting fade-to color")
	return d.write(ctx, []byte{reportID, modeFade, d.target, c.R, c.G, c.B, duration})
}

func (d *Device) SetStrobe(ctx context.Context, c light.Color, speed, repeat uint8) error {
	log.Info().Stringer("device", d.id).Stringer("color", c).
		Uint8("speed", speed).Uint8("repeat", repeat).Msg("Setting strobe")
	return d.write(ctx, []byte{reportID, modeStrobe, d.target, c.R, c.G, c.B, speed, 0x00, repeat})
}

func (d *Device) SetWave(ctx context.Context, c light.Color, style light.WaveStyle, speed, repeat uint8) error {
	wcode, err := waveCode(style)
	if err != nil {
		return err
	}
	log.Info().Stringer("device", d.id).Stringer("color", c).Stringer("style", style).
		Uint8("speed", speed).Uint8("repeat", repeat).Msg("Setting wave")
	return d.write(ctx, []byte{reportID, modeWave, wcode, c.R, c.G, c.B, 0x00, repeat, speed})
}

func (d *Device) SetPattern(ctx context.Context, p light.Pattern, repeat uint8) error {
	pcode, err := patternCode(p)
	if err != nil {
		return err
	}
	log.Info().Stringer("device", d.id).Stringer("pattern", p).Uint8("repeat", repeat).Msg("Setting pattern")
	return d.write(ctx, []byte{reportID, modePattern, pcode, repeat})
}

// SetTargetLED changes the LED addressed by subsequent solid, fade, and
// strobe frames on this handle.
func (d *Device) SetTargetLED(t light.LEDTarget) error {
	code, err := ledCode(t)
	if err != nil {
		return err
	}
	d.target = code
	return nil
}

func (d *Device) write(ctx context.Context, frame []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log.Trace().Hex("frame", frame).Msg("Writing HID report")
	n, err := d.w.Write(frame)
	if err != nil {
		log.Error().Err(err).Msg("Could not write to HID device")
		return fmt.Errorf("%w: %v", light.ErrInvalidRequest, err)
	}
	if n != len(frame) {
		log.Error().Int("written", n).Int("expected", len(frame)).Msg("Short write to HID device")
		return fmt.Errorf("%w: wrote %d of %d bytes", light.ErrInvalidRequest, n, len(frame))
	}
	return nil
}

func ledCode(t light.LEDTarget) (byte, error) {
	switch t {
	case light.LEDAll:
		return ledAll, nil
	case light.LEDAllFront:
		return ledAllFront, nil
	case light.LEDAllBack:
		return ledAllBack, nil
	case light.LED1:
		return ledFrontBottom, nil
	case light.LED2:
		return ledFrontMiddle, nil
	case light.LED3:
		return ledFrontTop, nil
	case light.LED4:
		return ledBackBottom, nil
	case light.LED5:
		return ledBackMiddle, nil
	case light.LED6:
		return ledBackTop, nil
	}
	return 0, fmt.Errorf("%w: %d", light.ErrInvalidLED, t)
}

func waveCode(style light.WaveStyle) (byte, error) {
	switch style {
	case light.WaveShort:
		return 0x01, nil
	case light.WaveLong:
		return 0x02, nil
	case light.WaveOverlappingShort:
		return 0x03, nil
	case light.WaveOverlappingLong:
		return 0x04, nil
	}
	return 0, fmt.Errorf("%w: %s", light.ErrInvalidPattern, style)
}

// The pattern code table is non-linear: the random presets straddle the
// police code.
func patternCode(p light.Pattern) (byte, error) {
	if n, ok := p.RandomIndex(); ok {
		switch n {
		case 1:
			return 0x02, nil
		case 2:
			return 0x03, nil
		case 3:
			return 0x04, nil
		case 4:
			return 0x06, nil
		case 5:
			return 0x07, nil
		}
		return 0, fmt.Errorf("%w: %s", light.ErrInvalidPattern, p)
	}
	switch p {
	case light.TrafficLights:
		return 0x01, nil
	case light.Police:
		return 0x05, nil
	case light.Rainbow:
		return 0x08, nil
	case light.Sea:
		return 0x09, nil
	case light.WhiteWave:
		return 0x0A, nil
	case light.Synthetic:
		return 0x0B, nil
	}
	return 0, fmt.Errorf("%w: %s", light.ErrInvalidPattern, p)
}
