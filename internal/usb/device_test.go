package usb

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dokzlo13/luxctl/internal/light"
)

// fakeWriter records frames and simulates the bytes-written count the
// HID transport reports.
type fakeWriter struct {
	frames [][]byte
	short  int
	err    error
}

func (w *fakeWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	w.frames = append(w.frames, append([]byte(nil), p...))
	if w.short > 0 {
		return w.short, nil
	}
	return len(p), nil
}

func newTestDevice() (*Device, *fakeWriter) {
	w := &fakeWriter{}
	return NewDevice(w, "Luxafor::Flag::001"), w
}

func TestSetSolid_RedAllLEDs(t *testing.T) {
	d, w := newTestDevice()
	require.NoError(t, d.SetSolid(context.Background(), light.Red, false))
	require.Len(t, w.frames, 1)
	assert.Equal(t, []byte{0x00, 0x01, 0xFF, 0xFF, 0x00, 0x00}, w.frames[0])
}

func TestSetSolid_BlinkIsStrobe(t *testing.T) {
	d, w := newTestDevice()
	require.NoError(t, d.SetSolid(context.Background(), light.Blue, true))
	require.Len(t, w.frames, 1)
	assert.Equal(t, []byte{0x00, 0x03, 0xFF, 0x00, 0x00, 0xFF, 10, 0x00, 255}, w.frames[0])
}

func TestTurnOff(t *testing.T) {
	d, w := newTestDevice()
	require.NoError(t, d.TurnOff(context.Background()))
	require.Len(t, w.frames, 1)
	assert.Equal(t, []byte{0x00, 0x00, 0x4F}, w.frames[0])
}

func TestSetFade(t *testing.T) {
	d, w := newTestDevice()
	require.NoError(t, d.SetFade(context.Background(), light.RGB(1, 2, 3), 60))
	require.Len(t, w.frames, 1)
	assert.Equal(t, []byte{0x00, 0x02, 0xFF, 1, 2, 3, 60}, w.frames[0])
}

func TestSetStrobe(t *testing.T) {
	d, w := newTestDevice()
	require.NoError(t, d.SetStrobe(context.Background(), light.Green, 10, 255))
	require.Len(t, w.frames, 1)
	assert.Equal(t, []byte{0x00, 0x03, 0xFF, 0x00, 0xFF, 0x00, 10, 0x00, 255}, w.frames[0])
}

func TestSetWave(t *testing.T) {
	d, w := newTestDevice()
	require.NoError(t, d.SetWave(context.Background(), light.RGB(7, 8, 9), light.WaveLong, 20, 3))
	require.Len(t, w.frames, 1)
	// speed and repeat are swapped relative to the strobe frame
	assert.Equal(t, []byte{0x00, 0x04, 0x02, 7, 8, 9, 0x00, 3, 20}, w.frames[0])
}

func TestSetPattern_Police(t *testing.T) {
	d, w := newTestDevice()
	require.NoError(t, d.SetPattern(context.Background(), light.Police, 255))
	require.Len(t, w.frames, 1)
	assert.Equal(t, []byte{0x00, 0x06, 0x05, 0xFF}, w.frames[0])
}

func TestPatternCodes(t *testing.T) {
	random := func(n uint8) light.Pattern {
		p, err := light.Random(n)
		require.NoError(t, err)
		return p
	}
	tests := []struct {
		pattern light.Pattern
		want    byte
	}{
		{light.TrafficLights, 0x01},
		{random(1), 0x02},
		{random(2), 0x03},
		{random(3), 0x04},
		{light.Police, 0x05},
		{random(4), 0x06},
		{random(5), 0x07},
		{light.Rainbow, 0x08},
		{light.Sea, 0x09},
		{light.WhiteWave, 0x0A},
		{light.Synthetic, 0x0B},
	}
	for _, tt := range tests {
		code, err := patternCode(tt.pattern)
		require.NoError(t, err, tt.pattern.String())
		assert.Equal(t, tt.want, code, tt.pattern.String())
	}

	_, err := patternCode(light.Pattern{})
	assert.ErrorIs(t, err, light.ErrInvalidPattern)
}

func TestLEDWireCodes(t *testing.T) {
	// Single LEDs map through the physical front/back layout, not 1:1.
	tests := []struct {
		target light.LEDTarget
		want   byte
	}{
		{light.LED1, 0x03},
		{light.LED2, 0x02},
		{light.LED3, 0x01},
		{light.LED4, 0x06},
		{light.LED5, 0x05},
		{light.LED6, 0x04},
		{light.LEDAllFront, 0x42},
		{light.LEDAllBack, 0x41},
		{light.LEDAll, 0xFF},
	}
	for _, tt := range tests {
		code, err := ledCode(tt.target)
		require.NoError(t, err, tt.target.String())
		assert.Equal(t, tt.want, code, tt.target.String())
	}

	_, err := ledCode(light.LEDTarget(0))
	assert.ErrorIs(t, err, light.ErrInvalidLED)
}

func TestSetTargetLED_Sticky(t *testing.T) {
	ctx := context.Background()
	d, w := newTestDevice()

	require.NoError(t, d.SetTargetLED(light.LED1))
	require.NoError(t, d.SetSolid(ctx, light.Red, false))
	require.NoError(t, d.SetFade(ctx, light.Red, 5))

	require.NoError(t, d.SetTargetLED(light.LEDAllBack))
	require.NoError(t, d.SetStrobe(ctx, light.Red, 1, 2))

	require.Len(t, w.frames, 3)
	assert.Equal(t, byte(0x03), w.frames[0][2])
	assert.Equal(t, byte(0x03), w.frames[1][2])
	assert.Equal(t, byte(0x41), w.frames[2][2])
}

func TestWrite_ShortWrite(t *testing.T) {
	d, w := newTestDevice()
	w.short = 2
	err := d.SetSolid(context.Background(), light.Red, false)
	assert.ErrorIs(t, err, light.ErrInvalidRequest)
}

func TestWrite_TransportError(t *testing.T) {
	d, w := newTestDevice()
	w.err = errors.New("device unplugged")
	err := d.TurnOff(context.Background())
	assert.ErrorIs(t, err, light.ErrInvalidRequest)
	assert.NotErrorIs(t, err, light.ErrUnsupportedCommand)
}

func TestParseErrorsBeforeIO(t *testing.T) {
	d, w := newTestDevice()
	err := d.SetPattern(context.Background(), light.Pattern{}, 1)
	assert.ErrorIs(t, err, light.ErrInvalidPattern)
	assert.Empty(t, w.frames)
}

func TestID(t *testing.T) {
	d, _ := newTestDevice()
	assert.Equal(t, light.DeviceID("Luxafor::Flag::001"), d.ID())
}
