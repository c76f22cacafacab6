package light

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLEDTarget(t *testing.T) {
	tests := []struct {
		token string
		want  LEDTarget
	}{
		{"all", LEDAll},
		{"front", LEDAllFront},
		{"back", LEDAllBack},
		{"ALL", LEDAll},
		{"1", LED1},
		{"2", LED2},
		{"3", LED3},
		{"4", LED4},
		{"5", LED5},
		{"6", LED6},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseLEDTarget(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLEDTarget_Invalid(t *testing.T) {
	for _, token := range []string{"", "0", "7", "42", "-1", "top"} {
		_, err := ParseLEDTarget(token)
		assert.ErrorIs(t, err, ErrInvalidLED, token)
	}
}

func TestLEDNumber_Bounds(t *testing.T) {
	for n := uint8(1); n <= 6; n++ {
		got, err := LEDNumber(n)
		require.NoError(t, err)
		assert.Equal(t, LEDTarget(n), got)
	}
	_, err := LEDNumber(0)
	assert.ErrorIs(t, err, ErrInvalidLED)
	_, err = LEDNumber(7)
	assert.ErrorIs(t, err, ErrInvalidLED)
}

func TestLEDTargetString(t *testing.T) {
	assert.Equal(t, "all", LEDAll.String())
	assert.Equal(t, "front", LEDAllFront.String())
	assert.Equal(t, "back", LEDAllBack.String())
	for n := 1; n <= 6; n++ {
		target, err := ParseLEDTarget(strconv.Itoa(n))
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(n), target.String())
	}
}

