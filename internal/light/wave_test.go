package light

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWaveStyle(t *testing.T) {
	tests := []struct {
		token string
		want  WaveStyle
	}{
		{"short", WaveShort},
		{"long", WaveLong},
		{"overlapping short", WaveOverlappingShort},
		{"overlapping long", WaveOverlappingLong},
	}
	for _, tt := range tests {
		got, err := ParseWaveStyle(tt.token)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.token, got.String())
	}
}

func TestParseWaveStyle_CaseInsensitive(t *testing.T) {
	got, err := ParseWaveStyle("Overlapping Short")
	require.NoError(t, err)
	assert.Equal(t, WaveOverlappingShort, got)
}

func TestParseWaveStyle_Invalid(t *testing.T) {
	for _, token := range []string{"", "ripple", "overlapping"} {
		_, err := ParseWaveStyle(token)
		assert.ErrorIs(t, err, ErrInvalidPattern, token)
	}
}
