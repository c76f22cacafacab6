package light

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern_Base(t *testing.T) {
	tests := []struct {
		token string
		want  Pattern
	}{
		{"police", Police},
		{"traffic lights", TrafficLights},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			p, err := ParsePattern(tt.token, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
			assert.Equal(t, tt.token, p.String())
		})
	}
}

func TestParsePattern_Random(t *testing.T) {
	p, err := ParsePattern("random 3", false)
	require.NoError(t, err)
	assert.Equal(t, "random 3", p.String())

	n, ok := p.RandomIndex()
	assert.True(t, ok)
	assert.Equal(t, uint8(3), n)

	for n := uint8(1); n <= 5; n++ {
		want, err := Random(n)
		require.NoError(t, err)
		got, err := ParsePattern(want.String(), false)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParsePattern_RandomOutOfRange(t *testing.T) {
	for _, token := range []string{"random 0", "random 6", "random 255", "random x"} {
		_, err := ParsePattern(token, false)
		assert.ErrorIs(t, err, ErrInvalidPattern, token)
	}
	_, err := Random(0)
	assert.ErrorIs(t, err, ErrInvalidPattern)
	_, err = Random(6)
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestParsePattern_CaseInsensitive(t *testing.T) {
	p, err := ParsePattern("POLICE", false)
	require.NoError(t, err)
	assert.Equal(t, Police, p)

	p, err = ParsePattern("Traffic Lights", false)
	require.NoError(t, err)
	assert.Equal(t, TrafficLights, p)
}

func TestParsePattern_ExtendedGated(t *testing.T) {
	extended := map[string]Pattern{
		"rainbow":    Rainbow,
		"sea":        Sea,
		"white wave": WhiteWave,
		"synthetic":  Synthetic,
	}
	for token, want := range extended {
		_, err := ParsePattern(token, false)
		assert.ErrorIs(t, err, ErrInvalidPattern, token)

		p, err := ParsePattern(token, true)
		require.NoError(t, err)
		assert.Equal(t, want, p)
		assert.Equal(t, token, p.String())
	}
}

func TestParsePattern_Unknown(t *testing.T) {
	for _, token := range []string{"", "disco", "random", "randomness 1"} {
		_, err := ParsePattern(token, true)
		assert.ErrorIs(t, err, ErrInvalidPattern, token)
	}
}
