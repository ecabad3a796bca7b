package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"rotate": ModeRotate,
		"Roll":   ModeRoll,
		"pan":    ModePan,
		"move":   ModePan,
		" zoom ": ModeZoom,
		"NONE":   ModeNone,
	}
	for name, want := range tests {
		got, err := ParseMode(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseMode("spin")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "rotate", ModeRotate.String())
	assert.Equal(t, "zoom", ModeZoom.String())
	assert.Equal(t, "Mode(9)", Mode(9).String())
}

func TestModes(t *testing.T) {
	modes := Modes()

	assert.Equal(t, []Mode{ModeRotate, ModeRoll, ModePan, ModeZoom}, modes)
	assert.NotContains(t, modes, ModeNone)
}
