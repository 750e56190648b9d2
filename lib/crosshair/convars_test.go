package crosshair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConVarsCoversEveryAttribute(t *testing.T) {
	convars := Default().ConVars()
	require.Len(t, convars, 21)

	seen := make(map[string]bool, len(convars))
	for _, cv := range convars {
		assert.False(t, seen[cv.Name], "duplicate convar %s", cv.Name)
		seen[cv.Name] = true
	}
}

func TestConVarsValues(t *testing.T) {
	p := Profile{
		Style:            StyleClassicStatic,
		Color:            ColorCustom,
		Red:              50,
		Green:            250,
		Blue:             50,
		Alpha:            200,
		AlphaEnabled:     true,
		Size:             2.5,
		Thickness:        0.5,
		Gap:              -3.2,
		OutlineEnabled:   true,
		OutlineThickness: 1,
		CenterDot:        true,
	}

	values := make(map[string]string)
	for _, cv := range p.ConVars() {
		values[cv.Name] = cv.Value
	}

	assert.Equal(t, "4", values[ConVarStyle])
	assert.Equal(t, "5", values[ConVarColor])
	assert.Equal(t, "50", values[ConVarColorR])
	assert.Equal(t, "250", values[ConVarColorG])
	assert.Equal(t, "200", values[ConVarAlpha])
	assert.Equal(t, "2.5", values[ConVarSize])
	assert.Equal(t, "0.5", values[ConVarThickness])
	assert.Equal(t, "-3.2", values[ConVarGap])
	assert.Equal(t, "true", values[ConVarDot])
	assert.Equal(t, "false", values[ConVarTStyle])
	assert.Equal(t, "true", values[ConVarUseAlpha])
}
