package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestFormTheme_Sizes(t *testing.T) {
	th := NewFormTheme()

	assert.Equal(t, float32(4), th.Size(theme.SizeNamePadding))
	assert.Equal(t, float32(13), th.Size(theme.SizeNameText))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameScrollBar), th.Size(theme.SizeNameScrollBar))
}

func TestFormTheme_StatusColorsFollowVariant(t *testing.T) {
	th := NewFormTheme()

	for _, name := range []fyne.ThemeColorName{theme.ColorNameSuccess, theme.ColorNameWarning, theme.ColorNameError} {
		light := th.Color(name, theme.VariantLight)
		dark := th.Color(name, theme.VariantDark)
		assert.NotEqual(t, light, dark, string(name))
		assert.NotEqual(t, theme.DefaultTheme().Color(name, theme.VariantLight), light, string(name))
	}

	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantDark),
		th.Color(theme.ColorNameBackground, theme.VariantDark))
}
