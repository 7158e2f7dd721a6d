package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// FormTheme tightens the default theme around the single download form and
// gives each status line level its own color
type FormTheme struct {
	fyne.Theme
}

// NewFormTheme wraps the default theme
func NewFormTheme() fyne.Theme {
	return &FormTheme{Theme: theme.DefaultTheme()}
}

var formSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:      4,
	theme.SizeNameInnerPadding: 7,
	theme.SizeNameText:         13,
	theme.SizeNameCaptionText:  11,
}

// statusColors holds the light and dark shade of each status level
var statusColors = map[fyne.ThemeColorName][2]color.NRGBA{
	theme.ColorNameSuccess: {{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}, {R: 0x66, G: 0xbb, B: 0x6a, A: 0xff}},
	theme.ColorNameWarning: {{R: 0xe6, G: 0x51, B: 0x00, A: 0xff}, {R: 0xff, G: 0xb7, B: 0x4d, A: 0xff}},
	theme.ColorNameError:   {{R: 0xc6, G: 0x28, B: 0x28, A: 0xff}, {R: 0xef, G: 0x53, B: 0x50, A: 0xff}},
}

func (t *FormTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if shades, ok := statusColors[name]; ok {
		if variant == theme.VariantDark {
			return shades[1]
		}
		return shades[0]
	}
	return t.Theme.Color(name, variant)
}

func (t *FormTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := formSizes[name]; ok {
		return size
	}
	return t.Theme.Size(name)
}
