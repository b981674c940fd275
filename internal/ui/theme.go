package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SkyTheme defines a dark, photo-friendly theme with compact paddings so the
// image gets as much of a small screen as possible
type SkyTheme struct{}

// NewSkyTheme creates a new sky theme
func NewSkyTheme() fyne.Theme {
	return &SkyTheme{}
}

// Color returns theme colors
func (t *SkyTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		// Always dark: photos read better against near-black
		return color.RGBA{R: 10, G: 12, B: 20, A: 255}
	case theme.ColorNameForeground:
		return color.RGBA{R: 235, G: 238, B: 245, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 64, G: 132, B: 214, A: 255} // Telescope blue
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameOverlayBackground:
		return color.RGBA{R: 18, G: 21, B: 32, A: 240}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *SkyTheme) Font(style fyne.TextStyle) fyne.Resource {
	// Use default theme fonts
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *SkyTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	// Use default theme icons
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *SkyTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 3
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 17
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameCaptionText:
		return 10
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
