package ui

import (
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/huessenbergnetz/hbnsc/internal/icons"
)

// DefaultThemeIcons maps Fyne theme icons to ids of the bundled icon set.
var DefaultThemeIcons = map[fyne.ThemeIconName]string{
	theme.IconNameSettings:     IconIDSettings,
	theme.IconNameInfo:         IconIDInfo,
	theme.IconNameHelp:         IconIDInfo,
	theme.IconNameNavigateBack: IconIDBack,
	theme.IconNameMailForward:  IconIDLink,
}

// IconTheme serves mapped theme icons from an icon provider, tinted with the
// foreground color. Everything else comes from the base theme.
type IconTheme struct {
	base     fyne.Theme
	registry *icons.Registry
	provider string
	variant  func() fyne.ThemeVariant
	icons    map[fyne.ThemeIconName]string
	size     image.Point
}

// NewIconTheme wraps base. A nil base selects the default theme.
// Icons follow the variant of the running app; fallback is used when there is none.
func NewIconTheme(base fyne.Theme, registry *icons.Registry, provider string, fallback fyne.ThemeVariant) *IconTheme {
	if base == nil {
		base = theme.DefaultTheme()
	}
	return &IconTheme{
		base:     base,
		registry: registry,
		provider: provider,
		variant:  currentVariant(fallback),
		icons:    DefaultThemeIcons,
	}
}

func currentVariant(fallback fyne.ThemeVariant) func() fyne.ThemeVariant {
	return func() fyne.ThemeVariant {
		if a := fyne.CurrentApp(); a != nil && a.Settings() != nil {
			return a.Settings().ThemeVariant()
		}
		return fallback
	}
}

// SetVariantSource replaces the lookup of the active theme variant.
func (t *IconTheme) SetVariantSource(variant func() fyne.ThemeVariant) {
	t.variant = variant
}

// SetIcons replaces the theme icon mapping.
func (t *IconTheme) SetIcons(mapping map[fyne.ThemeIconName]string) {
	t.icons = mapping
}

// Color returns theme colors
func (t *IconTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.base.Color(name, variant)
}

// Font returns theme fonts
func (t *IconTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Size returns theme sizes
func (t *IconTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}

// Icon returns the provider icon for mapped names, tinted like text.
func (t *IconTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	if id, ok := t.icons[name]; ok && t.registry != nil {
		fg := t.base.Color(theme.ColorNameForeground, t.variant())
		url := icons.URL(t.provider, id+"?"+ColorSpec(fg))
		if res := t.registry.Resource(url, t.size); res != nil {
			return res
		}
	}
	return t.base.Icon(name)
}

// ColorSpec formats c as #AARRGGBB for icon ids.
func ColorSpec(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.A, n.R, n.G, n.B)
}
