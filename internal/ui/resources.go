package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"

	"github.com/huessenbergnetz/hbnsc/internal/icons"
)

// LoadLogoResource returns the application logo from the bundled icon set.
func LoadLogoResource(registry *icons.Registry) (fyne.Resource, bool) {
	res := registry.Resource(icons.URL(icons.DefaultName, IconIDLogo), image.Point{})
	return res, res != nil
}

// newIconImage renders an icon id, falling back to the given theme resource.
func newIconImage(registry *icons.Registry, id string, size float32, fallback fyne.Resource) *canvas.Image {
	res := registry.Resource(icons.URL(icons.DefaultName, id), image.Point{})
	if res == nil {
		res = fallback
	}
	if res == nil {
		res = theme.BrokenImageIcon()
	}
	img := canvas.NewImageFromResource(res)
	img.SetMinSize(fyne.NewSize(size, size))
	img.FillMode = canvas.ImageFillContain
	return img
}
