package platform

import (
	"fyne.io/fyne/v2"
)

// SizeCategory is a coarse classification of the screen size.
type SizeCategory int

const (
	SizeSmall SizeCategory = iota
	SizeMedium
	SizeLarge
	SizeExtraLarge
)

// Size category thresholds on the shorter screen side, in logical units.
const (
	MediumMinSide     float32 = 480
	LargeMinSide      float32 = 720
	ExtraLargeMinSide float32 = 960
)

// String returns the category name.
func (sc SizeCategory) String() string {
	switch sc {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	case SizeExtraLarge:
		return "extra-large"
	default:
		return "unknown"
	}
}

// CategoryForSize classifies a screen by its shorter side.
func CategoryForSize(size fyne.Size) SizeCategory {
	side := size.Width
	if size.Height < side {
		side = size.Height
	}

	switch {
	case side >= ExtraLargeMinSide:
		return SizeExtraLarge
	case side >= LargeMinSide:
		return SizeLarge
	case side >= MediumMinSide:
		return SizeMedium
	default:
		return SizeSmall
	}
}

// Environment describes the display icons are rendered for.
type Environment struct {
	PixelRatio   float64
	SizeCategory SizeCategory
}

// IsLarge reports whether the screen is at least SizeLarge.
func (e Environment) IsLarge() bool {
	return e.SizeCategory >= SizeLarge
}

// Screen is the part of fyne.Canvas the environment is read from.
type Screen interface {
	Scale() float32
	Size() fyne.Size
}

// DetectEnvironment reads pixel ratio and size category from a canvas.
// A non-positive scale is reported as 1.
func DetectEnvironment(s Screen) Environment {
	ratio := float64(s.Scale())
	if ratio <= 0 {
		ratio = 1
	}
	return Environment{
		PixelRatio:   ratio,
		SizeCategory: CategoryForSize(s.Size()),
	}
}
