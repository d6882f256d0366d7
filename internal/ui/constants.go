package ui

import "fyne.io/fyne/v2"

// Icon ids of the bundled icon set
const (
	IconIDLogo     = "hbnsc"
	IconIDSettings = "settings"
	IconIDInfo     = "info"
	IconIDLink     = "link"
	IconIDBack     = "back"
)

// Text fragments
const (
	DashPlaceholder = "—"
)

// Layout sizing
const (
	LogoSize float32 = 32

	WindowWidth  float32 = 480
	WindowHeight float32 = 640
)

// isMobile reports whether the app runs on a phone or tablet.
func isMobile() bool {
	return fyne.CurrentDevice().IsMobile()
}
