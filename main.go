package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"

	"github.com/huessenbergnetz/hbnsc/internal/config"
	"github.com/huessenbergnetz/hbnsc/internal/icons"
	"github.com/huessenbergnetz/hbnsc/internal/licenses"
	"github.com/huessenbergnetz/hbnsc/internal/logging"
	"github.com/huessenbergnetz/hbnsc/internal/platform"
	"github.com/huessenbergnetz/hbnsc/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "de.huessenbergnetz.hbnsc"
	AppName = "HBN Components"
)

func main() {
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	logging.SetDebug(settings.GetDebugLogging())
	logger := logging.NewDefault("app")
	logger.Info().Str("version", version).Msgf("%s starting", AppName)

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	iconLogger := logging.NewDefault("icons")
	registry := icons.NewRegistry()
	setup := ui.NewIconSetup(registry, icons.DefaultName, icons.Options{
		Scales:         icons.DefaultScales,
		Dir:            settings.GetIconsDirectory(),
		LargeAvailable: settings.GetLargeIconsAvailable(),
		DefaultDir:     platform.DefaultIconsDir(),
		Logger:         &iconLogger,
	})
	setup.Apply(platform.DetectEnvironment(myWindow.Canvas()))

	iconTheme := ui.NewIconTheme(theme.DefaultTheme(), registry, icons.DefaultName, myApp.Settings().ThemeVariant())
	myApp.Settings().SetTheme(iconTheme)
	if logo, ok := ui.LoadLogoResource(registry); ok {
		myApp.SetIcon(logo)
	}

	rootUI := ui.NewRootUI(myWindow, myApp, registry, licenses.NewDefaultCatalog(), logger)

	// The canvas only reports the final scale and size once the window is shown.
	myApp.Lifecycle().SetOnStarted(func() {
		if !setup.Apply(platform.DetectEnvironment(myWindow.Canvas())) {
			return
		}
		logger.Debug().Float64("scale", setup.Environment().PixelRatio).
			Str("size", setup.Environment().SizeCategory.String()).
			Msg("screen environment changed, reloading icons")
		myApp.Settings().SetTheme(iconTheme)
		if logo, ok := ui.LoadLogoResource(registry); ok {
			myApp.SetIcon(logo)
		}
		rootUI.ReloadIcons()
	})

	myWindow.ShowAndRun()
}
