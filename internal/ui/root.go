package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/huessenbergnetz/hbnsc/internal/config"
	"github.com/huessenbergnetz/hbnsc/internal/icons"
	"github.com/huessenbergnetz/hbnsc/internal/licenses"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	registry     *icons.Registry
	catalog      *licenses.Catalog
	settings     *config.Settings
	localization *Localization
	log          zerolog.Logger

	heading     *widget.Label
	dirLabel    *widget.Label
	licenseList *LicenseList
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, registry *icons.Registry, catalog *licenses.Catalog, logger zerolog.Logger) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		registry:     registry,
		catalog:      catalog,
		settings:     settings,
		localization: localization,
		log:          logger,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	logo := newIconImage(ui.registry, IconIDLogo, LogoSize, theme.ComputerIcon())
	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.heading = widget.NewLabel(ui.localization.GetText(KeyLicenses))
	ui.heading.TextStyle = fyne.TextStyle{Bold: true}

	ui.dirLabel = widget.NewLabel(ui.iconDirectoryText())
	ui.dirLabel.Truncation = fyne.TextTruncateEllipsis

	topPanel := container.NewBorder(nil, nil, logo, settingsBtn, ui.heading)
	top := container.NewVBox(topPanel, widget.NewSeparator())

	var center fyne.CanvasObject
	if ui.catalog.Count() == 0 {
		center = container.NewCenter(widget.NewLabel(ui.localization.GetText(KeyNoLicenses)))
	} else {
		ui.licenseList = NewLicenseList(ui.catalog, ui.localization, ui.app.OpenURL)
		ui.licenseList.SetErrorHandler(ui.showError)
		center = ui.licenseList.Widget()
	}

	content := container.NewBorder(top, ui.dirLabel, nil, nil, center)
	if isMobile() {
		content = container.NewPadded(content)
	}
	ui.window.SetContent(content)

	ui.log.Debug().Int("licenses", ui.catalog.Count()).Msg("UI setup completed")
}

// ReloadIcons rebuilds the window content after the icon provider changed.
func (ui *RootUI) ReloadIcons() {
	ui.setupUI()
}

// iconDirectoryText describes where icons are loaded from.
func (ui *RootUI) iconDirectoryText() string {
	p, ok := ui.registry.Provider(icons.DefaultName)
	if !ok {
		return DashPlaceholder
	}
	return fmt.Sprintf(ui.localization.GetText(KeyIconDirectoryInfo), p.Dir())
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.heading.SetText(ui.localization.GetText(KeyLicenses))
	ui.dirLabel.SetText(ui.iconDirectoryText())

	if ui.licenseList != nil {
		ui.licenseList.Widget().Refresh()
	}
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window).Show()
}

// showError reports a failure to open a link
func (ui *RootUI) showError(err error) {
	ui.log.Warn().Err(err).Msg("failed to open link")
	dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningURL), err), ui.window)
}
