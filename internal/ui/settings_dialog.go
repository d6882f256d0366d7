package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/huessenbergnetz/hbnsc/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	iconsDirEntry  *widget.Entry
	largeCheck     *widget.Check
	debugCheck     *widget.Check
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.iconsDirEntry = widget.NewEntry()
	sd.iconsDirEntry.SetPlaceHolder(text(KeyIconsDirectory))

	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	iconsDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.iconsDirEntry)

	sd.largeCheck = widget.NewCheck(text(KeyLargeIcons), nil)
	sd.debugCheck = widget.NewCheck(text(KeyDebugLogging), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyIconsDirectory)+":"),
		iconsDirRow,
		sd.largeCheck,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
		sd.debugCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(460, 360))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.iconsDirEntry.SetText(sd.settings.GetIconsDirectory())
	sd.largeCheck.SetChecked(sd.settings.GetLargeIconsAvailable())
	sd.debugCheck.SetChecked(sd.settings.GetDebugLogging())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.iconsDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// An empty directory resets to the platform default
	sd.settings.SetIconsDirectory(sd.iconsDirEntry.Text)
	sd.settings.SetLargeIconsAvailable(sd.largeCheck.Checked)
	sd.settings.SetDebugLogging(sd.debugCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved)+"\n"+sd.localization.GetText(KeyRestartRequired),
		sd.window,
	)
}
