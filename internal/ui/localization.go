package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyAbout             = "about"
	KeyLicenses          = "licenses"
	KeyAuthor            = "author"
	KeyVersion           = "version"
	KeyLicense           = "license"
	KeyWebsite           = "website"
	KeyNoLicenses        = "no_licenses"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyIconsDirectory    = "icons_directory"
	KeyLargeIcons        = "large_icons"
	KeyDebugLogging      = "debug_logging"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyRestartRequired   = "restart_required"
	KeyErrorOpeningURL   = "error_opening_url"
	KeyIconDirectoryInfo = "icon_directory_info"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"de": "Deutsch",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "HBN Components",
		KeyAbout:             "About",
		KeyLicenses:          "Third-party licenses",
		KeyAuthor:            "Author",
		KeyVersion:           "Version",
		KeyLicense:           "License",
		KeyWebsite:           "Website",
		KeyNoLicenses:        "No third-party components",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyIconsDirectory:    "Icons Directory",
		KeyLargeIcons:        "Icon set has large screen variants",
		KeyDebugLogging:      "Debug logging",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyRestartRequired:   "Icon changes take effect after a restart.",
		KeyErrorOpeningURL:   "Error opening link",
		KeyIconDirectoryInfo: "Loading icons from %s",
	}

	// German texts
	l.texts["de"] = map[string]string{
		KeyAppTitle:          "HBN Komponenten",
		KeyAbout:             "Über",
		KeyLicenses:          "Lizenzen von Drittanbietern",
		KeyAuthor:            "Autor",
		KeyVersion:           "Version",
		KeyLicense:           "Lizenz",
		KeyWebsite:           "Webseite",
		KeyNoLicenses:        "Keine Komponenten von Drittanbietern",
		KeySettings:          "Einstellungen",
		KeyFile:              "Datei",
		KeyLanguage:          "Sprache",
		KeyIconsDirectory:    "Symbolverzeichnis",
		KeyLargeIcons:        "Symbolsatz hat Varianten für große Bildschirme",
		KeyDebugLogging:      "Debug-Protokollierung",
		KeySave:              "Speichern",
		KeyCancel:            "Abbrechen",
		KeyBrowse:            "Durchsuchen",
		KeySettingsSaved:     "Einstellungen erfolgreich gespeichert!",
		KeyRestartRequired:   "Änderungen an Symbolen werden nach einem Neustart wirksam.",
		KeyErrorOpeningURL:   "Fehler beim Öffnen des Links",
		KeyIconDirectoryInfo: "Symbole werden aus %s geladen",
	}
}
