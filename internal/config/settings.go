package config

import (
	"strings"

	"fyne.io/fyne/v2"
	"github.com/huessenbergnetz/hbnsc/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyIconsDir       = "icons_directory"
	KeyLargeAvailable = "large_icons_available"
	KeyLanguage       = "app_language"
	KeyDebugLogging   = "debug_logging"
)

// Default values
const (
	DefaultLargeAvailable = false
	DefaultLanguage       = "system"
	DefaultDebugLogging   = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetIconsDirectory returns the configured icon set root.
// An unset value resolves to the platform default and is stored.
func (s *Settings) GetIconsDirectory() string {
	dir := strings.TrimSpace(s.app.Preferences().String(KeyIconsDir))
	if dir == "" {
		defaultDir := platform.DefaultIconsDir()
		s.SetIconsDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetIconsDirectory sets the icon set root
func (s *Settings) SetIconsDirectory(dir string) {
	s.app.Preferences().SetString(KeyIconsDir, strings.TrimSpace(dir))
}

// GetLargeIconsAvailable returns whether the icon set ships "-large" variants
func (s *Settings) GetLargeIconsAvailable() bool {
	return s.app.Preferences().BoolWithFallback(KeyLargeAvailable, DefaultLargeAvailable)
}

// SetLargeIconsAvailable sets whether the icon set ships "-large" variants
func (s *Settings) SetLargeIconsAvailable(available bool) {
	s.app.Preferences().SetBool(KeyLargeAvailable, available)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"de":     "Deutsch",
	}
}

// GetDebugLogging returns whether debug log output is enabled
func (s *Settings) GetDebugLogging() bool {
	return s.app.Preferences().BoolWithFallback(KeyDebugLogging, DefaultDebugLogging)
}

// SetDebugLogging enables or disables debug log output
func (s *Settings) SetDebugLogging(enabled bool) {
	s.app.Preferences().SetBool(KeyDebugLogging, enabled)
}
