package platform

import (
	"os"
	"path/filepath"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// IconsDirName is the asset folder next to the application binary.
const IconsDirName = "icons"

// IconsDirEnv overrides the icon directory at runtime.
const IconsDirEnv = "HBNSC_ICONS_DIR"

// DefaultIconsDir returns the icon directory of the installed application:
// $HBNSC_ICONS_DIR if set, otherwise "icons" next to the executable.
func DefaultIconsDir() string {
	if dir := os.Getenv(IconsDirEnv); dir != "" {
		return dir
	}

	exePath, err := os.Executable()
	if err != nil {
		return IconsDirName
	}
	if resolved, err := filepath.EvalSymlinks(exePath); err == nil {
		exePath = resolved
	}
	return filepath.ToSlash(filepath.Join(filepath.Dir(exePath), IconsDirName))
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
