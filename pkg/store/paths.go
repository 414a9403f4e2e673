package store

import (
	"os"
	"path/filepath"
	"runtime"
)

// Environment variables read by the store.
const (
	// EnvMocksFile redirects the catalog. It may be a glob.
	EnvMocksFile = "MOCKS_FILE"
	// EnvHome overrides the data directory.
	EnvHome = "MOCKAPI_HOME"
)

// File names inside the data directory.
const (
	MocksFileName    = "mocks.json"
	SettingsFileName = "settings.json"
)

// Paths locates the installed catalog and settings.
type Paths struct {
	Dir      string
	Mocks    string
	Settings string
}

// PathsIn returns the standard file locations inside dir.
func PathsIn(dir string) Paths {
	return Paths{
		Dir:      dir,
		Mocks:    filepath.Join(dir, MocksFileName),
		Settings: filepath.Join(dir, SettingsFileName),
	}
}

// DefaultPaths returns PathsIn(DefaultDir()).
func DefaultPaths() Paths {
	return PathsIn(DefaultDir())
}

// DefaultDir returns the data directory: $MOCKAPI_HOME when set, otherwise
// the per-user config directory following the XDG spec.
func DefaultDir() string {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "mockapi")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".mockapi")
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Preferences", "mockapi")
	}
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "mockapi")
		}
		return filepath.Join(home, "AppData", "Roaming", "mockapi")
	}
	return filepath.Join(home, ".config", "mockapi")
}
