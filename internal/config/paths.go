package config

import (
	"os"
	"path/filepath"

	"gofi/internal/menu"
)

const appDir = "gofi"

// ConfigDir is <user-config-dir>/gofi.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDir), nil
}

// ConfPath resolves the config file. An explicit path must exist; otherwise
// the default location is tried and ErrMissingFile reported when absent.
func ConfPath(explicit string) (string, error) {
	return resolvePath(explicit, "config")
}

// StylePath resolves the style sheet the same way as ConfPath.
func StylePath(explicit string) (string, error) {
	return resolvePath(explicit, "style.css")
}

// KeysPath is the custom key-binding file location. Existence is not
// required; a missing file simply means no custom bindings.
func KeysPath() string {
	dir, err := ConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "keys.yml")
}

// CachePath is <user-cache-dir>/gofi/<mode>_cache. The file need not exist.
func CachePath(mode string) (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDir, mode+"_cache"), nil
}

func resolvePath(explicit, name string) (string, error) {
	if explicit != "" {
		p := ExpandPath(explicit)
		if _, err := os.Stat(p); err != nil {
			return "", menu.ErrMissingFile
		}
		return p, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", menu.ErrMissingFile
	}
	p := filepath.Join(dir, name)
	if _, err := os.Stat(p); err != nil {
		return "", menu.ErrMissingFile
	}
	return p, nil
}
