package config

import (
    "errors"
    "os"
    "path/filepath"
    "strings"
)

// Dir returns the swim config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/swim; on macOS
// to ~/Library/Application Support/swim.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
    base, err := os.UserConfigDir()
    if err != nil || strings.TrimSpace(base) == "" {
        if home, herr := os.UserHomeDir(); herr == nil {
            base = home
        } else {
            return "", errors.New("cannot determine config directory")
        }
    }
    return filepath.Join(base, "swim"), nil
}

// Path returns the config file location.
func Path() (string, error) {
    dir, err := Dir()
    if err != nil {
        return "", err
    }
    return filepath.Join(dir, "config.yaml"), nil
}

// inDir resolves p against the config directory unless it is absolute.
func inDir(p string) (string, error) {
    if p == "" || filepath.IsAbs(p) {
        return p, nil
    }
    dir, err := Dir()
    if err != nil {
        return "", err
    }
    return filepath.Join(dir, p), nil
}
