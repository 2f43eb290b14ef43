// Package prefs persists UI preferences in ~/.config/gravplot/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/gravplot/internal/config"
)

// Prefs holds what the user toggles from inside the UI.
type Prefs struct {
	Theme     string `toml:"theme"`
	ShowStats bool   `toml:"show_stats"`
}

const (
	defaultPrefsPath = "~/.config/gravplot/prefs.toml"
	defaultTheme     = "Nightfox"
)

// Default returns the preferences used on first launch.
func Default() Prefs {
	return Prefs{Theme: defaultTheme, ShowStats: true}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path. Any problem with the file degrades to
// Default(); preferences never stop the program from starting.
func Load(path string) Prefs {
	p := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		return p
	}
	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return p
	}

	// Decode into a copy so a half-parsed file cannot leak partial values.
	loaded := p
	if err := toml.Unmarshal(bytes, &loaded); err != nil {
		return p
	}
	if strings.TrimSpace(loaded.Theme) == "" {
		loaded.Theme = defaultTheme
	}
	return loaded
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.ExpandPath(defaultPrefsPath)
	}
	return config.ExpandPath(path)
}
