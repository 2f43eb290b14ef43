package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the runtime settings read from config.toml.
type Config struct {
	RedrawInterval time.Duration
	SnapshotDir    string
	LogFile        string // empty discards logs in the terminal UI
}

const (
	defaultConfigPath     = "~/.config/gravplot/config.toml"
	defaultSnapshotDir    = "~/.local/share/gravplot/snapshots"
	defaultRedrawInterval = 100 * time.Millisecond
	minRedrawInterval     = 10 * time.Millisecond
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		RedrawInterval: defaultRedrawInterval,
		SnapshotDir:    mustExpand(defaultSnapshotDir),
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		RedrawInterval string `toml:"redraw_interval"`
		SnapshotDir    string `toml:"snapshot_dir"`
		LogFile        string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if interval := strings.TrimSpace(raw.RedrawInterval); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: redraw_interval: %w", err)
		}
		cfg.RedrawInterval = max(d, minRedrawInterval)
	}

	if dir := strings.TrimSpace(raw.SnapshotDir); dir != "" {
		cfg.SnapshotDir = mustExpand(dir)
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ to the home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
