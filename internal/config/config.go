// Package config loads the optional subfuse configuration file. A
// missing file yields defaults; a file that exists but cannot be
// decoded is an error, so typos do not silently fall back.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the user-tunable settings.
type Config struct {
	// MediaDir is the default directory for relative video paths.
	MediaDir string `toml:"media_dir"`
	// ToleranceMS is the default matching window in milliseconds.
	ToleranceMS int64 `toml:"tolerance_ms"`
	// PreviewLines is the default size of the preview projection.
	PreviewLines int `toml:"preview_lines"`
}

const (
	DefaultToleranceMS  = 1000
	DefaultPreviewLines = 75
)

func Default() Config {
	return Config{
		ToleranceMS:  DefaultToleranceMS,
		PreviewLines: DefaultPreviewLines,
	}
}

// DefaultPath returns ~/.config/subfuse/config.toml (or the OS
// equivalent of the user config dir).
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, "subfuse", "config.toml"), nil
}

// Load reads the config at path, or the default location when path is
// empty. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return normalize(cfg), nil
}

func normalize(cfg Config) Config {
	if cfg.ToleranceMS <= 0 {
		cfg.ToleranceMS = DefaultToleranceMS
	}
	if cfg.PreviewLines <= 0 {
		cfg.PreviewLines = DefaultPreviewLines
	}
	return cfg
}
