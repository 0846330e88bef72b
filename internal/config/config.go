// Package config loads UI preferences. Tasks themselves are never stored.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	dirName      = ".tada"
	fileName     = "config.yaml"
	envTheme     = "TADA_THEME"
	envLogFile   = "TADA_LOG"
	defaultTheme = "classic"
)

// Config holds user preferences for the presentation layers.
type Config struct {
	Theme   string `yaml:"theme"`
	Confirm bool   `yaml:"confirm"`  // ask before delete / clear-all
	LogFile string `yaml:"log_file"` // empty disables diagnostic logging
	Group   bool   `yaml:"group"`    // shell ls grouped by pending/done
}

func Default() Config {
	return Config{Theme: defaultTheme, Confirm: true}
}

// DefaultPath is ~/.tada/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dirName, fileName), nil
}

// Load reads the file at path (DefaultPath when empty) over the defaults,
// then applies environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv(envTheme)); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv(envLogFile)); v != "" {
		cfg.LogFile = v
	}
	if cfg.Theme == "" {
		cfg.Theme = defaultTheme
	}
	return cfg, nil
}
