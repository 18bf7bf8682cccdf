package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.serenaderc, $XDG_CONFIG_HOME/serenade/config.toml, ~/.config/serenade/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	// Try loading from file
	path := findConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Apply defaults, then environment variable overrides
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultPath returns the path config init writes to.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".serenaderc"
	}
	return filepath.Join(home, ".serenaderc")
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".serenaderc"),
	}

	// XDG_CONFIG_HOME or default
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	paths = append(paths, filepath.Join(xdgConfig, "serenade", "config.toml"))

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Playlist
	if v := os.Getenv("SERENADE_PLAYLIST"); v != "" {
		cfg.Playlist.Path = v
	}
	if v := os.Getenv("SERENADE_PLAYLIST_DIR"); v != "" {
		cfg.Playlist.Dir = v
	}

	// Player
	if v := os.Getenv("SERENADE_PROGRESS_INTERVAL"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Player.ProgressInterval = i
		}
	}

	// Hearts
	if v := os.Getenv("SERENADE_HEARTS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Hearts.Enabled = &b
		}
	}

	// TUI
	if v := os.Getenv("SERENADE_TUI_THEME"); v != "" {
		cfg.TUI.Theme = v
	}
	if v := os.Getenv("SERENADE_TUI_REFRESH_INTERVAL"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.TUI.RefreshInterval = i
		}
	}

	// Log
	if v := os.Getenv("SERENADE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SERENADE_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

// ProgressIntervalDuration returns the progress poll period.
func (c *PlayerConfig) ProgressIntervalDuration() time.Duration {
	return time.Duration(c.ProgressInterval) * time.Millisecond
}

// Durations returns the hearts timing settings as durations.
func (h HeartsConfig) Durations() (interval, lifetime, minDur, maxDur time.Duration) {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	return ms(h.Interval), ms(h.Lifetime), ms(h.MinDuration), ms(h.MaxDuration)
}
