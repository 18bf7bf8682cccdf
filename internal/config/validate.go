package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Player.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("player: %w", err))
	}
	if err := c.Hearts.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("hearts: %w", err))
	}
	if err := c.TUI.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tui: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks PlayerConfig for errors.
func (c *PlayerConfig) Validate() error {
	if c.ProgressInterval < 0 {
		return errors.New("progress_interval must be non-negative")
	}
	return nil
}

// Validate checks HeartsConfig for errors.
func (c *HeartsConfig) Validate() error {
	if c.Interval < 0 || c.Lifetime < 0 {
		return errors.New("interval and lifetime must be non-negative")
	}
	if c.MinSize < 0 || c.MaxSize < c.MinSize {
		return fmt.Errorf("invalid size range: %d-%d", c.MinSize, c.MaxSize)
	}
	if c.MinDuration < 0 || c.MaxDuration < c.MinDuration {
		return fmt.Errorf("invalid duration range: %d-%d", c.MinDuration, c.MaxDuration)
	}
	if c.Lifetime != 0 && c.Lifetime < c.MaxDuration {
		return fmt.Errorf("lifetime (%d) must be at least max_duration (%d)", c.Lifetime, c.MaxDuration)
	}
	return nil
}

// Validate checks TUIConfig for errors.
func (c *TUIConfig) Validate() error {
	switch c.Theme {
	case "", "auto", "dark", "light":
		// valid
	default:
		return fmt.Errorf("invalid theme: %s (must be auto, dark, or light)", c.Theme)
	}
	if c.RefreshInterval < 0 {
		return errors.New("refresh_interval must be non-negative")
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	return nil
}
