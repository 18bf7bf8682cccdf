package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	enabled := true
	return &Config{
		Player: PlayerConfig{
			ProgressInterval: 1000,
		},
		Hearts: HeartsConfig{
			Enabled:     &enabled,
			Interval:    300,
			Lifetime:    7000,
			MinSize:     10,
			MaxSize:     30,
			MinDuration: 3000,
			MaxDuration: 7000,
		},
		TUI: TUIConfig{
			Theme:           "auto",
			RefreshInterval: 250,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Player
	if c.Player.ProgressInterval == 0 {
		c.Player.ProgressInterval = d.Player.ProgressInterval
	}

	// Hearts
	if c.Hearts.Enabled == nil {
		c.Hearts.Enabled = d.Hearts.Enabled
	}
	if c.Hearts.Interval == 0 {
		c.Hearts.Interval = d.Hearts.Interval
	}
	if c.Hearts.Lifetime == 0 {
		c.Hearts.Lifetime = d.Hearts.Lifetime
	}
	if c.Hearts.MinSize == 0 {
		c.Hearts.MinSize = d.Hearts.MinSize
	}
	if c.Hearts.MaxSize == 0 {
		c.Hearts.MaxSize = d.Hearts.MaxSize
	}
	if c.Hearts.MinDuration == 0 {
		c.Hearts.MinDuration = d.Hearts.MinDuration
	}
	if c.Hearts.MaxDuration == 0 {
		c.Hearts.MaxDuration = d.Hearts.MaxDuration
	}

	// TUI
	if c.TUI.Theme == "" {
		c.TUI.Theme = d.TUI.Theme
	}
	if c.TUI.RefreshInterval == 0 {
		c.TUI.RefreshInterval = d.TUI.RefreshInterval
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
