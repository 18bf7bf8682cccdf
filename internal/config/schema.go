package config

// Config is the root configuration structure.
type Config struct {
	Playlist PlaylistConfig `toml:"playlist"`
	Player   PlayerConfig   `toml:"player"`
	Hearts   HeartsConfig   `toml:"hearts"`
	TUI      TUIConfig      `toml:"tui"`
	Log      LogConfig      `toml:"log"`
}

// PlaylistConfig holds the default playlist location.
type PlaylistConfig struct {
	Path string `toml:"path"`
	Dir  string `toml:"dir"`
}

// PlayerConfig holds playback settings.
type PlayerConfig struct {
	ProgressInterval int `toml:"progress_interval"` // milliseconds
}

// HeartsConfig holds settings for the animated hearts background.
type HeartsConfig struct {
	Enabled     *bool `toml:"enabled"`
	Interval    int   `toml:"interval"` // milliseconds
	Lifetime    int   `toml:"lifetime"` // milliseconds
	MinSize     int   `toml:"min_size"`
	MaxSize     int   `toml:"max_size"`
	MinDuration int   `toml:"min_duration"` // milliseconds
	MaxDuration int   `toml:"max_duration"` // milliseconds
}

// IsEnabled reports whether hearts are on. Unset means enabled.
func (h HeartsConfig) IsEnabled() bool {
	return h.Enabled == nil || *h.Enabled
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme           string `toml:"theme"`
	RefreshInterval int    `toml:"refresh_interval"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}
