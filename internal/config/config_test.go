package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[playlist]
path = "/music/love.toml"

[hearts]
enabled = false
interval = 500

[tui]
theme = "dark"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Playlist.Path != "/music/love.toml" {
		t.Errorf("Playlist.Path = %q, want %q", cfg.Playlist.Path, "/music/love.toml")
	}
	if cfg.Hearts.IsEnabled() {
		t.Error("Hearts.IsEnabled() = true, want false")
	}
	if cfg.Hearts.Interval != 500 {
		t.Errorf("Hearts.Interval = %d, want 500", cfg.Hearts.Interval)
	}
	if cfg.Hearts.Lifetime != 7000 {
		t.Errorf("Hearts.Lifetime = %d, want 7000", cfg.Hearts.Lifetime)
	}
	if cfg.Player.ProgressInterval != 1000 {
		t.Errorf("Player.ProgressInterval = %d, want 1000", cfg.Player.ProgressInterval)
	}
	if cfg.TUI.Theme != "dark" {
		t.Errorf("TUI.Theme = %q, want %q", cfg.TUI.Theme, "dark")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SERENADE_PLAYLIST", "/tmp/p.toml")
	t.Setenv("SERENADE_PROGRESS_INTERVAL", "250")
	t.Setenv("SERENADE_HEARTS_ENABLED", "false")
	t.Setenv("SERENADE_LOG_LEVEL", "debug")

	cfg := &Config{}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	if cfg.Playlist.Path != "/tmp/p.toml" {
		t.Errorf("Playlist.Path = %q, want %q", cfg.Playlist.Path, "/tmp/p.toml")
	}
	if got := cfg.Player.ProgressIntervalDuration(); got != 250*time.Millisecond {
		t.Errorf("ProgressIntervalDuration() = %v, want 250ms", got)
	}
	if cfg.Hearts.IsEnabled() {
		t.Error("Hearts.IsEnabled() = true, want false")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestDefaultHeartsTiming(t *testing.T) {
	interval, lifetime, minDur, maxDur := Default().Hearts.Durations()
	if interval != 300*time.Millisecond {
		t.Errorf("interval = %v, want 300ms", interval)
	}
	if lifetime != 7*time.Second {
		t.Errorf("lifetime = %v, want 7s", lifetime)
	}
	if minDur != 3*time.Second || maxDur != 7*time.Second {
		t.Errorf("durations = %v-%v, want 3s-7s", minDur, maxDur)
	}
	if lifetime < maxDur {
		t.Error("lifetime must cover the longest animation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad theme", func(c *Config) { c.TUI.Theme = "neon" }, true},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, true},
		{"negative progress", func(c *Config) { c.Player.ProgressInterval = -1 }, true},
		{"inverted sizes", func(c *Config) { c.Hearts.MinSize, c.Hearts.MaxSize = 30, 10 }, true},
		{"short lifetime", func(c *Config) { c.Hearts.Lifetime = 1000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
