package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tessro/serenade/internal/config"
	serrors "github.com/tessro/serenade/internal/errors"
)

func withConfig(t *testing.T, c *config.Config) {
	t.Helper()
	prev := cfg
	cfg = c
	t.Cleanup(func() { cfg = prev })
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadPlaylistPriority(t *testing.T) {
	dir := t.TempDir()
	fromArg := filepath.Join(dir, "arg.toml")
	fromCfg := filepath.Join(dir, "cfg.toml")
	writeFile(t, fromArg, "name = \"arg\"\n[[track]]\nsrc = \"a.mp3\"\n")
	writeFile(t, fromCfg, "name = \"cfg\"\n[[track]]\nsrc = \"b.mp3\"\n[[track]]\nsrc = \"c.mp3\"\n")

	music := filepath.Join(dir, "music")
	if err := os.Mkdir(music, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(music, "x.wav"), "")

	c := config.Default()
	c.Playlist.Path = fromCfg
	withConfig(t, c)

	tests := []struct {
		name string
		args []string
		dir  string
		want string
	}{
		{"dir flag wins", []string{fromArg}, music, "music"},
		{"argument", []string{fromArg}, "", "arg"},
		{"config path", nil, "", "cfg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pl, warnings, err := loadPlaylist(tt.args, tt.dir)
			if err != nil {
				t.Fatalf("loadPlaylist() error = %v", err)
			}
			if len(warnings) != 0 {
				t.Errorf("warnings = %v, want none", warnings)
			}
			if pl.Name != tt.want {
				t.Errorf("Name = %q, want %q", pl.Name, tt.want)
			}
		})
	}
}

func TestLoadPlaylistNoSource(t *testing.T) {
	withConfig(t, config.Default())

	_, _, err := loadPlaylist(nil, "")
	if !errors.Is(err, serrors.ErrPlaylistNotFound) {
		t.Fatalf("loadPlaylist() error = %v, want ErrPlaylistNotFound", err)
	}
	if serrors.GetSuggestion(err) == "" {
		t.Error("expected a suggestion")
	}
}

func TestLoadPlaylistWarnings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mix.toml")
	writeFile(t, path, "[[track]]\ntitle = \"no source\"\n[[track]]\nsrc = \"a.mp3\"\n")
	withConfig(t, config.Default())

	pl, warnings, err := loadPlaylist([]string{path}, "")
	if err != nil {
		t.Fatalf("loadPlaylist() error = %v", err)
	}
	if pl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", pl.Len())
	}
	if len(warnings) != 1 {
		t.Errorf("len(warnings) = %d, want 1", len(warnings))
	}
}

func TestRefreshInterval(t *testing.T) {
	c := config.Default()
	c.TUI.RefreshInterval = 200
	withConfig(t, c)

	prev := playRefresh
	t.Cleanup(func() { playRefresh = prev })

	playRefresh = 0
	if got := refreshInterval(); got != 200*time.Millisecond {
		t.Errorf("refreshInterval() = %v, want 200ms", got)
	}
	playRefresh = 50
	if got := refreshInterval(); got != 50*time.Millisecond {
		t.Errorf("refreshInterval() = %v, want 50ms", got)
	}
}
