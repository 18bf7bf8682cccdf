// Package playlist builds core playlists from TOML playlist files and
// from music directories.
package playlist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
	"github.com/tessro/serenade/internal/core"
	serrors "github.com/tessro/serenade/internal/errors"
)

// File is the on-disk playlist format.
//
//	name = "For you"
//
//	[[track]]
//	src = "songs/first.mp3"
//	cover = "covers/first.mp4"
//	type = "video"
//	title = "First"
//	artist = "Someone"
type File struct {
	Name   string  `toml:"name"`
	Tracks []Entry `toml:"track"`
}

// Entry is one [[track]] table.
type Entry struct {
	Src    string `toml:"src"`
	Cover  string `toml:"cover"`
	Title  string `toml:"title"`
	Artist string `toml:"artist"`
	Type   string `toml:"type"`
}

// Result is a playlist plus the entries that had to be skipped.
type Result = serrors.PartialResult[*core.Playlist]

// Load reads a playlist file. Entries without a source are skipped and
// reported in the result; a missing or malformed file is an error.
func Load(path string) (*Result, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", serrors.ErrPlaylistNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", serrors.ErrInvalidPlaylist, path, err)
	}
	return FromFile(f, filepath.Dir(path)), nil
}

// Parse decodes playlist TOML from a string. Relative paths resolve
// against baseDir.
func Parse(data, baseDir string) (*Result, error) {
	var f File
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", serrors.ErrInvalidPlaylist, err)
	}
	return FromFile(f, baseDir), nil
}

// FromFile converts decoded entries into a playlist.
func FromFile(f File, baseDir string) *Result {
	res := &Result{}

	valid := lo.Filter(f.Tracks, func(e Entry, i int) bool {
		if strings.TrimSpace(e.Src) == "" {
			res.AddError(fmt.Errorf("%w: track %d has no src", serrors.ErrInvalidPlaylist, i+1))
			return false
		}
		return true
	})

	tracks := lo.Map(valid, func(e Entry, _ int) core.Track {
		src := resolve(baseDir, e.Src)
		title := e.Title
		if title == "" {
			title = titleFromPath(src)
		}
		return core.Track{
			Source:    src,
			Cover:     resolve(baseDir, e.Cover),
			CoverKind: core.ParseCoverKind(e.Type),
			Title:     title,
			Artist:    e.Artist,
		}
	})

	res.Data = core.NewPlaylist(f.Name, tracks)
	return res
}

// resolve makes p absolute relative to baseDir. URLs and empty values are
// left alone.
func resolve(baseDir, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || strings.Contains(p, "://") || filepath.IsAbs(p) {
		return p
	}
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return filepath.Join(baseDir, p)
}

// titleFromPath derives a display title from a file name.
func titleFromPath(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
