package playlist

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/tessro/serenade/internal/audio"
	"github.com/tessro/serenade/internal/core"
	serrors "github.com/tessro/serenade/internal/errors"
)

var (
	videoCoverExts = []string{".mp4", ".webm", ".mov"}
	imageCoverExts = []string{".jpg", ".jpeg", ".png", ".gif"}
	folderCovers   = []string{"cover.jpg", "cover.png", "folder.jpg", "folder.png"}
)

// FromDir builds a playlist from the audio files in dir, in name order.
// Title and artist come from tags when present. A file with the same base
// name and a video extension becomes a video cover; otherwise a same-name
// image or a folder cover is used.
func FromDir(dir string) (*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", serrors.ErrPlaylistNotFound, dir)
		}
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names[strings.ToLower(e.Name())] = true
		}
	}
	folderCover := ""
	for _, fc := range folderCovers {
		if names[fc] {
			folderCover = findName(entries, fc)
			break
		}
	}

	res := &Result{}
	var tracks []core.Track
	for _, e := range entries {
		if e.IsDir() || !audio.Supported(e.Name()) {
			continue
		}
		src := filepath.Join(dir, e.Name())
		track := core.Track{Source: src, Title: titleFromPath(src), CoverKind: core.CoverImage}

		title, artist, err := readTags(src)
		if err != nil {
			res.AddError(fmt.Errorf("%s: %w", e.Name(), err))
		}
		if title != "" {
			track.Title = title
		}
		track.Artist = artist

		stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if v := findWithExt(entries, names, stem, videoCoverExts); v != "" {
			track.Cover = filepath.Join(dir, v)
			track.CoverKind = core.CoverVideo
		} else if img := findWithExt(entries, names, stem, imageCoverExts); img != "" {
			track.Cover = filepath.Join(dir, img)
		} else if folderCover != "" {
			track.Cover = filepath.Join(dir, folderCover)
		}

		tracks = append(tracks, track)
	}

	res.Data = core.NewPlaylist(filepath.Base(dir), tracks)
	return res, nil
}

// readTags returns the title and artist stored in an audio file.
func readTags(path string) (title, artist string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		if errors.Is(err, tag.ErrNoTagsFound) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return "", "", nil
		}
		return "", "", err
	}
	return strings.TrimSpace(m.Title()), strings.TrimSpace(m.Artist()), nil
}

func findWithExt(entries []os.DirEntry, names map[string]bool, stem string, exts []string) string {
	for _, ext := range exts {
		if names[strings.ToLower(stem+ext)] {
			return findName(entries, stem+ext)
		}
	}
	return ""
}

// findName returns the on-disk spelling of a case-insensitive match.
func findName(entries []os.DirEntry, name string) string {
	for _, e := range entries {
		if strings.EqualFold(e.Name(), name) {
			return e.Name()
		}
	}
	return ""
}
