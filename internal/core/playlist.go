package core

import (
	"fmt"

	serrors "github.com/tessro/serenade/internal/errors"
)

// Playlist is the fixed, ordered sequence of tracks for a session.
type Playlist struct {
	Name   string  `json:"name,omitempty"`
	Tracks []Track `json:"tracks"`
}

// NewPlaylist creates a playlist from the given tracks. The slice is copied.
func NewPlaylist(name string, tracks []Track) *Playlist {
	copied := make([]Track, len(tracks))
	copy(copied, tracks)
	return &Playlist{Name: name, Tracks: copied}
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Tracks)
}

// IsEmpty returns true if the playlist has no tracks.
func (p *Playlist) IsEmpty() bool {
	return p.Len() == 0
}

// Valid reports whether index is within [0, Len).
func (p *Playlist) Valid(index int) bool {
	return index >= 0 && index < p.Len()
}

// At returns the track at index.
func (p *Playlist) At(index int) (Track, error) {
	if p.IsEmpty() {
		return Track{}, serrors.ErrEmptyPlaylist
	}
	if !p.Valid(index) {
		return Track{}, fmt.Errorf("%w: %d (playlist has %d tracks)", serrors.ErrIndexOutOfRange, index, p.Len())
	}
	return p.Tracks[index], nil
}

// NextIndex returns the index after i, wrapping to 0 past the last track.
func (p *Playlist) NextIndex(i int) int {
	n := p.Len()
	if n == 0 {
		return 0
	}
	i++
	if i > n-1 {
		i = 0
	}
	return i
}

// PrevIndex returns the index before i, wrapping to the last track below 0.
func (p *Playlist) PrevIndex(i int) int {
	n := p.Len()
	if n == 0 {
		return 0
	}
	i--
	if i < 0 {
		i = n - 1
	}
	return i
}
