// Package display holds the named display surfaces the player writes to
// and the views read from.
package display

import (
	"sync"

	"github.com/tessro/serenade/internal/core"
)

// Play button labels.
const (
	LabelPlay  = "⏯"
	LabelPause = "⏸"
)

// Cover is the content of the cover container.
type Cover struct {
	Kind    core.CoverKind
	Asset   string
	Video   core.Video // nil for image covers
	Overlay bool       // decorative vinyl overlay
}

// Snapshot is a consistent copy of every surface.
type Snapshot struct {
	PlayLabel    string
	Progress     float64 // fill width in percent
	Elapsed      string
	Duration     string
	Cover        Cover
	CoverPlaying bool
	Title        string
	Artist       string
	Active       int // -1 when no entry is highlighted
	Version      uint64
}

// Surface is the set of display elements the player mutates. It is safe
// for concurrent use; every setter bumps Version.
type Surface struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewSurface returns a surface in its initial state.
func NewSurface() *Surface {
	return &Surface{snap: Snapshot{
		PlayLabel: LabelPlay,
		Elapsed:   "0:00",
		Duration:  "0:00",
		Active:    -1,
	}}
}

// Snapshot returns a copy of the current state.
func (s *Surface) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *Surface) update(fn func(*Snapshot)) {
	s.mu.Lock()
	fn(&s.snap)
	s.snap.Version++
	s.mu.Unlock()
}

// SetPlayLabel sets the play/pause toggle label.
func (s *Surface) SetPlayLabel(label string) {
	s.update(func(sn *Snapshot) { sn.PlayLabel = label })
}

// SetProgress sets the progress bar fill in percent.
func (s *Surface) SetProgress(percent float64) {
	s.update(func(sn *Snapshot) { sn.Progress = percent })
}

// SetElapsed sets the elapsed-time text.
func (s *Surface) SetElapsed(text string) {
	s.update(func(sn *Snapshot) { sn.Elapsed = text })
}

// SetDuration sets the duration text.
func (s *Surface) SetDuration(text string) {
	s.update(func(sn *Snapshot) { sn.Duration = text })
}

// SetCover replaces the cover container contents.
func (s *Surface) SetCover(c Cover) {
	s.update(func(sn *Snapshot) { sn.Cover = c })
}

// SetCoverPlaying toggles the "playing" class on the cover container.
func (s *Surface) SetCoverPlaying(playing bool) {
	s.update(func(sn *Snapshot) { sn.CoverPlaying = playing })
}

// SetTrackInfo sets the title and artist text.
func (s *Surface) SetTrackInfo(title, artist string) {
	s.update(func(sn *Snapshot) {
		sn.Title = title
		sn.Artist = artist
	})
}

// SetActive marks exactly one playlist entry as active.
func (s *Surface) SetActive(index int) {
	s.update(func(sn *Snapshot) { sn.Active = index })
}
