package display

import (
	"sync"
	"testing"

	"github.com/tessro/serenade/internal/core"
)

func TestNewSurface(t *testing.T) {
	snap := NewSurface().Snapshot()
	if snap.PlayLabel != LabelPlay {
		t.Errorf("PlayLabel = %q, want %q", snap.PlayLabel, LabelPlay)
	}
	if snap.Elapsed != "0:00" || snap.Duration != "0:00" {
		t.Errorf("times = %q/%q, want 0:00/0:00", snap.Elapsed, snap.Duration)
	}
	if snap.Active != -1 {
		t.Errorf("Active = %d, want -1", snap.Active)
	}
}

func TestSettersBumpVersion(t *testing.T) {
	s := NewSurface()
	before := s.Snapshot().Version

	s.SetTrackInfo("Title", "Artist")
	s.SetCover(Cover{Kind: core.CoverImage, Asset: "cover.png", Overlay: true})
	s.SetActive(2)

	snap := s.Snapshot()
	if snap.Version != before+3 {
		t.Errorf("Version = %d, want %d", snap.Version, before+3)
	}
	if snap.Title != "Title" || snap.Artist != "Artist" {
		t.Errorf("track info = %q/%q", snap.Title, snap.Artist)
	}
	if snap.Cover.Asset != "cover.png" || !snap.Cover.Overlay {
		t.Errorf("Cover = %+v", snap.Cover)
	}
	if snap.Active != 2 {
		t.Errorf("Active = %d, want 2", snap.Active)
	}
}

func TestConcurrentWrites(t *testing.T) {
	s := NewSurface()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.SetProgress(float64(i))
			_ = s.Snapshot()
		}(i)
	}
	wg.Wait()

	if got := s.Snapshot().Version; got != 50 {
		t.Errorf("Version = %d, want 50", got)
	}
}
