package core

import (
	"errors"
	"testing"

	serrors "github.com/tessro/serenade/internal/errors"
)

func testPlaylist(n int) *Playlist {
	tracks := make([]Track, n)
	for i := range tracks {
		tracks[i] = Track{Source: string(rune('a'+i)) + ".mp3", Title: string(rune('A' + i))}
	}
	return NewPlaylist("test", tracks)
}

func TestPlaylistWrap(t *testing.T) {
	p := testPlaylist(3)

	if got := p.NextIndex(2); got != 0 {
		t.Errorf("NextIndex(2) = %d, want 0", got)
	}
	if got := p.PrevIndex(0); got != 2 {
		t.Errorf("PrevIndex(0) = %d, want 2", got)
	}

	for i := 0; i < p.Len(); i++ {
		if got := p.PrevIndex(p.NextIndex(i)); got != i {
			t.Errorf("PrevIndex(NextIndex(%d)) = %d, want %d", i, got, i)
		}
		if got := p.NextIndex(p.PrevIndex(i)); got != i {
			t.Errorf("NextIndex(PrevIndex(%d)) = %d, want %d", i, got, i)
		}
	}
}

func TestPlaylistSingleTrackWrapsToItself(t *testing.T) {
	p := testPlaylist(1)
	if got := p.NextIndex(0); got != 0 {
		t.Errorf("NextIndex(0) = %d, want 0", got)
	}
	if got := p.PrevIndex(0); got != 0 {
		t.Errorf("PrevIndex(0) = %d, want 0", got)
	}
}

func TestPlaylistAt(t *testing.T) {
	p := testPlaylist(2)

	track, err := p.At(1)
	if err != nil {
		t.Fatalf("At(1) error = %v", err)
	}
	if track.Title != "B" {
		t.Errorf("Title = %q, want %q", track.Title, "B")
	}

	if _, err := p.At(2); !errors.Is(err, serrors.ErrIndexOutOfRange) {
		t.Errorf("At(2) error = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := p.At(-1); !errors.Is(err, serrors.ErrIndexOutOfRange) {
		t.Errorf("At(-1) error = %v, want ErrIndexOutOfRange", err)
	}

	var empty *Playlist
	if !empty.IsEmpty() {
		t.Error("nil playlist IsEmpty() = false, want true")
	}
	if _, err := empty.At(0); !errors.Is(err, serrors.ErrEmptyPlaylist) {
		t.Errorf("empty At(0) error = %v, want ErrEmptyPlaylist", err)
	}
}

func TestNewPlaylistCopiesTracks(t *testing.T) {
	tracks := []Track{{Title: "one"}}
	p := NewPlaylist("", tracks)
	tracks[0].Title = "changed"
	if p.Tracks[0].Title != "one" {
		t.Errorf("Title = %q, want %q", p.Tracks[0].Title, "one")
	}
}

func TestParseCoverKind(t *testing.T) {
	tests := map[string]CoverKind{
		"video":  CoverVideo,
		"VIDEO":  CoverVideo,
		" video": CoverVideo,
		"image":  CoverImage,
		"":       CoverImage,
		"gif":    CoverImage,
	}
	for in, want := range tests {
		if got := ParseCoverKind(in); got != want {
			t.Errorf("ParseCoverKind(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSession(t *testing.T) {
	s := NewSession(3)
	if i, ok := s.Index(); !ok || i != 0 {
		t.Errorf("Index() = %d, %v, want 0, true", i, ok)
	}
	if s.IsPlaying() {
		t.Error("IsPlaying() = true, want false")
	}

	empty := NewSession(0)
	if _, ok := empty.Index(); ok {
		t.Error("empty session Index() ok = true, want false")
	}
}
