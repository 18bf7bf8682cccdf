package cover

import (
	"fmt"
	"sync"
	"time"

	"github.com/tessro/serenade/internal/core"
	serrors "github.com/tessro/serenade/internal/errors"
)

// Video is a looping, muted, inline cover clip. The terminal cannot decode
// video, so the clip is represented by its play state and a frame clock
// the view animates from.
type Video struct {
	asset string

	// Element attributes, fixed at construction.
	Loop        bool
	Muted       bool
	PlaysInline bool
	Autoplay    bool
	Controls    bool

	mu      sync.Mutex
	playing bool
	started time.Time
	elapsed time.Duration // accumulated play time before the last start
	now     func() time.Time
}

// NewVideo creates a cover clip for asset. Like an autoplaying element,
// it starts playing as soon as it is created.
func NewVideo(asset string) *Video {
	v := &Video{
		asset:       asset,
		Loop:        true,
		Muted:       true,
		PlaysInline: true,
		Autoplay:    true,
		Controls:    false,
		now:         time.Now,
	}
	if v.Autoplay {
		_ = v.Play()
	}
	return v
}

// Asset returns the clip locator.
func (v *Video) Asset() string {
	return v.asset
}

// Play starts or resumes the loop.
func (v *Video) Play() error {
	if v.asset == "" {
		return fmt.Errorf("video cover: %w", serrors.ErrSourceNotLoaded)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.playing {
		v.playing = true
		v.started = v.now()
	}
	return nil
}

// Pause freezes the loop on its current frame.
func (v *Video) Pause() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.playing {
		v.elapsed += v.now().Sub(v.started)
		v.playing = false
	}
	return nil
}

// Playing reports whether the loop is running.
func (v *Video) Playing() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.playing
}

// Frame returns the current frame number at the given frame period.
func (v *Video) Frame(period time.Duration) int {
	if period <= 0 {
		return 0
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	total := v.elapsed
	if v.playing {
		total += v.now().Sub(v.started)
	}
	return int(total / period)
}

// VideoFactory builds the cover clip for an asset.
type VideoFactory func(asset string) core.Video

// DefaultVideoFactory returns NewVideo clips.
func DefaultVideoFactory(asset string) core.Video {
	return NewVideo(asset)
}

var _ core.Video = (*Video)(nil)
