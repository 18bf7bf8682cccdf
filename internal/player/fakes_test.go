package player

import (
	"errors"
	"sync"
	"time"

	"github.com/tessro/serenade/internal/core"
)

// fakeAudio mimics a media element without producing sound.
type fakeAudio struct {
	mu        sync.Mutex
	src       string
	loaded    string
	playing   bool
	pos       time.Duration
	durations map[string]time.Duration
	playErr   error
	loadErr   error
	seeks     []time.Duration
	calls     []string
	events    chan core.Event
}

func newFakeAudio() *fakeAudio {
	return &fakeAudio{
		durations: make(map[string]time.Duration),
		events:    make(chan core.Event, 64),
	}
}

func (a *fakeAudio) record(call string) {
	a.calls = append(a.calls, call)
}

func (a *fakeAudio) emit(ev core.Event) {
	select {
	case a.events <- ev:
	default:
	}
}

func (a *fakeAudio) SetSource(src string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.record("source:" + src)
	a.src = src
}

func (a *fakeAudio) Load() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.record("load")
	if a.playing {
		a.playing = false
		a.emit(core.Event{Type: core.EventPause, Source: a.loaded})
	}
	a.pos = 0
	if a.loadErr != nil {
		a.loaded = ""
		return a.loadErr
	}
	a.loaded = a.src
	if d, ok := a.durations[a.src]; ok {
		a.emit(core.Event{Type: core.EventLoadedMetadata, Source: a.src, Duration: d})
	}
	return nil
}

func (a *fakeAudio) Play() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.record("play")
	if a.playErr != nil {
		return a.playErr
	}
	if a.loaded == "" {
		return errors.New("nothing loaded")
	}
	if !a.playing {
		a.playing = true
		a.emit(core.Event{Type: core.EventPlay, Source: a.loaded})
	}
	return nil
}

func (a *fakeAudio) Pause() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.record("pause")
	if a.playing {
		a.playing = false
		a.emit(core.Event{Type: core.EventPause, Source: a.loaded})
	}
	return nil
}

func (a *fakeAudio) Seek(pos time.Duration) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.seeks = append(a.seeks, pos)
	a.pos = pos
	return nil
}

func (a *fakeAudio) Position() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pos
}

func (a *fakeAudio) setPosition(pos time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pos = pos
}

func (a *fakeAudio) Duration() (time.Duration, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	d, ok := a.durations[a.loaded]
	return d, ok
}

func (a *fakeAudio) Events() <-chan core.Event {
	return a.events
}

func (a *fakeAudio) Close() error {
	return nil
}

// finish simulates the current track reaching its end.
func (a *fakeAudio) finish() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.playing = false
	a.emit(core.Event{Type: core.EventPause, Source: a.loaded})
	a.emit(core.Event{Type: core.EventEnded, Source: a.loaded})
}

func (a *fakeAudio) isPlaying() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.playing
}

func (a *fakeAudio) source() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loaded
}

func (a *fakeAudio) seekCalls() []time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]time.Duration(nil), a.seeks...)
}

type fakeVideo struct {
	mu      sync.Mutex
	asset   string
	playing bool
}

func (v *fakeVideo) Play() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.playing = true
	return nil
}

func (v *fakeVideo) Pause() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.playing = false
	return nil
}

func (v *fakeVideo) Playing() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.playing
}

func (v *fakeVideo) Asset() string {
	return v.asset
}

// videoRecorder is a cover.VideoFactory that keeps every clip it builds.
type videoRecorder struct {
	mu     sync.Mutex
	videos []*fakeVideo
}

func (r *videoRecorder) factory(asset string) core.Video {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := &fakeVideo{asset: asset, playing: true}
	r.videos = append(r.videos, v)
	return v
}

func (r *videoRecorder) last() *fakeVideo {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.videos) == 0 {
		return nil
	}
	return r.videos[len(r.videos)-1]
}
