// Package audio implements the playable media element on top of beep.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/rs/zerolog"
	"github.com/tessro/serenade/internal/core"
	serrors "github.com/tessro/serenade/internal/errors"
)

const eventBuffer = 64

// Element plays one source at a time through the speaker and reports
// lifecycle signals on Events. Ended signals from a source that has since
// been replaced are ignored.
type Element struct {
	mu sync.Mutex

	logger     zerolog.Logger
	out        sink
	sampleRate beep.SampleRate

	src        string
	track      *trackState
	generation uint64 // bumped on every Load, used to ignore stale callbacks
	playing    bool
	closed     bool

	events chan core.Event
}

// New creates an element writing to the system speaker.
func New(logger zerolog.Logger) *Element {
	return newElement(newSink(), logger)
}

func newElement(out sink, logger zerolog.Logger) *Element {
	return &Element{
		logger:     logger.With().Str("component", "audio").Logger(),
		out:        out,
		sampleRate: beep.SampleRate(44100),
		events:     make(chan core.Event, eventBuffer),
	}
}

// SetSource rebinds the element. The new source is not opened until Load.
func (e *Element) SetSource(src string) {
	e.mu.Lock()
	e.src = src
	e.mu.Unlock()
}

// Source returns the bound source.
func (e *Element) Source() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.src
}

// Load discards the previous track and decodes the bound source. Once the
// length is known a loaded-metadata signal is emitted.
func (e *Element) Load() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.unloadLocked()
	e.generation++

	if e.src == "" {
		return fmt.Errorf("load: %w", serrors.ErrSourceNotLoaded)
	}

	t, err := decode(e.src)
	if err != nil {
		e.logger.Warn().Err(err).Str("src", e.src).Msg("load failed")
		return err
	}
	e.track = t

	d := t.format.SampleRate.D(t.streamer.Len())
	e.logger.Debug().Str("src", e.src).Dur("duration", d).Msg("loaded")
	e.emitLocked(core.Event{Type: core.EventLoadedMetadata, Source: e.src, Duration: d})
	return nil
}

// unloadLocked stops output and releases the current track.
func (e *Element) unloadLocked() {
	if e.track == nil {
		return
	}
	e.out.lock()
	e.track.ctrl.Paused = true
	e.out.unlock()
	e.out.clear()
	e.track.Close()
	e.track = nil
	e.playing = false
}

// Play starts or resumes output. It fails if nothing is loaded or the
// speaker cannot be opened.
func (e *Element) Play() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.track == nil {
		return fmt.Errorf("%w: %w", serrors.ErrPlaybackRejected, serrors.ErrSourceNotLoaded)
	}
	if e.playing {
		return nil
	}

	if err := e.out.init(e.sampleRate); err != nil {
		return fmt.Errorf("%w: %w", serrors.ErrPlaybackRejected, err)
	}

	t := e.track
	if !t.queued {
		if t.streamer.Position() >= t.streamer.Len() {
			if err := t.streamer.Seek(0); err != nil {
				return fmt.Errorf("%w: %w", serrors.ErrPlaybackRejected, err)
			}
		}
		gen := e.generation
		var s beep.Streamer = t.ctrl
		if t.format.SampleRate != e.sampleRate {
			s = beep.Resample(4, t.format.SampleRate, e.sampleRate, t.ctrl)
		}
		// The callback runs on the speaker goroutine with its lock held.
		e.out.play(beep.Seq(s, beep.Callback(func() {
			go e.finished(gen)
		})))
		t.queued = true
	}

	e.out.lock()
	t.ctrl.Paused = false
	e.out.unlock()

	e.playing = true
	e.emitLocked(core.Event{Type: core.EventPlay, Source: e.src})
	return nil
}

// Pause halts output, keeping the position.
func (e *Element) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.track == nil || !e.playing {
		return nil
	}

	e.out.lock()
	e.track.ctrl.Paused = true
	e.out.unlock()

	e.playing = false
	e.emitLocked(core.Event{Type: core.EventPause, Source: e.src})
	return nil
}

// finished handles natural end of the track queued under gen.
func (e *Element) finished(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.generation || e.track == nil {
		return
	}
	e.track.queued = false
	wasPlaying := e.playing
	e.playing = false

	if wasPlaying {
		e.emitLocked(core.Event{Type: core.EventPause, Source: e.src})
	}
	e.emitLocked(core.Event{Type: core.EventEnded, Source: e.src})
}

// Seek moves the position, clamped to the track.
func (e *Element) Seek(pos time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.track == nil {
		return fmt.Errorf("seek: %w", serrors.ErrSourceNotLoaded)
	}

	st := e.track.streamer
	n := e.track.format.SampleRate.N(pos)
	if n < 0 {
		n = 0
	}
	if last := st.Len() - 1; n > last {
		n = last
	}

	e.out.lock()
	defer e.out.unlock()
	return st.Seek(n)
}

// Position returns the current playback position.
func (e *Element) Position() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.track == nil {
		return 0
	}
	e.out.lock()
	pos := e.track.streamer.Position()
	e.out.unlock()
	return e.track.format.SampleRate.D(pos)
}

// Duration returns the track length once a source is loaded.
func (e *Element) Duration() (time.Duration, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.track == nil {
		return 0, false
	}
	return e.track.format.SampleRate.D(e.track.streamer.Len()), true
}

// Paused reports whether output is halted.
func (e *Element) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.playing
}

// Events returns the lifecycle signal channel. It is closed by Close.
func (e *Element) Events() <-chan core.Event {
	return e.events
}

// Close stops output and releases the track.
func (e *Element) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.unloadLocked()
	e.generation++
	e.closed = true
	close(e.events)
	return nil
}

// emitLocked delivers a signal without blocking; a full buffer drops it.
func (e *Element) emitLocked(ev core.Event) {
	if e.closed {
		return
	}
	select {
	case e.events <- ev:
	default:
		e.logger.Warn().Stringer("event", ev.Type).Msg("event buffer full, dropping")
	}
}

var _ core.Audio = (*Element)(nil)
