// Package tail turns display changes into a stream of playback events for
// headless output.
package tail

import (
	"context"
	"sync"
	"time"

	"github.com/tessro/serenade/internal/display"
)

// EventType represents the type of playback event.
type EventType int

const (
	EventTrackChange EventType = iota
	EventTrackComplete
	EventTrackSkip
	EventPause
	EventResume
	EventDurationKnown
)

// Event represents a playback state change.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Previous  *display.Snapshot
	Current   *display.Snapshot
}

// Source provides display snapshots to watch.
type Source interface {
	Snapshot() display.Snapshot
}

// Watcher polls a display source for changes and emits events.
type Watcher struct {
	source   Source
	interval time.Duration
	events   chan Event
	done     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

// NewWatcher creates a new state watcher.
func NewWatcher(source Source, interval time.Duration) *Watcher {
	if interval == 0 {
		interval = time.Second
	}
	return &Watcher{
		source:   source,
		interval: interval,
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
		now:      time.Now,
	}
}

// Events returns the channel of playback events. It is closed when Start
// returns.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start polls until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.events)

	var prev *display.Snapshot
	w.poll(&prev)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil
		case <-ticker.C:
			w.poll(&prev)
		}
	}
}

func (w *Watcher) poll(prev **display.Snapshot) {
	curr := w.source.Snapshot()
	if *prev != nil && (*prev).Version == curr.Version {
		return
	}
	for _, e := range diffStates(*prev, &curr, w.now()) {
		select {
		case w.events <- e:
		default:
			// Drop event if channel is full
		}
	}
	*prev = &curr
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.done) })
}

// diffStates compares two snapshots and returns detected events.
func diffStates(prev, curr *display.Snapshot, now time.Time) []Event {
	if curr == nil {
		return nil
	}

	// First poll - no previous state
	if prev == nil {
		var events []Event
		if hasTrack(curr) {
			events = append(events, Event{Type: EventTrackChange, Timestamp: now, Current: curr})
		}
		if isPlaying(curr) {
			events = append(events, Event{Type: EventResume, Timestamp: now, Current: curr})
		}
		return events
	}

	var events []Event
	changed := trackChanged(prev, curr)

	if changed {
		eventType := EventTrackChange
		if hasTrack(prev) && wasCompleted(prev) {
			eventType = EventTrackComplete
		} else if hasTrack(prev) {
			eventType = EventTrackSkip
		}
		events = append(events, Event{Type: eventType, Timestamp: now, Previous: prev, Current: curr})
	}

	if isPlaying(prev) && !isPlaying(curr) {
		events = append(events, Event{Type: EventPause, Timestamp: now, Previous: prev, Current: curr})
	} else if !isPlaying(prev) && isPlaying(curr) {
		events = append(events, Event{Type: EventResume, Timestamp: now, Previous: prev, Current: curr})
	}

	if curr.Duration != zeroTime && (changed || prev.Duration != curr.Duration) {
		events = append(events, Event{Type: EventDurationKnown, Timestamp: now, Previous: prev, Current: curr})
	}

	return events
}

const zeroTime = "0:00"

func hasTrack(s *display.Snapshot) bool {
	return s.Active >= 0
}

func isPlaying(s *display.Snapshot) bool {
	return s.PlayLabel == display.LabelPause
}

// trackChanged returns true if the active entry changed.
func trackChanged(prev, curr *display.Snapshot) bool {
	return prev.Active != curr.Active
}

// wasCompleted returns true if the track likely completed naturally.
// Progress is only sampled, so anything past 95% counts.
func wasCompleted(s *display.Snapshot) bool {
	return s.Progress >= 95
}
