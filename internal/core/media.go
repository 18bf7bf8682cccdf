package core

import "time"

// EventType identifies a media element lifecycle signal.
type EventType int

const (
	EventPlay EventType = iota
	EventPause
	EventEnded
	EventLoadedMetadata
)

func (t EventType) String() string {
	switch t {
	case EventPlay:
		return "play"
	case EventPause:
		return "pause"
	case EventEnded:
		return "ended"
	case EventLoadedMetadata:
		return "loadedmetadata"
	default:
		return "unknown"
	}
}

// Event is a lifecycle signal emitted by an Audio element.
type Event struct {
	Type     EventType
	Source   string
	Duration time.Duration
}

// Audio is the playable media element the controller drives.
//
// Play and Pause report failures instead of silently dropping them.
// Lifecycle signals are delivered on Events and must never be sent while
// the element is being called from a handler of those signals.
type Audio interface {
	// SetSource rebinds the element to a new asset locator.
	SetSource(src string)
	// Load discards buffered state and opens the current source.
	Load() error
	Play() error
	Pause() error
	// Seek moves the playback position.
	Seek(pos time.Duration) error

	Position() time.Duration
	// Duration returns the track length; ok is false until metadata loads.
	Duration() (d time.Duration, ok bool)

	Events() <-chan Event
	Close() error
}

// Video is a looping, muted cover clip.
type Video interface {
	Play() error
	Pause() error
	Playing() bool
	Asset() string
}
