package tail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// Formatter formats events for output.
type Formatter struct {
	showEmoji     bool
	showTimestamp bool
	asJSON        bool
	template      *template.Template
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithEmoji enables emoji output.
func WithEmoji(enabled bool) FormatterOption {
	return func(f *Formatter) {
		f.showEmoji = enabled
	}
}

// WithTimestamp enables timestamp output.
func WithTimestamp(enabled bool) FormatterOption {
	return func(f *Formatter) {
		f.showTimestamp = enabled
	}
}

// WithJSON emits one JSON object per event.
func WithJSON(enabled bool) FormatterOption {
	return func(f *Formatter) {
		f.asJSON = enabled
	}
}

// WithTemplate sets a custom format template. An invalid template is
// ignored.
func WithTemplate(tmpl string) FormatterOption {
	return func(f *Formatter) {
		if tmpl != "" {
			t, err := template.New("format").Parse(tmpl)
			if err == nil {
				f.template = t
			}
		}
	}
}

// NewFormatter creates a new formatter with the given options.
func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		showEmoji:     true,
		showTimestamp: false,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format formats an event as a string.
func (f *Formatter) Format(e Event) string {
	switch {
	case f.asJSON:
		return f.formatJSON(e)
	case f.template != nil:
		return f.formatTemplate(e)
	default:
		return f.formatLine(e)
	}
}

// formatLine formats an event as a simple line.
func (f *Formatter) formatLine(e Event) string {
	var parts []string

	if f.showTimestamp {
		parts = append(parts, e.Timestamp.Format("15:04:05"))
	}
	if f.showEmoji {
		parts = append(parts, eventEmoji(e.Type))
	}
	parts = append(parts, f.eventDescription(e))

	return strings.Join(parts, " ")
}

type templateData struct {
	Type      string    `json:"type"`
	Emoji     string    `json:"-"`
	Timestamp time.Time `json:"timestamp"`
	Time      string    `json:"-"`
	Index     int       `json:"index"`
	Title     string    `json:"title,omitempty"`
	Artist    string    `json:"artist,omitempty"`
	Elapsed   string    `json:"elapsed,omitempty"`
	Duration  string    `json:"duration,omitempty"`
}

func newTemplateData(e Event) templateData {
	data := templateData{
		Type:      eventTypeName(e.Type),
		Emoji:     eventEmoji(e.Type),
		Timestamp: e.Timestamp,
		Time:      e.Timestamp.Format("15:04:05"),
		Index:     -1,
	}
	if e.Current != nil {
		data.Index = e.Current.Active
		data.Title = e.Current.Title
		data.Artist = e.Current.Artist
		data.Elapsed = e.Current.Elapsed
		data.Duration = e.Current.Duration
	}
	return data
}

// formatTemplate formats an event using a custom template.
func (f *Formatter) formatTemplate(e Event) string {
	var buf bytes.Buffer
	if err := f.template.Execute(&buf, newTemplateData(e)); err != nil {
		return f.formatLine(e)
	}
	return buf.String()
}

func (f *Formatter) formatJSON(e Event) string {
	b, err := json.Marshal(newTemplateData(e))
	if err != nil {
		return f.formatLine(e)
	}
	return string(b)
}

// eventDescription returns a human-readable description of the event.
func (f *Formatter) eventDescription(e Event) string {
	switch e.Type {
	case EventTrackChange:
		if e.Current != nil {
			return "Now playing: " + trackLabel(e.Current.Artist, e.Current.Title)
		}
		return "Track changed"

	case EventTrackComplete:
		if e.Previous != nil {
			return "Finished: " + trackLabel(e.Previous.Artist, e.Previous.Title)
		}
		return "Track completed"

	case EventTrackSkip:
		if e.Previous != nil && e.Current != nil {
			return fmt.Sprintf("Skipped: %s, now %s",
				trackLabel(e.Previous.Artist, e.Previous.Title),
				trackLabel(e.Current.Artist, e.Current.Title))
		}
		return "Track skipped"

	case EventPause:
		if e.Current != nil {
			return "Paused at " + e.Current.Elapsed
		}
		return "Paused"

	case EventResume:
		return "Playing"

	case EventDurationKnown:
		if e.Current != nil {
			return "Length: " + e.Current.Duration
		}
		return "Length known"

	default:
		return "Unknown event"
	}
}

func trackLabel(artist, title string) string {
	if artist == "" {
		return title
	}
	return artist + " - " + title
}

// eventEmoji returns an emoji for the event type.
func eventEmoji(t EventType) string {
	switch t {
	case EventTrackChange:
		return "🎵"
	case EventTrackComplete:
		return "✅"
	case EventTrackSkip:
		return "⏭️"
	case EventPause:
		return "⏸️"
	case EventResume:
		return "▶️"
	case EventDurationKnown:
		return "⏱️"
	default:
		return "❓"
	}
}

// eventTypeName returns the name of the event type.
func eventTypeName(t EventType) string {
	switch t {
	case EventTrackChange:
		return "track_change"
	case EventTrackComplete:
		return "track_complete"
	case EventTrackSkip:
		return "track_skip"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventDurationKnown:
		return "duration"
	default:
		return "unknown"
	}
}
