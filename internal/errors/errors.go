package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrEmptyPlaylist     = errors.New("playlist is empty")
	ErrIndexOutOfRange   = errors.New("track index out of range")
	ErrPlaybackRejected  = errors.New("playback rejected")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrSourceNotLoaded   = errors.New("no source loaded")
	ErrPlaylistNotFound  = errors.New("playlist not found")
	ErrInvalidPlaylist   = errors.New("invalid playlist")
	ErrConfigNotFound    = errors.New("config file not found")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrAudioUnavailable  = errors.New("audio output unavailable")
)

// SerenadeError wraps an error with a user-friendly suggestion.
type SerenadeError struct {
	Err        error
	Suggestion string
}

func (e *SerenadeError) Error() string {
	return e.Err.Error()
}

func (e *SerenadeError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &SerenadeError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var serenadeErr *SerenadeError
	if errors.As(err, &serenadeErr) && serenadeErr.Suggestion != "" {
		return serenadeErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, ErrEmptyPlaylist) {
		return "Add [[track]] entries to the playlist file, or use --dir to play a folder"
	}

	if errors.Is(err, ErrPlaylistNotFound) || errors.Is(err, ErrInvalidPlaylist) {
		return "Run 'serenade playlist validate <file>' to check the playlist"
	}

	if errors.Is(err, ErrUnsupportedFormat) {
		return "Supported formats are mp3, wav, flac and ogg"
	}

	if errors.Is(err, ErrAudioUnavailable) || strings.Contains(errStr, "speaker") {
		return "This build has no audio output. Rebuild with CGO_ENABLED=1"
	}

	if errors.Is(err, ErrPlaybackRejected) {
		return "Check that the audio file exists and is readable"
	}

	if errors.Is(err, ErrConfigNotFound) || errors.Is(err, ErrInvalidConfig) || strings.Contains(errStr, "config") {
		return "Run 'serenade config init' to create a default configuration"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}

// PartialResult represents a result that may have partial failures.
type PartialResult[T any] struct {
	Data   T
	Errors []error
}

// HasErrors returns true if there were any errors.
func (p *PartialResult[T]) HasErrors() bool {
	return len(p.Errors) > 0
}

// AddError adds an error to the partial result.
func (p *PartialResult[T]) AddError(err error) {
	if err != nil {
		p.Errors = append(p.Errors, err)
	}
}

// Err joins all collected errors, or returns nil.
func (p *PartialResult[T]) Err() error {
	return errors.Join(p.Errors...)
}

// ErrorSummary returns a summary of all errors.
func (p *PartialResult[T]) ErrorSummary() string {
	if len(p.Errors) == 0 {
		return ""
	}
	if len(p.Errors) == 1 {
		return p.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors occurred:\n", len(p.Errors)))
	for i, err := range p.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}
