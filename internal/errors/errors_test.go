package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestGetSuggestion(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"empty playlist", fmt.Errorf("toggle: %w", ErrEmptyPlaylist), "Add [[track]]"},
		{"invalid playlist", ErrInvalidPlaylist, "serenade playlist validate"},
		{"format", ErrUnsupportedFormat, "mp3, wav, flac and ogg"},
		{"audio", ErrAudioUnavailable, "CGO_ENABLED=1"},
		{"config", errors.New("failed to load config"), "serenade config init"},
		{"explicit", WithSuggestion(errors.New("boom"), "try again"), "try again"},
		{"unknown", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetSuggestion(tt.err)
			if tt.want == "" && got != "" {
				t.Errorf("GetSuggestion() = %q, want empty", got)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("GetSuggestion() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	got := Format(ErrEmptyPlaylist)
	if !strings.HasPrefix(got, "Error: playlist is empty") || !strings.Contains(got, "Suggestion:") {
		t.Errorf("Format() = %q", got)
	}
	if got := Format(errors.New("boom")); got != "Error: boom" {
		t.Errorf("Format() = %q, want %q", got, "Error: boom")
	}
}

func TestSerenadeErrorUnwrap(t *testing.T) {
	err := WithSuggestion(ErrPlaybackRejected, "hint")
	if !errors.Is(err, ErrPlaybackRejected) {
		t.Error("errors.Is(WithSuggestion(ErrPlaybackRejected)) = false, want true")
	}
}

func TestPartialResult(t *testing.T) {
	var p PartialResult[[]string]
	if p.HasErrors() || p.Err() != nil || p.ErrorSummary() != "" {
		t.Error("zero PartialResult should have no errors")
	}

	p.AddError(nil)
	p.AddError(errors.New("first"))
	if got := p.ErrorSummary(); got != "first" {
		t.Errorf("ErrorSummary() = %q, want %q", got, "first")
	}

	p.AddError(ErrInvalidPlaylist)
	if !errors.Is(p.Err(), ErrInvalidPlaylist) {
		t.Error("Err() should wrap ErrInvalidPlaylist")
	}
	if !strings.HasPrefix(p.ErrorSummary(), "2 errors occurred") {
		t.Errorf("ErrorSummary() = %q", p.ErrorSummary())
	}
}
