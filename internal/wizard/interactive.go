// Package wizard holds the interactive prompts used when a command is run
// from a terminal.
package wizard

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/tessro/serenade/internal/core"
	serrors "github.com/tessro/serenade/internal/errors"
	"golang.org/x/term"
)

// ErrCancelled is returned when the user backs out of a prompt.
var ErrCancelled = errors.New("selection cancelled")

// Interactive provides interactive fallback functionality.
type Interactive struct {
	enabled bool
}

// NewInteractive creates a new interactive handler.
func NewInteractive() *Interactive {
	return &Interactive{
		enabled: true,
	}
}

// SetEnabled enables or disables interactive mode.
func (i *Interactive) SetEnabled(enabled bool) {
	i.enabled = enabled
}

// IsTerminal returns true if stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// CanInteract returns true if interactive mode is available.
func (i *Interactive) CanInteract() bool {
	return i.enabled && IsTerminal()
}

// PromptTrack asks which track to start with. ok is false when prompting
// is not possible.
func (i *Interactive) PromptTrack(pl *core.Playlist) (index int, ok bool, err error) {
	if !i.CanInteract() {
		return 0, false, nil
	}
	index, err = RunTrackPicker(pl)
	if err != nil {
		return 0, false, err
	}
	return index, true, nil
}

// TrackOptions builds one picker option per track, valued by its index.
func TrackOptions(pl *core.Playlist) []huh.Option[int] {
	options := make([]huh.Option[int], 0, pl.Len())
	for i, t := range pl.Tracks {
		label := fmt.Sprintf("%2d. %s", i+1, t.Title)
		if t.Artist != "" {
			label += " — " + t.Artist
		}
		options = append(options, huh.NewOption(label, i))
	}
	return options
}

// RunTrackPicker shows a track picker and returns the chosen index.
func RunTrackPicker(pl *core.Playlist) (int, error) {
	if pl.IsEmpty() {
		return 0, serrors.ErrEmptyPlaylist
	}

	var selected int
	title := "Select a track"
	if pl.Name != "" {
		title = pl.Name
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Description("Playback starts from this track").
				Options(TrackOptions(pl)...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return 0, ErrCancelled
		}
		return 0, fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	return selected, nil
}
