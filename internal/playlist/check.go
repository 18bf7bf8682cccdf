package playlist

import (
	"fmt"
	"os"
	"strings"

	"github.com/tessro/serenade/internal/audio"
	"github.com/tessro/serenade/internal/core"
	serrors "github.com/tessro/serenade/internal/errors"
)

// Issue is a problem found with one track.
type Issue struct {
	Index int
	Err   error
}

func (i Issue) Error() string {
	return fmt.Sprintf("track %d: %v", i.Index+1, i.Err)
}

// Check verifies that every track's source is a readable, supported file
// and that its cover exists.
func Check(p *core.Playlist) []Issue {
	var issues []Issue
	for i, t := range p.Tracks {
		if isURL(t.Source) {
			issues = append(issues, Issue{i, fmt.Errorf("%w: remote source %s", serrors.ErrUnsupportedFormat, t.Source)})
		} else if !audio.Supported(t.Source) {
			issues = append(issues, Issue{i, fmt.Errorf("%w: %s", serrors.ErrUnsupportedFormat, t.Source)})
		} else if _, err := os.Stat(t.Source); err != nil {
			issues = append(issues, Issue{i, fmt.Errorf("source: %w", err)})
		}

		if t.Cover != "" && !isURL(t.Cover) {
			if _, err := os.Stat(t.Cover); err != nil {
				issues = append(issues, Issue{i, fmt.Errorf("cover: %w", err)})
			}
		}
	}
	return issues
}

func isURL(s string) bool {
	return strings.Contains(s, "://")
}
