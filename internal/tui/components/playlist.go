package components

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/tessro/serenade/internal/core"
	"github.com/tessro/serenade/internal/tui/styles"
)

// Playlist displays the track list with a keyboard cursor.
type Playlist struct {
	offset int
	cursor int
}

// NewPlaylist creates a new Playlist component
func NewPlaylist() *Playlist {
	return &Playlist{}
}

// CursorDown moves the cursor down, stopping at the last track.
func (p *Playlist) CursorDown(n int) {
	if p.cursor < n-1 {
		p.cursor++
	}
}

// CursorUp moves the cursor up
func (p *Playlist) CursorUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// SetCursor moves the cursor to i.
func (p *Playlist) SetCursor(i int) {
	if i >= 0 {
		p.cursor = i
	}
}

// Cursor returns the cursor index
func (p *Playlist) Cursor() int {
	return p.cursor
}

// Offset returns the index of the first visible row.
func (p *Playlist) Offset() int {
	return p.offset
}

// Scroll keeps the cursor inside a window of rows entries.
func (p *Playlist) Scroll(n, rows int) {
	if n == 0 {
		p.cursor, p.offset = 0, 0
		return
	}
	p.cursor = min(max(p.cursor, 0), n-1)
	if rows < 1 {
		rows = 1
	}
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+rows {
		p.offset = p.cursor - rows + 1
	}
	p.offset = min(max(p.offset, 0), max(n-rows, 0))
}

// Lines renders exactly rows lines, each at most width cells wide. The
// active entry is marked; the cursor row is highlighted when focused.
func (p *Playlist) Lines(pl *core.Playlist, active, width, rows int, focused bool) []string {
	lines := make([]string, 0, rows)
	n := pl.Len()
	if n == 0 {
		lines = append(lines, styles.Muted.Render(runewidth.Truncate("Nothing to play", width, "…")))
	}
	p.Scroll(n, rows)

	for i := p.offset; i < n && len(lines) < rows; i++ {
		lines = append(lines, p.line(pl.Tracks[i], i, i == active, focused && i == p.cursor, width))
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return lines
}

// Fixed overhead: "XX. " (4) + "♪ " or "  " (2) + " — " (3) = 9 cells
const rowOverhead = 9

func (p *Playlist) line(track core.Track, i int, active, cursor bool, width int) string {
	num := fmt.Sprintf("%2d.", i+1)
	title, artist := fitTitleArtist(track.Title, track.Artist, width-rowOverhead)

	var line string
	switch {
	case active:
		line = styles.Active.Render(joinRow(num+" ♪ ", title, artist))
	default:
		line = styles.Dim.Render(num) + "   " + title
		if artist != "" {
			line += " — " + styles.Muted.Render(artist)
		}
	}
	if cursor {
		line = styles.Cursor.Render(runewidth.FillRight(joinRow(num+"   ", title, artist), width))
		if active {
			line = styles.Cursor.Render(styles.Active.Render(runewidth.FillRight(joinRow(num+" ♪ ", title, artist), width)))
		}
	}
	return line
}

func joinRow(prefix, title, artist string) string {
	if artist == "" {
		return prefix + title
	}
	return prefix + title + " — " + artist
}

// fitTitleArtist truncates title and artist to share available cells,
// giving the artist at least a third of the space when both are long.
func fitTitleArtist(title, artist string, available int) (string, string) {
	if available <= 0 {
		return "", ""
	}
	tw, aw := runewidth.StringWidth(title), runewidth.StringWidth(artist)
	if tw+aw <= available {
		return title, artist
	}

	artistSpace := max(available/3, 10)
	if artistSpace > available-10 {
		artistSpace = max(available-10, 0)
	}
	artistSpace = min(artistSpace, aw)
	titleSpace := available - artistSpace

	return truncate(title, titleSpace), truncate(artist, artistSpace)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
