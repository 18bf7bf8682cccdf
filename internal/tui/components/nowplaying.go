package components

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/tessro/serenade/internal/core"
	"github.com/tessro/serenade/internal/cover"
	"github.com/tessro/serenade/internal/display"
	"github.com/tessro/serenade/internal/tui/styles"
)

// framePeriod is how long each vinyl frame is shown.
const framePeriod = 120 * time.Millisecond

// TimeWidth is the cell width reserved for each time label around the
// progress bar.
const TimeWidth = 5

var spinner = []string{"◐", "◓", "◑", "◒"}

// NowPlaying displays the cover, track info, controls and progress.
type NowPlaying struct {
	renderer *cover.Renderer
	now      func() time.Time
}

// NewNowPlaying creates a new NowPlaying component
func NewNowPlaying(r *cover.Renderer) *NowPlaying {
	if r == nil {
		r = cover.NewRenderer()
	}
	return &NowPlaying{renderer: r, now: time.Now}
}

// framer is implemented by video covers that expose a frame clock.
type framer interface {
	Frame(period time.Duration) int
}

func (n *NowPlaying) frame(snap display.Snapshot) int {
	if f, ok := snap.Cover.Video.(framer); ok {
		return f.Frame(framePeriod)
	}
	if snap.CoverPlaying {
		return int(n.now().UnixMilli() / framePeriod.Milliseconds())
	}
	return 0
}

// CoverLines renders the cover into exactly height lines of width cells.
// Video covers are drawn as a spinning record; image covers that cannot
// be loaded fall back to a placeholder.
func (n *NowPlaying) CoverLines(snap display.Snapshot, source string, width, height int) []string {
	var lines []string
	switch {
	case width <= 0 || height <= 0:
		return nil
	case snap.Cover.Kind == core.CoverVideo:
		lines = vinyl(n.frame(snap), width, height)
	default:
		art, err := n.renderer.Render(snap.Cover.Asset, source, width, height)
		if err != nil || art == "" {
			lines = placeholder(width, height)
		} else {
			lines = strings.Split(art, "\n")
		}
	}
	return fit(lines, width, height)
}

// InfoLines renders the title, artist, a blank line and the controls.
func (n *NowPlaying) InfoLines(snap display.Snapshot, width int) []string {
	title := snap.Title
	if snap.Cover.Overlay && snap.CoverPlaying {
		title = spinner[n.frame(snap)%len(spinner)] + " " + title
	}
	return []string{
		styles.Title.Render(runewidth.Truncate(title, width, "…")),
		styles.Subtitle.Render(runewidth.Truncate(snap.Artist, width, "…")),
		"",
		ControlsLine(snap.PlayLabel, snap.CoverPlaying),
	}
}

// ProgressLine renders "elapsed bar duration" in exactly width cells.
func ProgressLine(snap display.Snapshot, width int) string {
	barWidth := max(width-2*TimeWidth-2, 0)
	elapsed := fmt.Sprintf("%*s", TimeWidth, snap.Elapsed)
	duration := fmt.Sprintf("%-*s", TimeWidth, snap.Duration)
	return styles.Muted.Render(elapsed) + " " +
		styles.ProgressBar(snap.Progress, barWidth) + " " +
		styles.Muted.Render(duration)
}

// Button identifies a transport control.
type Button int

const (
	ButtonPrev Button = iota
	ButtonPlay
	ButtonNext
)

// Span is the horizontal extent [From, To) of a control, relative to the
// start of the controls line.
type Span struct {
	Button   Button
	From, To int
}

const controlGap = 2

func controlLabels(playLabel string) []string {
	return []string{"⏮", playLabel, "⏭"}
}

// ControlSpans returns where each control is drawn.
func ControlSpans(playLabel string) []Span {
	spans := make([]Span, 0, 3)
	x := 0
	for i, label := range controlLabels(playLabel) {
		w := runewidth.StringWidth("[" + label + "]")
		spans = append(spans, Span{Button: Button(i), From: x, To: x + w})
		x += w + controlGap
	}
	return spans
}

// ControlsLine renders the prev, play/pause and next controls.
func ControlsLine(playLabel string, playing bool) string {
	labels := controlLabels(playLabel)
	playStyle := styles.Paused
	if playing {
		playStyle = styles.Playing
	}
	gap := strings.Repeat(" ", controlGap)
	return styles.Dim.Render("["+labels[0]+"]") + gap +
		playStyle.Render("["+labels[1]+"]") + gap +
		styles.Dim.Render("["+labels[2]+"]")
}

// vinyl draws a record with a highlight that moves with the frame.
func vinyl(frame, width, height int) []string {
	const sectors = 8
	cx, cy := float64(width-1)/2, float64(height-1)/2
	rx, ry := max(float64(width)/2, 1), max(float64(height)/2, 1)
	lit := frame % sectors

	label := lipgloss.NewStyle().Foreground(styles.Accent)
	groove := styles.Dim
	shine := lipgloss.NewStyle().Foreground(styles.Primary)

	lines := make([]string, height)
	for y := range height {
		var b strings.Builder
		for x := range width {
			dx, dy := (float64(x)-cx)/rx, (float64(y)-cy)/ry
			r := math.Hypot(dx, dy)
			switch {
			case r > 1:
				b.WriteByte(' ')
			case r < 0.2:
				b.WriteString(label.Render("●"))
			default:
				angle := math.Atan2(dy, dx) + math.Pi
				sector := int(angle/(2*math.Pi)*sectors) % sectors
				if sector == lit {
					b.WriteString(shine.Render("▓"))
				} else if int(r*6)%2 == 0 {
					b.WriteString(groove.Render("▒"))
				} else {
					b.WriteString(groove.Render("░"))
				}
			}
		}
		lines[y] = b.String()
	}
	return lines
}

func placeholder(width, height int) []string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}
	note := "♪"
	mid := height / 2
	pad := max((width-1)/2, 0)
	lines[mid] = strings.Repeat(" ", pad) + styles.Dim.Render(note) + strings.Repeat(" ", max(width-pad-1, 0))
	return lines
}

// fit pads or trims lines to exactly height lines of width cells.
func fit(lines []string, width, height int) []string {
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		out[i] = line
	}
	return out
}
