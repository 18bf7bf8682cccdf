package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/serenade/internal/hearts"
	"github.com/tessro/serenade/internal/tui/styles"
)

// bigHeart is the size from which a heart is drawn filled.
const bigHeart = 20

// HeartsLayer is the hearts background rasterized onto a grid of cells.
// Hearts drift upward by a quarter of the height over their animation
// and fade through styles.HeartShades.
type HeartsLayer struct {
	width, height int
	cells         [][]heartCell
}

type heartCell struct {
	glyph rune // 0 when empty
	shade int
}

// NewHeartsLayer places hs onto a width x height grid as of now.
func NewHeartsLayer(hs []hearts.Heart, now time.Time, width, height int) *HeartsLayer {
	l := &HeartsLayer{width: max(width, 0), height: max(height, 0)}
	l.cells = make([][]heartCell, l.height)
	for i := range l.cells {
		l.cells[i] = make([]heartCell, l.width)
	}

	shades := len(styles.HeartShades)
	for _, h := range hs {
		phase := h.Phase(now)
		col := int(h.X / 100 * float64(l.width))
		row := int(h.Y/100*float64(l.height) - phase*float64(l.height)/4)
		if row < 0 || row >= l.height || col < 0 || col >= l.width {
			continue
		}
		glyph := '♡'
		if h.Size >= bigHeart {
			glyph = '♥'
		}
		shade := 0
		if shades > 0 {
			shade = min(int(phase*float64(shades)), shades-1)
		}
		l.cells[row][col] = heartCell{glyph: glyph, shade: shade}
	}
	return l
}

// Glyph returns the heart drawn at a cell, or 0.
func (l *HeartsLayer) Glyph(row, col int) rune {
	if row < 0 || row >= l.height || col < 0 || col >= l.width {
		return 0
	}
	return l.cells[row][col].glyph
}

// Segment renders columns [from, to) of a row. Cells outside the grid
// render as blanks.
func (l *HeartsLayer) Segment(row, from, to int) string {
	if to <= from {
		return ""
	}
	var b strings.Builder
	blanks := 0
	flush := func() {
		if blanks > 0 {
			b.WriteString(strings.Repeat(" ", blanks))
			blanks = 0
		}
	}
	for col := from; col < to; col++ {
		if row < 0 || row >= l.height || col < 0 || col >= l.width || l.cells[row][col].glyph == 0 {
			blanks++
			continue
		}
		flush()
		c := l.cells[row][col]
		style := lipgloss.NewStyle()
		if c.shade < len(styles.HeartShades) {
			style = style.Foreground(styles.HeartShades[c.shade])
		}
		b.WriteString(style.Render(string(c.glyph)))
	}
	flush()
	return b.String()
}

// Row renders a full row.
func (l *HeartsLayer) Row(row int) string {
	return l.Segment(row, 0, l.width)
}
