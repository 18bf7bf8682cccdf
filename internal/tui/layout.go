package tui

import "github.com/tessro/serenade/internal/tui/components"

const (
	maxCardWidth    = 80
	minContentWidth = 30
	maxCoverWidth   = 24
	minCoverHeight  = 4 // title, artist, blank, controls

	// Lines of the card that are neither cover nor playlist rows: two
	// border lines, header, blank, blank, progress, blank, list header.
	cardOverhead = 8
)

// layout positions every element of the player on screen. View and the
// mouse handler both derive positions from it.
type layout struct {
	ok bool

	width, height int
	mainHeight    int // rows above the status bar

	cardX, cardY, cardW, cardH int
	contentX, contentY         int
	contentW                   int

	coverW, coverH int
	infoX, infoW   int
	controlsRow    int

	progressRow int
	barX, barW  int

	listHeaderRow int
	listRow       int
	listRows      int
}

func computeLayout(width, height, tracks int) layout {
	l := layout{width: width, height: height, mainHeight: height - 1}

	l.cardW = min(width-4, maxCardWidth)
	l.contentW = l.cardW - 4 // border and padding on each side
	if l.contentW < minContentWidth {
		return l
	}

	l.coverW = min(maxCoverWidth, l.contentW/3)
	l.coverH = max(l.coverW/2, minCoverHeight)
	for l.coverH > minCoverHeight && l.mainHeight-cardOverhead-l.coverH < 1 {
		l.coverH--
	}
	available := l.mainHeight - cardOverhead - l.coverH
	if available < 1 {
		return l
	}
	l.listRows = min(max(tracks, 1), available)
	l.cardH = cardOverhead + l.coverH + l.listRows

	l.cardX = (width - l.cardW) / 2
	l.cardY = (l.mainHeight - l.cardH) / 2
	l.contentX = l.cardX + 2
	l.contentY = l.cardY + 1

	l.infoX = l.contentX + l.coverW + 2
	l.infoW = l.contentW - l.coverW - 2
	l.controlsRow = l.contentY + 2 + 3

	l.progressRow = l.contentY + 3 + l.coverH
	l.barX = l.contentX + components.TimeWidth + 1
	l.barW = l.contentW - 2*components.TimeWidth - 2

	l.listHeaderRow = l.contentY + 5 + l.coverH
	l.listRow = l.listHeaderRow + 1

	l.ok = true
	return l
}

type targetKind int

const (
	targetNone targetKind = iota
	targetProgress
	targetTrack
	targetButton
)

// target is what a click landed on.
type target struct {
	kind   targetKind
	index  int // track index for targetTrack
	x      int // offset into the bar for targetProgress
	button components.Button
}

// hit resolves a click at (x, y). offset is the playlist's first visible
// entry.
func (l layout) hit(x, y, offset, tracks int, playLabel string) target {
	if !l.ok {
		return target{}
	}

	if y == l.progressRow && x >= l.barX && x < l.barX+l.barW {
		return target{kind: targetProgress, x: x - l.barX}
	}

	if y >= l.listRow && y < l.listRow+l.listRows && x >= l.contentX && x < l.contentX+l.contentW {
		i := offset + (y - l.listRow)
		if i >= 0 && i < tracks {
			return target{kind: targetTrack, index: i}
		}
		return target{}
	}

	if y == l.controlsRow {
		for _, s := range components.ControlSpans(playLabel) {
			if x >= l.infoX+s.From && x < l.infoX+s.To {
				return target{kind: targetButton, button: s.Button}
			}
		}
	}
	return target{}
}
