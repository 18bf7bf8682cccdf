package tui

import (
	"testing"

	"github.com/tessro/serenade/internal/tui/components"
)

func TestComputeLayout(t *testing.T) {
	l := computeLayout(100, 40, 3)
	if !l.ok {
		t.Fatal("layout not ok for 100x40")
	}

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"cardW", l.cardW, 80},
		{"contentW", l.contentW, 76},
		{"coverW", l.coverW, 24},
		{"coverH", l.coverH, 12},
		{"listRows", l.listRows, 3},
		{"cardH", l.cardH, 23},
		{"cardX", l.cardX, 10},
		{"cardY", l.cardY, 8},
		{"contentX", l.contentX, 12},
		{"contentY", l.contentY, 9},
		{"controlsRow", l.controlsRow, 14},
		{"progressRow", l.progressRow, 24},
		{"barX", l.barX, 18},
		{"barW", l.barW, 64},
		{"listHeaderRow", l.listHeaderRow, 26},
		{"listRow", l.listRow, 27},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}

	if bottom := l.cardY + l.cardH; bottom > l.mainHeight {
		t.Errorf("card bottom %d overflows main area %d", bottom, l.mainHeight)
	}
}

func TestComputeLayoutLongPlaylistScrolls(t *testing.T) {
	l := computeLayout(100, 30, 500)
	if !l.ok {
		t.Fatal("layout not ok")
	}
	if l.cardY+l.cardH > l.mainHeight {
		t.Errorf("card of height %d does not fit in %d rows", l.cardH, l.mainHeight)
	}
	if l.listRows >= 500 || l.listRows < 1 {
		t.Errorf("listRows = %d", l.listRows)
	}
}

func TestComputeLayoutTooSmall(t *testing.T) {
	for _, size := range [][2]int{{20, 40}, {100, 10}, {0, 0}} {
		if l := computeLayout(size[0], size[1], 3); l.ok {
			t.Errorf("computeLayout(%d, %d) ok = true", size[0], size[1])
		}
	}
}

func TestHit(t *testing.T) {
	l := computeLayout(100, 40, 3)
	spans := components.ControlSpans("⏯")

	tests := []struct {
		name   string
		x, y   int
		offset int
		want   target
	}{
		{"bar start", 18, 24, 0, target{kind: targetProgress, x: 0}},
		{"bar end", 81, 24, 0, target{kind: targetProgress, x: 63}},
		{"right of bar", 82, 24, 0, target{}},
		{"elapsed label", 14, 24, 0, target{}},
		{"first track", 12, 27, 0, target{kind: targetTrack, index: 0}},
		{"third track", 50, 29, 0, target{kind: targetTrack, index: 2}},
		{"scrolled", 50, 27, 1, target{kind: targetTrack, index: 1}},
		{"past list", 12, 30, 0, target{}},
		{"list header", 12, 26, 0, target{}},
		{"prev button", l.infoX + spans[0].From, 14, 0, target{kind: targetButton, button: components.ButtonPrev}},
		{"play button", l.infoX + spans[1].From, 14, 0, target{kind: targetButton, button: components.ButtonPlay}},
		{"next button", l.infoX + spans[2].To - 1, 14, 0, target{kind: targetButton, button: components.ButtonNext}},
		{"between buttons", l.infoX + spans[0].To, 14, 0, target{}},
		{"hearts margin", 2, 2, 0, target{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.hit(tt.x, tt.y, tt.offset, 3, "⏯")
			if got != tt.want {
				t.Errorf("hit(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitNotOK(t *testing.T) {
	var l layout
	if got := l.hit(1, 1, 0, 3, "⏯"); got.kind != targetNone {
		t.Errorf("hit on empty layout = %+v", got)
	}
}
