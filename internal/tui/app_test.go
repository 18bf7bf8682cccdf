package tui

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/serenade/internal/core"
	"github.com/tessro/serenade/internal/display"
	"github.com/tessro/serenade/internal/player"
)

type stubAudio struct {
	mu      sync.Mutex
	src     string
	playing bool
	seeks   []time.Duration
	events  chan core.Event
}

func (a *stubAudio) SetSource(src string) { a.mu.Lock(); a.src = src; a.mu.Unlock() }
func (a *stubAudio) Load() error          { return nil }
func (a *stubAudio) Play() error          { a.mu.Lock(); a.playing = true; a.mu.Unlock(); return nil }
func (a *stubAudio) Pause() error         { a.mu.Lock(); a.playing = false; a.mu.Unlock(); return nil }
func (a *stubAudio) Seek(d time.Duration) error {
	a.mu.Lock()
	a.seeks = append(a.seeks, d)
	a.mu.Unlock()
	return nil
}
func (a *stubAudio) Position() time.Duration         { return 0 }
func (a *stubAudio) Duration() (time.Duration, bool) { return 100 * time.Second, true }
func (a *stubAudio) Events() <-chan core.Event       { return a.events }
func (a *stubAudio) Close() error                    { return nil }

func newTestModel(t *testing.T, n int) (Model, *player.Controller, *stubAudio) {
	t.Helper()
	tracks := make([]core.Track, n)
	for i := range tracks {
		tracks[i] = core.Track{
			Source: "song" + string(rune('a'+i)) + ".mp3",
			Title:  "Song " + string(rune('A'+i)),
			Artist: "Artist",
		}
	}
	audio := &stubAudio{events: make(chan core.Event, 8)}
	c := player.New(core.NewPlaylist("Mix", tracks), audio, display.NewSurface(), player.Options{})
	if err := c.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = c.Close() })

	m := NewModel(NewApp(c, nil, time.Second))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model), c, audio
}

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, cmd := m.Update(msg)
	m = updated.(Model)
	if cmd != nil {
		if out := cmd(); out != nil {
			updated, _ = m.Update(out)
			m = updated.(Model)
		}
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyBindings(t *testing.T) {
	m, c, _ := newTestModel(t, 3)

	m = press(t, m, runes(" "))
	if !c.IsPlaying() {
		t.Error("space did not start playback")
	}

	m = press(t, m, runes("n"))
	if i, _ := c.Index(); i != 1 {
		t.Errorf("after n Index() = %d, want 1", i)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if i, _ := c.Index(); i != 0 {
		t.Errorf("after left Index() = %d, want 0", i)
	}

	m = press(t, m, runes("j"))
	m = press(t, m, runes("j"))
	m = press(t, m, runes("j"))
	if got := m.playlist.Cursor(); got != 2 {
		t.Errorf("Cursor() = %d, want 2 (clamped)", got)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if i, _ := c.Index(); i != 2 {
		t.Errorf("after enter Index() = %d, want 2", i)
	}

	m = press(t, m, runes("?"))
	if !m.showHelp {
		t.Error("? did not open help")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHelp {
		t.Error("esc did not close help")
	}

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestDigitSeeks(t *testing.T) {
	m, _, audio := newTestModel(t, 1)
	press(t, m, runes("3"))

	audio.mu.Lock()
	defer audio.mu.Unlock()
	if len(audio.seeks) != 1 || audio.seeks[0] != 30*time.Second {
		t.Errorf("seeks = %v, want [30s]", audio.seeks)
	}
}

func TestMouse(t *testing.T) {
	m, c, audio := newTestModel(t, 3)
	l := computeLayout(100, 40, 3)

	click := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}

	m = press(t, m, click(l.contentX+3, l.listRow+1))
	if i, _ := c.Index(); i != 1 || !c.IsPlaying() {
		t.Errorf("row click: Index() = %d playing = %v, want 1 true", i, c.IsPlaying())
	}

	m = press(t, m, click(l.barX+l.barW/2, l.progressRow))
	audio.mu.Lock()
	seeks := append([]time.Duration(nil), audio.seeks...)
	audio.mu.Unlock()
	if len(seeks) != 1 || seeks[0] != 50*time.Second {
		t.Errorf("bar click seeks = %v, want [50s]", seeks)
	}

	release := tea.MouseMsg{X: l.contentX, Y: l.listRow, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	press(t, m, release)
	if i, _ := c.Index(); i != 1 {
		t.Errorf("release changed Index() to %d", i)
	}
}

func TestViewFillsScreen(t *testing.T) {
	m, _, _ := newTestModel(t, 3)
	view := m.View()

	lines := strings.Split(view, "\n")
	if len(lines) != 40 {
		t.Errorf("View() has %d lines, want 40", len(lines))
	}
	for _, want := range []string{"Song A", "Mix", "Playlist", "0:00"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	for i, line := range lines[:39] {
		if w := lipgloss.Width(line); w > 100 {
			t.Errorf("line %d is %d cells wide", i, w)
		}
	}
}

func TestViewEmptyPlaylist(t *testing.T) {
	m, _, _ := newTestModel(t, 0)
	if view := m.View(); !strings.Contains(view, player.EmptyTitle) {
		t.Errorf("View() missing placeholder %q", player.EmptyTitle)
	}

	m = press(t, m, runes(" "))
	if m.lastError == nil {
		t.Error("toggle on empty playlist did not surface an error")
	}
}

func TestReportedErrorsExpire(t *testing.T) {
	m, _, _ := newTestModel(t, 1)
	now := time.Unix(1000, 0)
	m.now = func() time.Time { return now }

	m.app.ReportError(errors.New("boom"))
	updated, _ := m.Update(tickMsg(now))
	m = updated.(Model)
	if m.lastError == nil || !strings.Contains(m.View(), "boom") {
		t.Fatal("reported error not shown")
	}

	now = now.Add(errorDisplay + time.Second)
	updated, _ = m.Update(tickMsg(now))
	m = updated.(Model)
	if m.lastError != nil {
		t.Errorf("error still shown after %v", errorDisplay)
	}
}

func TestViewTooSmall(t *testing.T) {
	m, _, _ := newTestModel(t, 3)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 8})
	if view := updated.(Model).View(); !strings.Contains(view, "too small") {
		t.Errorf("View() = %q", view)
	}
}
