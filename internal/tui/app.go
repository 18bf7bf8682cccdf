package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/tessro/serenade/internal/cover"
	"github.com/tessro/serenade/internal/display"
	"github.com/tessro/serenade/internal/hearts"
	"github.com/tessro/serenade/internal/player"
	"github.com/tessro/serenade/internal/tui/components"
	"github.com/tessro/serenade/internal/tui/styles"
)

const errorDisplay = 5 * time.Second

// App holds the TUI application state
type App struct {
	player      *player.Controller
	hearts      *hearts.Generator // nil when the background is disabled
	renderer    *cover.Renderer
	refreshRate time.Duration
	errs        chan error
}

// NewApp creates a new TUI application around a controller that has
// already been initialized.
func NewApp(c *player.Controller, gen *hearts.Generator, refreshRate time.Duration) *App {
	if refreshRate <= 0 {
		refreshRate = 250 * time.Millisecond
	}
	return &App{
		player:      c,
		hearts:      gen,
		renderer:    cover.NewRenderer(),
		refreshRate: refreshRate,
		errs:        make(chan error, 8),
	}
}

// ReportError queues an error for the status bar. It never blocks, so it
// can be used as the controller's error callback.
func (a *App) ReportError(err error) {
	if err == nil {
		return
	}
	select {
	case a.errs <- err:
	default:
	}
}

// Model is the main TUI model
type Model struct {
	app    *App
	width  int
	height int

	// State
	snap   display.Snapshot
	hearts []hearts.Heart

	// Components
	playlist   *components.Playlist
	nowPlaying *components.NowPlaying
	keys       keyMap
	help       help.Model

	// Overlays
	showHelp bool

	// Error handling
	lastError   error
	errorExpiry time.Time // When to clear the error

	quitting bool
	now      func() time.Time
}

// NewModel creates a new TUI model
func NewModel(app *App) Model {
	m := Model{
		app:        app,
		playlist:   components.NewPlaylist(),
		nowPlaying: components.NewNowPlaying(app.renderer),
		keys:       defaultKeys(),
		help:       help.New(),
		now:        time.Now,
	}
	m.refresh()
	return m
}

// Messages
type tickMsg time.Time
type errMsg struct{ err error }
type actionDoneMsg struct{}

// Commands
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.app.refreshRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// do runs a controller action off the update loop.
func (m Model) do(action func() error) tea.Cmd {
	return func() tea.Msg {
		if err := action(); err != nil {
			return errMsg{err}
		}
		return actionDoneMsg{}
	}
}

// refresh copies the display surfaces and hearts into the model. The
// playlist cursor follows the active track when it changes.
func (m *Model) refresh() {
	prev := m.snap.Active
	m.snap = m.app.player.Surface().Snapshot()
	if m.snap.Active != prev && m.snap.Active >= 0 {
		m.playlist.SetCursor(m.snap.Active)
	}
	if m.app.hearts != nil {
		m.hearts = m.app.hearts.Field().Snapshot()
	} else {
		m.hearts = nil
	}
}

func (m *Model) setError(err error) {
	m.lastError = err
	m.errorExpiry = m.now().Add(errorDisplay)
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.drainErrors()
		if m.lastError != nil && m.now().After(m.errorExpiry) {
			m.lastError = nil
		}
		m.refresh()
		return m, m.tick()

	case errMsg:
		m.setError(msg.err)
		m.refresh()
		return m, nil

	case actionDoneMsg:
		m.refresh()
		return m, nil
	}

	return m, nil
}

func (m *Model) drainErrors() {
	for {
		select {
		case err := <-m.app.errs:
			m.setError(err)
		default:
			return
		}
	}
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// Help overlay
	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}

	c := m.app.player
	n := c.Playlist().Len()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m, m.do(c.TogglePlay)

	case key.Matches(msg, m.keys.Prev):
		return m, m.do(c.Prev)

	case key.Matches(msg, m.keys.Next):
		return m, m.do(c.Next)

	case key.Matches(msg, m.keys.Down):
		m.playlist.CursorDown(n)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.playlist.CursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		i := m.playlist.Cursor()
		return m, m.do(func() error { return c.Select(i) })

	case key.Matches(msg, m.keys.Seek):
		tenths := float64(msg.String()[0]-'0') / 10
		return m, m.do(func() error { return c.SeekFraction(tenths) })
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	c := m.app.player
	n := c.Playlist().Len()
	l := computeLayout(m.width, m.height, n)

	t := l.hit(msg.X, msg.Y, m.playlist.Offset(), n, m.snap.PlayLabel)
	switch t.kind {
	case targetProgress:
		return m, m.do(func() error { return c.SetProgress(t.x, l.barW) })
	case targetTrack:
		m.playlist.SetCursor(t.index)
		return m, m.do(func() error { return c.Select(t.index) })
	case targetButton:
		switch t.button {
		case components.ButtonPrev:
			return m, m.do(c.Prev)
		case components.ButtonPlay:
			return m, m.do(c.TogglePlay)
		case components.ButtonNext:
			return m, m.do(c.Next)
		}
	}
	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	pl := m.app.player.Playlist()
	l := computeLayout(m.width, m.height, pl.Len())
	if !l.ok {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			styles.Muted.Render("Window too small"))
	}

	layer := components.NewHeartsLayer(m.hearts, m.now(), m.width, l.mainHeight)
	card := m.renderCard(l)

	rows := make([]string, 0, m.height)
	for y := 0; y < l.mainHeight; y++ {
		if y >= l.cardY && y < l.cardY+len(card) {
			rows = append(rows,
				layer.Segment(y, 0, l.cardX)+
					card[y-l.cardY]+
					layer.Segment(y, l.cardX+l.cardW, m.width))
			continue
		}
		rows = append(rows, layer.Row(y))
	}
	rows = append(rows, m.renderStatusBar())

	return strings.Join(rows, "\n")
}

// renderCard draws the player panel as exactly l.cardH lines.
func (m Model) renderCard(l layout) []string {
	c := m.app.player
	pl := c.Playlist()

	name := pl.Name
	if name == "" {
		name = "serenade"
	}
	header := styles.PanelTitle(runewidth.Truncate(name, l.contentW-2, "…"), true)

	source := ""
	if t, err := pl.At(m.snap.Active); err == nil {
		source = t.Source
	}
	coverLines := m.nowPlaying.CoverLines(m.snap, source, l.coverW, l.coverH)
	info := m.nowPlaying.InfoLines(m.snap, l.infoW)

	inner := make([]string, 0, l.cardH-2)
	inner = append(inner, header, "")
	for i, line := range coverLines {
		row := line
		if i < len(info) {
			row += "  " + info[i]
		}
		inner = append(inner, row)
	}
	inner = append(inner, "", components.ProgressLine(m.snap, l.contentW), "")

	count := styles.Dim.Render(trackCount(pl.Len()))
	inner = append(inner, styles.PanelTitle("Playlist", false)+" "+count)
	inner = append(inner, m.playlist.Lines(pl, m.snap.Active, l.contentW, l.listRows, true)...)

	box := styles.Panel(m.snap.CoverPlaying).
		Width(l.cardW - 2).
		Render(strings.Join(inner, "\n"))

	lines := strings.Split(box, "\n")
	for len(lines) < l.cardH {
		lines = append(lines, strings.Repeat(" ", l.cardW))
	}
	return lines[:l.cardH]
}

func trackCount(n int) string {
	if n == 1 {
		return "1 track"
	}
	return humanize.Comma(int64(n)) + " tracks"
}

func (m Model) renderStatusBar() string {
	status := m.help.ShortHelpView(m.keys.ShortHelp())

	if m.lastError != nil {
		status = styles.Paused.Render("Error: " + m.lastError.Error())
	}

	return lipgloss.NewStyle().
		Width(m.width).
		MaxHeight(1).
		Padding(0, 1).
		Render(status)
}

func (m Model) renderHelp() string {
	title := styles.Highlight.Render("serenade - keyboard and mouse")
	body := m.help.FullHelpView(m.keys.FullHelp())
	mouse := styles.Muted.Render("click a track to play it, click the bar to seek")
	footer := styles.Dim.Render("Press ? or Esc to close")

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", mouse, "", footer)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		styles.BorderStyle.Padding(1, 2).Render(content))
}

// Run starts the hearts background and the TUI, and stops the background
// when the TUI exits.
func Run(app *App) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if app.hearts != nil {
		app.hearts.Start(ctx)
		defer app.hearts.Stop()
	}

	p := tea.NewProgram(NewModel(app), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
