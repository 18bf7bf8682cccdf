package styles

import (
	"fmt"
	"strings"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Theme names accepted by Apply.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Colors, set by Apply.
var (
	Primary   lipgloss.TerminalColor
	Accent    lipgloss.TerminalColor
	Success   lipgloss.TerminalColor
	Warning   lipgloss.TerminalColor
	Error     lipgloss.TerminalColor
	Border    lipgloss.TerminalColor
	Text      lipgloss.TerminalColor
	TextMuted lipgloss.TerminalColor
	TextDim   lipgloss.TerminalColor

	// HeartShades go from a freshly spawned heart to a fading one.
	HeartShades []lipgloss.TerminalColor
)

// Text styles
var (
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Label     lipgloss.Style
	Highlight lipgloss.Style
	Muted     lipgloss.Style
	Dim       lipgloss.Style
	Playing   lipgloss.Style
	Paused    lipgloss.Style
	Active    lipgloss.Style
	Cursor    lipgloss.Style
)

// Border styles
var (
	BorderStyle   lipgloss.Style
	FocusedBorder lipgloss.Style
)

func init() {
	_ = Apply(ThemeAuto)
}

type shade func(catppuccin.Flavor) catppuccin.Color

// Apply switches the palette. "auto" adapts to the terminal background.
func Apply(theme string) error {
	var pick func(shade) lipgloss.TerminalColor
	switch theme {
	case ThemeAuto, "":
		pick = func(s shade) lipgloss.TerminalColor {
			return lipgloss.AdaptiveColor{Light: s(catppuccin.Latte).Hex, Dark: s(catppuccin.Mocha).Hex}
		}
	case ThemeDark:
		pick = func(s shade) lipgloss.TerminalColor { return lipgloss.Color(s(catppuccin.Mocha).Hex) }
	case ThemeLight:
		pick = func(s shade) lipgloss.TerminalColor { return lipgloss.Color(s(catppuccin.Latte).Hex) }
	default:
		return fmt.Errorf("unknown theme %q", theme)
	}

	Primary = pick(catppuccin.Flavor.Mauve)
	Accent = pick(catppuccin.Flavor.Pink)
	Success = pick(catppuccin.Flavor.Green)
	Warning = pick(catppuccin.Flavor.Peach)
	Error = pick(catppuccin.Flavor.Red)
	Border = pick(catppuccin.Flavor.Surface2)
	Text = pick(catppuccin.Flavor.Text)
	TextMuted = pick(catppuccin.Flavor.Subtext0)
	TextDim = pick(catppuccin.Flavor.Overlay0)
	HeartShades = []lipgloss.TerminalColor{
		pick(catppuccin.Flavor.Red),
		pick(catppuccin.Flavor.Maroon),
		pick(catppuccin.Flavor.Pink),
		pick(catppuccin.Flavor.Flamingo),
		pick(catppuccin.Flavor.Surface2),
	}

	Title = lipgloss.NewStyle().Bold(true).Foreground(Text)
	Subtitle = lipgloss.NewStyle().Foreground(TextMuted)
	Label = lipgloss.NewStyle().Foreground(TextDim)
	Highlight = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Muted = lipgloss.NewStyle().Foreground(TextMuted)
	Dim = lipgloss.NewStyle().Foreground(TextDim)
	Playing = lipgloss.NewStyle().Foreground(Success)
	Paused = lipgloss.NewStyle().Foreground(Warning)
	Active = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	Cursor = lipgloss.NewStyle().Reverse(true)

	BorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)
	FocusedBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary)
	return nil
}

// Panel creates a styled panel with optional focus
func Panel(focused bool) lipgloss.Style {
	if focused {
		return FocusedBorder.Padding(0, 1)
	}
	return BorderStyle.Padding(0, 1)
}

// PanelTitle creates a styled panel title
func PanelTitle(title string, focused bool) string {
	style := Label
	if focused {
		style = Highlight
	}
	return style.Render(" " + title + " ")
}

// ProgressBar creates a progress bar string exactly width cells wide.
func ProgressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(percent / 100 * float64(width))
	filled = min(max(filled, 0), width)

	filledStyle := lipgloss.NewStyle().Foreground(Primary)
	emptyStyle := lipgloss.NewStyle().Foreground(Border)

	return filledStyle.Render(strings.Repeat("━", filled)) +
		emptyStyle.Render(strings.Repeat("─", width-filled))
}

// StatusIcon returns an icon for playback status
func StatusIcon(playing bool) string {
	if playing {
		return Playing.Render("▶")
	}
	return Paused.Render("⏸")
}
