// Package styles provides the lipgloss color theme for switchback.
//
// The theme is a plain value passed to whatever renders, never a global:
// tests render with NoneTheme and get byte-stable output.
package styles

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Theme defines the color palette for menu and picker rendering.
type Theme struct {
	Warning color // menu index brackets
	Accent  color // prompt line, picker cursor
	Muted   color // hints, secondary text
	Match   color // fuzzy-matched characters
}

type color = lipgloss.TerminalColor

// DefaultTheme is the standard color scheme.
var DefaultTheme = Theme{
	Warning: lipgloss.Color("214"), // orange
	Accent:  lipgloss.Color("212"), // pink
	Muted:   lipgloss.Color("240"), // dark gray
	Match:   lipgloss.Color("212"), // pink
}

// NoneTheme renders without any colors (terminal defaults).
var NoneTheme = Theme{
	Warning: lipgloss.NoColor{},
	Accent:  lipgloss.NoColor{},
	Muted:   lipgloss.NoColor{},
	Match:   lipgloss.NoColor{},
}

// WarningStyle styles the menu index bracket.
func (t Theme) WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Warning)
}

// AccentStyle styles the prompt and the picker cursor line.
func (t Theme) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent)
}

// MutedStyle styles hints and secondary text.
func (t Theme) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// MatchStyle styles fuzzy-matched characters.
func (t Theme) MatchStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Match).Bold(true).Underline(true)
}

// Detect picks the theme for the given output writer: DefaultTheme on a
// terminal, NoneTheme otherwise or when colors are disabled explicitly.
func Detect(w io.Writer, noColor bool) Theme {
	if noColor {
		return NoneTheme
	}
	f, ok := w.(*os.File)
	if !ok {
		return NoneTheme
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return DefaultTheme
	}
	return NoneTheme
}
