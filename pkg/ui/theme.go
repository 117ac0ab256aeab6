package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles and colors used by the explorer views. All styles
// are built from a single renderer so output degrades correctly on dumb
// terminals and in tests.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Highlight lipgloss.Color

	Selected lipgloss.Style // full-row highlight for the cursor
	Marker   lipgloss.Style // expand/collapse indicators
	DirName  lipgloss.Style
	FileName lipgloss.Style
	Footer   lipgloss.Style
	Border   lipgloss.Style
}

// DefaultTheme builds the standard theme. The accent is a lipgloss color
// string (ANSI number or hex), typically from config.
func DefaultTheme(r *lipgloss.Renderer, accent string) Theme {
	if accent == "" {
		accent = "212"
	}
	primary := lipgloss.AdaptiveColor{Light: "236", Dark: "252"}
	muted := lipgloss.AdaptiveColor{Light: "245", Dark: "241"}
	highlight := lipgloss.Color(accent)

	return Theme{
		Renderer:  r,
		Primary:   primary,
		Muted:     muted,
		Highlight: highlight,

		Selected: r.NewStyle().Foreground(lipgloss.Color("231")).Background(highlight).Bold(true),
		Marker:   r.NewStyle().Foreground(muted),
		DirName:  r.NewStyle().Foreground(primary).Bold(true),
		FileName: r.NewStyle().Foreground(primary),
		Footer:   r.NewStyle().Foreground(muted),
		Border:   r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted),
	}
}

// ExpandIndicator returns the marker shown before a node: collapsed and
// expanded directories get triangles, leaves a dot.
func ExpandIndicator(isDir, isOpen bool) string {
	if !isDir {
		return "·"
	}
	if isOpen {
		return "▾"
	}
	return "▸"
}
