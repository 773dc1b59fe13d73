package ui

import (
	"github.com/charmbracelet/lipgloss"

	"alertdeck/internal/deck"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for critical cards, delete
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "238" // Darker gray - for fading cards
	ColorWarning   = "208" // Orange - for warning cards
	ColorInfo      = "39"  // Blue - for info cards
)

// Styles contains shared style definitions used by the board and its modals.
var Styles = struct {
	Title    lipgloss.Style
	Logo     lipgloss.Style
	Badge    lipgloss.Style
	Toggle   lipgloss.Style
	ToggleOn lipgloss.Style
	Mode     lipgloss.Style

	StackName  lipgloss.Style
	StackBox   lipgloss.Style
	CardBox    lipgloss.Style
	FrontBox   lipgloss.Style
	Selected   lipgloss.Style
	Icon       lipgloss.Style
	IconDanger lipgloss.Style
	Switch     lipgloss.Style

	Muted     lipgloss.Style
	Faded     lipgloss.Style
	Empty     lipgloss.Style
	Hint      lipgloss.Style
	HelpKey   lipgloss.Style
	LeaderBox lipgloss.Style

	ModalBox   lipgloss.Style
	ModalTitle lipgloss.Style
	ModalLabel lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Logo: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Badge: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Toggle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	ToggleOn: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Mode: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),

	StackName: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	StackBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	CardBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	FrontBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)),
	Selected: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)),
	Icon: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	IconDanger: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Switch: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),

	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Faded: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	HelpKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	LeaderBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),

	ModalBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2),
	ModalTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	ModalLabel: lipgloss.NewStyle(),
}

// severityStyle colors the severity marker of a card.
func severityStyle(s deck.Severity) lipgloss.Style {
	switch s {
	case deck.SeverityCritical:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger))
	case deck.SeverityWarning:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorInfo))
	}
}
