package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles palette + symbols for one display mode.
// Renderers take a Theme explicitly; there is no package-level current theme.
type Theme struct {
	Name string

	Title, Accent, Muted, Text lipgloss.Style
	Success, Pending, Error    lipgloss.Style
	Done, Selected, Help       lipgloss.Style
	Border                     lipgloss.Color

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
}

var (
	lightAccent = lipgloss.Color("#0070f3")
	darkAccent  = lipgloss.Color("#00bcd4")
)

// ForMode returns the light or dark theme.
func ForMode(dark bool) Theme {
	accent, text, muted, border := lightAccent, lipgloss.Color("#333333"), lipgloss.Color("#888888"), lipgloss.Color("#dddddd")
	name := "light"
	if dark {
		accent, text, muted, border = darkAccent, lipgloss.Color("#ffffff"), lipgloss.Color("#aaaaaa"), lipgloss.Color("#555555")
		name = "dark"
	}
	return Theme{
		Name:     name,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Accent:   lipgloss.NewStyle().Foreground(accent),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Text:     lipgloss.NewStyle().Foreground(text),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f44336")).Bold(true),
		Done:     lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Help:     lipgloss.NewStyle().Faint(true),
		Border:   border,

		BoxUnchecked: "☐",
		BoxChecked:   "☑",
		SymDone:      "✔",
		SymPending:   "•",
	}
}
