package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#5A56E0")
	colorAccent  = lipgloss.Color("#F2A33C")
	colorMuted   = lipgloss.Color("240")
	colorGood    = lipgloss.Color("#8BC34A")
	colorInfo    = lipgloss.Color("#2196F3")
	colorBad     = lipgloss.Color("#E53935")
)

// Styles carries every lipgloss style the pages share. One instance is built
// at startup and passed down, keeping styling out of page logic.
type Styles struct {
	Logo       lipgloss.Style
	Header     lipgloss.Style
	Title      lipgloss.Style
	Subtle     lipgloss.Style
	Price      lipgloss.Style
	Rating     lipgloss.Style
	Cursor     lipgloss.Style
	Help       lipgloss.Style
	NotifyOK   lipgloss.Style
	NotifyInfo lipgloss.Style
	NotifyErr  lipgloss.Style
	Prompt     lipgloss.Style
	Input      lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Logo:       lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Header:     lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Title:      lipgloss.NewStyle().Bold(true),
		Subtle:     lipgloss.NewStyle().Foreground(colorMuted),
		Price:      lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Rating:     lipgloss.NewStyle().Foreground(colorGood),
		Cursor:     lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Help:       lipgloss.NewStyle().Foreground(colorMuted),
		NotifyOK:   lipgloss.NewStyle().Bold(true).Foreground(colorGood),
		NotifyInfo: lipgloss.NewStyle().Bold(true).Foreground(colorInfo),
		NotifyErr:  lipgloss.NewStyle().Bold(true).Foreground(colorBad),
		Prompt: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 3),
		Input: lipgloss.NewStyle().Foreground(colorPrimary),
	}
}
