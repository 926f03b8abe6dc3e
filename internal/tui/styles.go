package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todo/internal/ui"
)

// styles are derived once from the theme.
type styles struct {
	title    lipgloss.Style
	success  lipgloss.Style
	pending  lipgloss.Style
	accent   lipgloss.Style
	muted    lipgloss.Style
	text     lipgloss.Style
	selected lipgloss.Style
	done     lipgloss.Style

	focusedList lipgloss.Style
	focusedAdd  lipgloss.Style
	unfocused   lipgloss.Style
}

func newStyles(t ui.Theme) styles {
	region := lipgloss.NewStyle().Padding(0, 1)
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		success:  lipgloss.NewStyle().Foreground(t.Success),
		pending:  lipgloss.NewStyle().Foreground(t.Pending),
		accent:   lipgloss.NewStyle().Foreground(t.Accent),
		muted:    lipgloss.NewStyle().Faint(true).Foreground(t.Muted),
		text:     lipgloss.NewStyle().Foreground(t.Text),
		selected: lipgloss.NewStyle().Bold(true).Foreground(t.Selected),
		done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),

		focusedList: region.Border(lipgloss.DoubleBorder()).BorderForeground(t.FocusList),
		focusedAdd:  region.Border(lipgloss.DoubleBorder()).BorderForeground(t.FocusAdd),
		unfocused:   region.Border(lipgloss.NormalBorder()).BorderForeground(t.Muted),
	}
}
