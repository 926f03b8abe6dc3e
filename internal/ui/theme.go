package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols.
// Focused regions use the Focus* colours, unfocused ones use Muted.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.TerminalColor
	FocusList, FocusAdd, Selected, Text           lipgloss.TerminalColor
	BoxUnchecked, BoxChecked                      string
	SymDone, SymPending, Selector                 string
}

// ThemeByName returns the named theme; unknown names give classic.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:  "neon",
			Title: lipgloss.Color("13"), Muted: lipgloss.Color("8"), Accent: lipgloss.Color("14"),
			Success: lipgloss.Color("10"), Error: lipgloss.Color("9"), Pending: lipgloss.Color("11"),
			FocusList: lipgloss.Color("14"), FocusAdd: lipgloss.Color("10"),
			Selected: lipgloss.Color("13"), Text: lipgloss.Color("15"),
			BoxUnchecked: "◻", BoxChecked: "◼",
			SymDone: "✔", SymPending: "•", Selector: "->",
		}
	case "mono":
		none := lipgloss.NoColor{}
		return Theme{
			Name:  "mono",
			Title: none, Muted: none, Accent: none,
			Success: none, Error: none, Pending: none,
			FocusList: none, FocusAdd: none, Selected: none, Text: none,
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymDone: "x", SymPending: "-", Selector: ">",
		}
	default: // classic
		return Theme{
			Name:  "classic",
			Title: lipgloss.Color("15"), Muted: lipgloss.Color("8"), Accent: lipgloss.Color("12"),
			Success: lipgloss.Color("42"), Error: lipgloss.Color("9"), Pending: lipgloss.Color("214"),
			FocusList: lipgloss.Color("14"), FocusAdd: lipgloss.Color("2"),
			Selected: lipgloss.Color("5"), Text: lipgloss.Color("7"),
			BoxUnchecked: "☐", BoxChecked: "☑",
			SymDone: "✔", SymPending: "•", Selector: "->",
		}
	}
}

// Themes lists the known theme names.
func Themes() []string { return []string{"classic", "neon", "mono"} }
