package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const symCross = "✖"

// Fail prints an error line in the theme's error colour.
func Fail(w io.Writer, t Theme, msg string) {
	style := lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	fmt.Fprintln(w, style.Render(symCross+" "+msg))
}
