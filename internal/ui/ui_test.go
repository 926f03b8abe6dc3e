package ui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 0, 10, "░░░░░░░░░░   0%"},
		{1, 2, 10, "█████░░░░░  50%"},
		{3, 3, 4, "█████ 100%"},
		{5, 4, 5, "█████ 125%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProgressBar(tt.done, tt.total, tt.width))
	}
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "neon", ThemeByName("NEON").Name)
	assert.Equal(t, "mono", ThemeByName("mono").Name)
	assert.Equal(t, "classic", ThemeByName("unknown").Name)
	assert.Equal(t, lipgloss.NoColor{}, ThemeByName("mono").FocusList)

	for _, n := range Themes() {
		th := ThemeByName(n)
		assert.NotEmpty(t, th.BoxChecked, n)
		assert.NotEqual(t, th.BoxChecked, th.BoxUnchecked, n)
	}
}

func TestFail(t *testing.T) {
	var buf bytes.Buffer
	Fail(&buf, ThemeByName("neon"), "boom")
	assert.Contains(t, buf.String(), "✖ boom")
}
