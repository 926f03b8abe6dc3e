package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todo/internal/ui"
)

func render(st *State, w, h int) string {
	return NewRenderer(ui.ThemeByName("classic"), DefaultKeyMap()).Render(st, w, h)
}

func TestRender_FocusedRegionGetsDoubleBorder(t *testing.T) {
	st := NewState("Buy milk")

	out := render(st, 80, 24)
	require.Equal(t, 1, strings.Count(out, "╔"))
	require.Equal(t, 1, strings.Count(out, "┌"))
	assert.Less(t, strings.Index(out, "╔"), strings.Index(out, "┌"), "list region on top is focused")

	press(t, st, runeKey('A'))
	out = render(st, 80, 24)
	require.Equal(t, 1, strings.Count(out, "╔"))
	require.Equal(t, 1, strings.Count(out, "┌"))
	assert.Less(t, strings.Index(out, "┌"), strings.Index(out, "╔"), "add region below is focused")
}

func TestRender_ItemsAndMarkers(t *testing.T) {
	st := NewState("Buy milk", "Walk dog")
	press(t, st, runeKey('j'), keyEnter)

	out := render(st, 80, 24)
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "Walk dog")
	assert.Contains(t, out, "☐")
	assert.Contains(t, out, "☑")
	assert.Contains(t, out, "->")

	lines := strings.Split(out, "\n")
	var walk string
	for _, l := range lines {
		if strings.Contains(l, "Walk dog") {
			walk = l
		}
	}
	assert.Contains(t, walk, "->", "selector on the selected item")
	assert.Contains(t, walk, "☑", "completed marker")
}

func TestRender_DraftOnlyInAddFocus(t *testing.T) {
	st := NewState()
	out := render(st, 80, 24)
	assert.Contains(t, out, "No items.")
	assert.Contains(t, out, "Press A to add")

	press(t, st, runeKey('A'))
	typeText(t, st, "Clean house")
	out = render(st, 80, 24)
	assert.Contains(t, out, "Clean house")
	assert.NotContains(t, out, "Press A to add")
	assert.Contains(t, out, "submit")
}

func TestRender_FrameSize(t *testing.T) {
	st := NewState("Buy milk", "Walk dog")
	press(t, st, runeKey('j'), keyEnter)

	for _, w := range []int{30, 35, 40, 45, 50, 60, 80, 120} {
		for _, h := range []int{16, 20, 24} {
			out := render(st, w, h)
			assert.Equal(t, h, lipgloss.Height(out), "list focus %dx%d", w, h)
			assert.Equal(t, w, lipgloss.Width(out), "list focus %dx%d", w, h)
		}
	}

	press(t, st, runeKey('A'))
	typeText(t, st, "a fairly long title that will not fit in a narrow box")
	for _, w := range []int{30, 40, 50} {
		out := render(st, w, 24)
		assert.Equal(t, 24, lipgloss.Height(out), "add focus width %d", w)
		assert.Equal(t, w, lipgloss.Width(out), "add focus width %d", w)
	}

	out := render(st, 0, 0)
	assert.Equal(t, defaultHeight, lipgloss.Height(out))
	assert.Equal(t, defaultWidth, lipgloss.Width(out))
}

func TestRender_DoneStyleStrikesThrough(t *testing.T) {
	for _, name := range ui.Themes() {
		assert.True(t, newStyles(ui.ThemeByName(name)).done.GetStrikethrough(), name)
	}
}

func TestRender_LongListKeepsSelectionVisible(t *testing.T) {
	var titles []string
	for i := 0; i < 40; i++ {
		titles = append(titles, "item "+string(rune('A'+i%26))+string(rune('a'+i/26)))
	}
	st := NewState(titles...)
	for k := 0; k < 35; k++ {
		press(t, st, keyDown)
	}

	out := render(st, 80, 24)
	assert.Contains(t, out, titles[35])
	assert.NotContains(t, out, titles[0])
}

func TestRender_DoesNotMutateState(t *testing.T) {
	st := NewState("a", "b")
	press(t, st, runeKey('j'), runeKey('A'))
	typeText(t, st, "x")

	_ = render(st, 80, 24)

	assert.Equal(t, 1, selected(t, st))
	assert.Equal(t, "x", st.Focus.Draft().String())
	assert.Equal(t, 2, st.Items.Len())
}

func TestRender_TruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("w", 200)
	st := NewState(long)

	out := render(st, 50, 20)
	assert.NotContains(t, out, long)
	assert.Contains(t, out, "…")
	assert.Equal(t, 50, lipgloss.Width(out))
}
