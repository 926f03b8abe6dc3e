package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item.
type listItem struct {
	model.Item
}

func (i listItem) FilterValue() string { return i.Title }

// itemDelegate paints one item per line: selector, checkbox, title.
// Completed titles are struck through.
type itemDelegate struct {
	theme  ui.Theme
	styles styles
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}

	prefix := runewidth.FillRight("", runewidth.StringWidth(d.theme.Selector)+1)
	if index == m.Index() {
		prefix = d.styles.selected.Render(d.theme.Selector) + " "
	}

	box := d.styles.muted.Render(d.theme.BoxUnchecked)
	if it.Done {
		box = d.styles.success.Render(d.theme.BoxChecked)
	}

	used := runewidth.StringWidth(d.theme.Selector) + 1 + runewidth.StringWidth(d.theme.BoxUnchecked) + 1
	title := it.Title
	if avail := m.Width() - used; avail > 0 {
		title = runewidth.Truncate(title, avail, "…")
	}

	switch {
	case it.Done:
		title = d.styles.done.Render(title)
	case index == m.Index():
		title = d.styles.selected.Render(title)
	default:
		title = d.styles.text.Render(title)
	}

	fmt.Fprintf(w, "%s%s %s", prefix, box, title)
}
