package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todo/internal/focus"
	"github.com/idilsaglam/todo/internal/ui"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	frameMargin     = 1
	addRegionHeight = 5
	minListHeight   = 6
	minRegionWidth  = 24
)

// Renderer turns a State into a frame. It keeps only presentation
// settings, never session state.
type Renderer struct {
	theme  ui.Theme
	styles styles
	keys   KeyMap
}

// NewRenderer builds a renderer for the given theme and key bindings.
func NewRenderer(t ui.Theme, keys KeyMap) Renderer {
	return Renderer{theme: t, styles: newStyles(t), keys: keys}
}

// Render paints the list region above the fixed-height add region.
// The focused region gets the double, coloured border. A zero size falls
// back to 80x24.
func (r Renderer) Render(st *State, width, height int) string {
	if width <= 0 || height <= 0 {
		width, height = defaultWidth, defaultHeight
	}
	w := max(width-2*frameMargin, minRegionWidth)
	listH := max(height-2*frameMargin-addRegionHeight, minListHeight)

	_, addFocused := st.Focus.Current().(*focus.Add)

	body := lipgloss.JoinVertical(lipgloss.Left,
		r.listRegion(st, w, listH, !addFocused),
		r.addRegion(st, w, addFocused),
	)
	return lipgloss.NewStyle().Margin(frameMargin).Render(body)
}

// region returns the bordered box for a region and its usable content width.
func (r Renderer) region(focused bool, focusedStyle lipgloss.Style, width, height int) (lipgloss.Style, int) {
	s := r.styles.unfocused
	if focused {
		s = focusedStyle
	}
	s = s.Width(width - s.GetHorizontalBorderSize()).Height(height - s.GetVerticalBorderSize())
	return s, width - s.GetHorizontalFrameSize()
}

func (r Renderer) listRegion(st *State, width, height int, focused bool) string {
	box, contentW := r.region(focused, r.styles.focusedList, width, height)

	// header and help take one line each
	bodyH := max(height-box.GetVerticalFrameSize()-2, 1)

	items := st.Items.Items()
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{Item: it})
	}

	l := list.New(li, itemDelegate{theme: r.theme, styles: r.styles}, contentW, bodyH)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.SetStatusBarItemName("item", "items")
	l.DisableQuitKeybindings()
	l.Styles.NoItems = r.styles.muted
	l.Styles.PaginationStyle = r.styles.muted
	if i, ok := st.Items.Selected(); ok {
		l.Select(i)
	}

	h := help.New()
	h.Width = contentW

	content := lipgloss.JoinVertical(lipgloss.Left,
		clip(r.header(st, contentW), contentW),
		lipgloss.NewStyle().Height(bodyH).Render(l.View()),
		clip(h.ShortHelpView(r.keys.ListHelp()), contentW),
	)
	return box.Render(content)
}

func (r Renderer) header(st *State, width int) string {
	done, pending := st.Items.Stats()
	counts := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		r.styles.title.Render("Todo List"),
		r.styles.success.Render(r.theme.SymDone), done,
		r.styles.pending.Render(r.theme.SymPending), pending,
		r.styles.accent.Render("Total"), done+pending,
	)
	bar := r.styles.muted.Render(ui.ProgressBar(done, done+pending, 10))
	if lipgloss.Width(counts)+lipgloss.Width(bar)+3 > width {
		return counts
	}
	return counts + "   " + bar
}

func (r Renderer) addRegion(st *State, width int, focused bool) string {
	box, contentW := r.region(focused, r.styles.focusedAdd, width, addRegionHeight)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Press A to add a new item"
	ti.CharLimit = 0
	ti.Width = max(contentW-lipgloss.Width(ti.Prompt)-1, 1)
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.PlaceholderStyle = r.styles.muted

	hint := ""
	if d := st.Focus.Draft(); focused && d != nil {
		ti.SetValue(d.String())
		ti.Focus()
		ti.CursorEnd()

		h := help.New()
		h.Width = contentW
		hint = clip(h.ShortHelpView(r.keys.AddHelp()), contentW)
	}

	title := r.styles.muted.Render("Add New")
	if focused {
		title = r.styles.title.Render("Add New")
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, title, ti.View(), hint))
}

// clip cuts s to one line of at most width cells so a region never grows.
// help.ShortHelpView can overshoot its Width when no ellipsis fits.
func clip(s string, width int) string {
	return lipgloss.NewStyle().MaxWidth(width).MaxHeight(1).Render(s)
}
