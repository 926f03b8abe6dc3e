package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/todo/internal/focus"
	"github.com/idilsaglam/todo/internal/logging"
)

// Outcome tells the event loop whether to keep running.
type Outcome int

const (
	Continue Outcome = iota
	Quit
)

// Dispatch applies key presses to st according to the focused view.
// It never renders.
//
// Bubble Tea reports printable runes read together as one KeyRunes
// message. Unless it is a paste, each rune is handled as its own key
// press, with the focus checked again before every rune.
func Dispatch(st *State, keys KeyMap, msg tea.KeyMsg) Outcome {
	if msg.Type != tea.KeyRunes || msg.Paste || len(msg.Runes) < 2 {
		return dispatchKey(st, keys, msg)
	}
	for _, r := range msg.Runes {
		one := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt}
		if dispatchKey(st, keys, one) == Quit {
			return Quit
		}
	}
	return Continue
}

func dispatchKey(st *State, keys KeyMap, msg tea.KeyMsg) Outcome {
	switch st.Focus.Current().(type) {
	case *focus.Add:
		dispatchAdd(st, keys, msg)
		return Continue
	default:
		return dispatchList(st, keys, msg)
	}
}

func dispatchList(st *State, keys KeyMap, msg tea.KeyMsg) Outcome {
	switch {
	case key.Matches(msg, keys.Quit):
		logging.Debug("quit requested", zap.String("key", msg.String()))
		return Quit
	case key.Matches(msg, keys.Down):
		st.Items.SelectNext()
	case key.Matches(msg, keys.Up):
		st.Items.SelectPrevious()
	case key.Matches(msg, keys.Toggle):
		if i, ok := st.Items.Selected(); ok {
			st.Items.Toggle(i)
			logging.Debug("item toggled", zap.Int("index", i))
		}
	case key.Matches(msg, keys.Delete):
		if i, ok := st.Items.Selected(); ok {
			st.Items.Delete(i)
			logging.Debug("item deleted", zap.Int("index", i), zap.Int("remaining", st.Items.Len()))
		}
	case key.Matches(msg, keys.Add):
		if st.Focus.EnterAdd() {
			logging.Debug("focus changed", zap.String("to", st.Focus.Current().Name()))
		}
	}
	return Continue
}

func dispatchAdd(st *State, keys KeyMap, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.Cancel):
		st.Focus.Cancel()
		logging.Debug("focus changed", zap.String("to", st.Focus.Current().Name()), zap.String("via", "cancel"))
	case key.Matches(msg, keys.Submit):
		title, added := st.Focus.Submit(st.Items)
		logging.Debug("focus changed", zap.String("to", st.Focus.Current().Name()), zap.String("via", "submit"),
			zap.String("title", title), zap.Bool("added", added))
	case key.Matches(msg, keys.Backspace):
		st.Focus.Draft().Backspace()
	case msg.Type == tea.KeySpace:
		st.Focus.Draft().Insert(' ')
	case msg.Type == tea.KeyRunes && !msg.Alt:
		st.Focus.Draft().Insert(msg.Runes...)
	}
}
