package tui

import (
	"github.com/idilsaglam/todo/internal/focus"
	"github.com/idilsaglam/todo/internal/model"
)

// State is the whole session state. It is owned by the event loop and
// passed by pointer to Dispatch and to the renderer each frame.
type State struct {
	Items *model.Store
	Focus *focus.Controller
}

// NewState starts in list focus with the given items.
func NewState(titles ...string) *State {
	return &State{
		Items: model.NewStore(titles...),
		Focus: focus.NewController(),
	}
}
