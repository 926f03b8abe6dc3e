// Package focus tracks which view owns keyboard input.
//
// Focus is a closed set of two variants: List, and Add which carries the
// draft being typed. The draft only exists while Add is focused, so it
// cannot leak into the list view.
package focus

import "strings"

// Focus is implemented only by List and *Add.
type Focus interface {
	// Name identifies the focused view in logs and the UI.
	Name() string
	sealed()
}

// List is the initial focus: navigation and item commands.
type List struct{}

func (List) Name() string { return "list" }
func (List) sealed()      {}

// Add is the add-item form with its draft buffer.
type Add struct {
	Draft Draft
}

func (*Add) Name() string { return "add" }
func (*Add) sealed()      {}

// Adder receives submitted titles.
type Adder interface {
	Add(title string)
}

// Controller owns the current focus and performs the only legal
// transitions: List->Add, Add->List (submit) and Add->List (cancel).
type Controller struct {
	current Focus
}

// NewController starts in List focus.
func NewController() *Controller {
	return &Controller{current: List{}}
}

// Current returns the focused view.
func (c *Controller) Current() Focus {
	if c.current == nil {
		c.current = List{}
	}
	return c.current
}

// Draft returns the draft when Add is focused, nil otherwise.
func (c *Controller) Draft() *Draft {
	if a, ok := c.Current().(*Add); ok {
		return &a.Draft
	}
	return nil
}

// EnterAdd moves List->Add with an empty draft.
// It reports false if Add was already focused.
func (c *Controller) EnterAdd() bool {
	if _, ok := c.Current().(List); !ok {
		return false
	}
	c.current = &Add{}
	return true
}

// Submit moves Add->List. A draft with visible text is handed to dst
// verbatim; a blank draft creates nothing. The draft is discarded either
// way. It returns the submitted title and whether an item was created.
func (c *Controller) Submit(dst Adder) (title string, added bool) {
	a, ok := c.Current().(*Add)
	if !ok {
		return "", false
	}
	c.current = List{}

	title = a.Draft.String()
	if strings.TrimSpace(title) == "" {
		return title, false
	}
	dst.Add(title)
	return title, true
}

// Cancel moves Add->List, discarding the draft.
func (c *Controller) Cancel() bool {
	if _, ok := c.Current().(*Add); !ok {
		return false
	}
	c.current = List{}
	return true
}
