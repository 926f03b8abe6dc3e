package model

// Store holds the session's items in insertion order plus the selected index.
// Out-of-range calls are silent no-ops; the store never returns errors.
//
// The selection is absent exactly when the list is empty; otherwise
// 0 <= selected < len(items). The zero value is an empty store.
type Store struct {
	items    []Item
	selected int
}

// NewStore builds a store from titles with the first item selected.
func NewStore(titles ...string) *Store {
	s := &Store{}
	for _, t := range titles {
		s.Add(t)
	}
	return s
}

// Add appends a new pending item.
func (s *Store) Add(title string) {
	s.items = append(s.items, Item{Title: title})
}

// Toggle flips Done on the item at index.
func (s *Store) Toggle(index int) {
	if !s.valid(index) {
		return
	}
	s.items[index].Done = !s.items[index].Done
}

// Delete removes the item at index and re-derives the selection.
func (s *Store) Delete(index int) {
	if !s.valid(index) {
		return
	}
	s.items = append(s.items[:index], s.items[index+1:]...)

	switch {
	case len(s.items) == 0:
		s.selected = 0
	case s.selected > index:
		// keep pointing at the same item
		s.selected--
	case s.selected >= len(s.items):
		s.selected = len(s.items) - 1
	}
}

// ToggleSelected toggles the selected item, if any.
func (s *Store) ToggleSelected() {
	if i, ok := s.Selected(); ok {
		s.Toggle(i)
	}
}

// DeleteSelected deletes the selected item, if any.
func (s *Store) DeleteSelected() {
	if i, ok := s.Selected(); ok {
		s.Delete(i)
	}
}

// SelectNext moves the selection down, clamped at the last item.
func (s *Store) SelectNext() {
	if s.selected < len(s.items)-1 {
		s.selected++
	}
}

// SelectPrevious moves the selection up, clamped at the first item.
func (s *Store) SelectPrevious() {
	if s.selected > 0 {
		s.selected--
	}
}

// Selected returns the selected index; ok is false when the list is empty.
func (s *Store) Selected() (index int, ok bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.selected, true
}

// Items returns a copy of the items.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int { return len(s.items) }

// Stats counts done and pending items.
func (s *Store) Stats() (done, pending int) {
	for _, it := range s.items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

func (s *Store) valid(index int) bool { return index >= 0 && index < len(s.items) }
