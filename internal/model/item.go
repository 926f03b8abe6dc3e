package model

// Item is the domain model for a todo entry.
// Only Done changes after creation.
type Item struct {
	Title string
	Done  bool
}
