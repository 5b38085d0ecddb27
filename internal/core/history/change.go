// Package history provides undo/redo functionality via a stack of edit groups.
package history

// ActionType indicates whether text was inserted or deleted.
type ActionType int

const (
	InsertAction ActionType = iota
	DeleteAction
)

func (a ActionType) String() string {
	if a == InsertAction {
		return "insert"
	}
	return "delete"
}

// Change represents a single, reversible text operation.
// Offsets count runes from the start of the document.
type Change struct {
	Type   ActionType
	Offset int    // Where the change began
	Text   string // Text inserted or text deleted
}

// End returns the offset just past the changed text.
func (c Change) End() int {
	return c.Offset + len([]rune(c.Text))
}

// Group is a run of changes undone and redone as one step.
type Group []Change
