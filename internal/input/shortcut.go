package input

import (
	"fmt"

	"github.com/bethropolis/emacsmode/internal/input/key"
)

// Shortcut binds a key chord to an action.
type Shortcut struct {
	Chord  key.Chord
	Action ActionID
}

// NewShortcut parses pattern and binds it to action.
func NewShortcut(pattern string, action ActionID) (Shortcut, error) {
	chord, err := key.ParseChord(pattern)
	if err != nil {
		return Shortcut{}, err
	}
	if !action.IsValid() {
		return Shortcut{}, fmt.Errorf("binding %q: invalid action %v", pattern, action)
	}
	return Shortcut{Chord: chord, Action: action}, nil
}

// MustShortcut is like NewShortcut but panics on error. It is meant for
// tables compiled into the program.
func MustShortcut(pattern string, action ActionID) Shortcut {
	s, err := NewShortcut(pattern, action)
	if err != nil {
		panic(err)
	}
	return s
}

// IsEmpty reports whether the shortcut has no keys left.
func (s Shortcut) IsEmpty() bool {
	return s.Chord.IsEmpty()
}

// IsAccepted reports whether ev carries exactly the shortcut's modifiers
// and its leading key.
func (s Shortcut) IsAccepted(ev key.Event) bool {
	return s.Chord.Accepts(ev)
}

// HasFollower reports whether ev is accepted and more keys remain after it.
func (s Shortcut) HasFollower(ev key.Event) bool {
	return s.IsAccepted(ev) && s.Chord.Len() > 1
}

// Follower returns the shortcut that remains once ev is consumed: the same
// modifiers and action over the rest of the key sequence. It returns the
// zero Shortcut and false when ev has no follower.
func (s Shortcut) Follower(ev key.Event) (Shortcut, bool) {
	if !s.HasFollower(ev) {
		return Shortcut{}, false
	}
	return Shortcut{Chord: s.Chord.Rest(), Action: s.Action}, true
}

func (s Shortcut) String() string {
	return fmt.Sprintf("%s -> %s", s.Chord, s.Action)
}
