package key

import (
	"errors"
	"fmt"
	"strings"
)

// Pattern errors
var (
	ErrEmptyPattern   = errors.New("empty key pattern")
	ErrInvalidPattern = errors.New("invalid key pattern")
	ErrNoKey          = errors.New("key pattern has no key")
)

// PatternSeparator delimits tokens in a chord pattern.
const PatternSeparator = "|"

var modifierTokens = map[string]Modifier{
	"<CONTROL>": ModCtrl,
	"<META>":    Meta,
	"<SHIFT>":   ModShift,
	"<ALT>":     ModAlt,
}

var keyTokens = map[string]Code{
	"<TAB>":        CodeTab,
	"<SPACE>":      CodeSpace,
	"<UNDERSCORE>": CodeUnderscore,
	"<ESC>":        CodeEscape,
	"<SLASH>":      CodeSlash,
}

// Chord is a modifier set applied to an ordered key sequence.
// The zero Chord is empty and accepts nothing.
type Chord struct {
	mods Modifier
	keys []Code
}

// NewChord builds a chord from parts. The key slice is copied.
func NewChord(mods Modifier, keys ...Code) Chord {
	return Chord{mods: mods, keys: append([]Code(nil), keys...)}
}

// ParseChord parses a pipe-delimited pattern such as "<META>|x|s".
func ParseChord(pattern string) (Chord, error) {
	if strings.TrimSpace(pattern) == "" {
		return Chord{}, ErrEmptyPattern
	}

	var c Chord
	for _, raw := range strings.Split(pattern, PatternSeparator) {
		tok := strings.ToUpper(strings.TrimSpace(raw))
		if tok == "" {
			return Chord{}, fmt.Errorf("%w: empty token in %q", ErrInvalidPattern, pattern)
		}
		if mod, ok := modifierTokens[tok]; ok {
			c.mods = c.mods.With(mod)
			continue
		}
		if code, ok := keyTokens[tok]; ok {
			c.keys = append(c.keys, code)
			continue
		}
		if r := []rune(tok); len(r) == 1 {
			if code, ok := LetterCode(r[0]); ok {
				c.keys = append(c.keys, code)
				continue
			}
		}
		return Chord{}, fmt.Errorf("%w: unknown token %q", ErrInvalidPattern, raw)
	}

	if len(c.keys) == 0 {
		return Chord{}, fmt.Errorf("%w: %q", ErrNoKey, pattern)
	}
	return c, nil
}

// Mods returns the chord's modifier set.
func (c Chord) Mods() Modifier { return c.mods }

// Len returns the number of keys remaining in the chord.
func (c Chord) Len() int { return len(c.keys) }

// IsEmpty reports whether the chord has no keys.
func (c Chord) IsEmpty() bool { return len(c.keys) == 0 }

// Keys returns a copy of the key sequence.
func (c Chord) Keys() []Code {
	return append([]Code(nil), c.keys...)
}

// First returns the leading key, or CodeNone for an empty chord.
func (c Chord) First() Code {
	if len(c.keys) == 0 {
		return CodeNone
	}
	return c.keys[0]
}

// Accepts reports whether ev has exactly the chord's modifiers and its
// leading key. A chord needing Ctrl does not accept Ctrl+Shift.
func (c Chord) Accepts(ev Event) bool {
	return len(c.keys) > 0 && ev.Matches(c.mods, c.keys[0])
}

// Rest returns the chord without its leading key.
func (c Chord) Rest() Chord {
	if len(c.keys) <= 1 {
		return Chord{mods: c.mods}
	}
	return NewChord(c.mods, c.keys[1:]...)
}

// Equal reports whether both chords have the same modifiers and keys.
func (c Chord) Equal(o Chord) bool {
	if c.mods != o.mods || len(c.keys) != len(o.keys) {
		return false
	}
	for i := range c.keys {
		if c.keys[i] != o.keys[i] {
			return false
		}
	}
	return true
}

// String renders the chord Emacs style, e.g. "C-x C-s".
func (c Chord) String() string {
	parts := make([]string, len(c.keys))
	for i, k := range c.keys {
		parts[i] = c.mods.Prefix() + k.String()
	}
	return strings.Join(parts, " ")
}
