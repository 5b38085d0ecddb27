package key

import (
	"errors"
	"testing"
)

func TestParseChord(t *testing.T) {
	tests := []struct {
		pattern  string
		wantMods Modifier
		wantKeys []Code
	}{
		{"<META>|p", Meta, []Code{CodeP}},
		{"<meta>|P", Meta, []Code{CodeP}},
		{"<META>|<SHIFT>|<UNDERSCORE>", Meta | ModShift, []Code{CodeUnderscore}},
		{"<TAB>", ModNone, []Code{CodeTab}},
		{"<ESC>|<ESC>", ModNone, []Code{CodeEscape, CodeEscape}},
		{"<META>|x|s", Meta, []Code{CodeX, CodeS}},
		{"<CONTROL>|<SLASH>", ModCtrl, []Code{CodeSlash}},
		{"<ALT>|w", ModAlt, []Code{CodeW}},
		{" <META> | <SPACE> ", Meta, []Code{CodeSpace}},
		// Modifiers accumulate wherever they appear.
		{"x|<ALT>|y", ModAlt, []Code{CodeX, CodeY}},
	}

	for _, tt := range tests {
		c, err := ParseChord(tt.pattern)
		if err != nil {
			t.Errorf("ParseChord(%q) error = %v", tt.pattern, err)
			continue
		}
		want := NewChord(tt.wantMods, tt.wantKeys...)
		if !c.Equal(want) {
			t.Errorf("ParseChord(%q) = %v/%v, want %v/%v", tt.pattern, c.Mods(), c.Keys(), want.Mods(), want.Keys())
		}
	}
}

func TestParseChordErrors(t *testing.T) {
	tests := []struct {
		pattern string
		want    error
	}{
		{"", ErrEmptyPattern},
		{"   ", ErrEmptyPattern},
		{"<META>", ErrNoKey},
		{"<META>|<SHIFT>", ErrNoKey},
		{"<META>||x", ErrInvalidPattern},
		{"<HYPER>|x", ErrInvalidPattern},
		{"<META>|xs", ErrInvalidPattern},
		{"<META>|1", ErrInvalidPattern},
	}

	for _, tt := range tests {
		_, err := ParseChord(tt.pattern)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseChord(%q) error = %v, want %v", tt.pattern, err, tt.want)
		}
	}
}

func TestChordAcceptsExactModifiers(t *testing.T) {
	c := NewChord(ModCtrl, CodeK)

	tests := []struct {
		ev   Event
		want bool
	}{
		{NewEvent(ModCtrl, CodeK), true},
		{NewEvent(ModCtrl|ModShift, CodeK), false},
		{NewEvent(ModNone, CodeK), false},
		{NewEvent(ModCtrl, CodeJ), false},
	}
	for _, tt := range tests {
		if got := c.Accepts(tt.ev); got != tt.want {
			t.Errorf("Accepts(%v) = %v, want %v", tt.ev, got, tt.want)
		}
	}

	if (Chord{}).Accepts(NewEvent(ModNone, CodeNone)) {
		t.Error("empty chord should accept nothing")
	}
}

func TestChordRest(t *testing.T) {
	c := NewChord(ModCtrl, CodeX, CodeS)

	rest := c.Rest()
	if rest.Len() != 1 || rest.First() != CodeS || rest.Mods() != ModCtrl {
		t.Errorf("Rest() = %v/%v", rest.Mods(), rest.Keys())
	}
	if c.Len() != 2 {
		t.Errorf("Rest() mutated the original chord: %v", c.Keys())
	}
	if !rest.Rest().IsEmpty() {
		t.Error("Rest() of a single key chord should be empty")
	}
}

func TestChordString(t *testing.T) {
	tests := []struct {
		chord Chord
		want  string
	}{
		{NewChord(ModCtrl, CodeX, CodeS), "C-x C-s"},
		{NewChord(ModAlt, CodeW), "M-w"},
		{NewChord(ModNone, CodeEscape, CodeEscape), "ESC ESC"},
		{NewChord(ModCtrl|ModShift, CodeUnderscore), "C-S-_"},
	}
	for _, tt := range tests {
		if got := tt.chord.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
