package key

// Event represents a single key press.
type Event struct {
	// Mods contains the active modifier keys.
	Mods Modifier

	// Code identifies the key pressed.
	Code Code

	// Rune is the character produced by the key, if any. It is not used for
	// matching; hosts insert it when the dispatcher leaves an event unclaimed.
	Rune rune
}

// NewEvent creates an event for a key code.
func NewEvent(mods Modifier, code Code) Event {
	e := Event{Mods: mods, Code: code}
	switch {
	case code.IsLetter():
		e.Rune = code.Letter()
		if mods.Has(ModShift) {
			e.Rune -= 'a' - 'A'
		}
	case code == CodeSpace:
		e.Rune = ' '
	case code == CodeUnderscore:
		e.Rune = '_'
	case code == CodeSlash:
		e.Rune = '/'
	case code == CodeTab:
		e.Rune = '\t'
	case code == CodeEnter:
		e.Rune = '\n'
	}
	return e
}

// NewRuneEvent creates an event for a typed character.
// Upper-case letters map to the letter code plus Shift, and so does the
// underscore, which is a shifted key on common layouts.
func NewRuneEvent(r rune, mods Modifier) Event {
	e := Event{Mods: mods, Code: CodeRune, Rune: r}
	if code, ok := LetterCode(r); ok {
		e.Code = code
		if r >= 'A' && r <= 'Z' {
			e.Mods = e.Mods.With(ModShift)
		}
		return e
	}
	switch r {
	case ' ':
		e.Code = CodeSpace
	case '_':
		e.Code = CodeUnderscore
		e.Mods = e.Mods.With(ModShift)
	case '/':
		e.Code = CodeSlash
	case '\t':
		e.Code = CodeTab
	case '\n', '\r':
		e.Code = CodeEnter
	}
	return e
}

// Matches reports whether the event has exactly mods and code.
func (e Event) Matches(mods Modifier, code Code) bool {
	return e.Mods == mods && e.Code == code
}

// IsPrintable reports whether the host should insert Rune for this event
// when no binding claims it.
func (e Event) IsPrintable() bool {
	if e.Rune == 0 || e.Code == CodeEscape || e.Code == CodeBackspace {
		return false
	}
	return e.Mods.Without(ModShift).IsEmpty()
}

// String returns the Emacs-style description, e.g. "C-x" or "M-w".
func (e Event) String() string {
	if e.Code == CodeRune {
		return e.Mods.Prefix() + string(e.Rune)
	}
	return e.Mods.Prefix() + e.Code.String()
}
