package key

import "fmt"

// Code identifies a key independently of modifiers.
type Code uint16

const (
	// CodeNone is the zero value and never matches a chord.
	CodeNone Code = iota

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	CodeTab
	CodeSpace
	CodeUnderscore
	CodeEscape
	CodeSlash
	CodeEnter
	CodeBackspace
	CodeDelete
	CodeUp
	CodeDown
	CodeLeft
	CodeRight
	CodeHome
	CodeEnd

	// CodeRune is any other character; the character itself is in Event.Rune.
	CodeRune
)

var codeNames = map[Code]string{
	CodeNone:       "<none>",
	CodeTab:        "TAB",
	CodeSpace:      "SPC",
	CodeUnderscore: "_",
	CodeEscape:     "ESC",
	CodeSlash:      "/",
	CodeEnter:      "RET",
	CodeBackspace:  "DEL",
	CodeDelete:     "<delete>",
	CodeUp:         "<up>",
	CodeDown:       "<down>",
	CodeLeft:       "<left>",
	CodeRight:      "<right>",
	CodeHome:       "<home>",
	CodeEnd:        "<end>",
	CodeRune:       "<rune>",
}

// LetterCode returns the code for an ASCII letter (either case).
func LetterCode(r rune) (Code, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return CodeA + Code(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return CodeA + Code(r-'A'), true
	}
	return CodeNone, false
}

// IsLetter reports whether c is one of CodeA..CodeZ.
func (c Code) IsLetter() bool {
	return c >= CodeA && c <= CodeZ
}

// Letter returns the lower-case letter for a letter code, or 0.
func (c Code) Letter() rune {
	if !c.IsLetter() {
		return 0
	}
	return 'a' + rune(c-CodeA)
}

// String returns the Emacs-style name of the key.
func (c Code) String() string {
	if c.IsLetter() {
		return string(c.Letter())
	}
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}
