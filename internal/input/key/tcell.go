package key

import "github.com/gdamore/tcell/v2"

// FromTcell converts a terminal key event into the neutral model.
//
// Terminals fold several control combinations into single control codes,
// so the mapping is:
//   - Tab, Enter, Escape and DEL keep their own codes,
//   - BS (0x08) is Ctrl+H, the other Ctrl+letter codes become Ctrl plus the letter,
//   - NUL is Ctrl+Space and 0x1F is Ctrl+Shift+Underscore.
//
// Ctrl+I and Ctrl+M arrive as Tab and Enter, so bindings on those chords
// (NewLine and the region commands in the default keymap) cannot be typed
// in a terminal. Hosts with real key events are not affected.
func FromTcell(ev *tcell.EventKey) Event {
	mods := fromTcellMods(ev.Modifiers())

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		return NewRuneEvent(ev.Rune(), mods)
	case tcell.KeyTab:
		return NewEvent(mods.Without(ModCtrl), CodeTab)
	case tcell.KeyEnter:
		return NewEvent(mods.Without(ModCtrl), CodeEnter)
	case tcell.KeyEscape:
		return NewEvent(mods.Without(ModCtrl), CodeEscape)
	case tcell.KeyBackspace2:
		return NewEvent(mods.Without(ModCtrl), CodeBackspace)
	case tcell.KeyBackspace:
		return NewEvent(mods.With(ModCtrl), CodeH)
	case tcell.KeyCtrlSpace:
		return NewEvent(mods.With(ModCtrl), CodeSpace)
	case tcell.KeyCtrlUnderscore:
		return NewEvent(mods.With(ModCtrl|ModShift), CodeUnderscore)
	case tcell.KeyDelete:
		return NewEvent(mods, CodeDelete)
	case tcell.KeyUp:
		return NewEvent(mods, CodeUp)
	case tcell.KeyDown:
		return NewEvent(mods, CodeDown)
	case tcell.KeyLeft:
		return NewEvent(mods, CodeLeft)
	case tcell.KeyRight:
		return NewEvent(mods, CodeRight)
	case tcell.KeyHome:
		return NewEvent(mods, CodeHome)
	case tcell.KeyEnd:
		return NewEvent(mods, CodeEnd)
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return NewEvent(mods.With(ModCtrl), CodeA+Code(k-tcell.KeyCtrlA))
		}
		return Event{Mods: mods, Code: CodeNone}
	}
}

func fromTcellMods(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(ModMeta)
	}
	return mods
}
