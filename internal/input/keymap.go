// internal/input/keymap.go
package input

import "github.com/bethropolis/emacsmode/internal/input/key"

// Keymap is an ordered shortcut table. Order is priority: when several
// shortcuts accept the same event, the earliest one wins.
type Keymap []Shortcut

// DefaultKeymap returns a fresh copy of the built-in Emacs bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		// --- Movement ---
		MustShortcut("<META>|p", ActionMoveUp),
		MustShortcut("<META>|n", ActionMoveDown),
		MustShortcut("<META>|f", ActionMoveRight),
		MustShortcut("<META>|b", ActionMoveLeft),
		MustShortcut("<META>|m", ActionNewLine),
		MustShortcut("<META>|h", ActionBackspace),
		MustShortcut("<META>|e", ActionMoveToEndOfLine),
		MustShortcut("<META>|a", ActionMoveToStartOfLine),

		// --- History ---
		MustShortcut("<META>|<SHIFT>|<UNDERSCORE>", ActionUndo),
		MustShortcut("<ALT>|<SHIFT>|<UNDERSCORE>", ActionRedo),

		// --- Region / Selection ---
		MustShortcut("<TAB>", ActionIndentRegion),
		MustShortcut("<META>|<SPACE>", ActionStartSelection),
		MustShortcut("<ESC>|<ESC>", ActionCancelCurrentCommand),
		MustShortcut("<META>|g", ActionCancelCurrentCommand),

		// --- Kill / Yank ---
		MustShortcut("<META>|w", ActionKillSelected),
		MustShortcut("<ALT>|w", ActionCopySelected),
		MustShortcut("<META>|<SLASH>", ActionInsertBackSlash),
		MustShortcut("<CONTROL>|<SLASH>", ActionInsertStraightDelim),
		MustShortcut("<META>|k", ActionKillLine),
		MustShortcut("<ALT>|d", ActionKillSymbol),
		MustShortcut("<META>|y", ActionYankCurrent),
		MustShortcut("<ALT>|y", ActionYankNext),

		// --- Prefixed commands ---
		MustShortcut("<META>|x|s", ActionSaveCurrentBuffer),
		MustShortcut("<META>|i|c", ActionCommentOutRegion),
		MustShortcut("<META>|i|u", ActionUncommentRegion),
	}
}

// Candidates returns the shortcuts that accept ev, in priority order.
func (k Keymap) Candidates(ev key.Event) Keymap {
	var out Keymap
	for _, s := range k {
		if s.IsAccepted(ev) {
			out = append(out, s)
		}
	}
	return out
}

// Lookup returns the first shortcut bound to action.
func (k Keymap) Lookup(action ActionID) (Shortcut, bool) {
	for _, s := range k {
		if s.Action == action {
			return s, true
		}
	}
	return Shortcut{}, false
}

// Clone returns a copy that can be appended to independently.
func (k Keymap) Clone() Keymap {
	return append(Keymap(nil), k...)
}
