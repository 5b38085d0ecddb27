// internal/input/action.go
package input

import "fmt"

// ActionID identifies an editing command. Behaviour is bound to IDs by the
// mode handler; the input layer only deals in identities.
type ActionID int

// Define the set of editor actions reachable from the shortcut table.
const (
	// ActionNull is never dispatched. It marks "no previous action".
	ActionNull ActionID = iota

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveRight
	ActionMoveLeft
	ActionMoveToEndOfLine
	ActionMoveToStartOfLine

	// --- Text Manipulation ---
	ActionNewLine
	ActionBackspace
	ActionInsertBackSlash
	ActionInsertStraightDelim

	// --- History ---
	ActionUndo
	ActionRedo

	// --- Region ---
	ActionIndentRegion
	ActionStartSelection
	ActionCancelCurrentCommand
	ActionCommentOutRegion
	ActionUncommentRegion

	// --- Kill / Yank ---
	ActionKillSelected
	ActionCopySelected
	ActionKillLine
	ActionKillSymbol
	ActionYankCurrent
	ActionYankNext

	// --- Files ---
	ActionSaveCurrentBuffer

	actionCount // keep last
)

var actionNames = [actionCount]string{
	ActionNull:                 "null",
	ActionMoveUp:               "move-up",
	ActionMoveDown:             "move-down",
	ActionMoveRight:            "move-right",
	ActionMoveLeft:             "move-left",
	ActionMoveToEndOfLine:      "move-to-end-of-line",
	ActionMoveToStartOfLine:    "move-to-start-of-line",
	ActionNewLine:              "new-line",
	ActionBackspace:            "backspace",
	ActionInsertBackSlash:      "insert-back-slash",
	ActionInsertStraightDelim:  "insert-straight-delim",
	ActionUndo:                 "undo",
	ActionRedo:                 "redo",
	ActionIndentRegion:         "indent-region",
	ActionStartSelection:       "start-selection",
	ActionCancelCurrentCommand: "cancel-current-command",
	ActionCommentOutRegion:     "comment-out-region",
	ActionUncommentRegion:      "uncomment-region",
	ActionKillSelected:         "kill-selected",
	ActionCopySelected:         "copy-selected",
	ActionKillLine:             "kill-line",
	ActionKillSymbol:           "kill-symbol",
	ActionYankCurrent:          "yank-current",
	ActionYankNext:             "yank-next",
	ActionSaveCurrentBuffer:    "save-current-buffer",
}

// String returns the kebab-case name used in keymap files.
func (a ActionID) String() string {
	if a >= 0 && a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("ActionID(%d)", int(a))
}

// IsValid reports whether a names a dispatchable action.
func (a ActionID) IsValid() bool {
	return a > ActionNull && a < actionCount
}

// IsKill reports whether a is one of the commands whose consecutive use
// accumulates into a single kill ring entry.
func (a ActionID) IsKill() bool {
	switch a {
	case ActionKillLine, ActionKillSymbol, ActionKillSelected:
		return true
	}
	return false
}

// IsYank reports whether a starts or continues a yank chain.
func (a ActionID) IsYank() bool {
	return a == ActionYankCurrent || a == ActionYankNext
}

// ActionByName looks up a dispatchable action by its kebab-case name.
func ActionByName(name string) (ActionID, bool) {
	for id := ActionNull + 1; id < actionCount; id++ {
		if actionNames[id] == name {
			return id, true
		}
	}
	return ActionNull, false
}

// Actions returns every dispatchable action in declaration order.
func Actions() []ActionID {
	ids := make([]ActionID, 0, actionCount-1)
	for id := ActionNull + 1; id < actionCount; id++ {
		ids = append(ids, id)
	}
	return ids
}
