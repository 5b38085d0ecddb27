// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/emacsmode/internal/types"

// Document is the host text model the key dispatcher edits.
// Offsets count runes from the start of the document and a line break
// counts as one. Lines are 0-based.
type Document interface {
	LineCount() int
	LineText(line int) (string, error)
	SetLineText(line int, text string) error

	// Len returns the offset of the end of the document.
	Len() int
	OffsetOf(pos types.Position) int
	PositionOf(offset int) types.Position
	Text(begin, end int) string

	Insert(offset int, text string) (types.EditInfo, error)
	Delete(begin, end int) (types.EditInfo, error)

	// BeginEditGroup and EndEditGroup bracket edits that undo as one step.
	BeginEditGroup()
	EndEditGroup()
	// Undo and Redo return the offset the caret should move to, or false
	// when there was nothing to do.
	Undo() (int, bool)
	Redo() (int, bool)
	AvailableUndoSteps() int
	// Revision identifies the current undo state. It is never reused for a
	// new edit group, and undo returns to the revision before the group.
	Revision() int
}

// File is a Document that can be loaded from and saved to disk.
type File interface {
	Document
	Load(filePath string) error
	Save(filePath string) error
	Bytes() []byte
	FilePath() string
	IsModified() bool
}
