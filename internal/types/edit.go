package types

import sitter "github.com/smacker/go-tree-sitter"

// EditInfo describes a single document edit in the shape tree-sitter's
// incremental parser expects. Indices are byte offsets into the document.
type EditInfo struct {
	StartIndex     uint32       // Start byte of the edit
	OldEndIndex    uint32       // End byte of the replaced text
	NewEndIndex    uint32       // End byte of the inserted text
	StartPosition  sitter.Point // Start position (row, byte column)
	OldEndPosition sitter.Point
	NewEndPosition sitter.Point
}

// InputEdit converts the edit for sitter.Tree.Edit.
func (e EditInfo) InputEdit() sitter.EditInput {
	return sitter.EditInput{
		StartIndex:  e.StartIndex,
		OldEndIndex: e.OldEndIndex,
		NewEndIndex: e.NewEndIndex,
		StartPoint:  e.StartPosition,
		OldEndPoint: e.OldEndPosition,
		NewEndPoint: e.NewEndPosition,
	}
}

// IsInsert reports whether the edit only added text.
func (e EditInfo) IsInsert() bool {
	return e.OldEndIndex == e.StartIndex && e.NewEndIndex > e.StartIndex
}
