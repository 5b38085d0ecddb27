package cursor

import (
	"testing"

	"github.com/bethropolis/emacsmode/internal/buffer"
	"github.com/bethropolis/emacsmode/internal/types"
)

func newCursor(text string) (*Manager, *buffer.SliceBuffer) {
	doc := buffer.NewSliceBufferString(text)
	return NewManager(doc), doc
}

func TestMovePosition(t *testing.T) {
	c, _ := newCursor("hello\nhi\nworld")

	tests := []struct {
		op        Operation
		wantPos   types.Position
		wantMoved bool
	}{
		{Up, types.Position{Line: 0, Col: 0}, false},
		{EndOfLine, types.Position{Line: 0, Col: 5}, true},
		{Down, types.Position{Line: 1, Col: 2}, true},
		// Preferred column survives the short line.
		{Down, types.Position{Line: 2, Col: 5}, true},
		{Down, types.Position{Line: 2, Col: 5}, false},
		{StartOfLine, types.Position{Line: 2, Col: 0}, true},
		{Left, types.Position{Line: 1, Col: 2}, true},
		{Right, types.Position{Line: 2, Col: 0}, true},
	}

	for i, tt := range tests {
		moved := c.MovePosition(tt.op, MoveAnchor)
		if moved != tt.wantMoved {
			t.Errorf("step %d: moved = %v, want %v", i, moved, tt.wantMoved)
		}
		if got := c.Pos(); got != tt.wantPos {
			t.Errorf("step %d: pos = %+v, want %+v", i, got, tt.wantPos)
		}
		if c.HasSelection() {
			t.Errorf("step %d: MoveAnchor left a selection", i)
		}
	}
}

func TestKeepAnchorSelects(t *testing.T) {
	c, _ := newCursor("abc\ndef")

	c.SetPosition(1, MoveAnchor)
	c.MovePosition(Down, KeepAnchor)
	c.MovePosition(Right, KeepAnchor)

	if c.Anchor() != 1 || c.Position() != 6 {
		t.Fatalf("anchor/pos = %d/%d, want 1/6", c.Anchor(), c.Position())
	}
	if got := c.SelectedText(); got != "bc\nde" {
		t.Errorf("SelectedText() = %q", got)
	}

	if err := c.RemoveSelectedText(); err != nil {
		t.Fatal(err)
	}
	if got := string(c.Document().Text(0, c.Document().Len())); got != "af" {
		t.Errorf("after remove = %q", got)
	}
	if c.Position() != 1 || c.HasSelection() {
		t.Errorf("caret = %d selection=%v", c.Position(), c.HasSelection())
	}
}

func TestInsertTextReplacesSelection(t *testing.T) {
	c, doc := newCursor("one two")

	c.SetPosition(4, MoveAnchor)
	c.SetPosition(7, KeepAnchor)
	if err := c.InsertText("2\n3"); err != nil {
		t.Fatal(err)
	}
	if got := string(doc.Bytes()); got != "one 2\n3" {
		t.Errorf("content = %q", got)
	}
	if c.Position() != 7 {
		t.Errorf("caret = %d, want 7", c.Position())
	}
	if doc.AvailableUndoSteps() != 1 {
		t.Errorf("replace should be one undo step, got %d", doc.AvailableUndoSteps())
	}
}

func TestDeletePreviousChar(t *testing.T) {
	c, doc := newCursor("ab\nc")

	c.SetPosition(3, MoveAnchor)
	if err := c.DeletePreviousChar(); err != nil {
		t.Fatal(err)
	}
	if got := string(doc.Bytes()); got != "abc" || c.Position() != 2 {
		t.Errorf("content = %q caret %d", got, c.Position())
	}

	c.SetPosition(0, MoveAnchor)
	if err := c.DeletePreviousChar(); err != nil || string(doc.Bytes()) != "abc" {
		t.Errorf("delete at start changed text: %q %v", doc.Bytes(), err)
	}
}

func TestBlockBoundaries(t *testing.T) {
	c, _ := newCursor("ab\n\ncd")

	c.SetPosition(3, MoveAnchor) // empty line
	if !c.AtBlockStart() || !c.AtBlockEnd() {
		t.Error("empty line should be both block start and end")
	}
	c.SetPosition(6, MoveAnchor)
	if !c.AtEnd() || !c.AtBlockEnd() || c.AtBlockStart() {
		t.Error("end of document flags wrong")
	}
	c.SetPosition(99, MoveAnchor)
	if c.Position() != 6 {
		t.Errorf("SetPosition should clamp, got %d", c.Position())
	}
}
