package cursor

import (
	"unicode/utf8"

	"github.com/bethropolis/emacsmode/internal/buffer"
	"github.com/bethropolis/emacsmode/internal/logger"
	"github.com/bethropolis/emacsmode/internal/types"
)

// MoveMode decides whether a move drags the anchor along.
type MoveMode int

const (
	// MoveAnchor collapses the selection onto the new position.
	MoveAnchor MoveMode = iota
	// KeepAnchor leaves the anchor in place, extending the selection.
	KeepAnchor
)

func (m MoveMode) String() string {
	if m == KeepAnchor {
		return "keep-anchor"
	}
	return "move-anchor"
}

// Operation is a unit cursor movement.
type Operation int

const (
	Up Operation = iota
	Down
	Left
	Right
	StartOfLine
	EndOfLine
	NextCharacter
	PreviousCharacter
)

// Manager tracks a caret and its selection anchor over a Document.
// Both are rune offsets; the selection is the span between them.
type Manager struct {
	doc          buffer.Document
	position     int
	anchor       int
	preferredCol int // column kept across vertical moves, -1 when unset
}

// NewManager creates a cursor at the start of doc.
func NewManager(doc buffer.Document) *Manager {
	return &Manager{doc: doc, preferredCol: -1}
}

// Document returns the document the cursor moves over.
func (m *Manager) Document() buffer.Document {
	return m.doc
}

// Position returns the caret offset.
func (m *Manager) Position() int { return m.position }

// Anchor returns the selection anchor offset.
func (m *Manager) Anchor() int { return m.anchor }

// Pos returns the caret as a line/column position.
func (m *Manager) Pos() types.Position {
	return m.doc.PositionOf(m.position)
}

// Line returns the caret's 0-based line.
func (m *Manager) Line() int {
	return m.Pos().Line
}

// SetPosition moves the caret to offset, clamped into the document.
func (m *Manager) SetPosition(offset int, mode MoveMode) {
	m.setPosition(offset, mode)
	m.preferredCol = -1
}

func (m *Manager) setPosition(offset int, mode MoveMode) {
	if offset < 0 {
		offset = 0
	}
	if n := m.doc.Len(); offset > n {
		offset = n
	}
	m.position = offset
	if mode == MoveAnchor {
		m.anchor = offset
	}
}

// Clamp pulls caret and anchor back inside the document after external edits.
func (m *Manager) Clamp() {
	n := m.doc.Len()
	if m.position > n {
		m.position = n
	}
	if m.anchor > n {
		m.anchor = n
	}
}

func (m *Manager) lineLen(line int) int {
	text, err := m.doc.LineText(line)
	if err != nil {
		logger.Warnf("Cursor: failed to get line %d: %v", line, err)
		return 0
	}
	return utf8.RuneCountInString(text)
}

// MovePosition performs op and reports whether the caret moved.
func (m *Manager) MovePosition(op Operation, mode MoveMode) bool {
	before := m.position
	pos := m.Pos()

	switch op {
	case Up, Down:
		target := pos.Line - 1
		if op == Down {
			target = pos.Line + 1
		}
		if target < 0 || target >= m.doc.LineCount() {
			return false
		}
		col := m.preferredCol
		if col < 0 {
			col = pos.Col
		}
		// OffsetOf clamps col to the target line.
		m.setPosition(m.doc.OffsetOf(types.Position{Line: target, Col: col}), mode)
		if m.preferredCol < 0 {
			m.preferredCol = pos.Col
		}
		return true
	case Left, PreviousCharacter:
		m.SetPosition(m.position-1, mode)
	case Right, NextCharacter:
		m.SetPosition(m.position+1, mode)
	case StartOfLine:
		m.SetPosition(m.doc.OffsetOf(types.Position{Line: pos.Line}), mode)
	case EndOfLine:
		m.SetPosition(m.doc.OffsetOf(types.Position{Line: pos.Line, Col: m.lineLen(pos.Line)}), mode)
	}

	return m.position != before
}

// AtBlockStart reports whether the caret is at the start of its line.
func (m *Manager) AtBlockStart() bool {
	return m.Pos().Col == 0
}

// AtBlockEnd reports whether the caret is at the end of its line.
func (m *Manager) AtBlockEnd() bool {
	pos := m.Pos()
	return pos.Col == m.lineLen(pos.Line)
}

// AtEnd reports whether the caret is at the end of the document.
func (m *Manager) AtEnd() bool {
	return m.position == m.doc.Len()
}

// HasSelection reports whether caret and anchor differ.
func (m *Manager) HasSelection() bool {
	return m.position != m.anchor
}

// SelectionStart returns the lower of caret and anchor.
func (m *Manager) SelectionStart() int {
	return min(m.position, m.anchor)
}

// SelectionEnd returns the higher of caret and anchor.
func (m *Manager) SelectionEnd() int {
	return max(m.position, m.anchor)
}

// SelectedText returns the text between anchor and caret.
func (m *Manager) SelectedText() string {
	if !m.HasSelection() {
		return ""
	}
	return m.doc.Text(m.SelectionStart(), m.SelectionEnd())
}

// RemoveSelectedText deletes the selection and collapses onto its start.
func (m *Manager) RemoveSelectedText() error {
	if !m.HasSelection() {
		return nil
	}
	start, end := m.SelectionStart(), m.SelectionEnd()
	if _, err := m.doc.Delete(start, end); err != nil {
		return err
	}
	m.SetPosition(start, MoveAnchor)
	return nil
}

// InsertText replaces the selection, if any, with text and leaves the
// caret after it.
func (m *Manager) InsertText(text string) error {
	m.doc.BeginEditGroup()
	defer m.doc.EndEditGroup()

	if err := m.RemoveSelectedText(); err != nil {
		return err
	}
	if _, err := m.doc.Insert(m.position, text); err != nil {
		return err
	}
	m.SetPosition(m.position+utf8.RuneCountInString(text), MoveAnchor)
	return nil
}

// DeletePreviousChar removes the selection, or the character before the caret.
func (m *Manager) DeletePreviousChar() error {
	if m.HasSelection() {
		return m.RemoveSelectedText()
	}
	if m.position == 0 {
		return nil
	}
	if _, err := m.doc.Delete(m.position-1, m.position); err != nil {
		return err
	}
	m.SetPosition(m.position-1, MoveAnchor)
	return nil
}
