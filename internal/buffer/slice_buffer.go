// internal/buffer/slice_buffer.go
package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/bethropolis/emacsmode/internal/core/history"
	"github.com/bethropolis/emacsmode/internal/logger"
	"github.com/bethropolis/emacsmode/internal/types"
	"github.com/bethropolis/emacsmode/internal/utils"
)

// EditListener is told about every edit applied to a SliceBuffer,
// including those replayed by undo and redo.
type EditListener func(types.EditInfo)

// SliceBuffer is an in-memory Document storing one byte slice per line.
type SliceBuffer struct {
	lines    [][]byte
	filePath string
	modified bool // Track if buffer has unsaved changes
	history  *history.Manager
	listener EditListener
}

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	sb := &SliceBuffer{
		// Start with a single empty line, common for new files
		lines: [][]byte{[]byte("")},
	}
	sb.history = history.NewManager(sb, history.DefaultMaxHistory)
	return sb
}

// NewSliceBufferString creates a buffer holding text.
func NewSliceBufferString(text string) *SliceBuffer {
	sb := NewSliceBuffer()
	sb.setContent([]byte(text))
	return sb
}

// SetEditListener installs fn to observe edits. A nil fn removes it.
func (sb *SliceBuffer) SetEditListener(fn EditListener) {
	sb.listener = fn
}

func (sb *SliceBuffer) setContent(data []byte) {
	parts := bytes.Split(data, []byte("\n"))
	sb.lines = make([][]byte, len(parts))
	for i, p := range parts {
		sb.lines[i] = append([]byte(nil), bytes.TrimSuffix(p, []byte("\r"))...)
	}
}

// Load reads a file into the buffer. Replaces existing content.
// A missing file yields an empty buffer bound to filePath.
func (sb *SliceBuffer) Load(filePath string) error {
	// Reset modified status on load
	sb.modified = false
	sb.history.Clear()

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sb.lines = [][]byte{[]byte("")}
			sb.filePath = filePath
			return nil
		}
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	sb.setContent(data)
	sb.filePath = filePath
	logger.Debugf("Loaded %s: %d lines", filePath, len(sb.lines))
	return nil
}

// LineCount returns the number of lines. A trailing newline ends in an empty line.
func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

// LineText returns the text of a line without its line break.
func (sb *SliceBuffer) LineText(index int) (string, error) {
	if index < 0 || index >= len(sb.lines) {
		return "", fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return string(sb.lines[index]), nil
}

// SetLineText replaces the text of a line as one undo step.
func (sb *SliceBuffer) SetLineText(index int, text string) error {
	old, err := sb.LineText(index)
	if err != nil {
		return err
	}
	start := sb.OffsetOf(types.Position{Line: index})
	sb.BeginEditGroup()
	defer sb.EndEditGroup()
	if _, err := sb.Delete(start, start+utf8.RuneCountInString(old)); err != nil {
		return err
	}
	_, err = sb.Insert(start, text)
	return err
}

// Bytes returns the whole document joined with '\n'.
func (sb *SliceBuffer) Bytes() []byte {
	return bytes.Join(sb.lines, []byte("\n"))
}

// Save writes the buffer content to filePath, or to the stored path when empty.
func (sb *SliceBuffer) Save(filePath string) error {
	path := sb.filePath
	if filePath != "" { // Allow overriding path during save
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}

	if err := os.WriteFile(path, sb.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	sb.filePath = path
	sb.modified = false
	return nil
}

// IsModified returns true if the buffer has unsaved changes.
func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}

// --- Offsets ---

// Len returns the number of runes in the document, line breaks included.
func (sb *SliceBuffer) Len() int {
	n := len(sb.lines) - 1
	for _, l := range sb.lines {
		n += utf8.RuneCount(l)
	}
	return n
}

// OffsetOf converts a position to an offset, clamping it into the document.
func (sb *SliceBuffer) OffsetOf(pos types.Position) int {
	pos = sb.clamp(pos)
	off := 0
	for i := 0; i < pos.Line; i++ {
		off += utf8.RuneCount(sb.lines[i]) + 1
	}
	return off + pos.Col
}

// PositionOf converts an offset to a position, clamping it into the document.
func (sb *SliceBuffer) PositionOf(offset int) types.Position {
	if offset < 0 {
		offset = 0
	}
	for i, l := range sb.lines {
		n := utf8.RuneCount(l)
		if offset <= n {
			return types.Position{Line: i, Col: offset}
		}
		offset -= n + 1
	}
	last := len(sb.lines) - 1
	return types.Position{Line: last, Col: utf8.RuneCount(sb.lines[last])}
}

func (sb *SliceBuffer) clamp(pos types.Position) types.Position {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(sb.lines) {
		pos.Line = len(sb.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if n := utf8.RuneCount(sb.lines[pos.Line]); pos.Col > n {
		pos.Col = n
	}
	return pos
}

// byteCol returns the byte offset of a clamped position within its line.
func (sb *SliceBuffer) byteCol(pos types.Position) int {
	return utils.RuneIndexToByteOffset(sb.lines[pos.Line], pos.Col)
}

// point returns the byte index and tree-sitter point of a clamped position.
func (sb *SliceBuffer) point(pos types.Position) (uint32, sitter.Point) {
	idx := 0
	for i := 0; i < pos.Line; i++ {
		idx += len(sb.lines[i]) + 1
	}
	col := sb.byteCol(pos)
	return uint32(idx + col), sitter.Point{Row: uint32(pos.Line), Column: uint32(col)}
}

// Text returns the text between two offsets in either order.
func (sb *SliceBuffer) Text(begin, end int) string {
	if begin > end {
		begin, end = end, begin
	}
	b, e := sb.PositionOf(begin), sb.PositionOf(end)
	if b.Line == e.Line {
		line := sb.lines[b.Line]
		return string(line[sb.byteCol(b):sb.byteCol(e)])
	}

	var out strings.Builder
	out.Write(sb.lines[b.Line][sb.byteCol(b):])
	for i := b.Line + 1; i < e.Line; i++ {
		out.WriteByte('\n')
		out.Write(sb.lines[i])
	}
	out.WriteByte('\n')
	out.Write(sb.lines[e.Line][:sb.byteCol(e)])
	return out.String()
}

// --- Buffer Modification Methods ---

// Insert inserts text at offset and records it for undo.
func (sb *SliceBuffer) Insert(offset int, text string) (types.EditInfo, error) {
	offset = sb.OffsetOf(sb.PositionOf(offset))
	info, err := sb.ApplyInsert(offset, text)
	if err != nil || text == "" {
		return info, err
	}
	sb.history.RecordChange(history.Change{Type: history.InsertAction, Offset: offset, Text: text})
	return info, nil
}

// Delete removes the text between two offsets and records it for undo.
func (sb *SliceBuffer) Delete(begin, end int) (types.EditInfo, error) {
	if begin > end {
		begin, end = end, begin
	}
	begin = sb.OffsetOf(sb.PositionOf(begin))
	text := sb.Text(begin, end)
	info, err := sb.ApplyDelete(begin, end)
	if err != nil || text == "" {
		return info, err
	}
	sb.history.RecordChange(history.Change{Type: history.DeleteAction, Offset: begin, Text: text})
	return info, nil
}

// ApplyInsert inserts text without touching the undo history.
func (sb *SliceBuffer) ApplyInsert(offset int, text string) (types.EditInfo, error) {
	pos := sb.PositionOf(offset)
	startIdx, startPt := sb.point(pos)
	info := types.EditInfo{
		StartIndex: startIdx, OldEndIndex: startIdx, NewEndIndex: startIdx,
		StartPosition: startPt, OldEndPosition: startPt, NewEndPosition: startPt,
	}
	if text == "" {
		return info, nil
	}

	sb.modified = true

	byteOffset := sb.byteCol(pos)
	currentLine := sb.lines[pos.Line]
	insertLines := bytes.Split([]byte(text), []byte("\n"))

	tail := append([]byte(nil), currentLine[byteOffset:]...)
	head := append(currentLine[:byteOffset:byteOffset], insertLines[0]...)

	if len(insertLines) == 1 {
		sb.lines[pos.Line] = append(head, tail...)
	} else {
		newLines := make([][]byte, 0, len(sb.lines)+len(insertLines)-1)
		newLines = append(newLines, sb.lines[:pos.Line]...)
		newLines = append(newLines, head)
		for i := 1; i < len(insertLines)-1; i++ {
			newLines = append(newLines, append([]byte(nil), insertLines[i]...))
		}
		last := append([]byte(nil), insertLines[len(insertLines)-1]...)
		newLines = append(newLines, append(last, tail...))
		newLines = append(newLines, sb.lines[pos.Line+1:]...)
		sb.lines = newLines
	}

	endPos := sb.PositionOf(offset + utf8.RuneCountInString(text))
	info.NewEndIndex, info.NewEndPosition = sb.point(endPos)
	sb.notify(info)
	return info, nil
}

// ApplyDelete removes text between two offsets without touching the undo history.
func (sb *SliceBuffer) ApplyDelete(begin, end int) (types.EditInfo, error) {
	if begin > end {
		begin, end = end, begin
	}
	vStart, vEnd := sb.PositionOf(begin), sb.PositionOf(end)
	startIdx, startPt := sb.point(vStart)
	endIdx, endPt := sb.point(vEnd)
	info := types.EditInfo{
		StartIndex: startIdx, OldEndIndex: endIdx, NewEndIndex: startIdx,
		StartPosition: startPt, OldEndPosition: endPt, NewEndPosition: startPt,
	}
	if vStart == vEnd {
		return info, nil
	}

	sb.modified = true

	startOffset := sb.byteCol(vStart)
	endOffset := sb.byteCol(vEnd)
	endPart := append([]byte(nil), sb.lines[vEnd.Line][endOffset:]...)
	merged := append(sb.lines[vStart.Line][:startOffset:startOffset], endPart...)

	sb.lines = append(sb.lines[:vStart.Line+1], sb.lines[vEnd.Line+1:]...)
	sb.lines[vStart.Line] = merged

	sb.notify(info)
	return info, nil
}

func (sb *SliceBuffer) notify(info types.EditInfo) {
	if sb.listener != nil {
		sb.listener(info)
	}
}

// --- History ---

func (sb *SliceBuffer) BeginEditGroup() { sb.history.BeginGroup() }
func (sb *SliceBuffer) EndEditGroup()   { sb.history.EndGroup() }

// Undo reverts the last edit group.
func (sb *SliceBuffer) Undo() (int, bool) {
	caret, ok, err := sb.history.Undo()
	if err != nil {
		logger.Errorf("Buffer: %v", err)
		return 0, false
	}
	return caret, ok
}

// Redo reapplies the last undone edit group.
func (sb *SliceBuffer) Redo() (int, bool) {
	caret, ok, err := sb.history.Redo()
	if err != nil {
		logger.Errorf("Buffer: %v", err)
		return 0, false
	}
	return caret, ok
}

// AvailableUndoSteps returns how many edit groups can be undone.
func (sb *SliceBuffer) AvailableUndoSteps() int {
	return sb.history.AvailableUndoSteps()
}

// Revision identifies the current undo state.
func (sb *SliceBuffer) Revision() int {
	return sb.history.Revision()
}

// Ensure SliceBuffer satisfies the File interface
var _ File = (*SliceBuffer)(nil)
