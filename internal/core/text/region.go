// Package text extracts and rewrites regions of a Document.
package text

import (
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/emacsmode/internal/buffer"
	"github.com/bethropolis/emacsmode/internal/types"
	"github.com/bethropolis/emacsmode/internal/utils"
)

// SelectText returns the text r covers in doc, interpreted by r.Mode.
//
// Char mode is the plain span. Line mode runs from the start of the first
// line to the start of the line after the last one, or to the end of the
// document when the last line is the final line. Block mode cuts the column
// rectangle, padding short lines with spaces. The remaining modes return
// whole lines. Every line of a block or whole-line extraction ends in '\n'.
func SelectText(doc buffer.Document, r types.Range) string {
	if !r.IsValid() {
		return ""
	}
	begin := doc.PositionOf(r.BeginPos)
	end := doc.PositionOf(r.EndPos)

	switch r.Mode {
	case types.RangeCharMode:
		return doc.Text(r.BeginPos, r.EndPos)
	case types.RangeLineMode:
		first := doc.OffsetOf(types.Position{Line: begin.Line})
		last := doc.Len()
		if end.Line < doc.LineCount()-1 {
			last = doc.OffsetOf(types.Position{Line: end.Line + 1})
		}
		return doc.Text(first, last)
	}

	beginCol, width := 0, -1
	if r.Mode == types.RangeBlockMode {
		beginCol = min(begin.Col, end.Col)
		width = max(begin.Col, end.Col) - beginCol + 1
	}

	var out strings.Builder
	for line := begin.Line; line <= end.Line; line++ {
		text, err := doc.LineText(line)
		if err != nil {
			break
		}
		if width >= 0 {
			text = blockSlice(text, beginCol, width)
		}
		out.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// blockSlice returns width runes of s starting at col, space padded.
func blockSlice(s string, col, width int) string {
	runes := []rune(s)
	var cut []rune
	if col < len(runes) {
		cut = runes[col:min(len(runes), col+width)]
	}
	return string(cut) + strings.Repeat(" ", width-len(cut))
}

// RegionLines returns the first and last line touched by the region
// between anchor and position. When the caret sits on an empty line away
// from the anchor, that line is left out and the range shrinks by one line
// toward the anchor.
func RegionLines(doc buffer.Document, anchor, position int) (int, int) {
	begin := doc.PositionOf(anchor).Line
	end := doc.PositionOf(position).Line
	if begin != end {
		if text, err := doc.LineText(end); err == nil && text == "" {
			if begin > end {
				end++
			} else {
				end--
			}
		}
	}
	if begin > end {
		begin, end = end, begin
	}
	return begin, end
}

// FirstNonBlank returns the offset of the first non-blank rune on line,
// or the end of the line if it is blank.
func FirstNonBlank(doc buffer.Document, line int) int {
	start := doc.OffsetOf(types.Position{Line: line})
	text, err := doc.LineText(line)
	if err != nil {
		return start
	}
	col := 0
	for _, r := range text {
		if r != ' ' && r != '\t' {
			break
		}
		col++
	}
	return start + col
}

// SymbolEnd returns the offset just past the next symbol at or after
// offset, skipping any leading non-symbol runes. Line breaks are skipped
// like any other separator.
func SymbolEnd(doc buffer.Document, offset int) int {
	n := doc.Len()
	rest := []rune(doc.Text(offset, n))
	i := 0
	for i < len(rest) && !utils.IsSymbolRune(rest[i]) {
		i++
	}
	for i < len(rest) && utils.IsSymbolRune(rest[i]) {
		i++
	}
	return offset + i
}

// KillLineEnd returns where a line kill starting at offset stops: the end
// of the line, or one past it when offset is already at the end of the line
// (taking the line break). It returns false when there is nothing to kill.
func KillLineEnd(doc buffer.Document, offset int) (int, bool) {
	pos := doc.PositionOf(offset)
	text, err := doc.LineText(pos.Line)
	if err != nil {
		return offset, false
	}
	lineEnd := offset + utf8.RuneCountInString(text) - pos.Col
	if offset < lineEnd {
		return lineEnd, true
	}
	if offset < doc.Len() {
		return offset + 1, true
	}
	return offset, false
}

// PrefixLines inserts prefix at the start of every line in [begin, end]
// as one undo step.
func PrefixLines(doc buffer.Document, begin, end int, prefix string) error {
	doc.BeginEditGroup()
	defer doc.EndEditGroup()
	for line := begin; line <= end; line++ {
		if _, err := doc.Insert(doc.OffsetOf(types.Position{Line: line}), prefix); err != nil {
			return err
		}
	}
	return nil
}

// UnprefixLines removes prefix from the lines in [begin, end] that start
// with it, as one undo step. It returns the number of lines changed.
func UnprefixLines(doc buffer.Document, begin, end int, prefix string) (int, error) {
	doc.BeginEditGroup()
	defer doc.EndEditGroup()
	n := utf8.RuneCountInString(prefix)
	changed := 0
	for line := begin; line <= end; line++ {
		text, err := doc.LineText(line)
		if err != nil {
			return changed, err
		}
		if prefix == "" || !strings.HasPrefix(text, prefix) {
			continue
		}
		start := doc.OffsetOf(types.Position{Line: line})
		if _, err := doc.Delete(start, start+n); err != nil {
			return changed, err
		}
		changed++
	}
	return changed, nil
}

// WholeDocument returns a line range covering every line of doc.
func WholeDocument(doc buffer.Document) types.Range {
	return types.NewRange(0, doc.OffsetOf(types.Position{Line: doc.LineCount() - 1}), types.RangeLineMode)
}
