// Package highlight computes syntax styles for the terminal frontend from
// a tree-sitter parse, updated incrementally from document edits.
package highlight

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bethropolis/emacsmode/internal/buffer"
	"github.com/bethropolis/emacsmode/internal/logger"
	"github.com/bethropolis/emacsmode/internal/types"
	"github.com/bethropolis/emacsmode/internal/utils"
	sitter "github.com/smacker/go-tree-sitter"
)

// Style names produced by the highlighter. Themes style them.
const (
	StyleComment = "comment"
	StyleString  = "string"
	StyleNumber  = "number"
	StyleKeyword = "keyword"
)

// Span is a styled run of runes on one line, [StartCol, EndCol).
type Span struct {
	StartCol  int
	EndCol    int
	StyleName string
}

// Result maps line numbers to their spans in document order.
type Result map[int][]Span

// Highlighter keeps the syntax tree of one document current.
type Highlighter struct {
	doc    buffer.Document
	parser *sitter.Parser

	mu           sync.Mutex
	tree         *sitter.Tree
	result       Result
	dirty        bool
	pendingEdits []types.EditInfo
}

// New creates a highlighter for doc using grammar. A nil grammar returns nil.
func New(doc buffer.Document, grammar *sitter.Language) *Highlighter {
	if grammar == nil {
		return nil
	}
	parser := sitter.NewParser()
	parser.SetLanguage(grammar)
	return &Highlighter{doc: doc, parser: parser, dirty: true}
}

// AccumulateEdit records an edit for the next update.
func (h *Highlighter) AccumulateEdit(edit types.EditInfo) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pendingEdits = append(h.pendingEdits, edit)
	h.dirty = true
	logger.DebugTagf("highlight", "Highlighter: accumulated edit %+v", edit)
}

// Highlights returns the spans for the current document text, reparsing
// if the document changed since the last call.
func (h *Highlighter) Highlights(ctx context.Context) (Result, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.dirty {
		return h.result, nil
	}

	if h.tree != nil {
		for _, edit := range h.pendingEdits {
			h.tree.Edit(edit.InputEdit())
		}
	}
	h.pendingEdits = h.pendingEdits[:0]

	src := []byte(h.doc.Text(0, h.doc.Len()))
	tree, err := h.parser.ParseCtx(ctx, h.tree, src)
	if err != nil {
		return h.result, fmt.Errorf("parsing failed: %w", err)
	}
	if h.tree != nil {
		h.tree.Close()
	}
	h.tree = tree
	h.result = h.collect(tree.RootNode())
	h.dirty = false
	logger.DebugTagf("highlight", "Highlighter: %d highlighted lines", len(h.result))
	return h.result, nil
}

// Close releases the parse tree.
func (h *Highlighter) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.tree != nil {
		h.tree.Close()
		h.tree = nil
	}
}

func (h *Highlighter) collect(root *sitter.Node) Result {
	res := make(Result)
	lines := make(map[int][]byte)
	lineBytes := func(n int) []byte {
		if b, ok := lines[n]; ok {
			return b
		}
		text, _ := h.doc.LineText(n)
		lines[n] = []byte(text)
		return lines[n]
	}

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if style := classify(n); style != "" {
			h.addSpans(res, n, style, lineBytes)
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)
	return res
}

// addSpans splits a node over the lines it covers.
func (h *Highlighter) addSpans(res Result, n *sitter.Node, style string, lineBytes func(int) []byte) {
	start, end := n.StartPoint(), n.EndPoint()
	for line := int(start.Row); line <= int(end.Row); line++ {
		text := lineBytes(line)
		from, to := 0, len(text)
		if line == int(start.Row) {
			from = int(start.Column)
		}
		if line == int(end.Row) {
			to = int(end.Column)
		}
		startCol := utils.ByteOffsetToRuneIndex(text, from)
		endCol := utils.ByteOffsetToRuneIndex(text, to)
		if endCol <= startCol {
			continue
		}
		res[line] = append(res[line], Span{StartCol: startCol, EndCol: endCol, StyleName: style})
	}
}

// classify maps a node to a style name, or "" to look at its children.
// Unnamed all-letter nodes are the grammar's keywords.
func classify(n *sitter.Node) string {
	t := n.Type()
	switch {
	case strings.Contains(t, "comment"):
		return StyleComment
	case strings.Contains(t, "string"), t == "rune_literal", t == "char_literal":
		return StyleString
	case !n.IsNamed():
		if isWord(t) {
			return StyleKeyword
		}
		return ""
	case t == "number", t == "integer", t == "float",
		strings.HasSuffix(t, "int_literal"), strings.HasSuffix(t, "integer_literal"),
		strings.HasSuffix(t, "float_literal"), t == "imaginary_literal":
		return StyleNumber
	}
	return ""
}

func isWord(s string) bool {
	if len(s) < 2 {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && r != '_' {
			return false
		}
	}
	return true
}

// StyleAt returns the style name covering col on line, or "".
func (r Result) StyleAt(line, col int) string {
	for _, s := range r[line] {
		if col >= s.StartCol && col < s.EndCol {
			return s.StyleName
		}
	}
	return ""
}
