package app

import (
	"strings"

	"github.com/bethropolis/emacsmode/internal/buffer"
	"github.com/bethropolis/emacsmode/internal/event"
	"github.com/bethropolis/emacsmode/internal/logger"
	"github.com/bethropolis/emacsmode/internal/types"
)

// handleIndentRegion re-indents the requested lines by bracket depth.
func (a *App) handleIndentRegion(e event.Event) bool {
	data, ok := e.Data.(event.IndentRegionData)
	if !ok || data.Document == nil {
		return false
	}
	if err := IndentLines(data.Document, data); err != nil {
		logger.Warnf("App: indent lines %d-%d: %v", data.BeginLine, data.EndLine, err)
	}
	return true
}

// IndentLines sets the leading whitespace of lines req.BeginLine through
// req.EndLine to ShiftWidth columns per open bracket before the line.
// A line starting with a closing bracket is outdented one level and
// blank lines are emptied.
func IndentLines(doc buffer.Document, req event.IndentRegionData) error {
	shift := req.ShiftWidth
	if shift <= 0 {
		shift = 4
	}

	depth := 0
	for line := 0; line < req.BeginLine && line < doc.LineCount(); line++ {
		text, err := doc.LineText(line)
		if err != nil {
			return err
		}
		depth = max(0, depth+bracketDelta(text))
	}

	for line := req.BeginLine; line <= req.EndLine && line < doc.LineCount(); line++ {
		text, err := doc.LineText(line)
		if err != nil {
			return err
		}
		body := strings.TrimLeft(text, " \t")

		level := depth
		if body != "" && strings.ContainsRune(")]}", rune(body[0])) {
			level = max(0, level-1)
		}
		indent := ""
		if body != "" {
			indent = whitespace(level*shift, req.TabStop, req.ExpandTabs)
		}
		if err := replaceIndent(doc, line, len([]rune(text))-len([]rune(body)), indent); err != nil {
			return err
		}
		depth = max(0, depth+bracketDelta(body))
	}
	return nil
}

// replaceIndent swaps the first old runes of line for indent.
func replaceIndent(doc buffer.Document, line, old int, indent string) error {
	start := doc.OffsetOf(types.Position{Line: line})
	if doc.Text(start, start+old) == indent {
		return nil
	}
	if old > 0 {
		if _, err := doc.Delete(start, start+old); err != nil {
			return err
		}
	}
	if indent != "" {
		if _, err := doc.Insert(start, indent); err != nil {
			return err
		}
	}
	return nil
}

// whitespace renders cols columns of indentation.
func whitespace(cols, tabStop int, expandTabs bool) string {
	if expandTabs || tabStop <= 0 {
		return strings.Repeat(" ", cols)
	}
	return strings.Repeat("\t", cols/tabStop) + strings.Repeat(" ", cols%tabStop)
}

// bracketDelta counts opening minus closing brackets outside quotes.
func bracketDelta(s string) int {
	delta := 0
	var quote rune
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
		case quote != 0:
			if r == '\\' && quote != '`' {
				escaped = true
			} else if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'' || r == '`':
			quote = r
		case r == '{' || r == '(' || r == '[':
			delta++
		case r == '}' || r == ')' || r == ']':
			delta--
		}
	}
	return delta
}
