// internal/tui/drawing.go
package tui

import (
	"context"
	"fmt"
	"math"

	"github.com/bethropolis/emacsmode/internal/core/cursor"
	"github.com/bethropolis/emacsmode/internal/highlight"
	"github.com/bethropolis/emacsmode/internal/logger"
	"github.com/bethropolis/emacsmode/internal/modehandler"
	"github.com/bethropolis/emacsmode/internal/statusbar"
	"github.com/bethropolis/emacsmode/internal/theme"
	"github.com/bethropolis/emacsmode/internal/types"
	"github.com/rivo/uniseg"
)

// View scrolls a document so the caret stays visible.
type View struct {
	Top     int // first visible line
	Left    int // first visible column
	TabStop int
	Theme   *theme.Theme // nil uses theme.DevComfortDark
	Syntax  *highlight.Highlighter
}

// visualColumn returns the display column of rune index col in line.
func visualColumn(line string, col, tabStop int) int {
	width, runes := 0, 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() && runes < col {
		width += clusterWidth(gr.Str(), width, tabStop)
		runes += len(gr.Runes())
	}
	return width
}

func clusterWidth(cluster string, at, tabStop int) int {
	if cluster == "\t" {
		if tabStop <= 0 {
			tabStop = 4
		}
		return tabStop - at%tabStop
	}
	return uniseg.StringWidth(cluster)
}

// inRange reports whether pos lies in [start, end).
func inRange(pos, start, end types.Position) bool {
	if pos.Line < start.Line || pos.Line > end.Line {
		return false
	}
	if pos.Line == start.Line && pos.Col < start.Col {
		return false
	}
	return !(pos.Line == end.Line && pos.Col >= end.Col)
}

func gutterWidth(lineCount, width int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	w := int(math.Log10(float64(lineCount))) + 2
	if w >= width {
		return 0
	}
	return w
}

// Draw renders h's document, the selection, the caret and the minibuffer.
func (v *View) Draw(t *TUI, h *modehandler.Handler, sb *statusbar.StatusBar) {
	doc := h.Document()
	cur := h.Cursor()
	width, height := t.Size()
	textHeight := height - 1
	th := v.Theme
	if th == nil {
		th = theme.DevComfortDark
	}
	styleText := th.GetStyle(theme.StyleDefault)
	styleGutter := th.GetStyle(theme.StyleGutter)
	styleSelection := th.GetStyle(theme.StyleSelection)
	t.screen.SetStyle(styleText)
	t.Clear()
	if textHeight <= 0 {
		sb.Draw(t.screen, width, height)
		return
	}

	gutter := gutterWidth(doc.LineCount(), width)
	textWidth := width - gutter
	pos := cur.Pos()

	// Scroll so the caret is visible.
	if pos.Line < v.Top {
		v.Top = pos.Line
	} else if pos.Line >= v.Top+textHeight {
		v.Top = pos.Line - textHeight + 1
	}
	caretLine, _ := doc.LineText(pos.Line)
	caretCol := visualColumn(caretLine, pos.Col, v.TabStop)
	if caretCol < v.Left {
		v.Left = caretCol
	} else if textWidth > 0 && caretCol >= v.Left+textWidth {
		v.Left = caretCol - textWidth + 1
	}

	var selStart, selEnd types.Position
	selecting := h.MoveMode() == cursor.KeepAnchor && cur.HasSelection()
	if selecting {
		selStart = doc.PositionOf(cur.SelectionStart())
		selEnd = doc.PositionOf(cur.SelectionEnd())
	}

	var spans highlight.Result
	if v.Syntax != nil {
		var err error
		if spans, err = v.Syntax.Highlights(context.Background()); err != nil {
			logger.Debugf("Draw: highlight: %v", err)
		}
	}

	for y := 0; y < textHeight; y++ {
		line := v.Top + y
		if line >= doc.LineCount() {
			break
		}
		if gutter > 0 {
			num := fmt.Sprintf("%*d ", gutter-1, line+1)
			for i, r := range num {
				t.screen.SetContent(i, y, r, nil, styleGutter)
			}
		}

		text, err := doc.LineText(line)
		if err != nil {
			logger.Debugf("Draw: line %d: %v", line, err)
			continue
		}
		visual, col := 0, 0
		gr := uniseg.NewGraphemes(text)
		for gr.Next() {
			cluster := gr.Str()
			w := clusterWidth(cluster, visual, v.TabStop)
			style := styleText
			if name := spans.StyleAt(line, col); name != "" {
				style = th.GetStyle(name)
			}
			if selecting && inRange(types.Position{Line: line, Col: col}, selStart, selEnd) {
				style = styleSelection
			}
			x := visual - v.Left + gutter
			if cluster == "\t" {
				for i := 0; i < w; i++ {
					if x+i >= gutter && x+i < width {
						t.screen.SetContent(x+i, y, ' ', nil, style)
					}
				}
			} else if x >= gutter && x+w <= width {
				runes := gr.Runes()
				t.screen.SetContent(x, y, runes[0], runes[1:], style)
			}
			visual += w
			col += len(gr.Runes())
		}
	}

	sb.Draw(t.screen, width, height)

	x := caretCol - v.Left + gutter
	y := pos.Line - v.Top
	if x < gutter || x >= width || y < 0 || y >= textHeight {
		t.screen.HideCursor()
	} else {
		t.screen.ShowCursor(x, y)
	}
}
