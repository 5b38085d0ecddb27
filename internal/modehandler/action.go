package modehandler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/emacsmode/internal/core/cursor"
	"github.com/bethropolis/emacsmode/internal/core/text"
	"github.com/bethropolis/emacsmode/internal/event"
	"github.com/bethropolis/emacsmode/internal/input"
	"github.com/bethropolis/emacsmode/internal/lang"
	"github.com/bethropolis/emacsmode/internal/logger"
	"github.com/bethropolis/emacsmode/internal/types"
)

// actionDef is the behaviour bound to an action ID.
type actionDef struct {
	run func(h *Handler) error
	// breaksChain records ActionNull as the last action instead of the ID.
	breaksChain bool
}

var actionTable = map[input.ActionID]actionDef{
	input.ActionMoveUp:               {run: move(cursor.Up)},
	input.ActionMoveDown:             {run: move(cursor.Down)},
	input.ActionMoveRight:            {run: move(cursor.Right)},
	input.ActionMoveLeft:             {run: move(cursor.Left)},
	input.ActionMoveToEndOfLine:      {run: move(cursor.EndOfLine)},
	input.ActionMoveToStartOfLine:    {run: move(cursor.StartOfLine)},
	input.ActionNewLine:              {run: insert("\n")},
	input.ActionBackspace:            {run: (*Handler).backspace},
	input.ActionInsertBackSlash:      {run: insert("\\")},
	input.ActionInsertStraightDelim:  {run: insert("|")},
	input.ActionUndo:                 {run: (*Handler).undo},
	input.ActionRedo:                 {run: (*Handler).redo},
	input.ActionIndentRegion:         {run: (*Handler).indentRegion},
	input.ActionStartSelection:       {run: (*Handler).startSelection},
	input.ActionCancelCurrentCommand: {run: (*Handler).cancel, breaksChain: true},
	input.ActionCommentOutRegion:     {run: (*Handler).commentOutRegion},
	input.ActionUncommentRegion:      {run: (*Handler).uncommentRegion},
	input.ActionKillSelected:         {run: (*Handler).killSelected},
	input.ActionCopySelected:         {run: (*Handler).copySelected},
	input.ActionKillLine:             {run: (*Handler).killLine},
	input.ActionKillSymbol:           {run: (*Handler).killSymbol},
	input.ActionYankCurrent:          {run: (*Handler).yankCurrent},
	input.ActionYankNext:             {run: (*Handler).yankNext},
	input.ActionSaveCurrentBuffer:    {run: (*Handler).saveCurrentBuffer},
}

// --- Movement and plain edits ---

func move(op cursor.Operation) func(h *Handler) error {
	return func(h *Handler) error {
		h.cursor.MovePosition(op, h.moveMode)
		return nil
	}
}

func insert(s string) func(h *Handler) error {
	return func(h *Handler) error {
		h.beginEdit(h.cursor.Position())
		defer h.endEdit()
		return h.cursor.InsertText(s)
	}
}

func (h *Handler) backspace() error {
	h.beginEdit(h.cursor.Position())
	defer h.endEdit()
	return h.cursor.DeletePreviousChar()
}

// --- Selection ---

func (h *Handler) anchorCurrentPos() {
	h.cursor.SetPosition(h.cursor.Position(), cursor.MoveAnchor)
}

func (h *Handler) startSelection() error {
	h.anchorCurrentPos()
	h.moveMode = cursor.KeepAnchor
	return nil
}

func (h *Handler) cancel() error {
	h.moveMode = cursor.MoveAnchor
	h.anchorCurrentPos()
	h.yank.valid = false
	return nil
}

// --- Undo ---

func (h *Handler) undo() error {
	caret, ok := h.doc.Undo()
	if !ok {
		h.showMessage(types.MessageInfo, "Already at oldest change")
		return nil
	}
	h.showMessage(types.MessageInfo, "")
	h.restoreCaret(caret)
	return nil
}

func (h *Handler) redo() error {
	caret, ok := h.doc.Redo()
	if !ok {
		h.showMessage(types.MessageInfo, "Already at newest change")
		return nil
	}
	h.showMessage(types.MessageInfo, "")
	h.restoreCaret(caret)
	return nil
}

// restoreCaret puts the caret where it was when the now-current revision
// was started, falling back to the offset the document reported.
func (h *Handler) restoreCaret(fallback int) {
	if pos, ok := h.undoPos[h.doc.Revision()]; ok {
		fallback = pos
	}
	h.cursor.SetPosition(fallback, cursor.MoveAnchor)
}

// --- Kill ring ---

// storeKill puts text in the ring, growing the top entry when the previous
// action was also a kill.
func (h *Handler) storeKill(s string, appending bool) {
	if appending {
		h.ring.AppendTop(s)
	} else {
		h.ring.Push(s)
		h.ring.Rewind()
	}
	if top, err := h.ring.Current(); err == nil {
		if err := h.clipboard.Mirror(top); err != nil {
			logger.Warnf("Handler: clipboard mirror: %v", err)
		}
	}
}

// kill deletes [begin, end) into the ring as one undo step.
func (h *Handler) kill(begin, end int) error {
	killed := h.doc.Text(begin, end)
	h.beginEdit(h.cursor.Position())
	_, err := h.doc.Delete(begin, end)
	h.endEdit()
	if err != nil {
		return fmt.Errorf("kill %d-%d: %w", begin, end, err)
	}
	h.cursor.SetPosition(begin, cursor.MoveAnchor)
	h.storeKill(killed, h.lastAction.IsKill())
	return nil
}

func (h *Handler) killLine() error {
	pos := h.cursor.Position()
	end, ok := text.KillLineEnd(h.doc, pos)
	if !ok {
		h.showMessage(types.MessageWarning, "End of buffer")
		return nil
	}
	return h.kill(pos, end)
}

func (h *Handler) killSymbol() error {
	pos := h.cursor.Position()
	end := text.SymbolEnd(h.doc, pos)
	if end == pos {
		h.showMessage(types.MessageWarning, "End of buffer")
		return nil
	}
	return h.kill(pos, end)
}

func (h *Handler) killSelected() error {
	defer func() { h.moveMode = cursor.MoveAnchor }()
	if !h.cursor.HasSelection() {
		return nil
	}
	return h.kill(h.cursor.SelectionStart(), h.cursor.SelectionEnd())
}

func (h *Handler) copySelected() error {
	if h.cursor.HasSelection() {
		h.storeKill(h.cursor.SelectedText(), false)
	}
	h.anchorCurrentPos()
	h.moveMode = cursor.MoveAnchor
	return nil
}

// importClipboard pushes text another program put on the system clipboard.
func (h *Handler) importClipboard() {
	if s, ok := h.clipboard.External(); ok {
		logger.DebugTagf("killring", "Handler: importing %d bytes from system clipboard", len(s))
		h.ring.Push(s)
		h.ring.Rewind()
	}
}

func (h *Handler) yankCurrent() error {
	h.yank.valid = false
	h.importClipboard()
	if h.ring.Empty() {
		h.showMessage(types.MessageWarning, "Kill ring is empty")
		return nil
	}
	s, err := h.ring.Current()
	if err != nil {
		return err
	}

	h.beginEdit(h.cursor.Position())
	err = h.cursor.InsertText(s)
	h.endEdit()
	if err != nil {
		return fmt.Errorf("yank: %w", err)
	}
	end := h.cursor.Position()
	h.yank = yankChain{start: end - utf8.RuneCountInString(s), end: end, valid: true}
	return nil
}

func (h *Handler) yankNext() error {
	if !h.lastAction.IsYank() || !h.yank.valid {
		h.yank.valid = false
		h.showMessage(types.MessageError, "Previous command was not a yank")
		return nil
	}
	if err := h.ring.Advance(); err != nil {
		h.yank.valid = false
		return err
	}
	s, err := h.ring.Current()
	if err != nil {
		h.yank.valid = false
		return err
	}

	start := h.yank.start
	h.beginEdit(h.yank.end)
	_, err = h.doc.Delete(start, h.yank.end)
	if err == nil {
		_, err = h.doc.Insert(start, s)
	}
	h.endEdit()
	if err != nil {
		h.yank.valid = false
		return fmt.Errorf("yank next: %w", err)
	}

	end := start + utf8.RuneCountInString(s)
	h.cursor.SetPosition(end, cursor.MoveAnchor)
	h.yank = yankChain{start: start, end: end, valid: true}
	return nil
}

// --- Region commands ---

func (h *Handler) regionLines() (int, int) {
	return text.RegionLines(h.doc, h.cursor.Anchor(), h.cursor.Position())
}

func (h *Handler) indentRegion() error {
	begin, end := h.regionLines()
	h.beginEdit(h.cursor.Position())
	consumed := h.dispatch(event.TypeIndentRegion, event.IndentRegionData{
		Document:   h.doc,
		BeginLine:  begin,
		EndLine:    end,
		TabStop:    h.tabStop,
		ShiftWidth: h.shiftWidth,
		ExpandTabs: h.expandTabs,
	})
	h.endEdit()
	if !consumed {
		logger.Debugf("Handler: no indenter handled lines %d-%d", begin, end)
	}
	h.cursor.SetPosition(text.FirstNonBlank(h.doc, begin), cursor.MoveAnchor)
	return nil
}

func (h *Handler) commentPrefixForFile() string {
	return lang.CommentPrefix(h.fileName, h.commentPrefix)
}

func (h *Handler) commentOutRegion() error {
	begin, end := h.regionLines()
	firstPos := h.doc.OffsetOf(types.Position{Line: begin})

	h.beginEdit(firstPos)
	err := text.PrefixLines(h.doc, begin, end, h.commentPrefixForFile())
	h.endEdit()
	if err != nil {
		return fmt.Errorf("comment lines %d-%d: %w", begin+1, end+1, err)
	}
	h.cursor.SetPosition(firstPos, cursor.MoveAnchor)
	return nil
}

func (h *Handler) uncommentRegion() error {
	begin, end := h.regionLines()
	firstPos := h.doc.OffsetOf(types.Position{Line: begin})

	h.beginEdit(firstPos)
	changed, err := text.UnprefixLines(h.doc, begin, end, h.commentPrefixForFile())
	h.endEdit()
	if err != nil {
		return fmt.Errorf("uncomment lines %d-%d: %w", begin+1, end+1, err)
	}
	if changed == 0 {
		h.showMessage(types.MessageInfo, "Nothing to uncomment")
	}
	h.cursor.SetPosition(firstPos, cursor.MoveAnchor)
	return nil
}

// --- Saving ---

func (h *Handler) saveCurrentBuffer() error {
	return h.saveToFile(h.fileName)
}

// saveToFile writes the whole document to fileName. A TypeWriteFileRequested
// handler may write it instead; otherwise the file is written directly.
// The result is reported from what reads back from disk.
func (h *Handler) saveToFile(fileName string) error {
	if fileName == "" {
		h.showMessage(types.MessageError, "No file name")
		return nil
	}

	_, statErr := os.Stat(fileName)
	existed := statErr == nil

	f, err := os.OpenFile(fileName, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		logger.Warnf("Handler: open %s: %v", fileName, err)
		h.showMessage(types.MessageError, fmt.Sprintf("Cannot open file '%s' for reading", fileName))
		return nil
	}
	f.Close()

	contents := text.SelectText(h.doc, text.WholeDocument(h.doc))
	handled := h.dispatch(event.TypeWriteFileRequested, event.WriteFileData{
		FileName: fileName,
		Contents: contents,
	})
	if !handled {
		if err := os.WriteFile(fileName, []byte(contents), 0o644); err != nil {
			logger.Errorf("Handler: write %s: %v", fileName, err)
			h.showMessage(types.MessageError, fmt.Sprintf("Cannot open file '%s' for writing", fileName))
			return nil
		}
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		logger.Warnf("Handler: read back %s: %v", fileName, err)
		return nil
	}

	lines := strings.Count(string(data), "\n")
	newMark := " "
	if !existed {
		newMark = " [New] "
	}
	h.showMessage(types.MessageInfo, fmt.Sprintf("\"%s\"%s%dL, %dC written", fileName, newMark, lines, len(data)))
	h.dispatch(event.TypeBufferSaved, event.BufferSavedData{
		FilePath: filepath.Clean(fileName),
		Lines:    lines,
		Bytes:    len(data),
		New:      !existed,
	})
	return nil
}
