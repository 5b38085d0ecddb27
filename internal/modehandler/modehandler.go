// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"
	"strings"

	"github.com/bethropolis/emacsmode/internal/buffer"
	"github.com/bethropolis/emacsmode/internal/core/clipboard"
	"github.com/bethropolis/emacsmode/internal/core/cursor"
	"github.com/bethropolis/emacsmode/internal/core/killring"
	"github.com/bethropolis/emacsmode/internal/event"
	"github.com/bethropolis/emacsmode/internal/input"
	"github.com/bethropolis/emacsmode/internal/input/key"
	"github.com/bethropolis/emacsmode/internal/logger"
	"github.com/bethropolis/emacsmode/internal/statusbar"
	"github.com/bethropolis/emacsmode/internal/types"
)

// Result tells the host what happened to a key event.
type Result int

const (
	// ResultUnclaimed means no binding wanted the key; the host handles it.
	ResultUnclaimed Result = iota
	// ResultPending means the key started or continued a multi-key chord.
	ResultPending
	// ResultExecuted means the key completed a binding and its action ran.
	ResultExecuted
)

func (r Result) String() string {
	switch r {
	case ResultPending:
		return "pending"
	case ResultExecuted:
		return "executed"
	}
	return "unclaimed"
}

// Handled reports whether the host should suppress its own handling.
func (r Result) Handled() bool {
	return r != ResultUnclaimed
}

// Config holds dependencies for the Handler.
type Config struct {
	Document     buffer.Document
	KillRing     *killring.KillRing // Shared between handlers
	EventManager *event.Manager
	Keymap       input.Keymap       // nil uses input.DefaultKeymap
	Clipboard    *clipboard.Manager // optional system clipboard mirror
	FileName     string

	CommentPrefix string // used when the file type has no known prefix
	TabStop       int
	ShiftWidth    int
	ExpandTabs    bool
}

// yankChain remembers the span the last yank inserted.
type yankChain struct {
	start, end int
	valid      bool
}

// Handler is the key dispatcher and editing state for one document.
type Handler struct {
	// Dependencies
	doc       buffer.Document
	ring      *killring.KillRing
	events    *event.Manager
	clipboard *clipboard.Manager
	keymap    input.Keymap

	// Settings
	fileName      string
	commentPrefix string
	tabStop       int
	shiftWidth    int
	expandTabs    bool

	// Internal State
	cursor     *cursor.Manager
	moveMode   cursor.MoveMode
	lastAction input.ActionID
	partials   input.Keymap
	typed      []key.Event // keys of the pending chord, for display
	yank       yankChain
	undoPos    map[int]int // revision -> caret offset
}

// New creates a Handler over cfg.Document.
func New(cfg Config) *Handler {
	if cfg.Document == nil || cfg.KillRing == nil {
		// Programming error during setup
		panic("modehandler.New: Missing required dependencies in Config")
	}
	keymap := cfg.Keymap
	if keymap == nil {
		keymap = input.DefaultKeymap()
	}
	prefix := cfg.CommentPrefix
	if prefix == "" {
		prefix = "//"
	}
	return &Handler{
		doc:           cfg.Document,
		ring:          cfg.KillRing,
		events:        cfg.EventManager,
		clipboard:     cfg.Clipboard,
		keymap:        keymap,
		fileName:      cfg.FileName,
		commentPrefix: prefix,
		tabStop:       cfg.TabStop,
		shiftWidth:    cfg.ShiftWidth,
		expandTabs:    cfg.ExpandTabs,
		cursor:        cursor.NewManager(cfg.Document),
		moveMode:      cursor.MoveAnchor,
		undoPos:       make(map[int]int),
	}
}

// Document returns the edited document.
func (h *Handler) Document() buffer.Document { return h.doc }

// Cursor returns the caret and anchor state.
func (h *Handler) Cursor() *cursor.Manager { return h.cursor }

// MoveMode returns whether moves currently extend the selection.
func (h *Handler) MoveMode() cursor.MoveMode { return h.moveMode }

// LastAction returns the last executed action, or input.ActionNull.
func (h *Handler) LastAction() input.ActionID { return h.lastAction }

// Pending reports whether a multi-key chord is in progress.
func (h *Handler) Pending() bool { return len(h.partials) > 0 }

// FileName returns the file the save action writes to.
func (h *Handler) FileName() string { return h.fileName }

// SetFileName changes the file the save action writes to.
func (h *Handler) SetFileName(name string) { h.fileName = name }

// Reset abandons any chord in progress.
func (h *Handler) Reset() {
	h.partials = nil
	h.typed = nil
}

// candidates returns the shortcuts the next key is matched against.
func (h *Handler) candidates() input.Keymap {
	if len(h.partials) > 0 {
		return h.partials
	}
	return h.keymap
}

// WantsOverride reports whether ev would be claimed, without changing any
// state. Hosts that must decide before delivering a key use it.
func (h *Handler) WantsOverride(ev key.Event) bool {
	for _, sc := range h.candidates() {
		if sc.IsAccepted(ev) {
			return true
		}
	}
	return false
}

// HandleEvent feeds one key event through the shortcut table.
//
// Candidates are checked in table order. The first one that accepts ev
// and has no keys left runs its action, which ends the chord. Accepting
// candidates with keys left become the next partial set.
func (h *Handler) HandleEvent(ev key.Event) Result {
	wasPending := h.Pending()
	position, anchor := h.cursor.Position(), h.cursor.Anchor()

	var followers input.Keymap
	claimed := false
	result := ResultUnclaimed

	for _, sc := range h.candidates() {
		if !sc.IsAccepted(ev) {
			continue
		}
		claimed = true
		if follower, ok := sc.Follower(ev); ok {
			followers = append(followers, follower)
			continue
		}
		h.Reset()
		if wasPending {
			h.showMessage(types.MessageInfo, "")
		}
		h.execute(sc.Action)
		result = ResultExecuted
		break
	}

	switch {
	case result == ResultExecuted:
	case claimed:
		h.partials = followers
		h.typed = append(h.typed, ev)
		result = ResultPending
		h.showMessage(types.MessageShowCmd, h.pendingKeys())
	default:
		h.Reset()
		if wasPending {
			h.showMessage(types.MessageInfo, "")
		}
	}

	logger.DebugTagf("dispatch", "Handler: %s -> %s (partials=%d)", ev, result, len(h.partials))

	if h.cursor.Position() != position || h.cursor.Anchor() != anchor {
		h.dispatch(event.TypeCursorMoved, event.CursorMovedData{
			NewPosition: h.cursor.Pos(),
			Anchor:      h.doc.PositionOf(h.cursor.Anchor()),
		})
	}
	if result == ResultExecuted {
		h.UpdateStatus()
	}
	h.dispatch(event.TypeKeyPressed, event.KeyPressedData{Key: ev, Result: result.String()})
	return result
}

// execute runs the behaviour bound to id and records it as the last action.
func (h *Handler) execute(id input.ActionID) {
	def, ok := actionTable[id]
	if !ok {
		logger.Warnf("Handler: no behaviour for action %v", id)
		return
	}
	logger.Debugf("Handler: executing %v", id)

	if err := def.run(h); err != nil {
		logger.Errorf("Handler: %v failed: %v", id, err)
		h.showMessage(types.MessageError, fmt.Sprintf("%s: %v", id, err))
	}
	if def.breaksChain {
		h.lastAction = input.ActionNull
		return
	}
	h.lastAction = id
}

func (h *Handler) pendingKeys() string {
	parts := make([]string, len(h.typed))
	for i, ev := range h.typed {
		parts[i] = ev.String()
	}
	return strings.Join(parts, " ") + "-"
}

// UpdateStatus publishes the status line for the current caret.
func (h *Handler) UpdateStatus() {
	h.dispatch(event.TypeStatusChanged, event.StatusChangedData{
		Text: statusbar.FormatStatus(h.cursor.Pos(), h.doc.LineCount()),
	})
}

func (h *Handler) showMessage(level types.MessageLevel, text string) {
	if text != "" && level != types.MessageShowCmd {
		logger.Debugf("Handler: message [%s] %s", level, text)
	}
	h.dispatch(event.TypeMessage, event.MessageData{Text: text, Level: level})
}

func (h *Handler) dispatch(t event.Type, data interface{}) bool {
	if h.events == nil {
		return false
	}
	return h.events.Dispatch(t, data)
}

// beginEdit opens an undo group and remembers where the caret belongs
// when the group is undone.
func (h *Handler) beginEdit(caret int) {
	h.undoPos[h.doc.Revision()] = caret
	h.doc.BeginEditGroup()
}

func (h *Handler) endEdit() {
	h.doc.EndEditGroup()
}

// SelfInsert applies the default editing of an unclaimed key: printable
// characters are inserted, Enter breaks the line and Backspace deletes
// backwards. It breaks any kill or yank chain and reports whether ev was used.
func (h *Handler) SelfInsert(ev key.Event) bool {
	var err error
	switch {
	case ev.Mods.Without(key.ModShift).IsEmpty() && ev.Code == key.CodeEnter:
		err = insert("\n")(h)
	case ev.Mods.IsEmpty() && ev.Code == key.CodeBackspace:
		err = h.backspace()
	case ev.IsPrintable():
		err = insert(string(ev.Rune))(h)
	default:
		return false
	}
	if err != nil {
		logger.Warnf("Handler: self-insert %s: %v", ev, err)
	}
	h.lastAction = input.ActionNull
	h.yank.valid = false
	h.UpdateStatus()
	return true
}
