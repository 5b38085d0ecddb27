// internal/event/events.go
package event

import (
	"fmt"

	"github.com/bethropolis/emacsmode/internal/buffer"
	"github.com/bethropolis/emacsmode/internal/input/key"
	"github.com/bethropolis/emacsmode/internal/types"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Document Events
	TypeBufferModified // Fired when buffer content changes (insert/delete)
	TypeBufferLoaded   // Fired after a buffer is successfully loaded
	TypeBufferSaved    // Fired after a buffer is successfully saved
	TypeCursorMoved    // Fired when the cursor position changes

	// Input Events
	TypeKeyPressed // Key event seen by a handler, with its dispatch result

	// Requests to the host
	TypeMessage            // Minibuffer message with a severity
	TypeStatusChanged      // Status line text (position, percentage)
	TypeIndentRegion       // Host should re-indent a range of lines
	TypeWriteFileRequested // Host may write a file; consuming the event marks it handled
)

var typeNames = map[Type]string{
	TypeUnknown:            "unknown",
	TypeBufferModified:     "buffer-modified",
	TypeBufferLoaded:       "buffer-loaded",
	TypeBufferSaved:        "buffer-saved",
	TypeCursorMoved:        "cursor-moved",
	TypeKeyPressed:         "key-pressed",
	TypeMessage:            "message",
	TypeStatusChanged:      "status-changed",
	TypeIndentRegion:       "indent-region",
	TypeWriteFileRequested: "write-file-requested",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---

// BufferModifiedData contains info about buffer changes, including EditInfo.
type BufferModifiedData struct {
	Document buffer.Document
	Edit     types.EditInfo // Information about the change for incremental parsing
}

// BufferLoadedData contains info about the loaded buffer.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData describes a completed save as read back from disk.
type BufferSavedData struct {
	FilePath string
	Lines    int  // newline count
	Bytes    int  // file size
	New      bool // the file did not exist before
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
	Anchor      types.Position
}

// KeyPressedData contains the key event and what the dispatcher did with it.
type KeyPressedData struct {
	Key    key.Event
	Result string
}

// MessageData is a minibuffer message.
type MessageData struct {
	Text  string
	Level types.MessageLevel
}

// StatusChangedData carries the status line text.
type StatusChangedData struct {
	Text string
}

// IndentRegionData asks the host to indent lines BeginLine..EndLine
// (0-based, inclusive). TypedChar is the character that triggered the
// indent, or 0 for an explicit request.
type IndentRegionData struct {
	Document   buffer.Document
	BeginLine  int
	EndLine    int
	TypedChar  rune
	TabStop    int
	ShiftWidth int
	ExpandTabs bool
}

// WriteFileData asks the host to write Contents to FileName. A handler
// that writes the file returns true from its Handler.
type WriteFileData struct {
	FileName string
	Contents string
}
