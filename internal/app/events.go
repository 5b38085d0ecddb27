package app

import (
	"github.com/bethropolis/emacsmode/internal/buffer"
	"github.com/bethropolis/emacsmode/internal/event"
	"github.com/bethropolis/emacsmode/internal/logger"
	"github.com/bethropolis/emacsmode/internal/types"
)

// handleMessage shows handler messages in the shared minibuffer
func (a *App) handleMessage(e event.Event) bool {
	if data, ok := e.Data.(event.MessageData); ok {
		a.statusBar.SetMessage(data.Text, data.Level)
	}
	return false // Not consumed
}

// handleStatusChanged updates the status text of the minibuffer
func (a *App) handleStatusChanged(e event.Event) bool {
	if data, ok := e.Data.(event.StatusChangedData); ok {
		a.statusBar.SetStatus(data.Text)
	}
	return false // Not consumed
}

// editNotifier is implemented by documents that report their edits,
// including undo and redo replays.
type editNotifier interface {
	SetEditListener(fn buffer.EditListener)
}

// watchEdits republishes doc's edits as TypeBufferModified and returns a
// function that stops doing so.
func (a *App) watchEdits(doc buffer.Document) func() {
	n, ok := doc.(editNotifier)
	if !ok {
		logger.Debugf("App: document %T does not report edits", doc)
		return func() {}
	}
	n.SetEditListener(func(info types.EditInfo) {
		a.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Document: doc, Edit: info})
	})
	return func() { n.SetEditListener(nil) }
}
