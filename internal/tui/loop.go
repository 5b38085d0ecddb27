package tui

import (
	"context"
	"time"

	"github.com/bethropolis/emacsmode/internal/app"
	"github.com/bethropolis/emacsmode/internal/buffer"
	"github.com/bethropolis/emacsmode/internal/event"
	"github.com/bethropolis/emacsmode/internal/highlight"
	"github.com/bethropolis/emacsmode/internal/input/key"
	"github.com/bethropolis/emacsmode/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// QuitKey leaves the event loop. It is not bound by the default keymap.
const QuitKey = tcell.KeyCtrlQ

// redrawInterval lets expired minibuffer messages disappear without input.
const redrawInterval = time.Second

// Run edits doc until QuitKey is pressed or ctx is done. doc must already
// be attached to a.
func Run(ctx context.Context, t *TUI, a *app.App, doc buffer.Document) error {
	h, ok := a.Handler(doc)
	if !ok {
		h = a.Attach(doc, "")
	}
	view := &View{TabStop: a.Config().Editor.TabStop, Theme: a.Theme()}

	if syntax := highlight.New(doc, highlight.LanguageForFile(h.FileName())); syntax != nil {
		defer syntax.Close()
		view.Syntax = syntax
		id := a.Events().Subscribe(event.TypeBufferModified, func(e event.Event) bool {
			if data, ok := e.Data.(event.BufferModifiedData); ok && data.Document == doc {
				syntax.AccumulateEdit(data.Edit)
			}
			return false
		})
		defer a.Events().Unsubscribe(id)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		ticker := time.NewTicker(redrawInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
				return
			case <-ticker.C:
				_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	for {
		view.Draw(t, h, a.StatusBar())
		t.Show()

		switch ev := t.PollEvent().(type) {
		case nil:
			return nil // screen finalized
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == QuitKey {
				logger.Infof("TUI: quit")
				return nil
			}
			res := a.Type(doc, key.FromTcell(ev))
			logger.DebugTagf("tui", "%s -> %s", ev.Name(), res)
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return ctx.Err()
			}
		}
	}
}
