// internal/app/app.go
package app

import (
	"fmt"
	"sync"

	"github.com/bethropolis/emacsmode/internal/buffer"
	"github.com/bethropolis/emacsmode/internal/config"
	"github.com/bethropolis/emacsmode/internal/core/clipboard"
	"github.com/bethropolis/emacsmode/internal/core/killring"
	"github.com/bethropolis/emacsmode/internal/event"
	"github.com/bethropolis/emacsmode/internal/input"
	"github.com/bethropolis/emacsmode/internal/input/key"
	"github.com/bethropolis/emacsmode/internal/logger"
	"github.com/bethropolis/emacsmode/internal/modehandler"
	"github.com/bethropolis/emacsmode/internal/statusbar"
	"github.com/bethropolis/emacsmode/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// App is the state shared by every attached editor: one kill ring, one
// minibuffer, one event bus and the key table. Each attached document gets
// its own modehandler.Handler.
type App struct {
	cfg          *config.Config
	eventManager *event.Manager
	statusBar    *statusbar.StatusBar
	killRing     *killring.KillRing
	clipboard    *clipboard.Manager
	keymap       input.Keymap
	theme        *theme.Theme

	mu       sync.Mutex
	handlers map[buffer.Document]*attached
	enabled  bool
}

type attached struct {
	handler *modehandler.Handler
	detach  func()
}

// New creates an App from cfg. sys is the system clipboard used when
// cfg.Editor.SystemClipboard is set; nil uses the OS clipboard.
func New(cfg *config.Config, sys clipboard.System) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	keymap, err := input.WithFiles(input.DefaultKeymap(), cfg.Keymap.Files)
	if err != nil {
		return nil, fmt.Errorf("loading keymap: %w", err)
	}
	if sys == nil {
		sys = clipboard.OS()
	}

	th := theme.DevComfortDark
	if cfg.Theme.File != "" {
		if th, err = theme.LoadThemeFromFile(cfg.Theme.File); err != nil {
			return nil, fmt.Errorf("loading theme: %w", err)
		}
	}

	sbCfg := statusbar.Config{
		StyleDefault:   th.GetStyle(theme.StyleStatusBar),
		StyleMessage:   th.GetStyle(theme.StyleStatusBarMessage),
		StyleWarning:   th.GetStyle(theme.StyleStatusBarWarning),
		StyleError:     th.GetStyle(theme.StyleStatusBarError),
		StyleShowCmd:   th.GetStyle(theme.StyleStatusBarShowCmd),
		MessageTimeout: cfg.Editor.MessageTimeout.Duration,
	}

	a := &App{
		cfg:          cfg,
		eventManager: event.NewManager(),
		statusBar:    statusbar.New(sbCfg),
		killRing:     killring.New(cfg.Editor.KillRingSize),
		clipboard:    clipboard.NewManager(sys, cfg.Editor.SystemClipboard),
		keymap:       keymap,
		theme:        th,
		handlers:     make(map[buffer.Document]*attached),
		enabled:      cfg.Editor.UseEmacsMode,
	}

	// --- Subscribe Core Components (App level wiring) ---
	a.eventManager.Subscribe(event.TypeMessage, a.handleMessage)
	a.eventManager.Subscribe(event.TypeStatusChanged, a.handleStatusChanged)
	a.eventManager.Subscribe(event.TypeIndentRegion, a.handleIndentRegion)

	logger.Infof("App: %d bindings, kill ring capacity %d, emacs mode %v",
		len(keymap), a.killRing.Capacity(), a.enabled)
	return a, nil
}

// Events returns the bus hosts subscribe to for messages and requests.
func (a *App) Events() *event.Manager { return a.eventManager }

// StatusBar returns the shared minibuffer.
func (a *App) StatusBar() *statusbar.StatusBar { return a.statusBar }

// KillRing returns the shared kill ring.
func (a *App) KillRing() *killring.KillRing { return a.killRing }

// Theme returns the terminal theme.
func (a *App) Theme() *theme.Theme { return a.theme }

// Config returns the configuration the App was built from.
func (a *App) Config() *config.Config { return a.cfg }

// Attach creates the handler for doc. Attaching the same document again
// returns the existing handler with its file name updated.
func (a *App) Attach(doc buffer.Document, fileName string) *modehandler.Handler {
	a.mu.Lock()
	defer a.mu.Unlock()

	if at, ok := a.handlers[doc]; ok {
		at.handler.SetFileName(fileName)
		return at.handler
	}

	h := modehandler.New(modehandler.Config{
		Document:      doc,
		KillRing:      a.killRing,
		EventManager:  a.eventManager,
		Keymap:        a.keymap,
		Clipboard:     a.clipboard,
		FileName:      fileName,
		CommentPrefix: a.cfg.Editor.CommentPrefix,
		TabStop:       a.cfg.Editor.TabStop,
		ShiftWidth:    a.cfg.Editor.ShiftWidth,
		ExpandTabs:    a.cfg.Editor.ExpandTabs,
	})
	at := &attached{handler: h, detach: a.watchEdits(doc)}
	a.handlers[doc] = at

	logger.Debugf("App: attached %q (%d editors)", fileName, len(a.handlers))
	h.UpdateStatus()
	return h
}

// Detach drops the handler for doc. Unknown documents are ignored.
func (a *App) Detach(doc buffer.Document) {
	a.mu.Lock()
	at, ok := a.handlers[doc]
	delete(a.handlers, doc)
	a.mu.Unlock()

	if !ok {
		return
	}
	at.detach()
	logger.Debugf("App: detached %q", at.handler.FileName())
}

// Handler returns the handler attached to doc.
func (a *App) Handler(doc buffer.Document) (*modehandler.Handler, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	at, ok := a.handlers[doc]
	if !ok {
		return nil, false
	}
	return at.handler, true
}

// SetEnabled turns the bindings on or off for every editor. Turning them
// off abandons any chord in progress.
func (a *App) SetEnabled(on bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.enabled == on {
		return
	}
	a.enabled = on
	if !on {
		for _, at := range a.handlers {
			at.handler.Reset()
		}
		a.statusBar.ClearMessage()
	}
	logger.Infof("App: emacs mode %v", on)
}

// Enabled reports whether the bindings are active.
func (a *App) Enabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.enabled
}

// HandleKey dispatches ev to doc's handler. Keys for unattached documents,
// and every key while disabled, are unclaimed.
func (a *App) HandleKey(doc buffer.Document, ev key.Event) modehandler.Result {
	h, ok := a.activeHandler(doc)
	if !ok {
		return modehandler.ResultUnclaimed
	}
	return h.HandleEvent(ev)
}

// HandleTcellKey converts a terminal key event and dispatches it.
func (a *App) HandleTcellKey(doc buffer.Document, ev *tcell.EventKey) modehandler.Result {
	return a.HandleKey(doc, key.FromTcell(ev))
}

// WantsOverride reports whether doc's handler would claim ev.
func (a *App) WantsOverride(doc buffer.Document, ev key.Event) bool {
	h, ok := a.activeHandler(doc)
	return ok && h.WantsOverride(ev)
}

// Type dispatches ev and, when no binding claims it, applies the default
// editing for the key. It reports what happened to the key.
func (a *App) Type(doc buffer.Document, ev key.Event) modehandler.Result {
	res := a.HandleKey(doc, ev)
	if res.Handled() {
		return res
	}
	if h, ok := a.Handler(doc); ok {
		h.SelfInsert(ev)
	}
	return res
}

func (a *App) activeHandler(doc buffer.Document) (*modehandler.Handler, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.enabled {
		return nil, false
	}
	at, ok := a.handlers[doc]
	if !ok {
		return nil, false
	}
	return at.handler, true
}
