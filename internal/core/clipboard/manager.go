// Package clipboard connects the kill ring to the operating system clipboard.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/bethropolis/emacsmode/internal/logger"
)

// ErrUnavailable is returned when no system clipboard can be reached.
var ErrUnavailable = errors.New("system clipboard unavailable")

// System is a text clipboard.
type System interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}

type osClipboard struct{}

func (osClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

func (osClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	return clipboard.ReadAll()
}

// OS returns the operating system clipboard.
func OS() System {
	return osClipboard{}
}

// Manager mirrors kills to a System clipboard and picks up text other
// programs placed there.
type Manager struct {
	sys     System
	enabled bool

	mu       sync.Mutex
	lastSeen string // last text written or imported
}

// NewManager creates a manager. A disabled manager does nothing.
func NewManager(sys System, enabled bool) *Manager {
	return &Manager{sys: sys, enabled: enabled && sys != nil}
}

// Enabled reports whether the system clipboard is in use.
func (m *Manager) Enabled() bool {
	return m != nil && m.enabled
}

// Mirror copies text to the system clipboard. Callers decide how to
// report a failed write.
func (m *Manager) Mirror(text string) error {
	if !m.Enabled() || text == "" {
		return nil
	}
	if err := m.sys.WriteAll(text); err != nil {
		return err
	}
	m.mu.Lock()
	m.lastSeen = text
	m.mu.Unlock()
	logger.DebugTagf("clipboard", "ClipboardManager: mirrored %d bytes", len(text))
	return nil
}

// External returns clipboard text placed there by another program since
// the last Mirror or External call.
func (m *Manager) External() (string, bool) {
	if !m.Enabled() {
		return "", false
	}
	text, err := m.sys.ReadAll()
	if err != nil {
		logger.DebugTagf("clipboard", "ClipboardManager: read failed: %v", err)
		return "", false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if text == "" || text == m.lastSeen {
		return "", false
	}
	m.lastSeen = text
	return text, true
}
