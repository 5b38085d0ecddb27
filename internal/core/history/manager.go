package history

import (
	"fmt"
	"sync"

	"github.com/bethropolis/emacsmode/internal/logger"
	"github.com/bethropolis/emacsmode/internal/types"
)

const DefaultMaxHistory = 100

// Target applies raw edits without recording them.
type Target interface {
	ApplyInsert(offset int, text string) (types.EditInfo, error)
	ApplyDelete(begin, end int) (types.EditInfo, error)
}

// Manager handles the undo/redo stack.
type Manager struct {
	target       Target
	groups       []Group
	revs         []int // revision reached by applying groups[i]
	currentIndex int   // Index of the *next* group to potentially Redo
	maxHistory   int

	lastRev int // last revision handed out
	baseRev int // revision before groups[0]

	depth   int   // BeginGroup nesting
	pending Group // changes recorded inside an open group

	mutex sync.Mutex
}

// NewManager creates a history manager applying undo/redo to target.
func NewManager(target Target, maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		target:     target,
		groups:     make([]Group, 0, maxHistory),
		maxHistory: maxHistory,
	}
}

// BeginGroup opens an edit group. Groups nest; only the outermost
// EndGroup commits.
func (m *Manager) BeginGroup() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.depth++
}

// EndGroup closes the innermost open group.
func (m *Manager) EndGroup() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.depth == 0 {
		return
	}
	m.depth--
	if m.depth == 0 {
		m.commit()
	}
}

// RecordChange adds a new change, clearing any redo history.
func (m *Manager) RecordChange(change Change) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.pending = append(m.pending, change)
	if m.depth == 0 {
		m.commit()
	}
}

// commit pushes the pending changes as one group. Caller holds the mutex.
func (m *Manager) commit() {
	if len(m.pending) == 0 {
		return
	}

	// If current index isn't at the end, truncate the redo history
	if m.currentIndex < len(m.groups) {
		m.groups = m.groups[:m.currentIndex]
		m.revs = m.revs[:m.currentIndex]
	}
	m.lastRev++
	m.groups = append(m.groups, m.pending)
	m.revs = append(m.revs, m.lastRev)
	m.pending = nil

	if drop := len(m.groups) - m.maxHistory; drop > 0 {
		m.baseRev = m.revs[drop-1]
		m.groups = m.groups[drop:]
		m.revs = m.revs[drop:]
	}
	m.currentIndex = len(m.groups)

	logger.DebugTagf("history", "History: Recorded group. Index: %d, Count: %d", m.currentIndex, len(m.groups))
}

// Undo reverts the last recorded group. It returns the offset the caret
// should move to and false when there was nothing to undo.
func (m *Manager) Undo() (int, bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.closeOpenGroup()
	if m.currentIndex <= 0 {
		logger.DebugTagf("history", "History: Nothing to undo.")
		return 0, false, nil
	}

	m.currentIndex--
	group := m.groups[m.currentIndex]
	caret := 0
	for i := len(group) - 1; i >= 0; i-- {
		c := group[i]
		var err error
		switch c.Type {
		case InsertAction:
			_, err = m.target.ApplyDelete(c.Offset, c.End())
		case DeleteAction:
			_, err = m.target.ApplyInsert(c.Offset, c.Text)
		}
		if err != nil {
			logger.Errorf("History: Error undoing %v: %v", c.Type, err)
			m.currentIndex++
			return 0, false, fmt.Errorf("undo failed: %w", err)
		}
		caret = c.Offset
		if c.Type == DeleteAction {
			caret = c.End()
		}
	}
	logger.DebugTagf("history", "History: Undid group %d (%d changes)", m.currentIndex, len(group))
	return caret, true, nil
}

// Redo reapplies the last undone group.
func (m *Manager) Redo() (int, bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.closeOpenGroup()
	if m.currentIndex >= len(m.groups) {
		logger.DebugTagf("history", "History: Nothing to redo. currentIndex=%d, len(groups)=%d", m.currentIndex, len(m.groups))
		return 0, false, nil
	}

	group := m.groups[m.currentIndex]
	caret := 0
	for _, c := range group {
		var err error
		switch c.Type {
		case InsertAction:
			_, err = m.target.ApplyInsert(c.Offset, c.Text)
			caret = c.End()
		case DeleteAction:
			_, err = m.target.ApplyDelete(c.Offset, c.End())
			caret = c.Offset
		}
		if err != nil {
			logger.Errorf("History: Error redoing %v: %v", c.Type, err)
			return 0, false, fmt.Errorf("redo failed: %w", err)
		}
	}

	m.currentIndex++
	logger.DebugTagf("history", "History: Redo completed. New currentIndex=%d", m.currentIndex)
	return caret, true, nil
}

func (m *Manager) closeOpenGroup() {
	if m.depth > 0 {
		m.depth = 0
		m.commit()
	}
}

// Clear resets the history stack. Call this on file load.
func (m *Manager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.groups = m.groups[:0]
	m.revs = m.revs[:0]
	m.lastRev++
	m.baseRev = m.lastRev
	m.pending = nil
	m.depth = 0
	m.currentIndex = 0
	logger.DebugTagf("history", "History: Cleared.")
}

// Revision identifies the current state of the history. Every committed
// group gets a new revision, also once old groups are dropped, and undo or
// redo return to the revision the state had before.
func (m *Manager) Revision() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.currentIndex == 0 {
		return m.baseRev
	}
	return m.revs[m.currentIndex-1]
}

// AvailableUndoSteps returns the number of groups that can be undone.
func (m *Manager) AvailableUndoSteps() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex
}

// CanUndo returns true if there are changes that can be undone.
func (m *Manager) CanUndo() bool {
	return m.AvailableUndoSteps() > 0
}

// CanRedo returns true if there are changes that can be redone.
func (m *Manager) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex < len(m.groups)
}
