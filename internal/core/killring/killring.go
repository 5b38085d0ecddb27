// Package killring implements the Emacs kill ring: a bounded, most-recent-first
// history of killed text with a rotation cursor used by yank cycling.
package killring

import (
	"errors"
	"sync"

	"github.com/bethropolis/emacsmode/internal/logger"
)

// DefaultCapacity is the number of entries kept when no size is configured.
const DefaultCapacity = 60

// ErrEmpty is returned by Current and Advance on an empty ring.
var ErrEmpty = errors.New("kill ring is empty")

// KillRing is safe for concurrent use. One ring is normally shared by every
// editor of an application so that kills in one buffer can be yanked in another.
type KillRing struct {
	mu       sync.Mutex
	entries  []string // entries[0] is the most recent kill
	pos      int
	capacity int
}

// New creates a ring holding at most capacity entries.
// A capacity below one selects DefaultCapacity.
func New(capacity int) *KillRing {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &KillRing{capacity: capacity}
}

// Push adds text as the most recent entry, evicting the oldest entries
// once the ring is over capacity.
func (k *KillRing) Push(text string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.push(text)
}

func (k *KillRing) push(text string) {
	k.entries = append(k.entries, "")
	copy(k.entries[1:], k.entries)
	k.entries[0] = text
	for len(k.entries) > k.capacity {
		k.entries = k.entries[:len(k.entries)-1]
	}
	if k.pos >= len(k.entries) {
		k.pos = 0
	}
	logger.DebugTagf("killring", "push %d bytes, size=%d", len(text), len(k.entries))
}

// AppendTop concatenates text onto the most recent entry, creating an
// empty entry first if the ring is empty.
func (k *KillRing) AppendTop(text string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if len(k.entries) == 0 {
		k.push("")
	}
	k.entries[0] += text
	logger.DebugTagf("killring", "append %d bytes to top, top=%d bytes", len(text), len(k.entries[0]))
}

// Current returns the entry under the rotation cursor.
func (k *KillRing) Current() (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if len(k.entries) == 0 {
		return "", ErrEmpty
	}
	return k.entries[k.pos], nil
}

// Advance moves the rotation cursor one entry older, wrapping to the newest.
func (k *KillRing) Advance() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if len(k.entries) == 0 {
		return ErrEmpty
	}
	k.pos = (k.pos + 1) % len(k.entries)
	return nil
}

// Rewind points the rotation cursor back at the most recent entry.
func (k *KillRing) Rewind() {
	k.mu.Lock()
	k.pos = 0
	k.mu.Unlock()
}

// Clear removes every entry and resets the rotation cursor.
func (k *KillRing) Clear() {
	k.mu.Lock()
	k.entries = nil
	k.pos = 0
	k.mu.Unlock()
}

// Empty reports whether the ring holds no entries.
func (k *KillRing) Empty() bool {
	return k.Len() == 0
}

// Len returns the number of entries.
func (k *KillRing) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

// Capacity returns the maximum number of entries.
func (k *KillRing) Capacity() int {
	return k.capacity
}

// Pos returns the rotation cursor.
func (k *KillRing) Pos() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pos
}

// Entries returns a copy of the entries, most recent first.
func (k *KillRing) Entries() []string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]string(nil), k.entries...)
}
