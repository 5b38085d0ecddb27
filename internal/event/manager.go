// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/emacsmode/internal/logger"
)

// Handler defines the function signature for event subscribers.
// It returns true if the event was consumed, which stops propagation.
type Handler func(e Event) bool

// SubscriptionID identifies a subscription for Unsubscribe.
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler Handler
}

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]subscription // Map event types to a list of handlers
	nextID   SubscriptionID
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]subscription),
	}
}

// Subscribe adds a handler function for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) SubscriptionID {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.handlers[eventType] = append(m.handlers[eventType], subscription{id: m.nextID, handler: handler})
	logger.DebugTagf("event", "Event Manager: Handler %d subscribed to %v", m.nextID, eventType)
	return m.nextID
}

// Unsubscribe removes a handler. Unknown IDs are ignored.
func (m *Manager) Unsubscribe(id SubscriptionID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for t, subs := range m.handlers {
		for i, s := range subs {
			if s.id == id {
				m.handlers[t] = append(subs[:i:i], subs[i+1:]...)
				logger.DebugTagf("event", "Event Manager: Handler %d unsubscribed from %v", id, t)
				return
			}
		}
	}
}

// Dispatch sends an event to the registered handlers for its type, in
// subscription order, until one consumes it. It reports whether the
// event was consumed. Handlers run synchronously.
func (m *Manager) Dispatch(eventType Type, data interface{}) bool {
	if m == nil {
		return false
	}
	event := Event{
		Type: eventType,
		Data: data,
	}

	m.mu.RLock() // Use read lock while copying handlers
	subs := make([]subscription, len(m.handlers[eventType]))
	copy(subs, m.handlers[eventType])
	m.mu.RUnlock()

	if len(subs) == 0 {
		return false
	}

	logger.DebugTagf("event", "Event Manager: Dispatching %v to %d handler(s)", eventType, len(subs))

	// The copy lets handlers unsubscribe themselves during dispatch.
	for _, s := range subs {
		if s.handler(event) {
			return true
		}
	}
	return false
}
