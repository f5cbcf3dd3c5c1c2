// Package feed implements the change notification hub between the stores
// and the derived-state services.
//
// Writers call Notify after every successful mutation; subscribers receive a
// synchronous callback and recompute their full output from the stores. The
// hub carries no payload: a notification means "re-read everything", which
// keeps read-your-writes semantics trivial at the expected scale.
package feed

import (
	"context"
	"sync"
)

// Topic identifies a change stream.
type Topic string

const (
	TopicLedger   Topic = "ledger"
	TopicSettings Topic = "settings"
)

// Handler is invoked synchronously on every notification for its topic.
type Handler func(ctx context.Context)

// Hub fans change notifications out to subscribers.
type Hub struct {
	mu       sync.RWMutex
	handlers map[Topic][]Handler
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		handlers: make(map[Topic][]Handler),
	}
}

// Subscribe registers a handler for a topic. Handlers run in registration
// order on the notifying goroutine.
func (h *Hub) Subscribe(topic Topic, fn Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[topic] = append(h.handlers[topic], fn)
}

// Notify invokes every handler registered for the topic.
func (h *Hub) Notify(ctx context.Context, topic Topic) {
	h.mu.RLock()
	subs := make([]Handler, len(h.handlers[topic]))
	copy(subs, h.handlers[topic])
	h.mu.RUnlock()

	for _, fn := range subs {
		fn(ctx)
	}
}
