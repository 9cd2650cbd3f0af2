// Package suggest implements the suggested-question channel and catalog.
package suggest

import "sync"

// Channel is an in-process publish/subscribe topic carrying suggested
// question text. It decouples the question catalog from the component that
// owns the input field. Publishing with no subscriber is a no-op.
type Channel struct {
	mu          sync.Mutex
	nextID      int
	subscribers map[int]func(string)
}

// NewChannel creates a new suggested-question channel.
func NewChannel() *Channel {
	return &Channel{subscribers: make(map[int]func(string))}
}

// Publish delivers the question to every registered handler. Delivery is
// best-effort and fire-and-forget.
func (c *Channel) Publish(question string) {
	c.mu.Lock()
	handlers := make([]func(string), 0, len(c.subscribers))
	for _, h := range c.subscribers {
		handlers = append(handlers, h)
	}
	c.mu.Unlock()

	for _, h := range handlers {
		h(question)
	}
}

// Subscribe registers a handler and returns a cancel function. Callers must
// cancel on teardown so handlers do not leak across lifecycles.
func (c *Channel) Subscribe(handler func(question string)) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.subscribers[id] = handler

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subscribers, id)
	}
}

// SubscriberCount returns the number of registered handlers.
func (c *Channel) SubscriberCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subscribers)
}
