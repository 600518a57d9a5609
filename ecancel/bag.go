// Package ecancel provides scoped ownership of live subscriptions.
//
// A [Bag] collects the subscriptions belonging to one owner so they
// can be canceled together when the owner goes away, instead of
// being tracked in ambient global state.
package ecancel

import "sync"

// Canceler is anything that can be canceled, typically an
// estream.Subscription. Declared locally so the package does not
// care where the subscription came from.
type Canceler interface {
	Cancel()
}

// Bag is an owned, growable collection of cancelable
// subscriptions. The zero value is ready to use.
type Bag struct {
	mu      sync.Mutex
	members []Canceler
	closed  bool
}

// Store adds c to the bag. Storing into a closed bag cancels c
// immediately, so no subscription outlives its registry.
// Storing nil is a no-op.
func (b *Bag) Store(c Canceler) {
	if c == nil {
		return
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		c.Cancel()
		return
	}
	b.members = append(b.members, c)
	b.mu.Unlock()
}

// Close cancels every stored subscription exactly once and empties
// the bag. Close is idempotent; cancellation order is unspecified.
func (b *Bag) Close() {
	b.mu.Lock()
	members := b.members
	b.members = nil
	b.closed = true
	b.mu.Unlock()

	for _, c := range members {
		c.Cancel()
	}
}

// Len reports how many subscriptions the bag currently holds.
func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.members)
}
