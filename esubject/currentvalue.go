package esubject

import (
	"sync"

	"github.com/gordian-engine/eddy/estream"
)

// CurrentValue is a subject that additionally holds a current
// value, readable at any time. A new subscriber receives the
// current value as its first delivered item, consuming one unit of
// its demand, before observing subsequent sends.
type CurrentValue[T any] struct {
	core *core[T]

	mu  sync.Mutex
	val T
}

// NewCurrentValue returns a subject holding initial.
func NewCurrentValue[T any](initial T) *CurrentValue[T] {
	return &CurrentValue[T]{
		core: newCore[T](),
		val:  initial,
	}
}

// Value returns the current value. Still readable after the
// subject completes.
func (c *CurrentValue[T]) Value() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.val
}

// Send updates the current value, then multicasts it to every
// subscriber with outstanding demand. A no-op once the subject has
// completed, leaving the current value untouched.
func (c *CurrentValue[T]) Send(v T) {
	c.core.send(v, func() {
		c.mu.Lock()
		c.val = v
		c.mu.Unlock()
	})
}

// Set assigns the current value. It is exactly equivalent to Send.
func (c *CurrentValue[T]) Set(v T) {
	c.Send(v)
}

// Subscribe implements [estream.Publisher]. The subscriber's first
// delivered value is the value current at attach time: the capture
// runs inside the subject's serialized section, so a concurrent
// Send either lands before the capture or is delivered live.
func (c *CurrentValue[T]) Subscribe(sub estream.Subscriber[T]) {
	c.core.attach(sub, func() []T {
		c.mu.Lock()
		defer c.mu.Unlock()
		return []T{c.val}
	})
}

// Complete terminates the subject and every live subscription.
// Only the first call has any effect.
func (c *CurrentValue[T]) Complete(err error) {
	c.core.complete(err)
}

// Erased returns a read-only handle to the subject.
func (c *CurrentValue[T]) Erased() estream.AnyPublisher[T] {
	return estream.EraseToAny[T](c)
}
