package esubject

import (
	"slices"
	"sync"

	"github.com/gordian-engine/eddy/estream"
)

// Replay is a subject that remembers the last capacity sent
// values. A new subscriber drains that history first, strictly
// paced by its own demand, before observing subsequent sends.
//
// Completion discards the buffer: as with the other subjects, a
// subscriber attaching after completion receives only the stored
// completion signal.
type Replay[T any] struct {
	core *core[T]
	cap  int

	mu  sync.Mutex
	buf []T
}

// NewReplay returns a subject replaying up to capacity values.
// A non-positive capacity panics.
func NewReplay[T any](capacity int) *Replay[T] {
	if capacity <= 0 {
		panic("esubject: replay capacity must be positive")
	}
	return &Replay[T]{
		core: newCore[T](),
		cap:  capacity,
	}
}

// Subscribe implements [estream.Publisher]. The buffered history
// is delivered ahead of any live sends.
func (r *Replay[T]) Subscribe(sub estream.Subscriber[T]) {
	r.core.attach(sub, func() []T {
		r.mu.Lock()
		defer r.mu.Unlock()
		return slices.Clone(r.buf)
	})
}

// Send records v in the replay buffer, evicting the oldest value
// if the buffer is full, then multicasts it. A no-op once the
// subject has completed.
func (r *Replay[T]) Send(v T) {
	r.core.send(v, func() {
		r.mu.Lock()
		r.buf = append(r.buf, v)
		if len(r.buf) > r.cap {
			r.buf = slices.Delete(r.buf, 0, len(r.buf)-r.cap)
		}
		r.mu.Unlock()
	})
}

// Complete terminates the subject and every live subscription,
// and drops the replay buffer. Only the first call has any effect.
func (r *Replay[T]) Complete(err error) {
	r.core.complete(err)

	r.mu.Lock()
	r.buf = nil
	r.mu.Unlock()
}

// Erased returns a read-only handle to the subject.
func (r *Replay[T]) Erased() estream.AnyPublisher[T] {
	return estream.EraseToAny[T](r)
}
