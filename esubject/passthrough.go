package esubject

import "github.com/gordian-engine/eddy/estream"

// Passthrough is a subject with no memory: values sent while a
// subscriber has no outstanding demand are gone for that
// subscriber.
type Passthrough[T any] struct {
	core *core[T]
}

// NewPassthrough returns an empty passthrough subject.
func NewPassthrough[T any]() *Passthrough[T] {
	return &Passthrough[T]{core: newCore[T]()}
}

// Subscribe implements [estream.Publisher].
func (p *Passthrough[T]) Subscribe(sub estream.Subscriber[T]) {
	p.core.attach(sub, nil)
}

// Send multicasts v to every subscriber with outstanding demand.
// A no-op once the subject has completed.
func (p *Passthrough[T]) Send(v T) {
	p.core.send(v, nil)
}

// Complete terminates the subject and every live subscription.
// A nil err finishes the stream normally; a non-nil err fails it.
// Only the first call has any effect.
func (p *Passthrough[T]) Complete(err error) {
	p.core.complete(err)
}

// Erased returns a read-only handle to the subject: subscribers
// can attach through it, but Send and Complete stay out of reach.
func (p *Passthrough[T]) Erased() estream.AnyPublisher[T] {
	return estream.EraseToAny[T](p)
}
