package estream

// AnyPublisher hides the concrete type of a publisher behind a
// plain value exposing only the [Publisher] contract.
//
// Erasure is the mechanism for handing out read-only access to a
// feedable stream: the wrapped publisher cannot be recovered by
// type assertion, so a holder of an AnyPublisher cannot reach a
// subject's Send or Complete.
type AnyPublisher[T any] struct {
	p Publisher[T]
}

// EraseToAny wraps p in an [AnyPublisher].
// Erasing an already-erased publisher is harmless.
func EraseToAny[T any](p Publisher[T]) AnyPublisher[T] {
	if p == nil {
		panic("estream: erase of nil publisher")
	}
	return AnyPublisher[T]{p: p}
}

// Subscribe implements [Publisher] by forwarding to the wrapped
// publisher.
func (a AnyPublisher[T]) Subscribe(sub Subscriber[T]) {
	a.p.Subscribe(sub)
}

// Sink subscribes with unbounded demand, forwarding values and the
// terminal signal to the callbacks. See [Sink].
func (a AnyPublisher[T]) Sink(onValue func(T), onComplete func(error)) Subscription {
	return Sink[T](a, onValue, onComplete)
}
