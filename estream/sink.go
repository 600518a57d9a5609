package estream

// Sink subscribes to p with a subscriber that immediately requests
// unbounded demand and forwards every value and the terminal signal
// to the given callbacks. Either callback may be nil.
//
// Sink is the common case for simple observers that do not care
// about backpressure. The returned subscription stays live until
// the stream terminates; cancel it, or store it in an
// [github.com/gordian-engine/eddy/ecancel.Bag], to stop early.
func Sink[T any](p Publisher[T], onValue func(T), onComplete func(error)) Subscription {
	s := &sinkSubscriber[T]{
		onValue:    onValue,
		onComplete: onComplete,
	}
	p.Subscribe(s)
	return s.sub
}

type sinkSubscriber[T any] struct {
	sub        Subscription
	onValue    func(T)
	onComplete func(error)
}

func (s *sinkSubscriber[T]) OnSubscribe(sub Subscription) {
	s.sub = sub
	sub.Request(Unbounded)
}

func (s *sinkSubscriber[T]) OnNext(v T) Demand {
	if s.onValue != nil {
		s.onValue(v)
	}

	// Demand is already unbounded.
	return None
}

func (s *sinkSubscriber[T]) OnComplete(err error) {
	if s.onComplete != nil {
		s.onComplete(err)
	}
}
