package estream

// SubscriberFuncs assembles a [Subscriber] from plain functions,
// for one-off anonymous subscribers where a named type would be
// noise. Any nil field is filled in by Build.
type SubscriberFuncs[T any] struct {
	// OnSubscribe receives the subscription.
	// If nil, the built subscriber requests [Unbounded] demand
	// immediately.
	OnSubscribe func(Subscription)

	// OnNext receives each value and returns additional demand.
	// If nil, values are discarded and no demand is returned.
	OnNext func(T) Demand

	// OnComplete receives the terminal signal.
	// If nil, the signal is discarded.
	OnComplete func(error)
}

// Build fills in any nil functions and returns the assembled
// subscriber. The returned subscriber is independent of later
// mutation of s.
func (s SubscriberFuncs[T]) Build() Subscriber[T] {
	if s.OnSubscribe == nil {
		s.OnSubscribe = func(sub Subscription) {
			sub.Request(Unbounded)
		}
	}
	if s.OnNext == nil {
		s.OnNext = func(T) Demand {
			return None
		}
	}
	if s.OnComplete == nil {
		s.OnComplete = func(error) {}
	}
	return &assembledSubscriber[T]{fns: s}
}

type assembledSubscriber[T any] struct {
	fns SubscriberFuncs[T]
}

func (a *assembledSubscriber[T]) OnSubscribe(s Subscription) {
	a.fns.OnSubscribe(s)
}

func (a *assembledSubscriber[T]) OnNext(v T) Demand {
	return a.fns.OnNext(v)
}

func (a *assembledSubscriber[T]) OnComplete(err error) {
	a.fns.OnComplete(err)
}
