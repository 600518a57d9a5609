package estream

import (
	"sync"
	"sync/atomic"
)

// FromSlice returns a publisher that delivers the elements of vs in
// order, strictly paced by demand, then completes. The publisher
// retains vs without copying; callers must not modify it afterwards.
func FromSlice[T any](vs []T) Publisher[T] {
	return &slicePublisher[T]{vs: vs}
}

// Just returns a publisher of the single value v.
func Just[T any](v T) Publisher[T] {
	return FromSlice([]T{v})
}

// Empty returns a publisher that completes immediately,
// delivering no values.
func Empty[T any]() Publisher[T] {
	return completedPublisher[T]{}
}

// Failed returns a publisher that fails immediately with err.
func Failed[T any](err error) Publisher[T] {
	if err == nil {
		panic("estream: failed publisher needs a non-nil error")
	}
	return completedPublisher[T]{err: err}
}

type slicePublisher[T any] struct {
	vs []T
}

func (p *slicePublisher[T]) Subscribe(sub Subscriber[T]) {
	if sub == nil {
		panic("estream: subscribe with nil subscriber")
	}

	s := &sliceSubscription[T]{vs: p.vs, sub: sub}
	sub.OnSubscribe(s)
}

// sliceSubscription walks one subscriber through the slice.
// The delivering flag makes Request re-entrancy safe:
// demand requested from inside OnNext lands in the demand field
// and the drain loop already on the stack picks it up,
// instead of starting a nested drain.
type sliceSubscription[T any] struct {
	mu sync.Mutex

	vs  []T
	idx int

	sub        Subscriber[T]
	demand     Demand
	delivering bool
	done       bool
}

func (s *sliceSubscription[T]) Request(d Demand) {
	s.mu.Lock()
	if s.done || d == None {
		s.mu.Unlock()
		return
	}
	s.demand = s.demand.Add(d)

	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	s.drain()
}

func (s *sliceSubscription[T]) Cancel() {
	s.mu.Lock()
	s.done = true
	s.mu.Unlock()
}

// drain delivers values while demand lasts, then completes the
// subscriber once the slice is exhausted.
// Called with s.mu held; releases it before returning.
func (s *sliceSubscription[T]) drain() {
	for !s.done && s.demand > None && s.idx < len(s.vs) {
		v := s.vs[s.idx]
		s.idx++
		s.demand = s.demand.Decrement()
		sub := s.sub

		s.mu.Unlock()
		more := sub.OnNext(v)
		s.mu.Lock()

		if more > None {
			s.demand = s.demand.Add(more)
		}
	}

	if !s.done && s.idx == len(s.vs) {
		s.done = true
		sub := s.sub
		s.mu.Unlock()
		sub.OnComplete(nil)
		s.mu.Lock()
	}

	s.delivering = false
	s.mu.Unlock()
}

// completedPublisher terminates every subscriber on arrival.
type completedPublisher[T any] struct {
	err error
}

func (p completedPublisher[T]) Subscribe(sub Subscriber[T]) {
	if sub == nil {
		panic("estream: subscribe with nil subscriber")
	}

	s := new(inertSubscription)
	sub.OnSubscribe(s)
	if s.canceled.Load() {
		return
	}
	sub.OnComplete(p.err)
}

// inertSubscription has no values to deliver, so demand requested
// on it goes nowhere. It only remembers cancellation, so that a
// subscriber canceling from inside OnSubscribe is not handed a
// completion it asked not to receive.
type inertSubscription struct {
	canceled atomic.Bool
}

func (s *inertSubscription) Request(Demand) {}

func (s *inertSubscription) Cancel() {
	s.canceled.Store(true)
}
