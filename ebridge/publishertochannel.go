package ebridge

import (
	"context"
	"sync"

	"github.com/gordian-engine/eddy/estream"
)

// ChannelSink is a running drain of a publisher into a channel.
//
// The subscription requests one value at a time and returns one
// unit of demand per completed channel send, so the consumer's
// read pace is the stream's backpressure.
//
// Values is never closed; receive from it in a select with Done,
// which closes when the stream terminates or ctx is canceled.
type ChannelSink[T any] struct {
	values chan T
	done   chan struct{}

	mu       sync.Mutex
	sub      estream.Subscription
	err      error
	finished bool
}

// RunPublisherToChannel subscribes to p on a background goroutine
// and forwards every value to the sink's channel.
//
// On normal completion Err reports nil; on failure it reports the
// publisher's error; if ctx is canceled first, the subscription is
// canceled and Err reports the context's cause.
func RunPublisherToChannel[T any](ctx context.Context, p estream.Publisher[T]) *ChannelSink[T] {
	s := &ChannelSink[T]{
		values: make(chan T),
		done:   make(chan struct{}),
	}

	fw := &forwarder[T]{ctx: ctx, sink: s}

	// Subscribing on a separate goroutine keeps synchronous
	// publishers from deadlocking against the consumer: a slice
	// publisher delivers its whole stream inside Subscribe.
	go p.Subscribe(fw)

	go s.watchContext(ctx)

	return s
}

// Values is the stream's value channel.
func (s *ChannelSink[T]) Values() <-chan T {
	return s.values
}

// Done closes when no further values will be delivered.
func (s *ChannelSink[T]) Done() <-chan struct{} {
	return s.done
}

// Err returns the terminal error. It is meaningful only after Done
// has closed; nil means normal completion.
func (s *ChannelSink[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// finish records the terminal state. Only the first call counts.
func (s *ChannelSink[T]) finish(err error) {
	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return
	}
	s.finished = true
	s.err = err
	s.mu.Unlock()

	close(s.done)
}

func (s *ChannelSink[T]) setSubscription(sub estream.Subscription) {
	s.mu.Lock()
	s.sub = sub
	s.mu.Unlock()
}

func (s *ChannelSink[T]) cancelSubscription() {
	s.mu.Lock()
	sub := s.sub
	s.mu.Unlock()

	if sub != nil {
		sub.Cancel()
	}
}

func (s *ChannelSink[T]) watchContext(ctx context.Context) {
	select {
	case <-s.done:
	case <-ctx.Done():
		s.cancelSubscription()
		s.finish(context.Cause(ctx))
	}
}

// forwarder is the subscriber driving a ChannelSink.
type forwarder[T any] struct {
	ctx  context.Context
	sink *ChannelSink[T]
}

func (f *forwarder[T]) OnSubscribe(sub estream.Subscription) {
	f.sink.setSubscription(sub)

	select {
	case <-f.sink.done:
		// Context canceled before the subscription arrived.
		sub.Cancel()
	default:
		sub.Request(estream.Max(1))
	}
}

func (f *forwarder[T]) OnNext(v T) estream.Demand {
	select {
	case <-f.sink.done:
		return estream.None
	default:
	}

	select {
	case f.sink.values <- v:
		return estream.Max(1)

	case <-f.ctx.Done():
		f.sink.cancelSubscription()
		f.sink.finish(context.Cause(f.ctx))
		return estream.None

	case <-f.sink.done:
		// Terminated by the context watcher.
		return estream.None
	}
}

func (f *forwarder[T]) OnComplete(err error) {
	f.sink.finish(err)
}
