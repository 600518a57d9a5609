// Package estreamtest provides subscriber fixtures for exercising
// publishers in tests.
package estreamtest

import "github.com/gordian-engine/eddy/estream"

// RecordingSubscriber is a scripted subscriber that records
// everything a publisher does to it.
//
// The zero value requests no demand and so receives no values,
// which is itself a useful fixture for backpressure tests.
type RecordingSubscriber[T any] struct {
	// Initial is the demand requested as soon as the
	// subscription arrives.
	Initial estream.Demand

	// DemandFor decides the additional demand returned for each
	// received value. If nil, no additional demand is returned.
	DemandFor func(T) estream.Demand

	// Sub is the subscription received in OnSubscribe,
	// for tests that cancel or request more mid-stream.
	Sub estream.Subscription

	// Values are the delivered values in order.
	Values []T

	// Completions records every terminal callback.
	// A well-behaved publisher produces at most one entry;
	// tests assert on the length to catch double completion.
	Completions []error
}

func (r *RecordingSubscriber[T]) OnSubscribe(s estream.Subscription) {
	r.Sub = s
	if r.Initial > estream.None {
		s.Request(r.Initial)
	}
}

func (r *RecordingSubscriber[T]) OnNext(v T) estream.Demand {
	r.Values = append(r.Values, v)
	if r.DemandFor == nil {
		return estream.None
	}
	return r.DemandFor(v)
}

func (r *RecordingSubscriber[T]) OnComplete(err error) {
	r.Completions = append(r.Completions, err)
}

// Finished reports whether the subscriber saw exactly one normal
// completion.
func (r *RecordingSubscriber[T]) Finished() bool {
	return len(r.Completions) == 1 && r.Completions[0] == nil
}

// Failed returns the failure the subscriber saw, if any.
func (r *RecordingSubscriber[T]) Failed() error {
	if len(r.Completions) == 1 {
		return r.Completions[0]
	}
	return nil
}
