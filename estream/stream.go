package estream

// Publisher is a source of a typed value stream.
//
// A publisher is a description of where values come from;
// it holds no per-subscriber state itself.
// Each Subscribe call starts an independent subscription
// with its own demand accounting.
type Publisher[T any] interface {
	// Subscribe attaches sub to the publisher.
	//
	// Subscribe synchronously calls sub.OnSubscribe with a new
	// [Subscription] and delivers no value until demand is
	// requested on it. Subscribing a nil subscriber panics.
	Subscribe(sub Subscriber[T])
}

// Subscriber is the sink side of a stream.
//
// A subscriber receives exactly one OnSubscribe call per
// subscription, then zero or more OnNext calls bounded by the
// demand it has expressed, then at most one OnComplete call.
// A canceled subscription receives no OnComplete call.
type Subscriber[T any] interface {
	// OnSubscribe hands the subscriber its live subscription.
	// The subscriber requests initial demand here.
	OnSubscribe(s Subscription)

	// OnNext delivers one value. The returned demand is added to
	// the subscription's outstanding demand, on top of whatever
	// remains after this delivery consumed one unit.
	//
	// Returning None for an extended stretch simply pauses the
	// stream; it is backpressure, not an error.
	OnNext(v T) Demand

	// OnComplete delivers the terminal signal.
	// A nil error means the stream finished normally;
	// a non-nil error means it failed.
	// Either way the subscription is over and no further
	// callbacks fire.
	OnComplete(err error)
}

// Subscription is the live link between one publisher and one
// subscriber. The subscriber side drives it; the publisher side
// decrements its demand as values are delivered.
type Subscription interface {
	// Request adds d to the subscription's outstanding demand,
	// saturating at [Unbounded]. It may be called any number of
	// times, including from inside OnNext.
	Request(d Demand)

	// Cancel terminates the subscription. No further values or
	// completion signals are delivered after Cancel returns.
	// Canceling an already-terminated subscription is a no-op.
	Cancel()
}
