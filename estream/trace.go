package estream

import "log/slog"

// Trace returns a publisher that forwards subscriptions to p
// unchanged while logging every lifecycle event at debug level:
// subscribe, request, value, completion, and cancel.
//
// The label distinguishes multiple traced streams sharing one
// logger.
func Trace[T any](log *slog.Logger, label string, p Publisher[T]) Publisher[T] {
	if log == nil {
		panic("estream: trace with nil logger")
	}
	if p == nil {
		panic("estream: trace of nil publisher")
	}
	return &tracePublisher[T]{
		log: log.With("stream", label),
		p:   p,
	}
}

type tracePublisher[T any] struct {
	log *slog.Logger
	p   Publisher[T]
}

func (t *tracePublisher[T]) Subscribe(sub Subscriber[T]) {
	t.log.Debug("Subscribing")
	t.p.Subscribe(&traceSubscriber[T]{log: t.log, sub: sub})
}

type traceSubscriber[T any] struct {
	log *slog.Logger
	sub Subscriber[T]
}

func (t *traceSubscriber[T]) OnSubscribe(s Subscription) {
	t.sub.OnSubscribe(&traceSubscription{log: t.log, s: s})
}

func (t *traceSubscriber[T]) OnNext(v T) Demand {
	d := t.sub.OnNext(v)
	t.log.Debug("Value delivered", "value", v, "returned_demand", d)
	return d
}

func (t *traceSubscriber[T]) OnComplete(err error) {
	if err != nil {
		t.log.Debug("Stream failed", "err", err)
	} else {
		t.log.Debug("Stream finished")
	}
	t.sub.OnComplete(err)
}

type traceSubscription struct {
	log *slog.Logger
	s   Subscription
}

func (t *traceSubscription) Request(d Demand) {
	t.log.Debug("Demand requested", "demand", d)
	t.s.Request(d)
}

func (t *traceSubscription) Cancel() {
	t.log.Debug("Subscription canceled")
	t.s.Cancel()
}
