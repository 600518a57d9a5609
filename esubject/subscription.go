package esubject

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gordian-engine/eddy/estream"
)

// core is the subscriber table shared by all subject variants.
// It owns the terminal state of the subject and the set of live
// subscriptions, keyed by subscription identity.
type core[T any] struct {
	mu    sync.Mutex
	subs  map[uuid.UUID]*subscription[T]
	order []uuid.UUID
	done  bool
	err   error
}

func newCore[T any]() *core[T] {
	return &core[T]{
		subs: make(map[uuid.UUID]*subscription[T]),
	}
}

// attach wires sub into the subject. replay, if non-nil, produces
// the values owed to this subscriber before it observes live sends
// (a current value, or a replay buffer); it runs while the table
// lock is held, so the captured values and the registration are
// atomic with respect to send.
func (c *core[T]) attach(sub estream.Subscriber[T], replay func() []T) {
	if sub == nil {
		panic("esubject: subscribe with nil subscriber")
	}

	s := &subscription[T]{
		id:   uuid.New(),
		core: c,
		sub:  sub,
	}

	c.mu.Lock()
	if c.done {
		err := c.err
		c.mu.Unlock()

		// Late subscriber: the stored completion, no values.
		sub.OnSubscribe(s)
		s.complete(err)
		return
	}

	// Registered before OnSubscribe runs, so that a send racing
	// with attachment cannot slip past a subscriber that has
	// already requested demand.
	if replay != nil {
		s.pending = replay()
	}
	c.subs[s.id] = s
	c.order = append(c.order, s.id)
	c.mu.Unlock()

	sub.OnSubscribe(s)
}

// send multicasts one value to every live subscription in attach
// order. A no-op once the subject has completed.
//
// update, if non-nil, runs while the table lock is held, before
// the round's subscriptions are snapshotted: subject state
// mutation (a current value, a replay buffer) is atomic with
// respect to attachment, so a new subscriber can neither miss
// this value nor see it twice.
func (c *core[T]) send(v T, update func()) {
	c.mu.Lock()
	if c.done {
		c.mu.Unlock()
		return
	}
	if update != nil {
		update()
	}
	active := make([]*subscription[T], 0, len(c.order))
	for _, id := range c.order {
		if s, ok := c.subs[id]; ok {
			active = append(active, s)
		}
	}
	c.mu.Unlock()

	// Delivery happens outside the core lock so that a subscriber
	// canceling or requesting demand mid-delivery cannot deadlock,
	// and canceling one subscription cannot affect the others in
	// this same round.
	for _, s := range active {
		s.deliver(v)
	}
}

// complete terminates the subject and every live subscription.
// Only the first call has any effect.
func (c *core[T]) complete(err error) {
	c.mu.Lock()
	if c.done {
		c.mu.Unlock()
		return
	}
	c.done = true
	c.err = err

	active := make([]*subscription[T], 0, len(c.order))
	for _, id := range c.order {
		if s, ok := c.subs[id]; ok {
			active = append(active, s)
		}
	}
	c.subs = nil
	c.order = nil
	c.mu.Unlock()

	for _, s := range active {
		s.complete(err)
	}
}

// remove detaches a canceled subscription from the table.
func (c *core[T]) remove(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.subs == nil {
		return
	}
	delete(c.subs, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// subscription is one attachment of a subscriber to a subject,
// carrying that subscriber's demand accounting.
//
// The delivering flag makes Request re-entrancy safe: demand
// requested from inside OnNext lands in the demand field and the
// drain loop already on the stack picks it up, instead of starting
// a nested drain.
type subscription[T any] struct {
	id   uuid.UUID
	core *core[T]

	mu         sync.Mutex
	sub        estream.Subscriber[T]
	demand     estream.Demand
	pending    []T
	delivering bool
	done       bool

	// Completion that arrived while a drain was mid-OnNext;
	// the drain fires it on exit so the subscriber's callbacks
	// never overlap.
	pendingComplete bool
	completeErr     error
}

func (s *subscription[T]) Request(d estream.Demand) {
	s.mu.Lock()
	if s.done || d == estream.None {
		s.mu.Unlock()
		return
	}
	s.demand = s.demand.Add(d)

	if s.delivering || len(s.pending) == 0 {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	s.drainPending()
}

func (s *subscription[T]) Cancel() {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	s.done = true
	s.pending = nil
	s.mu.Unlock()

	s.core.remove(s.id)
}

// deliver offers one live value. Values arriving while demand is
// exhausted are dropped for this subscriber, not queued. Accepted
// values go through the pending queue, and only one drain walks
// the queue at a time, so OnNext never runs concurrently with
// itself even when sends race.
func (s *subscription[T]) deliver(v T) {
	s.mu.Lock()
	if s.done || s.demand == estream.None {
		s.mu.Unlock()
		return
	}

	s.pending = append(s.pending, v)
	if s.delivering {
		// A drain is already walking this subscription;
		// it picks this value up before it exits.
		s.mu.Unlock()
		return
	}
	s.delivering = true
	s.drainPending()
}

// complete finishes the subscription with the subject's terminal
// signal. Canceled subscriptions stay silent. If a drain is
// mid-OnNext, the completion is left for it, so OnComplete never
// overlaps an in-flight OnNext.
func (s *subscription[T]) complete(err error) {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	s.done = true
	s.pending = nil

	if s.delivering {
		s.pendingComplete = true
		s.completeErr = err
		s.mu.Unlock()
		return
	}

	sub := s.sub
	s.mu.Unlock()

	sub.OnComplete(err)
}

// drainPending delivers queued values while demand lasts, then
// fires any completion that arrived during the drain.
// Called with s.mu held; releases it before returning.
func (s *subscription[T]) drainPending() {
	for !s.done && s.demand > estream.None && len(s.pending) > 0 {
		v := s.pending[0]
		s.pending = s.pending[1:]
		s.demand = s.demand.Decrement()
		sub := s.sub

		s.mu.Unlock()
		more := sub.OnNext(v)
		s.mu.Lock()

		if more > estream.None {
			s.demand = s.demand.Add(more)
		}
	}

	s.delivering = false

	if s.pendingComplete {
		s.pendingComplete = false
		err := s.completeErr
		sub := s.sub
		s.mu.Unlock()

		sub.OnComplete(err)
		return
	}

	s.mu.Unlock()
}
