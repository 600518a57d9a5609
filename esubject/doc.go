// Package esubject provides subjects: publishers that are fed
// imperatively and multicast each value to every attached
// subscriber with outstanding demand.
//
// All subjects share the same delivery rules. A value is offered to
// each active subscription in attach order; subscriptions whose
// demand is exhausted miss the value rather than queueing it.
// Completion is global and terminal: it reaches every active
// subscription once, later sends are no-ops, and subscribers
// attaching afterwards receive only the stored completion signal.
//
// Subjects serialize Send, Subscribe, Complete, and Cancel over
// their internal state, so a subject may be fed from a different
// goroutine than its subscribers were attached on. Delivery to a
// given subscriber is serialized too: its OnNext and OnComplete
// callbacks never overlap, and values sent from a single goroutine
// reach it in send order.
package esubject
