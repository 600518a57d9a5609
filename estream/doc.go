// Package estream defines the demand-driven stream contract:
// a [Publisher] delivers values to a [Subscriber] only as fast as
// the subscriber asks for them.
//
// The contract is pull-activated. Subscribing produces a
// [Subscription], and nothing flows until the subscriber requests
// [Demand] on it. Each delivered value consumes one unit of
// outstanding demand, and the subscriber returns any additional
// demand from its OnNext callback.
//
// Delivery is synchronous and runs on the caller's goroutine;
// there is no implicit queueing or thread hop anywhere in the
// package.
package estream
