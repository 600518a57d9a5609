package estream

import (
	"math"
	"strconv"
)

// Demand is the number of values a subscriber is currently willing
// to receive. Demand is cumulative: each Request call and each value
// returned from OnNext adds to the outstanding total rather than
// replacing it.
type Demand uint64

const (
	// None signals that no further values are wanted yet.
	None Demand = 0

	// Unbounded signals that the subscriber accepts any number of
	// values. Adding to unbounded demand stays unbounded.
	Unbounded Demand = math.MaxUint64
)

// Max returns a demand for at most n values.
func Max(n uint64) Demand {
	return Demand(n)
}

// Add returns the sum of d and n, saturating at [Unbounded].
func (d Demand) Add(n Demand) Demand {
	if d == Unbounded || n == Unbounded {
		return Unbounded
	}

	sum := d + n
	if sum < d {
		// Wrapped around.
		return Unbounded
	}
	return sum
}

// Decrement consumes one unit of demand.
// Unbounded demand is not consumed by delivery.
//
// If d is None, Decrement panics:
// delivering a value without outstanding demand
// is a violation of the backpressure contract.
func (d Demand) Decrement() Demand {
	switch d {
	case Unbounded:
		return Unbounded
	case None:
		panic("estream: demand decremented below zero")
	default:
		return d - 1
	}
}

// String renders the demand for logs and test failures.
func (d Demand) String() string {
	switch d {
	case None:
		return "none"
	case Unbounded:
		return "unbounded"
	default:
		return "max(" + strconv.FormatUint(uint64(d), 10) + ")"
	}
}
