package esubject

import "github.com/gordian-engine/eddy/estream"

// Cell is an observable value: a readable, assignable cell whose
// assignments are published on an attached stream. It is the
// explicit replacement for implicit property-observer publishers:
// construction and observation are both spelled out.
type Cell[T any] struct {
	subject *CurrentValue[T]
}

// NewCell returns a cell holding initial.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{subject: NewCurrentValue(initial)}
}

// Get returns the cell's current value.
func (c *Cell[T]) Get() T {
	return c.subject.Value()
}

// Set assigns the cell's value and publishes it to all observers
// with outstanding demand.
func (c *Cell[T]) Set(v T) {
	c.subject.Set(v)
}

// Stream returns the cell's read-only publisher handle. A new
// subscriber receives the value current at attach time first.
// The handle cannot be used to mutate the cell.
func (c *Cell[T]) Stream() estream.AnyPublisher[T] {
	return c.subject.Erased()
}
