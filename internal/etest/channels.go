// Package etest provides channel helpers shared by tests.
package etest

import (
	"testing"
	"time"
)

// Soon bounds how long the helpers wait before failing the test.
// Well past any reasonable scheduling delay, while keeping a hung
// test from stalling the suite.
const Soon = 5 * time.Second

// SendSoon sends v on ch, failing t if the send does not complete
// within [Soon].
func SendSoon[T any](t *testing.T, ch chan<- T, v T) {
	t.Helper()

	select {
	case ch <- v:
	case <-time.After(Soon):
		t.Fatalf("timed out sending %v", v)
	}
}

// ReceiveSoon receives a value from ch, failing t if nothing
// arrives within [Soon].
func ReceiveSoon[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case v := <-ch:
		return v
	case <-time.After(Soon):
		t.Fatal("timed out waiting to receive")
		panic("unreachable")
	}
}

// NotSending asserts that ch has nothing to deliver right now.
// It also fails for a closed channel, which is always ready.
func NotSending[T any](t *testing.T, ch <-chan T) {
	t.Helper()

	select {
	case v := <-ch:
		t.Fatalf("expected channel to be quiet, received %v", v)
	default:
	}
}
