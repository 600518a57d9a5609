package ecancel_test

import (
	"testing"

	"github.com/gordian-engine/eddy/ecancel"
	"github.com/stretchr/testify/require"
)

type countingCanceler struct {
	cancels int
}

func (c *countingCanceler) Cancel() {
	c.cancels++
}

func TestBag_closeCancelsEveryMemberOnce(t *testing.T) {
	t.Parallel()

	var bag ecancel.Bag

	members := []*countingCanceler{{}, {}, {}}
	for _, m := range members {
		bag.Store(m)
	}
	require.Equal(t, 3, bag.Len())

	bag.Close()
	for _, m := range members {
		require.Equal(t, 1, m.cancels)
	}
	require.Zero(t, bag.Len())
}

func TestBag_closeIsIdempotent(t *testing.T) {
	t.Parallel()

	var bag ecancel.Bag

	m := new(countingCanceler)
	bag.Store(m)

	bag.Close()
	bag.Close()

	require.Equal(t, 1, m.cancels)
}

func TestBag_storeAfterCloseCancelsImmediately(t *testing.T) {
	t.Parallel()

	var bag ecancel.Bag
	bag.Close()

	m := new(countingCanceler)
	bag.Store(m)

	require.Equal(t, 1, m.cancels)
	require.Zero(t, bag.Len())
}

func TestBag_storeNilIsNoop(t *testing.T) {
	t.Parallel()

	var bag ecancel.Bag
	bag.Store(nil)
	require.Zero(t, bag.Len())

	require.NotPanics(t, bag.Close)
}
