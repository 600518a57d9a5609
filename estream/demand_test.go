package estream_test

import (
	"testing"

	"github.com/gordian-engine/eddy/estream"
	"github.com/stretchr/testify/require"
)

func TestDemand_Add_accumulates(t *testing.T) {
	t.Parallel()

	d := estream.None
	d = d.Add(estream.Max(2))
	d = d.Add(estream.Max(3))
	d = d.Add(estream.None)

	require.Equal(t, estream.Max(5), d)
}

func TestDemand_Add_saturatesAtUnbounded(t *testing.T) {
	t.Parallel()

	require.Equal(t, estream.Unbounded, estream.Unbounded.Add(estream.Max(1)))
	require.Equal(t, estream.Unbounded, estream.Max(1).Add(estream.Unbounded))

	// Overflow of two large finite demands also saturates.
	huge := estream.Unbounded - 1
	require.Equal(t, estream.Unbounded, huge.Add(huge))
}

func TestDemand_Decrement(t *testing.T) {
	t.Parallel()

	require.Equal(t, estream.Max(1), estream.Max(2).Decrement())

	// Unbounded demand is not consumed by delivery.
	require.Equal(t, estream.Unbounded, estream.Unbounded.Decrement())
}

func TestDemand_Decrement_panicsBelowZero(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		estream.None.Decrement()
	})
}

func TestDemand_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "none", estream.None.String())
	require.Equal(t, "unbounded", estream.Unbounded.String())
	require.Equal(t, "max(7)", estream.Max(7).String())
}
