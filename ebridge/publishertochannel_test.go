package ebridge_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gordian-engine/eddy/ebridge"
	"github.com/gordian-engine/eddy/esubject"
	"github.com/gordian-engine/eddy/estream"
	"github.com/gordian-engine/eddy/internal/etest"
	"github.com/stretchr/testify/require"
)

func TestRunPublisherToChannel_drainsFinitePublisher(t *testing.T) {
	t.Parallel()

	sink := ebridge.RunPublisherToChannel(
		context.Background(), estream.FromSlice([]int{1, 2, 3}),
	)

	require.Equal(t, 1, etest.ReceiveSoon(t, sink.Values()))
	require.Equal(t, 2, etest.ReceiveSoon(t, sink.Values()))
	require.Equal(t, 3, etest.ReceiveSoon(t, sink.Values()))

	etest.ReceiveSoon(t, sink.Done())
	require.NoError(t, sink.Err())
}

func TestRunPublisherToChannel_consumerPacesASubject(t *testing.T) {
	t.Parallel()

	// Three values already buffered: the sink's one-at-a-time
	// demand cycle means each is only delivered once the consumer
	// has read the previous one.
	subj := esubject.NewReplay[int](3)
	subj.Send(1)
	subj.Send(2)
	subj.Send(3)

	sink := ebridge.RunPublisherToChannel(context.Background(), subj)

	require.Equal(t, 1, etest.ReceiveSoon(t, sink.Values()))
	require.Equal(t, 2, etest.ReceiveSoon(t, sink.Values()))
	require.Equal(t, 3, etest.ReceiveSoon(t, sink.Values()))

	subj.Complete(nil)
	etest.ReceiveSoon(t, sink.Done())
	require.NoError(t, sink.Err())
}

func TestRunPublisherToChannel_reportsFailure(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("wire torn")

	sink := ebridge.RunPublisherToChannel(
		context.Background(), estream.Failed[int](wantErr),
	)

	etest.ReceiveSoon(t, sink.Done())
	require.ErrorIs(t, sink.Err(), wantErr)
	etest.NotSending(t, sink.Values())
}

func TestRunPublisherToChannel_contextCancellationStopsIdleStream(t *testing.T) {
	t.Parallel()

	subj := esubject.NewPassthrough[int]()

	ctx, cancel := context.WithCancel(context.Background())
	sink := ebridge.RunPublisherToChannel(ctx, subj)

	cancel()

	etest.ReceiveSoon(t, sink.Done())
	require.ErrorIs(t, sink.Err(), context.Canceled)
	etest.NotSending(t, sink.Values())
}
