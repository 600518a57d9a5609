package esubject_test

import (
	"testing"

	"github.com/gordian-engine/eddy/esubject"
	"github.com/gordian-engine/eddy/estream"
	"github.com/gordian-engine/eddy/estream/estreamtest"
	"github.com/stretchr/testify/require"
)

func TestReplay_replaysBoundedHistory(t *testing.T) {
	t.Parallel()

	subj := esubject.NewReplay[int](3)
	for v := 1; v <= 5; v++ {
		subj.Send(v)
	}

	r := estreamtest.RecordingSubscriber[int]{Initial: estream.Unbounded}
	subj.Subscribe(&r)

	require.Equal(t, []int{3, 4, 5}, r.Values)

	subj.Send(6)
	require.Equal(t, []int{3, 4, 5, 6}, r.Values)
}

func TestReplay_historyIsDemandPaced(t *testing.T) {
	t.Parallel()

	subj := esubject.NewReplay[int](3)
	for v := 1; v <= 5; v++ {
		subj.Send(v)
	}

	r := estreamtest.RecordingSubscriber[int]{Initial: estream.Max(2)}
	subj.Subscribe(&r)

	require.Equal(t, []int{3, 4}, r.Values)

	r.Sub.Request(estream.Max(1))
	require.Equal(t, []int{3, 4, 5}, r.Values)
}

func TestReplay_liveSendWithExhaustedDemandIsDropped(t *testing.T) {
	t.Parallel()

	subj := esubject.NewReplay[int](3)
	for v := 3; v <= 5; v++ {
		subj.Send(v)
	}

	r := estreamtest.RecordingSubscriber[int]{Initial: estream.Max(1)}
	subj.Subscribe(&r)
	require.Equal(t, []int{3}, r.Values)

	// Demand is exhausted and 4, 5 are still pending; a live send
	// now is dropped for this subscriber, not queued behind them.
	subj.Send(6)

	r.Sub.Request(estream.Max(3))
	require.Equal(t, []int{3, 4, 5}, r.Values)
}

func TestReplay_completedSubjectReplaysNothing(t *testing.T) {
	t.Parallel()

	subj := esubject.NewReplay[string](2)
	subj.Send("a")
	subj.Send("b")
	subj.Complete(nil)

	subj.Send("c")

	late := estreamtest.RecordingSubscriber[string]{Initial: estream.Unbounded}
	subj.Subscribe(&late)

	require.Empty(t, late.Values)
	require.True(t, late.Finished())
}

func TestReplay_nonPositiveCapacityPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		esubject.NewReplay[int](0)
	})
}
