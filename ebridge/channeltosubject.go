package ebridge

import (
	"context"
	"log/slog"
)

// Feeder is the imperative side of a subject. All subject variants
// in the esubject package satisfy it.
type Feeder[T any] interface {
	Send(T)
	Complete(err error)
}

// RunChannelToSubject starts a background goroutine that forwards
// values received from ch into f.
//
// If ch closes, f completes normally. If ctx is canceled, f fails
// with the context's cause. The returned done channel is closed
// when the goroutine stops.
func RunChannelToSubject[T any](
	ctx context.Context, log *slog.Logger, ch <-chan T, f Feeder[T],
) (done <-chan struct{}) {
	doneCh := make(chan struct{})

	go runChannelToSubject(ctx, log, ch, f, doneCh)

	return doneCh
}

func runChannelToSubject[T any](
	ctx context.Context,
	log *slog.Logger,
	ch <-chan T,
	f Feeder[T],
	done chan<- struct{},
) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			log.Info(
				"Stopping due to context cancellation",
				"cause", context.Cause(ctx),
			)
			f.Complete(context.Cause(ctx))
			return

		case v, ok := <-ch:
			if !ok {
				f.Complete(nil)
				return
			}
			f.Send(v)
		}
	}
}
