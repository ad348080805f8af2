// Package chflow provides context-aware helpers for receiving from Go
// channels and for waiting on timers. Every helper returns early when the
// context is canceled.
package chflow

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Receive waits to receive a value from the provided channel or for the context to be canceled.
// It returns the value (zero value if canceled) and a boolean indicating if the receive was successful.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Sleep blocks for d on the given clock or until ctx is done, whichever
// happens first. It returns ctx.Err() when the wait was interrupted.
//
// Non-positive durations return immediately without touching the clock.
func Sleep(ctx context.Context, clock clockwork.Clock, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if d <= 0 {
		return nil
	}

	if _, ok := Receive(ctx, clock.After(d)); !ok {
		return ctx.Err()
	}

	return nil
}
