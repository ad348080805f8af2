package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gabapcia/airdrop/internal/addressbook"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type renewal struct {
	ok  bool
	err error
}

type keepAliveRun struct {
	held    context.Context
	cancel  context.CancelCauseFunc
	clock   *clockwork.FakeClock
	results chan renewal
	done    chan struct{}
}

const testTTL = 3 * time.Second

func startKeepAlive(t *testing.T) *keepAliveRun {
	t.Helper()

	held, cancel := context.WithCancelCause(t.Context())
	r := &keepAliveRun{
		held:    held,
		cancel:  cancel,
		clock:   clockwork.NewFakeClock(),
		results: make(chan renewal),
		done:    make(chan struct{}),
	}

	go func() {
		defer close(r.done)
		keepAlive(held, cancel, r.clock, testTTL, func(context.Context) (bool, error) {
			res := <-r.results
			return res.ok, res.err
		})
	}()

	r.clock.BlockUntil(1)
	return r
}

// tick fires the renewal ticker and answers the renewal with res.
func (r *keepAliveRun) tick(t *testing.T, res renewal) {
	t.Helper()

	r.clock.Advance(testTTL / renewalsPerTTL)
	select {
	case r.results <- res:
	case <-time.After(2 * time.Second):
		t.Fatal("lock was not renewed")
	}
}

func (r *keepAliveRun) wait(t *testing.T) {
	t.Helper()

	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatal("keep-alive did not stop")
	}
}

func TestKeepAlive(t *testing.T) {
	t.Run("renews until released", func(t *testing.T) {
		r := startKeepAlive(t)

		r.tick(t, renewal{ok: true})
		r.tick(t, renewal{ok: true})
		r.tick(t, renewal{ok: true})

		r.cancel(nil)
		r.wait(t)
		assert.ErrorIs(t, context.Cause(r.held), context.Canceled)
	})

	t.Run("token taken over means ownership is lost", func(t *testing.T) {
		r := startKeepAlive(t)

		r.tick(t, renewal{ok: false})
		r.wait(t)

		require.Error(t, r.held.Err())
		assert.ErrorIs(t, context.Cause(r.held), addressbook.ErrLockLost)
	})

	t.Run("failures until the key may expire mean ownership is lost", func(t *testing.T) {
		r := startKeepAlive(t)
		down := errors.New("connection refused")

		r.tick(t, renewal{err: down})
		r.tick(t, renewal{err: down})
		r.wait(t)

		assert.ErrorIs(t, context.Cause(r.held), addressbook.ErrLockLost)
	})

	t.Run("a single failure is tolerated", func(t *testing.T) {
		r := startKeepAlive(t)
		down := errors.New("connection refused")

		r.tick(t, renewal{err: down})
		r.tick(t, renewal{ok: true})
		r.tick(t, renewal{err: down})
		r.tick(t, renewal{ok: true})
		assert.NoError(t, r.held.Err())

		r.cancel(nil)
		r.wait(t)
	})
}
