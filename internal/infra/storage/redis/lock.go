package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/airdrop/internal/addressbook"
	"github.com/gabapcia/airdrop/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
)

const (
	// renewalsPerTTL is how many renewals fit in one TTL.
	renewalsPerTTL = 3

	releaseTimeout = 5 * time.Second
)

// lockKey is the key claimed by the running instance.
//
// Format: "airdrop:lock"
var lockKey = fmt.Sprintf("%s:lock", keyPrefix)

// releaseScript deletes the lock only if it still holds our token, so an
// instance whose lock expired cannot release a lock taken by another one.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// renewScript extends the TTL (ARGV[2], milliseconds) only while the key
// still holds our token.
var renewScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// locker claims lockKey with SET NX and a TTL, and renews it while held. The
// TTL bounds how long a crashed instance can block a new one.
type locker struct {
	*client
	ttl   time.Duration
	clock clockwork.Clock
}

// NewLocker returns a Locker sharing the client's connection.
func (c *client) NewLocker(ttl time.Duration) *locker {
	return &locker{client: c, ttl: ttl, clock: clockwork.NewRealClock()}
}

// Lock implements addressbook.Locker.
//
// Behavior:
//   - If the key is free, it is set to a fresh token with the configured TTL.
//   - If the key is held, addressbook.ErrLocked is returned.
//   - While held, the TTL is extended every TTL/3. The held context is
//     canceled with addressbook.ErrLockLost if the token is gone or renewals
//     keep failing until the key could have expired.
func (l *locker) Lock(ctx context.Context) (context.Context, addressbook.Unlock, error) {
	token := uuid.NewString()

	ok, err := l.conn.SetNX(ctx, lockKey, token, l.ttl).Result()
	if err != nil {
		return nil, nil, err
	}

	if !ok {
		return nil, nil, addressbook.ErrLocked
	}

	held, cancel := context.WithCancelCause(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		keepAlive(held, cancel, l.clock, l.ttl, func(ctx context.Context) (bool, error) {
			return renewScript.Run(ctx, l.conn, []string{lockKey}, token, l.ttl.Milliseconds()).Bool()
		})
	}()

	return held, func() error {
		cancel(nil)
		<-done

		// The caller's context may already be canceled at shutdown.
		releaseCtx, stop := context.WithTimeout(context.Background(), releaseTimeout)
		defer stop()

		return releaseScript.Run(releaseCtx, l.conn, []string{lockKey}, token).Err()
	}, nil
}

// keepAlive calls renew every ttl/renewalsPerTTL until ctx is done. It
// cancels ctx with addressbook.ErrLockLost when renew reports the token is
// gone, or when consecutive failures leave the key unrenewed up to the next
// tick past its expiry.
func keepAlive(ctx context.Context, cancel context.CancelCauseFunc, clock clockwork.Clock, ttl time.Duration, renew func(context.Context) (bool, error)) {
	ticker := clock.NewTicker(max(ttl/renewalsPerTTL, time.Millisecond))
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
		}

		ok, err := renew(ctx)
		switch {
		case err == nil && ok:
			failures = 0
		case err == nil:
			logger.Error(ctx, "instance lock no longer holds our token")
			cancel(addressbook.ErrLockLost)
			return
		case ctx.Err() != nil:
			return
		default:
			failures++
			logger.Warn(ctx, "failed to renew instance lock", "error", err, "lock.failures", failures)

			if failures >= renewalsPerTTL-1 {
				cancel(addressbook.ErrLockLost)
				return
			}
		}
	}
}

// Compile-time assertion to ensure locker implements addressbook.Locker.
var _ addressbook.Locker = new(locker)
