package addressbook

import (
	"context"
	"errors"
	"time"
)

const (
	// SentList names the list of addresses that received a confirmed transfer.
	SentList = "sent"

	// PendingList names the list of addresses whose transfer failed in the
	// most recent cycle and are offered again in the next one.
	PendingList = "pending"
)

// Store persists named, ordered address lists.
type Store interface {
	// Load returns the addresses stored under name, canonicalized and
	// deduplicated. A list that was never saved loads as an empty slice.
	Load(ctx context.Context, name string) ([]Address, error)

	// Save replaces the list stored under name with addrs. It is a full
	// overwrite: either the new contents become visible as a whole or the
	// previous contents are kept.
	Save(ctx context.Context, name string, addrs []Address) error
}

// ErrLocked is returned by Locker.Lock when another instance holds the lock.
var ErrLocked = errors.New("another instance is already running")

// ErrLockLost is the cancellation cause of a held context whose lock could
// no longer be renewed.
var ErrLockLost = errors.New("instance lock lost")

// Unlock releases a lock obtained from Locker.
type Unlock func() error

// Locker guards against two instances distributing from the same state.
type Locker interface {
	// Lock acquires the lock without blocking. It returns ErrLocked when the
	// lock is held elsewhere.
	//
	// Work done under the lock must use the returned context: it is canceled
	// with cause ErrLockLost as soon as ownership can no longer be
	// guaranteed, and when Unlock is called.
	Lock(ctx context.Context) (context.Context, Unlock, error)
}

// ErrNoCheckpointFound is returned by LoadLatestCheckpoint when no cycle has
// completed yet.
var ErrNoCheckpointFound = errors.New("no checkpoint found")

// CheckpointStorage records when the last distribution cycle completed.
type CheckpointStorage interface {
	// SaveCheckpoint overwrites the recorded completion time.
	SaveCheckpoint(ctx context.Context, completedAt time.Time) error

	// LoadLatestCheckpoint returns the recorded completion time, or
	// ErrNoCheckpointFound if none was saved.
	LoadLatestCheckpoint(ctx context.Context) (time.Time, error)
}
