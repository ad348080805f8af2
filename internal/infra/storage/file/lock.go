package file

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gabapcia/airdrop/internal/addressbook"

	"github.com/gofrs/flock"
)

// locker takes an exclusive advisory lock on a file. The lock is released by
// the kernel if the process dies, so a crash never leaves a stale lock.
type locker struct {
	path string
}

// NewLocker returns a Locker backed by the given lock file path.
func NewLocker(path string) *locker {
	return &locker{path: path}
}

// Lock implements addressbook.Locker.
//
// A flock cannot be lost while the process lives, so the held context is
// only canceled by Unlock.
func (l *locker) Lock(ctx context.Context) (context.Context, addressbook.Unlock, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return nil, nil, err
	}

	fl := flock.New(l.path)

	ok, err := fl.TryLock()
	if err != nil {
		return nil, nil, err
	}

	if !ok {
		return nil, nil, addressbook.ErrLocked
	}

	held, cancel := context.WithCancel(ctx)
	return held, func() error {
		cancel()
		return fl.Unlock()
	}, nil
}

// Compile-time assertion to ensure *locker satisfies addressbook.Locker.
var _ addressbook.Locker = new(locker)
