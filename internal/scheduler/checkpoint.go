package scheduler

import (
	"context"
	"time"

	"github.com/gabapcia/airdrop/internal/addressbook"
)

// nopCheckpoint is used when no checkpoint storage is configured: nothing is
// saved and no cycle is ever considered done.
type nopCheckpoint struct{}

var _ addressbook.CheckpointStorage = nopCheckpoint{}

func (nopCheckpoint) SaveCheckpoint(context.Context, time.Time) error { return nil }

func (nopCheckpoint) LoadLatestCheckpoint(context.Context) (time.Time, error) {
	return time.Time{}, addressbook.ErrNoCheckpointFound
}
