package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/airdrop/internal/addressbook"

	"github.com/redis/go-redis/v9"
)

// checkpointKey stores the completion time of the last cycle.
//
// Format: "airdrop:checkpoint:last_cycle"
var checkpointKey = fmt.Sprintf("%s:checkpoint:last_cycle", keyPrefix)

// SaveCheckpoint persists the completion time of the last cycle with no expiration.
func (c *client) SaveCheckpoint(ctx context.Context, completedAt time.Time) error {
	return c.conn.Set(ctx, checkpointKey, completedAt.UTC().Format(time.RFC3339Nano), 0).Err()
}

// LoadLatestCheckpoint retrieves the most recently saved completion time.
//
// If no checkpoint exists yet, it returns addressbook.ErrNoCheckpointFound.
func (c *client) LoadLatestCheckpoint(ctx context.Context) (time.Time, error) {
	val, err := c.conn.Get(ctx, checkpointKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = addressbook.ErrNoCheckpointFound
		}

		return time.Time{}, err
	}

	return time.Parse(time.RFC3339Nano, val)
}

// Compile-time assertion to ensure client implements addressbook.CheckpointStorage.
var _ addressbook.CheckpointStorage = new(client)
