package file

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabapcia/airdrop/internal/addressbook"
)

// checkpointFile is the default name of the file holding the completion
// time of the last cycle.
const checkpointFile = "last_cycle.txt"

// checkpoint persists the last cycle completion time as an RFC 3339 line.
type checkpoint struct {
	path string
}

// NewCheckpoint returns a CheckpointStorage writing to dir/file. An empty
// file name selects the default.
func NewCheckpoint(dir, file string) *checkpoint {
	if file == "" {
		file = checkpointFile
	}

	return &checkpoint{path: filepath.Join(dir, file)}
}

// SaveCheckpoint implements addressbook.CheckpointStorage.
func (c *checkpoint) SaveCheckpoint(ctx context.Context, completedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeAtomic(c.path, []byte(completedAt.UTC().Format(time.RFC3339Nano)))
}

// LoadLatestCheckpoint implements addressbook.CheckpointStorage.
func (c *checkpoint) LoadLatestCheckpoint(ctx context.Context) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}

	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, addressbook.ErrNoCheckpointFound
	}
	if err != nil {
		return time.Time{}, err
	}

	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return time.Time{}, addressbook.ErrNoCheckpointFound
	}

	return time.Parse(time.RFC3339Nano, raw)
}

// Compile-time assertion to ensure *checkpoint satisfies addressbook.CheckpointStorage.
var _ addressbook.CheckpointStorage = new(checkpoint)
