// Package file implements the addressbook storage contracts on the local
// filesystem: one newline-delimited file per address list, a checkpoint
// file holding the last cycle completion time, and an advisory lock file.
package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabapcia/airdrop/internal/addressbook"
)

// client stores every list in its own file under dir.
type client struct {
	dir   string
	files map[string]string // list name -> file name
}

// Option configures the file client.
type Option func(*client)

// WithListFile maps a list name to a custom file name (relative to the data
// directory). Unmapped lists are stored as "<name>.txt".
func WithListFile(name, file string) Option {
	return func(c *client) {
		c.files[name] = file
	}
}

// NewClient returns a file-backed store rooted at dir. The directory is
// created on first write.
func NewClient(dir string, opts ...Option) *client {
	c := &client{
		dir:   dir,
		files: make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *client) path(name string) string {
	file, ok := c.files[name]
	if !ok {
		file = name + ".txt"
	}

	return filepath.Join(c.dir, file)
}

// Load implements addressbook.Store.
func (c *client) Load(ctx context.Context, name string) ([]addressbook.Address, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(c.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return []addressbook.Address{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s list: %w", name, err)
	}

	return addressbook.NormalizeAll(lines), nil
}

// Save implements addressbook.Store. The list is written sorted, one
// address per line, to a temporary file that then replaces the target.
func (c *client) Save(ctx context.Context, name string, addrs []addressbook.Address) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sorted := addressbook.SortedSet(addrs)

	lines := make([]string, len(sorted))
	for i, a := range sorted {
		lines[i] = a.String()
	}

	return writeAtomic(c.path(name), []byte(strings.Join(lines, "\n")))
}

// writeAtomic writes data to a sibling temporary file, syncs it and renames
// it over path.
func writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}

	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// Compile-time assertion to ensure *client satisfies addressbook.Store.
var _ addressbook.Store = new(client)
