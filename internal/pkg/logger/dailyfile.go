package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap/zapcore"
)

// isoMillis matches the timestamp layout of JavaScript's Date.toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z"

// DailyFileName returns the name of the text log that receives entries
// written at t.
func DailyFileName(t time.Time) string {
	return fmt.Sprintf("log-%s.txt", t.UTC().Format(time.DateOnly))
}

// dailyFileEncoderConfig renders "[2025-01-02T03:04:05.000Z] [INFO] message"
// followed by any structured fields.
func dailyFileEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:    "ts",
		LevelKey:   "level",
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + t.UTC().Format(isoMillis) + "]")
		},
		EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + l.CapitalString() + "]")
		},
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
}

// dailyFile is an append-only zapcore.WriteSyncer that switches to a new
// file whenever the UTC date changes.
type dailyFile struct {
	mu    sync.Mutex
	dir   string
	clock clockwork.Clock
	name  string
	file  *os.File
}

var _ zapcore.WriteSyncer = (*dailyFile)(nil)

func newDailyFile(dir string, clock clockwork.Clock) *dailyFile {
	return &dailyFile{dir: dir, clock: clock}
}

func (d *dailyFile) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	name := DailyFileName(d.clock.Now())
	if d.file == nil || name != d.name {
		if err := d.rotate(name); err != nil {
			return 0, err
		}
	}

	return d.file.Write(p)
}

func (d *dailyFile) rotate(name string) error {
	if d.file != nil {
		_ = d.file.Close()
		d.file = nil
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(d.dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	d.file, d.name = f, name
	return nil
}

func (d *dailyFile) Sync() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.file == nil {
		return nil
	}

	return d.file.Sync()
}
