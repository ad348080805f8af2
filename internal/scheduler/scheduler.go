// Package scheduler runs the distribution cycle once per scheduled window,
// by default daily at 00:00 UTC plus a random start jitter.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/airdrop/internal/addressbook"
	"github.com/gabapcia/airdrop/internal/distribution"
	"github.com/gabapcia/airdrop/internal/pkg/logger"
	"github.com/gabapcia/airdrop/internal/pkg/random"
	"github.com/gabapcia/airdrop/internal/pkg/x/chflow"

	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"
)

// DefaultSchedule fires at midnight.
const DefaultSchedule = "0 0 * * *"

// CycleRunner executes one distribution cycle.
type CycleRunner interface {
	RunCycle(ctx context.Context) (distribution.CycleReport, error)
}

// ParseSchedule parses a standard five-field cron spec. Schedules are
// evaluated in UTC.
func ParseSchedule(spec string) (cron.Schedule, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	return schedule, nil
}

// NextRun returns the first activation of schedule strictly after now,
// evaluated in UTC, delayed by jitter.
func NextRun(schedule cron.Schedule, now time.Time, jitter time.Duration) time.Time {
	return schedule.Next(now.UTC()).Add(jitter)
}

type Scheduler interface {
	// Run loops until ctx is done. It returns nil on cancellation.
	Run(ctx context.Context) error

	// Once runs a single cycle and records its checkpoint.
	Once(ctx context.Context) (distribution.CycleReport, error)
}

type scheduler struct {
	runner     CycleRunner
	schedule   cron.Schedule
	checkpoint addressbook.CheckpointStorage
	notifier   distribution.Notifier

	jitterMax       time.Duration
	skipIfDoneToday bool

	clock clockwork.Clock
	rand  random.Source
}

var _ Scheduler = (*scheduler)(nil)

func (s *scheduler) Run(ctx context.Context) error {
	skip := s.skipIfDoneToday && s.completedToday(ctx)
	if skip {
		logger.Info(ctx, "cycle already completed today, waiting for the next window")
	}

	for {
		if !skip {
			_, _ = s.Once(ctx)
		}
		skip = false

		if ctx.Err() != nil {
			logger.Info(ctx, "scheduler stopped")
			return nil
		}

		var (
			now    = s.clock.Now()
			jitter = random.DurationBetween(s.rand, 0, s.jitterMax)
			next   = NextRun(s.schedule, now, jitter)
		)

		logger.Info(ctx, "waiting for next cycle", "scheduler.next_run", next, "scheduler.wait", next.Sub(now))
		s.notify(ctx, fmt.Sprintf("📅 Waiting until %s for the next distribution.", next.Format(time.RFC3339)))

		if err := chflow.Sleep(ctx, s.clock, next.Sub(now)); err != nil {
			logger.Info(ctx, "scheduler stopped")
			return nil
		}
	}
}

// Once runs a cycle. A checkpoint is saved only when the cycle completed or
// was skipped; aborted and interrupted cycles are retried on restart.
func (s *scheduler) Once(ctx context.Context) (distribution.CycleReport, error) {
	report, err := s.runner.RunCycle(ctx)
	if err != nil || report.Interrupted {
		return report, err
	}

	if err := s.checkpoint.SaveCheckpoint(context.WithoutCancel(ctx), report.FinishedAt); err != nil {
		logger.Warn(ctx, "failed to save checkpoint", "error", err)
	}

	return report, nil
}

// completedToday reports whether the last checkpoint falls on the current UTC date.
func (s *scheduler) completedToday(ctx context.Context) bool {
	last, err := s.checkpoint.LoadLatestCheckpoint(ctx)
	if err != nil {
		if !errors.Is(err, addressbook.ErrNoCheckpointFound) {
			logger.Warn(ctx, "failed to load checkpoint", "error", err)
		}
		return false
	}

	var (
		y1, m1, d1 = last.UTC().Date()
		y2, m2, d2 = s.clock.Now().UTC().Date()
	)

	return y1 == y2 && m1 == m2 && d1 == d2
}

func (s *scheduler) notify(ctx context.Context, text string) {
	if err := s.notifier.Notify(ctx, text); err != nil {
		logger.Warn(ctx, "notification dropped", "error", err)
	}
}

type config struct {
	checkpoint      addressbook.CheckpointStorage
	notifier        distribution.Notifier
	jitterMax       time.Duration
	skipIfDoneToday bool
	clock           clockwork.Clock
	rand            random.Source
}

type Option func(*config)

// WithCheckpointStorage records completed cycles in cs.
func WithCheckpointStorage(cs addressbook.CheckpointStorage) Option {
	return func(c *config) {
		c.checkpoint = cs
	}
}

// WithSkipIfDoneToday skips the immediate run on startup when the checkpoint
// shows a cycle already completed on the current UTC date.
func WithSkipIfDoneToday(skip bool) Option {
	return func(c *config) {
		c.skipIfDoneToday = skip
	}
}

// WithStartJitter delays every scheduled run by a uniform duration in [0, d].
func WithStartJitter(d time.Duration) Option {
	return func(c *config) {
		c.jitterMax = d
	}
}

func WithNotifier(n distribution.Notifier) Option {
	return func(c *config) {
		c.notifier = n
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

func WithRandom(src random.Source) Option {
	return func(c *config) {
		c.rand = src
	}
}

func New(runner CycleRunner, schedule cron.Schedule, opts ...Option) *scheduler {
	cfg := config{
		checkpoint: nopCheckpoint{},
		notifier:   nopNotifier{},
		clock:      clockwork.NewRealClock(),
		rand:       random.New(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &scheduler{
		runner:          runner,
		schedule:        schedule,
		checkpoint:      cfg.checkpoint,
		notifier:        cfg.notifier,
		jitterMax:       cfg.jitterMax,
		skipIfDoneToday: cfg.skipIfDoneToday,
		clock:           cfg.clock,
		rand:            cfg.rand,
	}
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, string) error { return nil }
