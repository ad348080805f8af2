package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/gabapcia/airdrop/internal/addressbook"
	"github.com/gabapcia/airdrop/internal/distribution"
	"github.com/gabapcia/airdrop/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// exclusive takes the instance lock, runs OnStart and then fn under a
// context canceled on SIGINT, SIGTERM or loss of the lock. A shutdown
// requested by signal is not an error; a lost lock is.
func exclusive(ctx context.Context, svc Services, fn func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	held, unlock, err := svc.Locker.Lock(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire instance lock: %w", err)
	}
	defer func() {
		if uerr := unlock(); uerr != nil {
			logger.Warn(ctx, "failed to release instance lock", "error", uerr)
		}
	}()

	if svc.OnStart != nil {
		if err := svc.OnStart(held); err != nil {
			return err
		}
	}

	err = fn(held)

	if cause := context.Cause(held); errors.Is(cause, addressbook.ErrLockLost) {
		logger.Error(ctx, "stopped after losing the instance lock")
		return cause
	}

	if ctx.Err() != nil && (err == nil || errors.Is(err, context.Canceled)) {
		logger.Info(ctx, "shutdown requested")
		return nil
	}

	return err
}

// runCommand returns the long-running command: a cycle now, then one per
// schedule window.
//
// Usage example:
//
//	airdrop run
func runCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "run",
		Description: "Runs the daily distribution loop until interrupted.",
		Usage:       "Runs a cycle and then waits for each schedule window. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return exclusive(ctx, svc, svc.Scheduler.Run)
		},
	}
}

// onceCommand returns a command that runs one cycle and prints its summary.
//
// Usage example:
//
//	airdrop once
func onceCommand(svc Services) *cli.Command {
	return &cli.Command{
		Name:        "once",
		Description: "Runs a single distribution cycle and exits.",
		Usage:       "Runs one cycle now, ignoring the schedule.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return exclusive(ctx, svc, func(ctx context.Context) error {
				report, err := svc.Scheduler.Once(ctx)
				if err != nil {
					return err
				}

				printReport(c.Root().Writer, report)
				return nil
			})
		},
	}
}

func printReport(w io.Writer, r distribution.CycleReport) {
	switch {
	case r.Skipped != distribution.SkipNone:
		fmt.Fprintf(w, "cycle %s skipped: %s\n", r.ID, r.Skipped)
	case r.Interrupted:
		fmt.Fprintf(w, "cycle %s interrupted: succeeded %d, failed %d, not attempted %d\n", r.ID, r.Succeeded, r.Failed, r.NotAttempted())
	default:
		fmt.Fprintf(w, "cycle %s done: succeeded %d, failed %d\n", r.ID, r.Succeeded, r.Failed)
	}

	for _, rec := range r.Records {
		if rec.Succeeded() {
			fmt.Fprintf(w, "  ok    %s %s\n", rec.Recipient, rec.TxHash)
		} else {
			fmt.Fprintf(w, "  fail  %s %v\n", rec.Recipient, rec.Err)
		}
	}
}
