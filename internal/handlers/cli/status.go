package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/airdrop/internal/addressbook"

	"github.com/urfave/cli/v3"
)

// statusCommand returns a command that prints the size of the recorded lists
// and the completion time of the last cycle. It does not take the instance
// lock, so it can run next to a live job.
//
// Usage example:
//
//	airdrop status --pending
func statusCommand(store addressbook.Store, checkpoints addressbook.CheckpointStorage) *cli.Command {
	return &cli.Command{
		Name:        "status",
		Description: "Shows the sent and pending lists and the last completed cycle.",
		Usage:       "Prints distribution progress without sending anything.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "pending",
				Usage: "Also list the addresses waiting for a retry",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			sent, err := store.Load(ctx, addressbook.SentList)
			if err != nil {
				return fmt.Errorf("failed to load sent list: %w", err)
			}

			pending, err := store.Load(ctx, addressbook.PendingList)
			if err != nil {
				return fmt.Errorf("failed to load pending list: %w", err)
			}

			lastCycle := "never"
			last, err := checkpoints.LoadLatestCheckpoint(ctx)
			switch {
			case err == nil:
				lastCycle = last.UTC().Format(time.RFC3339)
			case !errors.Is(err, addressbook.ErrNoCheckpointFound):
				return fmt.Errorf("failed to load checkpoint: %w", err)
			}

			w := c.Root().Writer
			fmt.Fprintf(w, "sent: %d\n", len(sent))
			fmt.Fprintf(w, "pending: %d\n", len(pending))
			fmt.Fprintf(w, "last cycle: %s\n", lastCycle)

			if c.Bool("pending") {
				for _, addr := range pending {
					fmt.Fprintf(w, "  %s\n", addr)
				}
			}

			return nil
		},
	}
}
