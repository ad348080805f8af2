package cli

import (
	"context"
	"os"

	"github.com/gabapcia/airdrop/internal/addressbook"
	"github.com/gabapcia/airdrop/internal/scheduler"

	"github.com/urfave/cli/v3"
)

// Services are the components the commands drive.
type Services struct {
	Scheduler   scheduler.Scheduler
	Locker      addressbook.Locker
	Store       addressbook.Store
	Checkpoints addressbook.CheckpointStorage

	// OnStart runs after the instance lock is taken and before the first
	// cycle. It may be nil.
	OnStart func(ctx context.Context) error
}

// Run initializes and executes the airdrop CLI application.
//
// It registers all available commands, including:
//
//   - `run`: Runs a cycle now and then once per schedule window until interrupted.
//   - `once`: Runs a single cycle and exits.
//   - `status`: Prints the recorded lists and the last completed cycle.
func Run(ctx context.Context, svc Services) error {
	return newApp(svc).Run(ctx, os.Args)
}

func newApp(svc Services) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "airdrop",
		Description:           "Scheduled ERC-20 distribution to an allow-list of addresses.",
		Usage:                 "airdrop [command] [flags]",
		Commands: []*cli.Command{
			runCommand(svc),
			onceCommand(svc),
			statusCommand(svc.Store, svc.Checkpoints),
		},
	}
}
