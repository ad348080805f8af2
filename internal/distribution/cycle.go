package distribution

import (
	"context"
	"fmt"

	"github.com/gabapcia/airdrop/internal/addressbook"
	"github.com/gabapcia/airdrop/internal/eligibility"
	"github.com/gabapcia/airdrop/internal/pkg/logger"
	"github.com/gabapcia/airdrop/internal/pkg/types"
)

// cycle carries the mutable state of one run.
//
// The persisted lists evolve as follows:
//   - at Selecting, the batch is removed from pending and pending is saved
//     once, before the first transfer
//   - sent grows on every success and is the only list written for it
//   - failures are added back to pending and saved as they happen
//   - at Finalizing, pending is overwritten with this cycle's failures only
//
// A recipient is therefore never in both lists because of this cycle, and a
// stop at any point after a sent write cannot pay that recipient again.
type cycle struct {
	phase   Phase
	onPhase func(Phase)
	report  CycleReport

	store   addressbook.Store
	sent    types.Set[addressbook.Address]
	pending types.Set[addressbook.Address]
	failed  []addressbook.Address
}

func newCycle(store addressbook.Store, report CycleReport, onPhase func(Phase)) *cycle {
	return &cycle{
		phase:   PhaseIdle,
		onPhase: onPhase,
		report:  report,
		store:   store,
		sent:    types.NewSet[addressbook.Address](),
		pending: types.NewSet[addressbook.Address](),
	}
}

// enter moves the state machine to next.
func (c *cycle) enter(ctx context.Context, next Phase) {
	logger.Debug(ctx, "phase transition", "cycle.phase.from", c.phase.String(), "cycle.phase.to", next.String())

	c.phase = next
	if c.onPhase != nil {
		c.onPhase(next)
	}
}

// load seeds the in-memory lists from the persisted snapshot.
func (c *cycle) load(snapshot eligibility.Snapshot) {
	c.sent.Add(snapshot.Sent...)
	c.pending.Add(snapshot.Pending...)
}

func (c *cycle) save(ctx context.Context, name string, addrs []addressbook.Address) error {
	// Writes must complete even if shutdown has been requested.
	if err := c.store.Save(context.WithoutCancel(ctx), name, addrs); err != nil {
		return fmt.Errorf("%w: %s list: %w", eligibility.ErrStore, name, err)
	}

	return nil
}

// begin takes the selected batch out of pending. Batch members that are
// not paid stay eligible through the eligible-minus-sent rule.
func (c *cycle) begin(ctx context.Context, batch []addressbook.Address) error {
	changed := false
	for _, addr := range batch {
		if c.pending.Has(addr) {
			c.pending.Delete(addr)
			changed = true
		}
	}

	if !changed {
		return nil
	}

	return c.save(ctx, addressbook.PendingList, c.pending.ToSlice())
}

// recordSuccess persists recipient as sent.
func (c *cycle) recordSuccess(ctx context.Context, record TransferRecord) error {
	c.report.Records = append(c.report.Records, record)
	c.report.Succeeded++

	c.sent.Add(record.Recipient)
	return c.save(ctx, addressbook.SentList, c.sent.ToSlice())
}

// recordFailure queues recipient for the next cycle.
func (c *cycle) recordFailure(ctx context.Context, record TransferRecord) error {
	c.report.Records = append(c.report.Records, record)
	c.report.Failed++

	c.failed = append(c.failed, record.Recipient)
	c.pending.Add(record.Recipient)

	return c.save(ctx, addressbook.PendingList, c.pending.ToSlice())
}

// finalize replaces the pending list with this cycle's failures.
func (c *cycle) finalize(ctx context.Context) error {
	return c.save(ctx, addressbook.PendingList, c.failed)
}
