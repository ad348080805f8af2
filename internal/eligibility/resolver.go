package eligibility

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/airdrop/internal/addressbook"
	"github.com/gabapcia/airdrop/internal/pkg/logger"
	"github.com/gabapcia/airdrop/internal/pkg/types"
)

// ErrStore is returned when the sent or pending lists cannot be read.
var ErrStore = errors.New("failed to read address store")

// Snapshot is the input of one cycle: the eligible list as fetched, the
// persisted sent and pending lists, and the recipients derived from them.
type Snapshot struct {
	Eligible   []addressbook.Address
	Sent       []addressbook.Address
	Pending    []addressbook.Address
	Recipients []addressbook.Address
}

// ResolveRecipients computes (eligible − sent) ∪ (eligible ∩ pending),
// preserving eligibility order with no duplicates. Pending addresses that are
// no longer eligible are not retried.
func ResolveRecipients(eligible, sent, pending []addressbook.Address) []addressbook.Address {
	var (
		sentSet    = types.NewSet(addressbook.Canonical(sent)...)
		pendingSet = types.NewSet(addressbook.Canonical(pending)...)
		out        = make([]addressbook.Address, 0, len(eligible))
	)

	for _, addr := range addressbook.Canonical(eligible) {
		if !sentSet.Has(addr) || pendingSet.Has(addr) {
			out = append(out, addr)
		}
	}

	return out
}

type Resolver interface {
	Resolve(ctx context.Context) (Snapshot, error)
}

type resolver struct {
	source Source
	store  addressbook.Store
}

var _ Resolver = (*resolver)(nil)

// Resolve fetches the eligible list and loads both persisted lists.
//
// Errors:
//   - wraps ErrFetch if the source fails
//   - wraps ErrStore if either list cannot be loaded
func (r *resolver) Resolve(ctx context.Context) (Snapshot, error) {
	eligible, err := r.source.FetchEligible(ctx)
	if err != nil {
		if !errors.Is(err, ErrFetch) {
			err = errors.Join(ErrFetch, err)
		}

		return Snapshot{}, err
	}

	sent, err := r.store.Load(ctx, addressbook.SentList)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %s list: %w", ErrStore, addressbook.SentList, err)
	}

	pending, err := r.store.Load(ctx, addressbook.PendingList)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %s list: %w", ErrStore, addressbook.PendingList, err)
	}

	recipients := ResolveRecipients(eligible, sent, pending)

	logger.Info(ctx, "recipients resolved",
		"eligibility.eligible", len(eligible),
		"eligibility.sent", len(sent),
		"eligibility.pending", len(pending),
		"eligibility.recipients", len(recipients),
	)

	return Snapshot{
		Eligible:   eligible,
		Sent:       sent,
		Pending:    pending,
		Recipients: recipients,
	}, nil
}

func New(source Source, store addressbook.Store) *resolver {
	return &resolver{
		source: source,
		store:  store,
	}
}
