package eligibility

import (
	"context"
	"errors"

	"github.com/gabapcia/airdrop/internal/addressbook"
)

// ErrFetch is returned when the eligibility list cannot be retrieved. Callers
// treat it as "no eligible addresses this cycle" and skip the cycle.
var ErrFetch = errors.New("failed to fetch eligible addresses")

// Source provides the current allow-list of eligible addresses.
type Source interface {
	// FetchEligible returns the normalized, deduplicated eligible addresses in
	// the order published by the source. Failures must wrap ErrFetch.
	FetchEligible(ctx context.Context) ([]addressbook.Address, error)
}
