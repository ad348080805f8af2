// Package addressbook defines the durable address lists the distribution job
// works from (addresses already paid and addresses pending a retry) and the
// contracts storage backends implement to keep them.
package addressbook

import (
	"strings"

	"github.com/gabapcia/airdrop/internal/pkg/types"
)

// Address is a canonical (trimmed, lowercase) recipient identifier.
type Address string

// String implements fmt.Stringer.
func (a Address) String() string {
	return string(a)
}

// Normalize canonicalizes a raw address string.
func Normalize(raw string) Address {
	return Address(strings.ToLower(strings.TrimSpace(raw)))
}

// NormalizeAll canonicalizes every entry, drops empty ones and removes
// duplicates, keeping the first occurrence of each address in place.
func NormalizeAll(raw []string) []Address {
	out := make([]Address, 0, len(raw))
	for _, r := range raw {
		if a := Normalize(r); a != "" {
			out = append(out, a)
		}
	}

	return types.Unique(out)
}

// Canonical re-normalizes already typed addresses. Backends call it before
// writing so that nothing non-canonical ever reaches storage.
func Canonical(addrs []Address) []Address {
	out := make([]Address, 0, len(addrs))
	for _, a := range addrs {
		if n := Normalize(string(a)); n != "" {
			out = append(out, n)
		}
	}

	return types.Unique(out)
}

// SortedSet returns the canonical, deduplicated addresses in ascending order.
// Saving the same set therefore always yields the same bytes.
func SortedSet(addrs []Address) []Address {
	return types.Sorted(types.NewSet(Canonical(addrs)...))
}
