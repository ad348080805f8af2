package distribution

import (
	"math/big"
	"time"

	"github.com/gabapcia/airdrop/internal/addressbook"
	"github.com/gabapcia/airdrop/internal/planner"
)

// SkipReason explains why a cycle ended without sending anything.
type SkipReason string

const (
	SkipNone       SkipReason = ""
	SkipNoEligible SkipReason = "no_eligible_addresses"
	SkipAllSent    SkipReason = "all_sent"
	SkipLowGas     SkipReason = "low_gas"
	SkipLowToken   SkipReason = "low_token"
	SkipZeroAmount SkipReason = "zero_amount"
)

// Token describes the distributed ERC-20 token.
type Token struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// label is the symbol, or a generic name when the symbol is unknown.
func (t Token) label() string {
	if t.Symbol == "" {
		return "Token"
	}
	return t.Symbol
}

// TransferRecord is the outcome of one send attempt.
type TransferRecord struct {
	Recipient addressbook.Address
	Amount    *big.Int
	TxHash    string
	Err       error
	Timestamp time.Time
}

func (r TransferRecord) Succeeded() bool {
	return r.Err == nil
}

// CycleReport summarizes one run of the engine.
type CycleReport struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time

	Token         Token
	NativeBalance *big.Int
	TokenBalance  *big.Int

	Eligible   int
	Recipients int
	Plan       planner.Plan
	Selected   []addressbook.Address
	Records    []TransferRecord

	Succeeded   int
	Failed      int
	Skipped     SkipReason
	Interrupted bool
}

// Attempted returns how many transfers were tried.
func (r CycleReport) Attempted() int {
	return len(r.Records)
}

// NotAttempted returns how many selected recipients were never tried.
func (r CycleReport) NotAttempted() int {
	return len(r.Selected) - len(r.Records)
}
