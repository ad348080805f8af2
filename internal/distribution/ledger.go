package distribution

import (
	"context"
	"errors"
	"math/big"

	"github.com/gabapcia/airdrop/internal/addressbook"
)

var (
	// ErrBalance is returned when chain state (network, balances, token
	// decimals) cannot be read. It aborts the cycle before any store mutation.
	ErrBalance = errors.New("failed to read chain state")

	// ErrTransfer wraps a single send or confirmation failure. The recipient
	// is queued for retry and the cycle continues.
	ErrTransfer = errors.New("transfer failed")
)

// PendingTransfer is a submitted transfer awaiting confirmation.
type PendingTransfer interface {
	// Hash returns the transaction identifier.
	Hash() string

	// Wait blocks until the transfer has the given number of confirmations,
	// the transfer is reverted, or ctx is done.
	Wait(ctx context.Context, confirmations uint64) error
}

// Ledger is the chain client used by the engine. Balances are read for the
// signing wallet and amounts are in base units.
type Ledger interface {
	// Ping checks that the network is reachable.
	Ping(ctx context.Context) error

	// NativeBalance returns the wallet balance in the chain's native currency.
	NativeBalance(ctx context.Context) (*big.Int, error)

	// TokenBalance returns the wallet balance of the distributed token.
	TokenBalance(ctx context.Context) (*big.Int, error)

	// TokenDecimals returns the number of decimals of the token.
	TokenDecimals(ctx context.Context) (uint8, error)

	// TokenName and TokenSymbol are best effort; failures are not fatal.
	TokenName(ctx context.Context) (string, error)
	TokenSymbol(ctx context.Context) (string, error)

	// Transfer submits a token transfer of amount to the recipient.
	Transfer(ctx context.Context, to addressbook.Address, amount *big.Int) (PendingTransfer, error)
}
