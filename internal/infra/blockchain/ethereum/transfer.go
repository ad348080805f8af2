package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/airdrop/internal/addressbook"
	"github.com/gabapcia/airdrop/internal/distribution"
	"github.com/gabapcia/airdrop/internal/pkg/logger"
	"github.com/gabapcia/airdrop/internal/pkg/x/chflow"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ErrReverted is returned by Wait when the transaction was mined but failed.
var ErrReverted = errors.New("transaction reverted")

// Transfer signs and submits an ERC-20 transfer. Nonce and gas are filled in
// by the node.
func (c *client) Transfer(ctx context.Context, to addressbook.Address, amount *big.Int) (distribution.PendingTransfer, error) {
	if !common.IsHexAddress(to.String()) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, to)
	}

	opts := *c.signer
	opts.Context = ctx

	tx, err := c.token.Transact(&opts, "transfer", common.HexToAddress(to.String()), amount)
	if err != nil {
		return nil, err
	}

	return &pendingTransfer{client: c, tx: tx}, nil
}

type pendingTransfer struct {
	*client
	tx *types.Transaction
}

var _ distribution.PendingTransfer = (*pendingTransfer)(nil)

func (p *pendingTransfer) Hash() string {
	return p.tx.Hash().Hex()
}

// Wait polls until the transaction is mined and the chain head is
// confirmations-1 blocks past its block. A successful receipt counts as the
// first confirmation.
func (p *pendingTransfer) Wait(ctx context.Context, confirmations uint64) error {
	receipt, err := p.waitReceipt(ctx, p.tx.Hash())
	if err != nil {
		return err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%w: block %s", ErrReverted, receipt.BlockNumber)
	}

	if confirmations <= 1 {
		return nil
	}

	target := receipt.BlockNumber.Uint64() + confirmations - 1
	for {
		head, err := p.backend.BlockNumber(ctx)
		if err == nil && head >= target {
			return nil
		}

		if err != nil {
			logger.Debug(ctx, "failed to read chain head", "error", err)
		}

		if err := chflow.Sleep(ctx, p.clock, p.pollInterval); err != nil {
			return err
		}
	}
}

func (c *client) waitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	for {
		receipt, err := c.backend.TransactionReceipt(ctx, hash)
		if err == nil && receipt != nil {
			return receipt, nil
		}

		if err != nil && !errors.Is(err, ethereum.NotFound) {
			logger.Debug(ctx, "failed to read receipt", "tx.hash", hash.Hex(), "error", err)
		}

		if err := chflow.Sleep(ctx, c.clock, c.pollInterval); err != nil {
			return nil, err
		}
	}
}
