package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// erc20ABI covers the subset of the ERC-20 interface used by the client.
const erc20ABI = `[
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]}
]`

func parseERC20ABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(erc20ABI))
}

// call invokes a view method on the token and returns its single output
// converted to T.
func call[T any](ctx context.Context, token *bind.BoundContract, method string, args ...any) (T, error) {
	var (
		zero T
		out  []any
	)

	if err := token.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return zero, fmt.Errorf("%s(): %w", method, err)
	}

	if len(out) != 1 {
		return zero, fmt.Errorf("%s(): unexpected output length %d", method, len(out))
	}

	return *abi.ConvertType(out[0], new(T)).(*T), nil
}

// TokenDecimals implements distribution.Ledger.
func (c *client) TokenDecimals(ctx context.Context) (uint8, error) {
	return call[uint8](ctx, c.token, "decimals")
}

// TokenName implements distribution.Ledger.
func (c *client) TokenName(ctx context.Context) (string, error) {
	return call[string](ctx, c.token, "name")
}

// TokenSymbol implements distribution.Ledger.
func (c *client) TokenSymbol(ctx context.Context) (string, error) {
	return call[string](ctx, c.token, "symbol")
}

// TokenBalance implements distribution.Ledger for the signing wallet.
func (c *client) TokenBalance(ctx context.Context) (*big.Int, error) {
	return call[*big.Int](ctx, c.token, "balanceOf", c.wallet)
}
