// Package ethereum implements the distribution.Ledger interface for an
// ERC-20 token on an Ethereum-compatible network, signing transfers with a
// local private key.
package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/gabapcia/airdrop/internal/distribution"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/jonboulle/clockwork"
)

// defaultPollInterval is how often receipts and the chain head are polled
// while waiting for confirmations.
const defaultPollInterval = 4 * time.Second

var (
	// ErrChainIDMismatch is returned by Ping when the node serves another chain.
	ErrChainIDMismatch = errors.New("chain id mismatch")

	// ErrInvalidAddress is returned when a recipient is not a hex address.
	ErrInvalidAddress = errors.New("invalid address")
)

// backend is the subset of *ethclient.Client used by the client.
type backend interface {
	bind.ContractBackend
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

type client struct {
	backend backend
	chainID *big.Int

	token  *bind.BoundContract
	wallet common.Address
	signer *bind.TransactOpts

	clock        clockwork.Clock
	pollInterval time.Duration
}

// Compile-time assertion that client implements distribution.Ledger.
var _ distribution.Ledger = (*client)(nil)

// Ping checks that the node is reachable and serves the configured chain.
func (c *client) Ping(ctx context.Context) error {
	id, err := c.backend.ChainID(ctx)
	if err != nil {
		return err
	}

	if id.Cmp(c.chainID) != 0 {
		return fmt.Errorf("%w: node reports %s, expected %s", ErrChainIDMismatch, id, c.chainID)
	}

	return nil
}

// NativeBalance implements distribution.Ledger for the signing wallet.
func (c *client) NativeBalance(ctx context.Context) (*big.Int, error) {
	return c.backend.BalanceAt(ctx, c.wallet, nil)
}

// Address returns the signing wallet.
func (c *client) Address() common.Address {
	return c.wallet
}

func (c *client) Close() {
	if closer, ok := c.backend.(interface{ Close() }); ok {
		closer.Close()
	}
}

type config struct {
	httpClient   *http.Client
	clock        clockwork.Clock
	pollInterval time.Duration
}

type Option func(*config)

// WithHTTPClient sets the HTTP client used for JSON-RPC calls.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = c
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(cfg *config) {
		cfg.clock = clock
	}
}

// WithPollInterval sets how often confirmations are checked.
func WithPollInterval(d time.Duration) Option {
	return func(cfg *config) {
		cfg.pollInterval = d
	}
}

// NewClient connects to rpcURL and prepares a signer for privateKey, a hex
// string with or without the 0x prefix.
func NewClient(ctx context.Context, rpcURL, privateKey, tokenAddress string, chainID int64, opts ...Option) (*client, error) {
	cfg := config{
		clock:        clockwork.NewRealClock(),
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var dialOpts []rpc.ClientOption
	if cfg.httpClient != nil {
		dialOpts = append(dialOpts, rpc.WithHTTPClient(cfg.httpClient))
	}

	rpcClient, err := rpc.DialOptions(ctx, rpcURL, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rpc: %w", err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		rpcClient.Close()
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	c, err := newClient(ethclient.NewClient(rpcClient), key, tokenAddress, big.NewInt(chainID), cfg)
	if err != nil {
		rpcClient.Close()
		return nil, err
	}

	return c, nil
}

func newClient(b backend, key *ecdsa.PrivateKey, tokenAddress string, chainID *big.Int, cfg config) (*client, error) {
	if !common.IsHexAddress(tokenAddress) {
		return nil, fmt.Errorf("%w: token %q", ErrInvalidAddress, tokenAddress)
	}

	parsed, err := parseERC20ABI()
	if err != nil {
		return nil, err
	}

	signer, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, err
	}

	return &client{
		backend:      b,
		chainID:      chainID,
		token:        bind.NewBoundContract(common.HexToAddress(tokenAddress), parsed, b, b, b),
		wallet:       crypto.PubkeyToAddress(key.PublicKey),
		signer:       signer,
		clock:        cfg.clock,
		pollInterval: cfg.pollInterval,
	}, nil
}
