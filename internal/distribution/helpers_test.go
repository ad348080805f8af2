package distribution

import (
	"context"
	"math/big"
	"slices"
	"sync"
	"testing"

	"github.com/gabapcia/airdrop/internal/addressbook"

	"github.com/stretchr/testify/mock"
)

func addrs(values ...string) []addressbook.Address {
	out := make([]addressbook.Address, len(values))
	for i, v := range values {
		out[i] = addressbook.Address(v)
	}
	return out
}

// units returns n whole tokens with 18 decimals.
func units(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}

type saveCall struct {
	name  string
	addrs []addressbook.Address
}

// memStore is an in-memory addressbook.Store that records every save.
type memStore struct {
	mu     sync.Mutex
	lists  map[string][]addressbook.Address
	saves  []saveCall
	onSave func(name string) error
}

func newMemStore(sent, pending []addressbook.Address) *memStore {
	return &memStore{
		lists: map[string][]addressbook.Address{
			addressbook.SentList:    addressbook.SortedSet(sent),
			addressbook.PendingList: addressbook.SortedSet(pending),
		},
	}
}

func (s *memStore) Load(_ context.Context, name string) ([]addressbook.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.lists[name]), nil
}

func (s *memStore) Save(_ context.Context, name string, list []addressbook.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.onSave != nil {
		if err := s.onSave(name); err != nil {
			return err
		}
	}

	sorted := addressbook.SortedSet(list)
	s.lists[name] = sorted
	s.saves = append(s.saves, saveCall{name: name, addrs: sorted})
	return nil
}

func (s *memStore) list(name string) []addressbook.Address {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.lists[name])
}

func (s *memStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.saves)
}

// recordingNotifier keeps every message it is asked to send.
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (n *recordingNotifier) Notify(_ context.Context, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.messages = append(n.messages, text)
	return n.err
}

func (n *recordingNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return slices.Clone(n.messages)
}

func expectWallet(ledger *LedgerMock, native, token *big.Int) {
	ledger.EXPECT().Ping(mock.Anything).Return(nil).Once()
	ledger.EXPECT().TokenDecimals(mock.Anything).Return(uint8(18), nil).Once()
	ledger.EXPECT().TokenName(mock.Anything).Return("Tea Token", nil).Once()
	ledger.EXPECT().TokenSymbol(mock.Anything).Return("TEA", nil).Once()
	ledger.EXPECT().NativeBalance(mock.Anything).Return(native, nil).Once()
	ledger.EXPECT().TokenBalance(mock.Anything).Return(token, nil).Once()
}

// transferOutcome decides how a transfer to an address behaves.
type transferOutcome func(to addressbook.Address) (submitErr, waitErr error)

func succeedAll(addressbook.Address) (error, error) { return nil, nil }

// expectTransfers answers every Transfer call according to outcome and
// returns the recipients in call order.
func expectTransfers(t *testing.T, ledger *LedgerMock, amount *big.Int, outcome transferOutcome) *[]addressbook.Address {
	var (
		mu    sync.Mutex
		calls []addressbook.Address
	)

	matchAmount := mock.MatchedBy(func(a *big.Int) bool { return a.Cmp(amount) == 0 })

	ledger.EXPECT().Transfer(mock.Anything, mock.Anything, matchAmount).
		RunAndReturn(func(ctx context.Context, to addressbook.Address, _ *big.Int) (PendingTransfer, error) {
			mu.Lock()
			calls = append(calls, to)
			mu.Unlock()

			submitErr, waitErr := outcome(to)
			if submitErr != nil {
				return nil, submitErr
			}

			pending := NewPendingTransferMock(t)
			pending.EXPECT().Hash().Return("0xhash" + to.String()).Maybe()
			pending.EXPECT().Wait(mock.Anything, uint64(3)).Return(waitErr).Once()
			return pending, nil
		}).
		Maybe()

	return &calls
}

func big0() *big.Int {
	return new(big.Int)
}
