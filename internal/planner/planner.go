// Package planner decides how many transfers a cycle may perform given the
// wallet balances, the number of recipients and a randomized daily cap.
package planner

import (
	"math/big"

	"github.com/gabapcia/airdrop/internal/pkg/random"
)

// Reason explains the outcome of a plan.
type Reason string

const (
	ReasonOK           Reason = "ok"
	ReasonLowGas       Reason = "low_gas"
	ReasonLowToken     Reason = "low_token"
	ReasonNoRecipients Reason = "no_recipients"
	ReasonZeroAmount   Reason = "zero_amount"
)

// BatchSize returns min(floor(tokenBalance/perRecipient), recipientCount, dailyCap).
// The result is never negative. A nil or non-positive perRecipient yields 0.
func BatchSize(recipientCount int, tokenBalance, perRecipient *big.Int, dailyCap int) int {
	if recipientCount <= 0 || dailyCap <= 0 || tokenBalance == nil || perRecipient == nil || perRecipient.Sign() <= 0 || tokenBalance.Sign() <= 0 {
		return 0
	}

	affordable := new(big.Int).Quo(tokenBalance, perRecipient)

	size := min(recipientCount, dailyCap)
	if affordable.IsInt64() && affordable.Int64() < int64(size) {
		size = int(affordable.Int64())
	}

	return size
}

// Input holds everything a plan depends on. Amounts are in base units.
type Input struct {
	RecipientCount int
	NativeBalance  *big.Int
	TokenBalance   *big.Int
	PerRecipient   *big.Int
	GasReserve     *big.Int
}

// Plan is the outcome of planning one cycle.
type Plan struct {
	Size       int
	Cap        int
	Affordable *big.Int
	Reason     Reason
}

type Planner interface {
	Plan(in Input) Plan
}

type planner struct {
	minCap int
	maxCap int
	rand   random.Source
}

var _ Planner = (*planner)(nil)

// Plan draws the daily cap uniformly in [minCap, maxCap] and sizes the batch.
//
// Short-circuits:
//   - ReasonLowGas if the native balance is below the gas reserve
//   - ReasonZeroAmount if the amount per recipient is not positive in base units
//   - ReasonLowToken if the token balance cannot cover one recipient
//   - ReasonNoRecipients if nobody is left to pay
func (p *planner) Plan(in Input) Plan {
	dailyCap := random.IntBetween(p.rand, p.minCap, p.maxCap)

	plan := Plan{
		Cap:        dailyCap,
		Affordable: new(big.Int),
	}

	if in.PerRecipient != nil && in.PerRecipient.Sign() > 0 && in.TokenBalance != nil {
		plan.Affordable.Quo(in.TokenBalance, in.PerRecipient)
	}

	switch {
	case in.GasReserve != nil && (in.NativeBalance == nil || in.NativeBalance.Cmp(in.GasReserve) < 0):
		plan.Reason = ReasonLowGas
	case in.PerRecipient == nil || in.PerRecipient.Sign() <= 0:
		plan.Reason = ReasonZeroAmount
	case in.TokenBalance == nil || in.TokenBalance.Cmp(in.PerRecipient) < 0:
		plan.Reason = ReasonLowToken
	case in.RecipientCount <= 0:
		plan.Reason = ReasonNoRecipients
	default:
		plan.Size = BatchSize(in.RecipientCount, in.TokenBalance, in.PerRecipient, dailyCap)
		plan.Reason = ReasonOK
	}

	return plan
}

// New returns a Planner drawing its daily cap from rand. If maxCap < minCap
// the cap is always minCap.
func New(minCap, maxCap int, rand random.Source) *planner {
	return &planner{
		minCap: minCap,
		maxCap: maxCap,
		rand:   rand,
	}
}
