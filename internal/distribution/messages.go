package distribution

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// nativeDecimals is the precision of the chain's native currency.
const nativeDecimals = 18

// toBaseUnits converts a human amount to base units, truncating any
// precision beyond decimals.
func toBaseUnits(amount decimal.Decimal, decimals int32) *big.Int {
	return amount.Shift(decimals).BigInt()
}

// formatUnits renders base units as a human amount.
func formatUnits(v *big.Int, decimals uint8) string {
	if v == nil {
		return "0"
	}
	return decimal.NewFromBigInt(v, -int32(decimals)).String()
}

// txLink renders a transaction hash, linked to the explorer when one is set.
func txLink(explorerTxURL, hash string) string {
	if explorerTxURL == "" {
		return "`" + hash + "`"
	}
	return fmt.Sprintf("[%s](%s%s)", hash, explorerTxURL, hash)
}

func msgTokenDetected(t Token) string {
	return fmt.Sprintf("✅ Token detected: *%s* (%s)", t.Name, t.Symbol)
}

func msgBalances(t Token, native, token *big.Int) string {
	return fmt.Sprintf("📊 *Wallet balance*\n• Native: `%s`\n• %s: `%s` %s",
		formatUnits(native, nativeDecimals),
		t.label(), formatUnits(token, t.Decimals), t.Symbol,
	)
}

func msgLowGas() string {
	return "⚠️ Native balance is too low to pay for gas"
}

func msgLowToken(t Token) string {
	return fmt.Sprintf("⚠️ %s balance is not enough for a distribution", t.label())
}

func msgZeroAmount(t Token) string {
	return fmt.Sprintf("⚠️ Amount per recipient is below the smallest unit of %s", t.label())
}

func msgNoEligible() string {
	return "⚠️ No eligible addresses found."
}

func msgAllSent() string {
	return "✓ Every eligible address has already received tokens."
}

func msgRecipients(n int) string {
	return fmt.Sprintf("🔍 %d addresses have not received tokens yet.", n)
}

func msgPlan(size int, amount decimal.Decimal, t Token) string {
	total := amount.Mul(decimal.NewFromInt(int64(size)))
	return fmt.Sprintf("📊 Sending %d transfers (%s %s) today.", size, total.String(), t.Symbol)
}

func msgTransferSucceeded(n int, r TransferRecord, amount decimal.Decimal, t Token, explorerTxURL string) string {
	return fmt.Sprintf("✅ %d. Transfer succeeded\n• Recipient: `%s`\n• Amount: %s %s\n• TX Hash: %s",
		n, r.Recipient, amount.String(), t.Symbol, txLink(explorerTxURL, r.TxHash),
	)
}

func msgTransferFailed(n int, r TransferRecord) string {
	return fmt.Sprintf("❌ %d. Transfer failed (%s) - %s", n, r.Recipient, r.Err)
}

func msgSummary(report CycleReport) string {
	return fmt.Sprintf("✓ Today's transfers are done. Succeeded: %d, Failed: %d", report.Succeeded, report.Failed)
}

func msgInterrupted(report CycleReport) string {
	return fmt.Sprintf("⏹ Distribution interrupted. Succeeded: %d, Failed: %d, Not attempted: %d",
		report.Succeeded, report.Failed, report.NotAttempted(),
	)
}

func msgCycleError(err error) string {
	return fmt.Sprintf("❌ Error: %s", err)
}
