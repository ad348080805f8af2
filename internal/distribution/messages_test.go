package distribution

import (
	"errors"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToBaseUnits(t *testing.T) {
	assert.Equal(t, 0, toBaseUnits(decimal.NewFromInt(1000), 18).Cmp(units(1000)))
	assert.Equal(t, int64(10_000_000_000_000_000), toBaseUnits(decimal.RequireFromString("0.01"), 18).Int64())
	assert.Equal(t, int64(1), toBaseUnits(decimal.RequireFromString("1.9"), 0).Int64(), "extra precision is truncated")
}

func TestFormatUnits(t *testing.T) {
	assert.Equal(t, "1000", formatUnits(units(1000), 18))
	assert.Equal(t, "0.5", formatUnits(big.NewInt(5), 1))
	assert.Equal(t, "0", formatUnits(nil, 18))
}

func TestTxLink(t *testing.T) {
	assert.Equal(t, "[0xabc](https://sepolia.tea.xyz/tx/0xabc)", txLink("https://sepolia.tea.xyz/tx/", "0xabc"))
	assert.Equal(t, "`0xabc`", txLink("", "0xabc"))
}

func TestMessages(t *testing.T) {
	token := Token{Name: "Tea Token", Symbol: "TEA", Decimals: 18}
	record := TransferRecord{Recipient: "0xb", TxHash: "0xabc"}

	assert.Equal(t,
		"✅ 2. Transfer succeeded\n• Recipient: `0xb`\n• Amount: 1000 TEA\n• TX Hash: [0xabc](https://x/tx/0xabc)",
		msgTransferSucceeded(2, record, decimal.NewFromInt(1000), token, "https://x/tx/"),
	)

	record.Err = errors.New("nonce too low")
	assert.Equal(t, "❌ 3. Transfer failed (0xb) - nonce too low", msgTransferFailed(3, record))

	assert.Equal(t, "⚠️ Token balance is not enough for a distribution", msgLowToken(Token{}))
	assert.Equal(t, "📊 Sending 3 transfers (3000 TEA) today.", msgPlan(3, decimal.NewFromInt(1000), token))
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "pacing_delay", PhasePacingDelay.String())
	assert.Equal(t, "finalizing", PhaseFinalizing.String())
	assert.Equal(t, "unknown", Phase(200).String())
}
