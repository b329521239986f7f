package generator

import (
	// Go Internal Packages
	"testing"

	// External Packages
	"github.com/stretchr/testify/assert"
)

func TestSplitOrderTruncatesComponents(t *testing.T) {
	got := SplitOrder(1001, 0.125, 0.25)
	assert.Equal(t, OrderAmounts{Subtotal: 1001, Tax: 125, Tip: 250, Total: 1376}, got)

	noTip := SplitOrder(500, 0.0625, 0)
	assert.Equal(t, int64(0), noTip.Tip)
	assert.Equal(t, noTip.Subtotal+noTip.Tax, noTip.Total)
}

func TestTransactionFee(t *testing.T) {
	// 10000 * 1/32 = 312.5, floored
	assert.Equal(t, int64(342), TransactionFee(10000, 0.03125, 30))
	assert.Equal(t, int64(20), TransactionFee(0, 0.03125, 20))
}

func TestSplitPayout(t *testing.T) {
	got := SplitPayout(100000, 0.03125, 0.00390625)
	assert.Equal(t, PayoutAmounts{Gross: 100000, Fees: 3125, Reserve: 390, Net: 96485}, got)
	assert.Equal(t, got.Gross-got.Fees-got.Reserve, got.Net)
}
