package generator

import (
	// Go Internal Packages
	"math"
)

// OrderAmounts are the cent amounts of an order; Total is always the sum of
// the other three.
type OrderAmounts struct {
	Subtotal int64
	Tax      int64
	Tip      int64
	Total    int64
}

// SplitOrder applies the tax and tip rates to the subtotal, truncating each
// toward zero before summing.
func SplitOrder(subtotal int64, taxRate, tipRate float64) OrderAmounts {
	tax := int64(float64(subtotal) * taxRate)
	tip := int64(float64(subtotal) * tipRate)
	return OrderAmounts{
		Subtotal: subtotal,
		Tax:      tax,
		Tip:      tip,
		Total:    subtotal + tax + tip,
	}
}

// TransactionFee is floor(total * rate) + fixed. The network fee is reported
// separately and is not taken out of this figure.
func TransactionFee(total int64, rate float64, fixed int64) int64 {
	return int64(math.Floor(float64(total)*rate)) + fixed
}

// PayoutAmounts satisfy Net == Gross - Fees - Reserve.
type PayoutAmounts struct {
	Gross   int64
	Fees    int64
	Reserve int64
	Net     int64
}

func SplitPayout(gross int64, feeRate, reserveRate float64) PayoutAmounts {
	fees := int64(float64(gross) * feeRate)
	reserve := int64(float64(gross) * reserveRate)
	return PayoutAmounts{
		Gross:   gross,
		Fees:    fees,
		Reserve: reserve,
		Net:     gross - fees - reserve,
	}
}
