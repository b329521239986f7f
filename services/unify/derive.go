package unify

import (
	// Go Internal Packages
	"fmt"
	"time"

	// Local Packages
	models "psp-datagen/models"
	sampler "psp-datagen/sampler"

	// External Packages
	"github.com/shopspring/decimal"
)

const (
	highValueOrderCents = 20000
	ratePlaces          = 4
)

var (
	hundred = decimal.NewFromInt(100)

	responseDescriptions = map[string]string{
		"00": "Approved",
		"05": "Do not honor",
		"51": "Insufficient funds",
		"54": "Expired card",
		"61": "Exceeds withdrawal limit",
		"65": "Exceeds withdrawal frequency",
	}

	stateCategories = map[string]string{
		"completed": "success",
		"failed":    "failure",
		"cancelled": "cancelled",
		"closed":    "reversed",
	}

	disputeCategories = map[string]string{
		"FRAUD":                 "fraud",
		"PRODUCT_NOT_RECEIVED":  "consumer",
		"NOT_AS_DESCRIBED":      "consumer",
		"DUPLICATE":             "processing_error",
		"CREDIT_NOT_PROCESSED":  "processing_error",
		"SUBSCRIPTION_CANCELED": "processing_error",
	}

	stageSeverity = map[string]int{
		"inquiry":         1,
		"chargeback":      2,
		"pre_arbitration": 3,
		"arbitration":     4,
	}

	// lifecycle states only reachable through a dispute
	disputeStates = map[string]bool{
		"disputed":     true,
		"under_review": true,
		"chargeback":   true,
	}

	networkTiers = map[string]string{
		"visa":       "major",
		"mastercard": "major",
		"amex":       "premium",
		"diners":     "premium",
		"discover":   "regional",
	}
)

// joined is one transaction with its matched parents. disputed is set when
// any dispute references the transaction.
type joined struct {
	txn      models.Transaction
	order    models.Order
	merchant models.Merchant
	customer models.Customer
	payment  models.Payment
	disputed bool
}

// expectation returns the name of the first key constraint the row violates.
func (j joined) expectation() string {
	switch {
	case j.txn.TxnID == "":
		return ExpectTxnID
	case j.order.OrderID == "":
		return ExpectOrderID
	case j.merchant.MerchantID == "":
		return ExpectMerchantID
	case j.customer.CustomerID == "":
		return ExpectCustomerID
	}
	return ""
}

// amount converts minor units to major units.
func amount(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

func ratio(part, whole int64) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).Div(decimal.NewFromInt(whole)).Round(ratePlaces)
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts calendar days from start to end, like SQL datediff.
func daysBetween(end, start time.Time) int {
	return int(day(end).Sub(day(start)).Hours() / 24)
}

// dayOfWeek numbers Sunday as 1 through Saturday as 7.
func dayOfWeek(t time.Time) int {
	return int(t.Weekday()) + 1
}

func orderSize(totalCents int64) string {
	switch {
	case totalCents < 2500:
		return "small"
	case totalCents < 10000:
		return "medium"
	case totalCents < highValueOrderCents:
		return "large"
	}
	return "x_large"
}

func maskLast4(last4 string) string {
	return "**** **** **** " + last4
}

// cardExpired reports whether the card's expiry month ended before at.
func cardExpired(p models.Payment, at time.Time) bool {
	if p.Status == "expired" {
		return true
	}
	if p.ExpiryMonth < 1 || p.ExpiryMonth > 12 {
		return false
	}
	firstAfterExpiry := time.Date(p.ExpiryYear, time.Month(p.ExpiryMonth), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return !at.Before(firstAfterExpiry)
}

func describeResponse(code string) string {
	if d, ok := responseDescriptions[code]; ok {
		return d
	}
	return "Unknown"
}

func categorizeState(state string) string {
	if c, ok := stateCategories[state]; ok {
		return c
	}
	return "in_progress"
}

type parsedTimes struct {
	authorized    time.Time
	orderCreated  time.Time
	merchantSince time.Time
	customerSince time.Time
	paymentSince  time.Time
}

func (j joined) times() (parsedTimes, error) {
	var p parsedTimes
	fields := []struct {
		name  string
		value string
		dst   *time.Time
	}{
		{"transaction.authorized_at", j.txn.AuthorizedAt, &p.authorized},
		{"order.created_at", j.order.CreatedAt, &p.orderCreated},
		{"merchant.created_at", j.merchant.CreatedAt, &p.merchantSince},
		{"customer.created_at", j.customer.CreatedAt, &p.customerSince},
		{"payment.first_seen_at", j.payment.FirstSeenAt, &p.paymentSince},
	}
	for _, f := range fields {
		at, err := sampler.ParseISO(f.value)
		if err != nil {
			return parsedTimes{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = at
	}
	return p, nil
}

func (j joined) row(d *models.Dispute, now time.Time) (models.UnifiedTransaction, error) {
	ts, err := j.times()
	if err != nil {
		return models.UnifiedTransaction{}, err
	}
	t, o, m, c, p := j.txn, j.order, j.merchant, j.customer, j.payment

	netCents := t.AmountCents - t.FeesTotalCents
	row := models.UnifiedTransaction{
		TxnID:                    t.TxnID,
		TransactionState:         t.State.StateName,
		TransactionStateCategory: categorizeState(t.State.StateName),
		StateTimestamp:           t.State.Timestamp,
		TransactionAmount:        amount(t.AmountCents),
		AmountCents:              t.AmountCents,
		TransactionCurrency:      t.Currency,
		ResponseCode:             t.ResponseCode,
		ResponseCodeDescription:  describeResponse(t.ResponseCode),
		ThreeDSStatus:            t.ThreeDS,
		Is3DSAuthenticated:       t.ThreeDS == "frictionless" || t.ThreeDS == "challenge",
		FeesTotalAmount:          amount(t.FeesTotalCents),
		FeesTotalCents:           t.FeesTotalCents,
		NetworkFeeAmount:         amount(t.NetworkFeeCents),
		NetworkFeeCents:          t.NetworkFeeCents,
		EffectiveFeeRatePct:      ratio(t.FeesTotalCents, t.AmountCents).Mul(hundred),
		NetAmount:                amount(netCents),
		NetAmountCents:           netCents,
		ProcessorName:            t.ProcessorName,
		IsSuccessfulTransaction:  t.State.StateName == "completed",
		IsFailedTransaction:      t.State.StateName == "failed",
		IsDisputedTransaction:    j.disputed || disputeStates[t.State.StateName],
		IsDeclined:               t.ResponseCode != "00",
		TransactionAuthorizedAt:  t.AuthorizedAt,
		TransactionDate:          ts.authorized.Format(sampler.DateLayout),
		TransactionHour:          ts.authorized.Hour(),
		TransactionDayOfWeek:     dayOfWeek(ts.authorized),

		OrderID:               o.OrderID,
		OrderCurrency:         o.Currency,
		SubtotalAmount:        amount(o.SubtotalCents),
		SubtotalCents:         o.SubtotalCents,
		TaxAmount:             amount(o.TaxCents),
		TaxCents:              o.TaxCents,
		TipAmount:             amount(o.TipCents),
		TipCents:              o.TipCents,
		OrderTotalAmount:      amount(o.TotalAmountCents),
		OrderTotalAmountCents: o.TotalAmountCents,
		TaxRate:               ratio(o.TaxCents, o.SubtotalCents),
		TipRate:               ratio(o.TipCents, o.SubtotalCents),
		OrderChannel:          o.Channel,
		IsEcommerceOrder:      o.Channel == "ecommerce",
		HasTip:                o.TipCents > 0,
		IsHighValueOrder:      o.TotalAmountCents >= highValueOrderCents,
		OrderSizeCategory:     orderSize(o.TotalAmountCents),
		OrderCreatedAt:        o.CreatedAt,
		OrderDate:             ts.orderCreated.Format(sampler.DateLayout),
		OrderHour:             ts.orderCreated.Hour(),
		OrderDayOfWeek:        dayOfWeek(ts.orderCreated),

		MerchantID:            m.MerchantID,
		MerchantLegalName:     m.LegalName,
		MerchantCategoryCode:  m.MCC,
		MerchantCountry:       m.Country,
		MerchantKYBStatus:     m.KYBStatus,
		MerchantPricingTier:   m.PricingTier,
		MerchantRiskLevel:     m.RiskLevel,
		IsMerchantKYBApproved: m.KYBStatus == "approved",
		IsMerchantHighRisk:    m.RiskLevel == "high" || m.RiskLevel == "critical",
		IsMerchantEnterprise:  m.PricingTier == "enterprise",
		MerchantCreatedAt:     m.CreatedAt,

		CustomerID:         c.CustomerID,
		CustomerEmailHash:  c.EmailHash,
		CustomerPhoneHash:  c.PhoneHash,
		CustomerType:       c.CustomerType,
		IsVIPCustomer:      c.CustomerType == "vip",
		IsFlaggedCustomer:  c.CustomerType == "flagged",
		CustomerTenureDays: daysBetween(now, ts.customerSince),
		CustomerCreatedAt:  c.CreatedAt,

		PaymentID:          p.PaymentID,
		CardBrand:          p.Brand,
		CardBIN:            p.BIN,
		CardLast4Masked:    maskLast4(p.Last4),
		CardExpiryMonth:    p.ExpiryMonth,
		CardExpiryYear:     p.ExpiryYear,
		WalletType:         p.WalletType,
		PaymentStatus:      p.Status,
		IsActivePayment:    p.Status == "active",
		IsWalletPayment:    p.WalletType != nil,
		IsPaymentExpired:   cardExpired(p, ts.authorized),
		CardNetworkTier:    networkTiers[p.Brand],
		PaymentFirstSeenAt: p.FirstSeenAt,

		HasDispute:                d != nil,
		DaysSinceCustomerCreated:  daysBetween(ts.authorized, ts.customerSince),
		DaysSinceMerchantCreated:  daysBetween(ts.authorized, ts.merchantSince),
		DaysSincePaymentFirstSeen: daysBetween(ts.authorized, ts.paymentSince),
		OrderToAuthSeconds:        ts.authorized.Unix() - ts.orderCreated.Unix(),
		MerchantNetRevenue:        amount(netCents),
		PSPRevenue:                amount(t.FeesTotalCents),
		TotalPSPFees:              amount(o.TotalAmountCents).Sub(amount(netCents)),

		UnifiedCreatedAt: sampler.FormatISO(now),
	}

	if d != nil {
		if err := withDispute(&row, *d, now); err != nil {
			return models.UnifiedTransaction{}, err
		}
	}
	return row, nil
}

// withDispute fills the nullable dispute columns.
func withDispute(row *models.UnifiedTransaction, d models.Dispute, now time.Time) error {
	opened, err := sampler.ParseISO(d.OpenedAt)
	if err != nil {
		return fmt.Errorf("dispute.opened_at: %w", err)
	}
	until := now
	if d.ClosedAt != nil {
		closed, err := sampler.ParseISO(*d.ClosedAt)
		if err != nil {
			return fmt.Errorf("dispute.closed_at: %w", err)
		}
		until = closed
	}

	category := disputeCategories[d.ReasonCode]
	disputeAmount := amount(d.AmountCents)
	amountCents := d.AmountCents
	ageDays := daysBetween(until, opened)
	closed := d.ClosedAt != nil
	won := d.Status == "won"
	lost := d.Status == "lost"
	merchantLiable := d.Liability == "merchant"
	fraud := d.ReasonCode == "FRAUD"
	escalated := d.Stage == "pre_arbitration" || d.Stage == "arbitration"
	severity := stageSeverity[d.Stage]

	row.DisputeID = &d.DisputeID
	row.DisputeReasonCode = &d.ReasonCode
	row.DisputeStage = &d.Stage
	row.DisputeCategory = &category
	row.LiabilityParty = &d.Liability
	row.DisputeStatus = &d.Status
	row.DisputeAmount = &disputeAmount
	row.DisputeAmountCents = &amountCents
	row.DisputeOpenedAt = &d.OpenedAt
	row.DisputeClosedAt = d.ClosedAt
	row.DisputeAgeDays = &ageDays
	row.IsDisputeClosed = &closed
	row.IsDisputeWon = &won
	row.IsDisputeLost = &lost
	row.IsMerchantLiable = &merchantLiable
	row.IsFraudDispute = &fraud
	row.IsDisputeEscalated = &escalated
	row.DisputeSeverityLevel = &severity
	return nil
}
