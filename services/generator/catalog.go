package generator

import (
	// Local Packages
	sampler "psp-datagen/sampler"
)

// Identifier templates; '#' is a digit and '?' an uppercase letter.
var (
	merchantID = sampler.Compile("m_#####??##")
	customerID = sampler.Compile("c_#####??##")
	contactRef = sampler.Compile("hash_????????????????")
	paymentID  = sampler.Compile("pm_####??####")
	cardLast4  = sampler.Compile("####")
	orderID    = sampler.Compile("ord_#####??####")
	txnID      = sampler.Compile("txn_#####??####")
	payoutID   = sampler.Compile("pay_#####??####")
	disputeID  = sampler.Compile("cb_#####??####")
)

func ptr(s string) *string { return &s }

var (
	mccCodes  = sampler.Uniform("5812", "5411", "5541", "7011", "5999", "5735", "5651", "5942", "5311", "5912")
	countries = sampler.MustChoice(
		sampler.W(70, "US"), sampler.W(15, "GB"), sampler.W(10, "CA"), sampler.W(5, "AU"),
	)
	kybStatuses = sampler.MustChoice(
		sampler.W(85, "approved"), sampler.W(10, "pending"), sampler.W(3, "review"), sampler.W(2, "rejected"),
	)
	pricingTiers = sampler.MustChoice(
		sampler.W(60, "standard"), sampler.W(25, "premium"), sampler.W(15, "enterprise"),
	)
	riskLevels = sampler.MustChoice(
		sampler.W(70, "low"), sampler.W(20, "medium"), sampler.W(8, "high"), sampler.W(2, "critical"),
	)

	customerTypes = sampler.MustChoice(
		sampler.W(80, "regular"), sampler.W(15, "vip"), sampler.W(5, "flagged"),
	)

	cardBrands = sampler.MustChoice(
		sampler.W(45, "visa"), sampler.W(35, "mastercard"), sampler.W(10, "amex"),
		sampler.W(7, "discover"), sampler.W(3, "diners"),
	)
	cardBINs    = sampler.Uniform("411111", "542800", "378282", "601100", "370000", "555555", "424242", "500000")
	expiryYears = sampler.MustChoice(
		sampler.W(5, 2024), sampler.W(25, 2025), sampler.W(30, 2026),
		sampler.W(25, 2027), sampler.W(10, 2028), sampler.W(5, 2029),
	)
	wallets = sampler.MustChoice(
		sampler.W[*string](50, nil), sampler.W(25, ptr("applepay")),
		sampler.W(20, ptr("googlepay")), sampler.W(5, ptr("samsungpay")),
	)
	instrumentStatuses = sampler.MustChoice(
		sampler.W(90, "active"), sampler.W(5, "expired"), sampler.W(3, "blocked"), sampler.W(2, "lost_stolen"),
	)

	currencies = sampler.MustChoice(
		sampler.W(70, "USD"), sampler.W(15, "GBP"), sampler.W(10, "CAD"), sampler.W(5, "AUD"),
	)
	channels = sampler.MustChoice(
		sampler.W(55, "ecommerce"), sampler.W(30, "pos"), sampler.W(10, "mobile"), sampler.W(5, "ivr"),
	)

	responseCodes = sampler.MustChoice(
		sampler.W(92, "00"), sampler.W(3, "05"), sampler.W(2, "51"),
		sampler.W(1, "54"), sampler.W(1, "61"), sampler.W(1, "65"),
	)
	threeDSOutcomes = sampler.MustChoice(
		sampler.W(65, "frictionless"), sampler.W(20, "challenge"),
		sampler.W(10, "attempted"), sampler.W(5, "not_supported"),
	)
	processors = sampler.Uniform("visa_network", "mastercard_network", "amex_network", "discover_network")

	payoutStatuses = sampler.MustChoice(
		sampler.W(85, "paid"), sampler.W(10, "pending"), sampler.W(3, "in_transit"), sampler.W(2, "failed"),
	)

	disputeReasons = sampler.MustChoice(
		sampler.W(40, "FRAUD"), sampler.W(25, "PRODUCT_NOT_RECEIVED"), sampler.W(15, "NOT_AS_DESCRIBED"),
		sampler.W(10, "DUPLICATE"), sampler.W(5, "CREDIT_NOT_PROCESSED"), sampler.W(5, "SUBSCRIPTION_CANCELED"),
	)
	disputeStages = sampler.MustChoice(
		sampler.W(40, "inquiry"), sampler.W(35, "chargeback"),
		sampler.W(15, "pre_arbitration"), sampler.W(10, "arbitration"),
	)
	liabilities = sampler.MustChoice(
		sampler.W(65, "merchant"), sampler.W(25, "issuer"), sampler.W(10, "shared"),
	)
	disputeStatuses = sampler.MustChoice(
		sampler.W(40, "open"), sampler.W(30, "lost"), sampler.W(20, "won"), sampler.W(10, "pending_evidence"),
	)
)

// Numeric ranges, all inclusive except float upper bounds.
const (
	subtotalMinCents = 500
	subtotalMaxCents = 25000
	taxRateMin       = 0.05
	taxRateMax       = 0.15
	tipRateMin       = 0.0
	tipRateMax       = 0.25

	feeRateMin       = 0.024
	feeRateMax       = 0.032
	fixedFeeMinCents = 20
	fixedFeeMaxCents = 35
	networkFeeMin    = 8
	networkFeeMax    = 18

	payoutGrossMin     = 10000
	payoutGrossMax     = 500000
	payoutFeeRateMin   = 0.025
	payoutFeeRateMax   = 0.035
	payoutReserveMin   = 0.001
	payoutReserveMax   = 0.005
	payoutDelayMinHour = 24
	payoutDelayMaxHour = 48
	payoutTxnCountMin  = 10
	payoutTxnCountMax  = 500

	disputeClosedRate = 0.30
)

// Transaction states.
const (
	StatePending       = "pending"
	StateAuthorized    = "authorized"
	StateDeclined      = "declined"
	StateCaptured      = "captured"
	StateVoid          = "void"
	StateSettled       = "settled"
	StateRefundPending = "refund_pending"
	StateRefunded      = "refunded"
	StateDisputed      = "disputed"
	StateUnderReview   = "under_review"
	StateChargeback    = "chargeback"
	StateCompleted     = "completed"
	StateFailed        = "failed"
	StateCancelled     = "cancelled"
	StateClosed        = "closed"
)

// PaymentTransitions is the lifecycle every generated transaction walks.
// States mapped to nil are terminal.
var PaymentTransitions = map[string][]sampler.Weighted[string]{
	StatePending:       {sampler.W(92, StateAuthorized), sampler.W(8, StateDeclined)},
	StateAuthorized:    {sampler.W(95, StateCaptured), sampler.W(5, StateVoid)},
	StateCaptured:      {sampler.W(97, StateSettled), sampler.W(3, StateRefundPending)},
	StateRefundPending: {sampler.W(100, StateRefunded)},
	StateSettled:       {sampler.W(98, StateCompleted), sampler.W(2, StateDisputed)},
	StateDeclined:      {sampler.W(100, StateFailed)},
	StateVoid:          {sampler.W(100, StateCancelled)},
	StateRefunded:      {sampler.W(100, StateClosed)},
	StateDisputed:      {sampler.W(100, StateUnderReview)},
	StateUnderReview:   {sampler.W(60, StateCompleted), sampler.W(40, StateChargeback)},
	StateChargeback:    {sampler.W(100, StateClosed)},
	StateCompleted:     nil,
	StateFailed:        nil,
	StateCancelled:     nil,
	StateClosed:        nil,
}
