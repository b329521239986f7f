package models

import (
	// External Packages
	"github.com/shopspring/decimal"
)

// UnifiedTransaction is one row of the silver unified table: transaction grain
// widened with its order, merchant, customer, payment instrument and, when
// present, dispute. Dispute columns are nil for undisputed transactions.
type UnifiedTransaction struct {
	// transaction
	TxnID                    string          `json:"txn_id"`
	TransactionState         string          `json:"transaction_state"`
	TransactionStateCategory string          `json:"transaction_state_category"`
	StateTimestamp           int64           `json:"state_timestamp"`
	TransactionAmount        decimal.Decimal `json:"transaction_amount"`
	AmountCents              int64           `json:"amount_cents"`
	TransactionCurrency      string          `json:"transaction_currency"`
	ResponseCode             string          `json:"response_code"`
	ResponseCodeDescription  string          `json:"response_code_description"`
	ThreeDSStatus            string          `json:"three_ds_status"`
	Is3DSAuthenticated       bool            `json:"is_3ds_authenticated"`
	FeesTotalAmount          decimal.Decimal `json:"fees_total_amount"`
	FeesTotalCents           int64           `json:"fees_total_cents"`
	NetworkFeeAmount         decimal.Decimal `json:"network_fee_amount"`
	NetworkFeeCents          int64           `json:"network_fee_cents"`
	EffectiveFeeRatePct      decimal.Decimal `json:"effective_fee_rate_pct"`
	NetAmount                decimal.Decimal `json:"net_amount"`
	NetAmountCents           int64           `json:"net_amount_cents"`
	ProcessorName            string          `json:"processor_name"`
	IsSuccessfulTransaction  bool            `json:"is_successful_transaction"`
	IsFailedTransaction      bool            `json:"is_failed_transaction"`
	IsDisputedTransaction    bool            `json:"is_disputed_transaction"`
	IsDeclined               bool            `json:"is_declined"`
	TransactionAuthorizedAt  string          `json:"transaction_authorized_at"`
	TransactionDate          string          `json:"transaction_date"`
	TransactionHour          int             `json:"transaction_hour"`
	TransactionDayOfWeek     int             `json:"transaction_day_of_week"`

	// order
	OrderID               string          `json:"order_id"`
	OrderCurrency         string          `json:"order_currency"`
	SubtotalAmount        decimal.Decimal `json:"subtotal_amount"`
	SubtotalCents         int64           `json:"subtotal_cents"`
	TaxAmount             decimal.Decimal `json:"tax_amount"`
	TaxCents              int64           `json:"tax_cents"`
	TipAmount             decimal.Decimal `json:"tip_amount"`
	TipCents              int64           `json:"tip_cents"`
	OrderTotalAmount      decimal.Decimal `json:"order_total_amount"`
	OrderTotalAmountCents int64           `json:"order_total_amount_cents"`
	TaxRate               decimal.Decimal `json:"tax_rate"`
	TipRate               decimal.Decimal `json:"tip_rate"`
	OrderChannel          string          `json:"order_channel"`
	IsEcommerceOrder      bool            `json:"is_ecommerce_order"`
	HasTip                bool            `json:"has_tip"`
	IsHighValueOrder      bool            `json:"is_high_value_order"`
	OrderSizeCategory     string          `json:"order_size_category"`
	OrderCreatedAt        string          `json:"order_created_at"`
	OrderDate             string          `json:"order_date"`
	OrderHour             int             `json:"order_hour"`
	OrderDayOfWeek        int             `json:"order_day_of_week"`

	// merchant
	MerchantID            string `json:"merchant_id"`
	MerchantLegalName     string `json:"merchant_legal_name"`
	MerchantCategoryCode  string `json:"merchant_category_code"`
	MerchantCountry       string `json:"merchant_country"`
	MerchantKYBStatus     string `json:"merchant_kyb_status"`
	MerchantPricingTier   string `json:"merchant_pricing_tier"`
	MerchantRiskLevel     string `json:"merchant_risk_level"`
	IsMerchantKYBApproved bool   `json:"is_merchant_kyb_approved"`
	IsMerchantHighRisk    bool   `json:"is_merchant_high_risk"`
	IsMerchantEnterprise  bool   `json:"is_merchant_enterprise"`
	MerchantCreatedAt     string `json:"merchant_created_at"`

	// customer
	CustomerID         string `json:"customer_id"`
	CustomerEmailHash  string `json:"customer_email_hash"`
	CustomerPhoneHash  string `json:"customer_phone_hash"`
	CustomerType       string `json:"customer_type"`
	IsVIPCustomer      bool   `json:"is_vip_customer"`
	IsFlaggedCustomer  bool   `json:"is_flagged_customer"`
	CustomerTenureDays int    `json:"customer_tenure_days"`
	CustomerCreatedAt  string `json:"customer_created_at"`

	// payment instrument
	PaymentID          string  `json:"payment_id"`
	CardBrand          string  `json:"card_brand"`
	CardBIN            string  `json:"card_bin"`
	CardLast4Masked    string  `json:"card_last4_masked"`
	CardExpiryMonth    int     `json:"card_expiry_month"`
	CardExpiryYear     int     `json:"card_expiry_year"`
	WalletType         *string `json:"wallet_type"`
	PaymentStatus      string  `json:"payment_status"`
	IsActivePayment    bool    `json:"is_active_payment"`
	IsWalletPayment    bool    `json:"is_wallet_payment"`
	IsPaymentExpired   bool    `json:"is_payment_expired"`
	CardNetworkTier    string  `json:"card_network_tier"`
	PaymentFirstSeenAt string  `json:"payment_first_seen_at"`

	// dispute
	DisputeID            *string          `json:"dispute_id"`
	DisputeReasonCode    *string          `json:"dispute_reason_code"`
	DisputeStage         *string          `json:"dispute_stage"`
	DisputeCategory      *string          `json:"dispute_category"`
	LiabilityParty       *string          `json:"liability_party"`
	DisputeStatus        *string          `json:"dispute_status"`
	DisputeAmount        *decimal.Decimal `json:"dispute_amount"`
	DisputeAmountCents   *int64           `json:"dispute_amount_cents"`
	DisputeOpenedAt      *string          `json:"dispute_opened_at"`
	DisputeClosedAt      *string          `json:"dispute_closed_at"`
	DisputeAgeDays       *int             `json:"dispute_age_days"`
	IsDisputeClosed      *bool            `json:"is_dispute_closed"`
	IsDisputeWon         *bool            `json:"is_dispute_won"`
	IsDisputeLost        *bool            `json:"is_dispute_lost"`
	IsMerchantLiable     *bool            `json:"is_merchant_liable"`
	IsFraudDispute       *bool            `json:"is_fraud_dispute"`
	IsDisputeEscalated   *bool            `json:"is_dispute_escalated"`
	DisputeSeverityLevel *int             `json:"dispute_severity_level"`

	// cross entity
	HasDispute                bool            `json:"has_dispute"`
	DaysSinceCustomerCreated  int             `json:"days_since_customer_created"`
	DaysSinceMerchantCreated  int             `json:"days_since_merchant_created"`
	DaysSincePaymentFirstSeen int             `json:"days_since_payment_first_seen"`
	OrderToAuthSeconds        int64           `json:"order_to_auth_seconds"`
	MerchantNetRevenue        decimal.Decimal `json:"merchant_net_revenue"`
	PSPRevenue                decimal.Decimal `json:"psp_revenue"`
	TotalPSPFees              decimal.Decimal `json:"total_psp_fees"`

	UnifiedCreatedAt string `json:"unified_created_at"`
}

func (u UnifiedTransaction) PrimaryKey() string { return u.TxnID }
