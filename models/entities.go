package models

// Entity names double as output file stems, kafka topic suffixes and mongo
// collection names.
const (
	EntityMerchants    = "merchants"
	EntityCustomers    = "customers"
	EntityPayments     = "payments"
	EntityOrders       = "orders"
	EntityTransactions = "transactions"
	EntityPayouts      = "payouts"
	EntityDisputes     = "disputes"
)

// Entities lists every entity in generation order.
var Entities = []string{
	EntityMerchants,
	EntityCustomers,
	EntityPayments,
	EntityOrders,
	EntityTransactions,
	EntityPayouts,
	EntityDisputes,
}

// Keyed is implemented by every generated record.
type Keyed interface {
	PrimaryKey() string
}

type Merchant struct {
	MerchantID  string `json:"merchant_id" bson:"_id"`
	LegalName   string `json:"legal_name" bson:"legal_name"`
	MCC         string `json:"mcc" bson:"mcc"`
	Country     string `json:"country" bson:"country"`
	KYBStatus   string `json:"kyb_status" bson:"kyb_status"`
	PricingTier string `json:"pricing_tier" bson:"pricing_tier"`
	RiskLevel   string `json:"risk_level" bson:"risk_level"`
	CreatedAt   string `json:"created_at" bson:"created_at"`
}

func (m Merchant) PrimaryKey() string { return m.MerchantID }

type Customer struct {
	CustomerID   string `json:"customer_id" bson:"_id"`
	EmailHash    string `json:"email_hash" bson:"email_hash"`
	PhoneHash    string `json:"phone_hash" bson:"phone_hash"`
	CustomerType string `json:"customer_type" bson:"customer_type"`
	CreatedAt    string `json:"created_at" bson:"created_at"`
}

func (c Customer) PrimaryKey() string { return c.CustomerID }

// Payment is a stored payment instrument. WalletType is nil when the card is
// used without a wallet.
type Payment struct {
	PaymentID   string  `json:"payment_id" bson:"_id"`
	CustomerID  string  `json:"customer_id" bson:"customer_id"`
	Brand       string  `json:"brand" bson:"brand"`
	BIN         string  `json:"bin" bson:"bin"`
	Last4       string  `json:"last4" bson:"last4"`
	ExpiryMonth int     `json:"expiry_month" bson:"expiry_month"`
	ExpiryYear  int     `json:"expiry_year" bson:"expiry_year"`
	WalletType  *string `json:"wallet_type" bson:"wallet_type"`
	Status      string  `json:"status" bson:"status"`
	FirstSeenAt string  `json:"first_seen_at" bson:"first_seen_at"`
}

func (p Payment) PrimaryKey() string { return p.PaymentID }

type Order struct {
	OrderID          string `json:"order_id" bson:"_id"`
	MerchantID       string `json:"merchant_id" bson:"merchant_id"`
	CustomerID       string `json:"customer_id" bson:"customer_id"`
	Currency         string `json:"currency" bson:"currency"`
	SubtotalCents    int64  `json:"subtotal_cents" bson:"subtotal_cents"`
	TaxCents         int64  `json:"tax_cents" bson:"tax_cents"`
	TipCents         int64  `json:"tip_cents" bson:"tip_cents"`
	TotalAmountCents int64  `json:"total_amount_cents" bson:"total_amount_cents"`
	Channel          string `json:"channel" bson:"channel"`
	CreatedAt        string `json:"created_at" bson:"created_at"`
}

func (o Order) PrimaryKey() string { return o.OrderID }

// TxnState is the terminal state of a transaction. Timestamp is epoch millis.
type TxnState struct {
	StateName string `json:"state_name" bson:"state_name"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
}

type Transaction struct {
	TxnID           string   `json:"txn_id" bson:"_id"`
	OrderID         string   `json:"order_id" bson:"order_id"`
	PaymentID       string   `json:"payment_id" bson:"payment_id"`
	AmountCents     int64    `json:"amount_cents" bson:"amount_cents"`
	Currency        string   `json:"currency" bson:"currency"`
	State           TxnState `json:"state" bson:"state"`
	ResponseCode    string   `json:"response_code" bson:"response_code"`
	ThreeDS         string   `json:"three_ds" bson:"three_ds"`
	AuthorizedAt    string   `json:"authorized_at" bson:"authorized_at"`
	FeesTotalCents  int64    `json:"fees_total_cents" bson:"fees_total_cents"`
	NetworkFeeCents int64    `json:"network_fee_cents" bson:"network_fee_cents"`
	ProcessorName   string   `json:"processor_name" bson:"processor_name"`
}

func (t Transaction) PrimaryKey() string { return t.TxnID }

type Payout struct {
	PayoutID         string `json:"payout_id" bson:"_id"`
	MerchantID       string `json:"merchant_id" bson:"merchant_id"`
	BatchDay         string `json:"batch_day" bson:"batch_day"`
	Currency         string `json:"currency" bson:"currency"`
	GrossCents       int64  `json:"gross_cents" bson:"gross_cents"`
	FeesCents        int64  `json:"fees_cents" bson:"fees_cents"`
	ReserveCents     int64  `json:"reserve_cents" bson:"reserve_cents"`
	NetCents         int64  `json:"net_cents" bson:"net_cents"`
	Status           string `json:"status" bson:"status"`
	PaidAt           string `json:"paid_at" bson:"paid_at"`
	TransactionCount int    `json:"transaction_count" bson:"transaction_count"`
}

func (p Payout) PrimaryKey() string { return p.PayoutID }

// Dispute references a transaction; ClosedAt is nil while the case is open.
type Dispute struct {
	DisputeID   string  `json:"dispute_id" bson:"_id"`
	TxnID       string  `json:"txn_id" bson:"txn_id"`
	ReasonCode  string  `json:"reason_code" bson:"reason_code"`
	AmountCents int64   `json:"amount_cents" bson:"amount_cents"`
	Stage       string  `json:"stage" bson:"stage"`
	OpenedAt    string  `json:"opened_at" bson:"opened_at"`
	ClosedAt    *string `json:"closed_at" bson:"closed_at"`
	Liability   string  `json:"liability" bson:"liability"`
	Status      string  `json:"status" bson:"status"`
}

func (d Dispute) PrimaryKey() string { return d.DisputeID }
