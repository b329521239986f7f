package generator

import (
	// Go Internal Packages
	"fmt"
	"slices"

	// Local Packages
	errors "psp-datagen/errors"
	models "psp-datagen/models"
)

// Datasets is the state threaded through a run. Each slice has a single
// writer (its Generate step) and is read-only once later steps start.
type Datasets struct {
	Merchants    []models.Merchant
	Customers    []models.Customer
	Payments     []models.Payment
	Orders       []models.Order
	Transactions []models.Transaction
	Payouts      []models.Payout
	Disputes     []models.Dispute

	estimatedBytes map[string]int64
}

func NewDatasets() *Datasets {
	return &Datasets{estimatedBytes: make(map[string]int64)}
}

func (d *Datasets) setSize(entity string, bytes int64) {
	if d.estimatedBytes == nil {
		d.estimatedBytes = make(map[string]int64)
	}
	d.estimatedBytes[entity] = bytes
}

func (d *Datasets) EstimatedBytes(entity string) int64 {
	return d.estimatedBytes[entity]
}

// Collection is one dataset viewed as keyed records, in generation order.
type Collection struct {
	Entity  string
	Records []models.Keyed
}

func keyed[T models.Keyed](records []T) []models.Keyed {
	out := make([]models.Keyed, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out
}

// Collections lists the datasets in generation order.
func (d *Datasets) Collections() []Collection {
	return []Collection{
		{Entity: models.EntityMerchants, Records: keyed(d.Merchants)},
		{Entity: models.EntityCustomers, Records: keyed(d.Customers)},
		{Entity: models.EntityPayments, Records: keyed(d.Payments)},
		{Entity: models.EntityOrders, Records: keyed(d.Orders)},
		{Entity: models.EntityTransactions, Records: keyed(d.Transactions)},
		{Entity: models.EntityPayouts, Records: keyed(d.Payouts)},
		{Entity: models.EntityDisputes, Records: keyed(d.Disputes)},
	}
}

func (d *Datasets) Counts() map[string]int {
	return map[string]int{
		models.EntityMerchants:    len(d.Merchants),
		models.EntityCustomers:    len(d.Customers),
		models.EntityPayments:     len(d.Payments),
		models.EntityOrders:       len(d.Orders),
		models.EntityTransactions: len(d.Transactions),
		models.EntityPayouts:      len(d.Payouts),
		models.EntityDisputes:     len(d.Disputes),
	}
}

// IntegritySummary describes how child datasets reference their parents.
func (d *Datasets) IntegritySummary() []string {
	return []string{
		fmt.Sprintf("%d payments reference %d customers", len(d.Payments), len(d.Customers)),
		fmt.Sprintf("%d orders reference %d merchants & %d customers", len(d.Orders), len(d.Merchants), len(d.Customers)),
		fmt.Sprintf("%d transactions reference %d orders & %d payments", len(d.Transactions), len(d.Orders), len(d.Payments)),
		fmt.Sprintf("%d payouts reference %d merchants", len(d.Payouts), len(d.Merchants)),
		fmt.Sprintf("%d disputes reference %d transactions", len(d.Disputes), len(d.Transactions)),
	}
}

func keySet[T models.Keyed](records []T) map[string]struct{} {
	set := make(map[string]struct{}, len(records))
	for _, r := range records {
		set[r.PrimaryKey()] = struct{}{}
	}
	return set
}

// Verify checks every foreign key against its parent dataset and that each
// dispute carries its transaction's amount. Transaction ids are not unique, so
// a dispute matches when any transaction with its id has that amount. Only the
// first offender per reference is reported.
func (d *Datasets) Verify() error {
	ve := errors.ValidationErrs()
	merchants := keySet(d.Merchants)
	customers := keySet(d.Customers)
	payments := keySet(d.Payments)
	orders := keySet(d.Orders)

	missing := func(field, id string, set map[string]struct{}) bool {
		if _, ok := set[id]; ok {
			return false
		}
		ve.Add(field, fmt.Sprintf("%q not found", id))
		return true
	}

	for _, p := range d.Payments {
		if missing("payments.customer_id", p.CustomerID, customers) {
			break
		}
	}
	for _, o := range d.Orders {
		if missing("orders.merchant_id", o.MerchantID, merchants) || missing("orders.customer_id", o.CustomerID, customers) {
			break
		}
	}
	for _, t := range d.Transactions {
		if missing("transactions.order_id", t.OrderID, orders) || missing("transactions.payment_id", t.PaymentID, payments) {
			break
		}
	}
	for _, p := range d.Payouts {
		if missing("payouts.merchant_id", p.MerchantID, merchants) {
			break
		}
	}

	amounts := make(map[string][]int64, len(d.Transactions))
	for _, t := range d.Transactions {
		amounts[t.TxnID] = append(amounts[t.TxnID], t.AmountCents)
	}
	for _, dp := range d.Disputes {
		candidates, ok := amounts[dp.TxnID]
		if !ok {
			ve.Add("disputes.txn_id", fmt.Sprintf("%q not found", dp.TxnID))
			break
		}
		if !slices.Contains(candidates, dp.AmountCents) {
			ve.Add("disputes.amount_cents", fmt.Sprintf("%s carries %d, transaction has %v", dp.DisputeID, dp.AmountCents, candidates))
			break
		}
	}

	if err := ve.Err(); err != nil {
		return errors.E(errors.Internal, "referential integrity violated", err)
	}
	return nil
}
