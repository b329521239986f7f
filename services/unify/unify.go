// Package unify builds the silver unified transaction table: one row per
// transaction widened with its order, merchant, customer, payment instrument
// and optional dispute, plus derived business columns.
package unify

import (
	// Go Internal Packages
	"path/filepath"
	"time"

	// Local Packages
	models "psp-datagen/models"
	jsonl "psp-datagen/repositories/jsonl"
	generator "psp-datagen/services/generator"

	// External Packages
	"go.uber.org/zap"
)

const OutputName = "silver_unified_transactions"

// Tables are the inputs of the join, one slice per entity.
type Tables struct {
	Transactions []models.Transaction
	Orders       []models.Order
	Merchants    []models.Merchant
	Customers    []models.Customer
	Payments     []models.Payment
	Disputes     []models.Dispute
}

func TablesFromDatasets(ds *generator.Datasets) *Tables {
	return &Tables{
		Transactions: ds.Transactions,
		Orders:       ds.Orders,
		Merchants:    ds.Merchants,
		Customers:    ds.Customers,
		Payments:     ds.Payments,
		Disputes:     ds.Disputes,
	}
}

func load[T any](dir, entity string, dst *[]T) error {
	records, err := jsonl.ReadFile[T](filepath.Join(dir, entity+jsonl.Extension))
	if err != nil {
		return err
	}
	*dst = records
	return nil
}

// LoadTables reads the <entity>.jsonl files written by a generation run.
func LoadTables(dir string) (*Tables, error) {
	t := &Tables{}
	if err := load(dir, models.EntityTransactions, &t.Transactions); err != nil {
		return nil, err
	}
	if err := load(dir, models.EntityOrders, &t.Orders); err != nil {
		return nil, err
	}
	if err := load(dir, models.EntityMerchants, &t.Merchants); err != nil {
		return nil, err
	}
	if err := load(dir, models.EntityCustomers, &t.Customers); err != nil {
		return nil, err
	}
	if err := load(dir, models.EntityPayments, &t.Payments); err != nil {
		return nil, err
	}
	if err := load(dir, models.EntityDisputes, &t.Disputes); err != nil {
		return nil, err
	}
	return t, nil
}

// Expectation names; a row failing one is dropped, never raised.
const (
	ExpectTxnID      = "valid_txn_id"
	ExpectOrderID    = "valid_order_id"
	ExpectMerchantID = "valid_merchant_id"
	ExpectCustomerID = "valid_customer_id"
	ExpectTimestamps = "valid_timestamps"
)

// Report counts what happened to the input transactions.
type Report struct {
	Transactions int            `json:"transactions"`
	Unmatched    map[string]int `json:"unmatched"`
	Dropped      map[string]int `json:"dropped"`
	Rows         int            `json:"rows"`
	WithDispute  int            `json:"with_dispute"`
}

type Unifier struct {
	Logger *zap.Logger
	Now    func() time.Time
}

func NewUnifier(logger *zap.Logger) *Unifier {
	return &Unifier{Logger: logger, Now: time.Now}
}

// index keeps the first record per key.
func index[T models.Keyed](records []T) map[string]T {
	out := make(map[string]T, len(records))
	for _, r := range records {
		if _, ok := out[r.PrimaryKey()]; !ok {
			out[r.PrimaryKey()] = r
		}
	}
	return out
}

// Unify inner-joins each transaction to its order, merchant, customer and
// payment instrument, then left-joins disputes by txn_id. A transaction with
// several disputes yields one row per dispute, in dispute file order.
func (u *Unifier) Unify(t *Tables) ([]models.UnifiedTransaction, Report) {
	now := u.Now().UTC()
	report := Report{
		Transactions: len(t.Transactions),
		Unmatched:    map[string]int{},
		Dropped:      map[string]int{},
	}

	orders := index(t.Orders)
	merchants := index(t.Merchants)
	customers := index(t.Customers)
	payments := index(t.Payments)
	disputes := make(map[string][]models.Dispute)
	for _, d := range t.Disputes {
		disputes[d.TxnID] = append(disputes[d.TxnID], d)
	}

	var rows []models.UnifiedTransaction
	for _, txn := range t.Transactions {
		order, ok := orders[txn.OrderID]
		if !ok {
			report.Unmatched[models.EntityOrders]++
			continue
		}
		merchant, ok := merchants[order.MerchantID]
		if !ok {
			report.Unmatched[models.EntityMerchants]++
			continue
		}
		customer, ok := customers[order.CustomerID]
		if !ok {
			report.Unmatched[models.EntityCustomers]++
			continue
		}
		payment, ok := payments[txn.PaymentID]
		if !ok {
			report.Unmatched[models.EntityPayments]++
			continue
		}

		matches := disputes[txn.TxnID]
		j := joined{txn: txn, order: order, merchant: merchant, customer: customer, payment: payment, disputed: len(matches) > 0}
		if failed := j.expectation(); failed != "" {
			report.Dropped[failed]++
			continue
		}

		if len(matches) == 0 {
			row, err := j.row(nil, now)
			if err != nil {
				report.Dropped[ExpectTimestamps]++
				continue
			}
			rows = append(rows, row)
			continue
		}
		for i := range matches {
			row, err := j.row(&matches[i], now)
			if err != nil {
				report.Dropped[ExpectTimestamps]++
				continue
			}
			rows = append(rows, row)
			report.WithDispute++
		}
	}
	report.Rows = len(rows)

	u.Logger.Info("unified transactions",
		zap.Int("transactions", report.Transactions),
		zap.Int("rows", report.Rows),
		zap.Int("with_dispute", report.WithDispute),
		zap.Any("unmatched", report.Unmatched),
		zap.Any("dropped", report.Dropped),
	)
	return rows, report
}

// Run loads inputDir, unifies and writes outputFile.
func (u *Unifier) Run(inputDir, outputFile string) (jsonl.Stats, Report, error) {
	tables, err := LoadTables(inputDir)
	if err != nil {
		return jsonl.Stats{}, Report{}, err
	}
	rows, report := u.Unify(tables)
	stats, err := jsonl.WriteFile(outputFile, rows)
	if err != nil {
		return jsonl.Stats{}, report, err
	}
	u.Logger.Info("wrote unified table",
		zap.String("path", stats.Path),
		zap.Float64("size_mb", stats.SizeMB()),
		zap.Int("records", stats.Records),
	)
	return stats, report, nil
}
