// Package generator synthesizes the seven PSP datasets with referential
// integrity. Entities are built strictly in dependency order from one seeded
// random source, so a fixed seed reproduces a run byte for byte.
package generator

import (
	// Go Internal Packages
	"context"
	"fmt"
	"math/rand"

	// Local Packages
	config "psp-datagen/config"
	errors "psp-datagen/errors"
	models "psp-datagen/models"
	sampler "psp-datagen/sampler"

	// External Packages
	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
)

// Windows are the creation-time ranges per parent entity. Transactions,
// payouts and disputes draw from the order window.
type Windows struct {
	Merchants sampler.Window
	Customers sampler.Window
	Payments  sampler.Window
	Orders    sampler.Window
}

type Options struct {
	Seed      int64
	BatchSize int
	TargetsMB map[string]float64
	Windows   Windows
}

// OptionsFromConfig converts the validated generator section.
func OptionsFromConfig(c config.Generator) (Options, error) {
	opts := Options{Seed: c.Seed, BatchSize: c.BatchSize, TargetsMB: c.TargetsMB}

	parse := func(name string, w config.Window) (sampler.Window, error) {
		start, end, err := w.Bounds()
		if err != nil {
			return sampler.Window{}, errors.E(errors.Config, fmt.Sprintf("window %s", name), err)
		}
		return sampler.NewWindow(start, end), nil
	}

	var err error
	if opts.Windows.Merchants, err = parse(models.EntityMerchants, c.Windows.Merchants); err != nil {
		return Options{}, err
	}
	if opts.Windows.Customers, err = parse(models.EntityCustomers, c.Windows.Customers); err != nil {
		return Options{}, err
	}
	if opts.Windows.Payments, err = parse(models.EntityPayments, c.Windows.Payments); err != nil {
		return Options{}, err
	}
	if opts.Windows.Orders, err = parse(models.EntityOrders, c.Windows.Orders); err != nil {
		return Options{}, err
	}
	return opts, nil
}

type Generator struct {
	Logger    *zap.Logger
	opts      Options
	faker     *gofakeit.Faker
	rnd       *rand.Rand
	lifecycle *StateMachine
}

// NewGenerator seeds the faker whose random source every record builder
// shares. A zero seed is rejected since gofakeit would then seed itself.
func NewGenerator(logger *zap.Logger, opts Options) (*Generator, error) {
	if opts.Seed == 0 {
		return nil, errors.E(errors.Config, "seed cannot be zero", nil)
	}
	if opts.BatchSize == 0 {
		opts.BatchSize = DefaultBatchSize
	}
	lifecycle, err := NewStateMachine(StatePending, PaymentTransitions)
	if err != nil {
		return nil, err
	}

	faker := gofakeit.New(opts.Seed)
	return &Generator{
		Logger:    logger,
		opts:      opts,
		faker:     faker,
		rnd:       faker.Rand,
		lifecycle: lifecycle,
	}, nil
}

func (g *Generator) Lifecycle() *StateMachine {
	return g.lifecycle
}

// Run generates every entity in dependency order and checks the result.
func (g *Generator) Run(ctx context.Context) (*Datasets, error) {
	ds := NewDatasets()
	steps := []func(context.Context, *Datasets) error{
		g.GenerateMerchants,
		g.GenerateCustomers,
		g.GeneratePayments,
		g.GenerateOrders,
		g.GenerateTransactions,
		g.GeneratePayouts,
		g.GenerateDisputes,
	}
	for _, step := range steps {
		if err := step(ctx, ds); err != nil {
			return nil, err
		}
	}
	if err := ds.Verify(); err != nil {
		return nil, err
	}
	return ds, nil
}

func (g *Generator) target(entity string) float64 {
	return g.opts.TargetsMB[entity]
}

func (g *Generator) logDataset(entity string, records int, bytes int64) {
	g.Logger.Info("generated dataset",
		zap.String("entity", entity),
		zap.Int("records", records),
		zap.Float64("size_mb", float64(bytes)/BytesPerMB),
	)
}

func (g *Generator) GenerateMerchants(ctx context.Context, ds *Datasets) error {
	d, err := build(ctx, models.EntityMerchants, g.target(models.EntityMerchants), g.opts.BatchSize, g.merchant)
	if err != nil {
		return err
	}
	ds.Merchants = d.Records
	ds.setSize(d.Entity, d.EstimatedBytes)
	g.logDataset(d.Entity, len(d.Records), d.EstimatedBytes)
	return nil
}

func (g *Generator) GenerateCustomers(ctx context.Context, ds *Datasets) error {
	d, err := build(ctx, models.EntityCustomers, g.target(models.EntityCustomers), g.opts.BatchSize, g.customer)
	if err != nil {
		return err
	}
	ds.Customers = d.Records
	ds.setSize(d.Entity, d.EstimatedBytes)
	g.logDataset(d.Entity, len(d.Records), d.EstimatedBytes)
	return nil
}

func (g *Generator) GeneratePayments(ctx context.Context, ds *Datasets) error {
	if len(ds.Customers) == 0 {
		return errors.EmptyParentErr(models.EntityPayments, models.EntityCustomers)
	}
	next := func() (models.Payment, error) { return g.payment(ds.Customers) }
	d, err := build(ctx, models.EntityPayments, g.target(models.EntityPayments), g.opts.BatchSize, next)
	if err != nil {
		return err
	}
	ds.Payments = d.Records
	ds.setSize(d.Entity, d.EstimatedBytes)
	g.logDataset(d.Entity, len(d.Records), d.EstimatedBytes)
	return nil
}

func (g *Generator) GenerateOrders(ctx context.Context, ds *Datasets) error {
	if len(ds.Merchants) == 0 {
		return errors.EmptyParentErr(models.EntityOrders, models.EntityMerchants)
	}
	if len(ds.Customers) == 0 {
		return errors.EmptyParentErr(models.EntityOrders, models.EntityCustomers)
	}
	next := func() (models.Order, error) { return g.order(ds.Merchants, ds.Customers) }
	d, err := build(ctx, models.EntityOrders, g.target(models.EntityOrders), g.opts.BatchSize, next)
	if err != nil {
		return err
	}
	ds.Orders = d.Records
	ds.setSize(d.Entity, d.EstimatedBytes)
	g.logDataset(d.Entity, len(d.Records), d.EstimatedBytes)
	return nil
}

func (g *Generator) GenerateTransactions(ctx context.Context, ds *Datasets) error {
	if len(ds.Orders) == 0 {
		return errors.EmptyParentErr(models.EntityTransactions, models.EntityOrders)
	}
	if len(ds.Payments) == 0 {
		return errors.EmptyParentErr(models.EntityTransactions, models.EntityPayments)
	}
	next := func() (models.Transaction, error) { return g.transaction(ds.Orders, ds.Payments) }
	d, err := build(ctx, models.EntityTransactions, g.target(models.EntityTransactions), g.opts.BatchSize, next)
	if err != nil {
		return err
	}
	ds.Transactions = d.Records
	ds.setSize(d.Entity, d.EstimatedBytes)
	g.logDataset(d.Entity, len(d.Records), d.EstimatedBytes)
	return nil
}

func (g *Generator) GeneratePayouts(ctx context.Context, ds *Datasets) error {
	if len(ds.Merchants) == 0 {
		return errors.EmptyParentErr(models.EntityPayouts, models.EntityMerchants)
	}
	next := func() (models.Payout, error) { return g.payout(ds.Merchants) }
	d, err := build(ctx, models.EntityPayouts, g.target(models.EntityPayouts), g.opts.BatchSize, next)
	if err != nil {
		return err
	}
	ds.Payouts = d.Records
	ds.setSize(d.Entity, d.EstimatedBytes)
	g.logDataset(d.Entity, len(d.Records), d.EstimatedBytes)
	return nil
}

func (g *Generator) GenerateDisputes(ctx context.Context, ds *Datasets) error {
	if len(ds.Transactions) == 0 {
		return errors.EmptyParentErr(models.EntityDisputes, models.EntityTransactions)
	}
	next := func() (models.Dispute, error) { return g.dispute(ds.Transactions) }
	d, err := build(ctx, models.EntityDisputes, g.target(models.EntityDisputes), g.opts.BatchSize, next)
	if err != nil {
		return err
	}
	ds.Disputes = d.Records
	ds.setSize(d.Entity, d.EstimatedBytes)
	g.logDataset(d.Entity, len(d.Records), d.EstimatedBytes)
	return nil
}
