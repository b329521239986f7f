package generator

import (
	// Go Internal Packages
	"math/rand"
	"time"

	// Local Packages
	errors "psp-datagen/errors"
	models "psp-datagen/models"
	sampler "psp-datagen/sampler"
)

// pickParent draws the record a child references. An empty parent dataset
// fails the draw.
func pickParent[T any](r *rand.Rand, child, parent string, records []T) (T, error) {
	rec, ok := sampler.PickOne(r, records)
	if !ok {
		return rec, errors.EmptyParentErr(child, parent)
	}
	return rec, nil
}

// The record builders draw in a fixed order; changing the order changes every
// fixed-seed output downstream.

func (g *Generator) merchant() (models.Merchant, error) {
	r := g.rnd
	return models.Merchant{
		MerchantID:  merchantID.Render(r),
		LegalName:   g.faker.Company(),
		MCC:         mccCodes.Pick(r),
		Country:     countries.Pick(r),
		KYBStatus:   kybStatuses.Pick(r),
		PricingTier: pricingTiers.Pick(r),
		RiskLevel:   riskLevels.Pick(r),
		CreatedAt:   sampler.FormatISO(g.opts.Windows.Merchants.Instant(r)),
	}, nil
}

func (g *Generator) customer() (models.Customer, error) {
	r := g.rnd
	return models.Customer{
		CustomerID:   customerID.Render(r),
		EmailHash:    contactRef.Render(r),
		PhoneHash:    contactRef.Render(r),
		CustomerType: customerTypes.Pick(r),
		CreatedAt:    sampler.FormatISO(g.opts.Windows.Customers.Instant(r)),
	}, nil
}

func (g *Generator) payment(customers []models.Customer) (models.Payment, error) {
	r := g.rnd
	id := paymentID.Render(r)
	customer, err := pickParent(r, models.EntityPayments, models.EntityCustomers, customers)
	if err != nil {
		return models.Payment{}, err
	}
	return models.Payment{
		PaymentID:   id,
		CustomerID:  customer.CustomerID,
		Brand:       cardBrands.Pick(r),
		BIN:         cardBINs.Pick(r),
		Last4:       cardLast4.Render(r),
		ExpiryMonth: sampler.IntBetween(r, 1, 12),
		ExpiryYear:  expiryYears.Pick(r),
		WalletType:  wallets.Pick(r),
		Status:      instrumentStatuses.Pick(r),
		FirstSeenAt: sampler.FormatISO(g.opts.Windows.Payments.Instant(r)),
	}, nil
}

func (g *Generator) order(merchants []models.Merchant, customers []models.Customer) (models.Order, error) {
	r := g.rnd
	subtotal := int64(sampler.IntBetween(r, subtotalMinCents, subtotalMaxCents))
	taxRate := sampler.FloatBetween(r, taxRateMin, taxRateMax)
	tipRate := sampler.FloatBetween(r, tipRateMin, tipRateMax)
	amounts := SplitOrder(subtotal, taxRate, tipRate)

	id := orderID.Render(r)
	merchant, err := pickParent(r, models.EntityOrders, models.EntityMerchants, merchants)
	if err != nil {
		return models.Order{}, err
	}
	customer, err := pickParent(r, models.EntityOrders, models.EntityCustomers, customers)
	if err != nil {
		return models.Order{}, err
	}

	return models.Order{
		OrderID:          id,
		MerchantID:       merchant.MerchantID,
		CustomerID:       customer.CustomerID,
		Currency:         currencies.Pick(r),
		SubtotalCents:    amounts.Subtotal,
		TaxCents:         amounts.Tax,
		TipCents:         amounts.Tip,
		TotalAmountCents: amounts.Total,
		Channel:          channels.Pick(r),
		CreatedAt:        sampler.FormatISO(g.opts.Windows.Orders.Instant(r)),
	}, nil
}

// transaction settles an order with a payment instrument. The state timestamp
// is the order's creation instant; it is not advanced per transition.
func (g *Generator) transaction(orders []models.Order, payments []models.Payment) (models.Transaction, error) {
	r := g.rnd
	order, err := pickParent(r, models.EntityTransactions, models.EntityOrders, orders)
	if err != nil {
		return models.Transaction{}, err
	}
	payment, err := pickParent(r, models.EntityTransactions, models.EntityPayments, payments)
	if err != nil {
		return models.Transaction{}, err
	}

	authorizedAt, err := sampler.ParseISO(order.CreatedAt)
	if err != nil {
		return models.Transaction{}, err
	}
	final, err := g.lifecycle.Resolve(r)
	if err != nil {
		return models.Transaction{}, err
	}

	feeRate := sampler.FloatBetween(r, feeRateMin, feeRateMax)
	fixedFee := int64(sampler.IntBetween(r, fixedFeeMinCents, fixedFeeMaxCents))
	state := models.TxnState{StateName: final, Timestamp: authorizedAt.UnixMilli()}

	// amount and currency are inherited so a transaction never drifts from its order
	return models.Transaction{
		TxnID:           txnID.Render(r),
		OrderID:         order.OrderID,
		PaymentID:       payment.PaymentID,
		AmountCents:     order.TotalAmountCents,
		Currency:        order.Currency,
		State:           state,
		ResponseCode:    responseCodes.Pick(r),
		ThreeDS:         threeDSOutcomes.Pick(r),
		AuthorizedAt:    sampler.FormatISO(authorizedAt),
		FeesTotalCents:  TransactionFee(order.TotalAmountCents, feeRate, fixedFee),
		NetworkFeeCents: int64(sampler.IntBetween(r, networkFeeMin, networkFeeMax)),
		ProcessorName:   processors.Pick(r),
	}, nil
}

func (g *Generator) payout(merchants []models.Merchant) (models.Payout, error) {
	r := g.rnd
	batchAt := g.opts.Windows.Orders.Instant(r)

	gross := int64(sampler.IntBetween(r, payoutGrossMin, payoutGrossMax))
	feeRate := sampler.FloatBetween(r, payoutFeeRateMin, payoutFeeRateMax)
	reserveRate := sampler.FloatBetween(r, payoutReserveMin, payoutReserveMax)
	amounts := SplitPayout(gross, feeRate, reserveRate)
	delay := time.Duration(sampler.IntBetween(r, payoutDelayMinHour, payoutDelayMaxHour)) * time.Hour

	id := payoutID.Render(r)
	merchant, err := pickParent(r, models.EntityPayouts, models.EntityMerchants, merchants)
	if err != nil {
		return models.Payout{}, err
	}

	return models.Payout{
		PayoutID:         id,
		MerchantID:       merchant.MerchantID,
		BatchDay:         batchAt.Format(sampler.DateLayout),
		Currency:         currencies.Pick(r),
		GrossCents:       amounts.Gross,
		FeesCents:        amounts.Fees,
		ReserveCents:     amounts.Reserve,
		NetCents:         amounts.Net,
		Status:           payoutStatuses.Pick(r),
		PaidAt:           sampler.FormatISO(batchAt.Add(delay)),
		TransactionCount: sampler.IntBetween(r, payoutTxnCountMin, payoutTxnCountMax),
	}, nil
}

// dispute opens a case against a transaction. A closed case closes strictly
// after it opened and inside the order window, so a case never opens in the
// window's last second.
func (g *Generator) dispute(transactions []models.Transaction) (models.Dispute, error) {
	r := g.rnd
	txn, err := pickParent(r, models.EntityDisputes, models.EntityTransactions, transactions)
	if err != nil {
		return models.Dispute{}, err
	}
	openedAt := g.opts.Windows.Orders.TrimEnd(time.Second).Instant(r)

	var closedAt *string
	if r.Float64() < disputeClosedRate {
		closed := sampler.FormatISO(g.opts.Windows.Orders.After(openedAt.Add(time.Second)).Instant(r))
		closedAt = &closed
	}

	return models.Dispute{
		DisputeID:   disputeID.Render(r),
		TxnID:       txn.TxnID,
		ReasonCode:  disputeReasons.Pick(r),
		AmountCents: txn.AmountCents,
		Stage:       disputeStages.Pick(r),
		OpenedAt:    sampler.FormatISO(openedAt),
		ClosedAt:    closedAt,
		Liability:   liabilities.Pick(r),
		Status:      disputeStatuses.Pick(r),
	}, nil
}
