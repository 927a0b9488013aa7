package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Checkout is a row of checkouts.
type Checkout struct {
	CheckoutID        string          `db:"checkout_id"`
	BaseCurrency      string          `db:"base_currency"`
	SaleTotal         decimal.Decimal `db:"sale_total"`
	TotalPaidBase     decimal.Decimal `db:"total_paid_base"`
	TotalCommissions  decimal.Decimal `db:"total_commissions"`
	ChangeBase        decimal.Decimal `db:"change_base"`
	ChangeReference   decimal.Decimal `db:"change_reference"`
	ReferenceCurrency string          `db:"reference_currency"`
	Denominations     []byte          `db:"denominations"` // JSONB
	AuditFields
}

// PaymentRecord is a row of payment_records. Card references are stored masked.
type PaymentRecord struct {
	PaymentID        string          `db:"payment_id"`
	CheckoutID       string          `db:"checkout_id"`
	Position         int             `db:"position"`
	Method           string          `db:"method"`
	Amount           decimal.Decimal `db:"amount"`
	CurrencyCode     string          `db:"currency_code"`
	Reference        *string         `db:"reference"`
	Bank             *string         `db:"bank"`
	Commission       decimal.Decimal `db:"commission"`
	CommissionBase   decimal.Decimal `db:"commission_base"`
	ExchangeRate     decimal.Decimal `db:"exchange_rate"`
	AmountBase       decimal.Decimal `db:"amount_base"`
	ProcessedAt      time.Time       `db:"processed_at"`
	Validated        bool            `db:"validated"`
	ValidationDetail string          `db:"validation_detail"`
}
