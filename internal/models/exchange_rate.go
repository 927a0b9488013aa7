package models

import "github.com/shopspring/decimal"

// ExchangeRate is a row of exchange_rates, keyed by currency code.
type ExchangeRate struct {
	CurrencyCode string          `db:"currency_code"`
	Rate         decimal.Decimal `db:"rate"`
	AuditFields
}
