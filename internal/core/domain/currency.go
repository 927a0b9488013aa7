package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency describes how amounts in a currency are displayed.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g. "CRC"
	Symbol       string `json:"symbol"`       // e.g. "₡"
	Name         string `json:"name"`
	Precision    int    `json:"precision"` // decimal places shown
}

var knownCurrencies = map[string]Currency{
	"CRC": {CurrencyCode: "CRC", Symbol: "₡", Name: "Costa Rican colon", Precision: 2},
	"USD": {CurrencyCode: "USD", Symbol: "$", Name: "US dollar", Precision: 2},
	"EUR": {CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Precision: 2},
}

// LookupCurrency returns display information for code. Unknown codes get
// the code itself as symbol and two decimal places.
func LookupCurrency(code string) Currency {
	code = strings.ToUpper(code)
	if c, ok := knownCurrencies[code]; ok {
		return c
	}
	return Currency{CurrencyCode: code, Symbol: code + " ", Name: code, Precision: 2}
}

// ExchangeRate is the current rate of one currency, expressed as base
// currency units per one unit of CurrencyCode.
type ExchangeRate struct {
	CurrencyCode string          `json:"currencyCode"`
	Rate         decimal.Decimal `json:"rate"`
	AuditFields
}

// MaxAmount bounds every amount accepted from callers: payments, sale
// totals and cash breakdowns.
var MaxAmount = decimal.New(1, 15)

// MaxAmountScale is the most fractional digits an input amount may carry.
const MaxAmountScale = 8

// WithinMaxAmount reports whether |a| <= MaxAmount. The digit count is
// checked before comparing so huge exponents never get expanded.
func WithinMaxAmount(a decimal.Decimal) bool {
	switch magnitude := a.NumDigits() + int(a.Exponent()); {
	case magnitude <= 15:
		return true
	case magnitude > 16:
		return false
	}
	return a.Abs().LessThanOrEqual(MaxAmount)
}

// ValidInputAmount reports whether a is within MaxAmount and has at most
// MaxAmountScale fractional digits.
func ValidInputAmount(a decimal.Decimal) bool {
	return a.Exponent() >= -MaxAmountScale && WithinMaxAmount(a)
}

// DenominationCount is one line of a cash breakdown.
type DenominationCount struct {
	Denomination decimal.Decimal `json:"denomination"`
	Count        int64           `json:"count"`
}

// Change is returned when the payment covers the amount due.
type Change struct {
	AmountBase        decimal.Decimal     `json:"amountBase"`
	AmountReference   decimal.Decimal     `json:"amountReference"`
	ReferenceCurrency string              `json:"referenceCurrency"`
	Denominations     []DenominationCount `json:"denominations"`
}

// Shortfall is returned when the payment does not cover the amount due.
type Shortfall struct {
	AmountBase              decimal.Decimal `json:"amountBase"`
	AmountInPaymentCurrency decimal.Decimal `json:"amountInPaymentCurrency"`
	PaymentCurrency         string          `json:"paymentCurrency"`
}

// ChangeResult holds exactly one of Change or Shortfall.
type ChangeResult struct {
	Change    *Change    `json:"change,omitempty"`
	Shortfall *Shortfall `json:"shortfall,omitempty"`
}

// IsShortfall reports whether the payment fell short of the amount due.
func (r ChangeResult) IsShortfall() bool {
	return r.Shortfall != nil
}
