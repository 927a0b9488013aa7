package utils

import (
	"github.com/SscSPs/pos_payments/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount with the correct precision for a given currency
// Example: amount 12.3456 with USD (precision 2) returns "12.35"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return amount.StringFixed(int32(currency.Precision))
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatDisplay renders an amount for a receipt or screen, e.g. "₡1000.00".
// Negative amounts keep the sign in front of the symbol.
func FormatDisplay(amount decimal.Decimal, currencyCode string) string {
	currency := domain.LookupCurrency(currencyCode)
	if amount.IsNegative() {
		return "-" + currency.Symbol + FormatWithCurrencyPrecision(amount.Neg(), currency)
	}
	return currency.Symbol + FormatWithCurrencyPrecision(amount, currency)
}
