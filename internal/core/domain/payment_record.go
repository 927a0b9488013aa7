package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// PaymentLeg is one requested payment within a checkout.
type PaymentLeg struct {
	Method       PaymentMethod
	Amount       decimal.Decimal
	CurrencyCode string  // empty means base currency
	Reference    *string // card number or phone number
	Bank         *string
}

// PaymentRecord is a processed payment leg. The rate is resolved once and
// AmountBase always equals Amount * ExchangeRate.
type PaymentRecord struct {
	PaymentID        string          `json:"paymentID"`
	Method           PaymentMethod   `json:"method"`
	Amount           decimal.Decimal `json:"amount"`
	CurrencyCode     string          `json:"currencyCode"`
	Reference        *string         `json:"reference,omitempty"`
	Bank             *string         `json:"bank,omitempty"`
	Commission       decimal.Decimal `json:"commission"`     // in CurrencyCode
	CommissionBase   decimal.Decimal `json:"commissionBase"` // in base currency
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	AmountBase       decimal.Decimal `json:"amountBase"`
	Timestamp        time.Time       `json:"timestamp"`
	Validated        bool            `json:"validated"`
	ValidationDetail string          `json:"validationDetail,omitempty"`
}

// MaskedReference hides all but the last four characters of card numbers.
// Other references are returned unchanged.
func (r PaymentRecord) MaskedReference() *string {
	if r.Reference == nil {
		return nil
	}
	ref := *r.Reference
	if r.Method.ReferenceKind() != ReferenceCard {
		return &ref
	}
	digits := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' {
			return -1
		}
		return r
	}, ref)
	if len(digits) <= 4 {
		return &digits
	}
	masked := strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
	return &masked
}
