package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/pos_payments/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a single payment leg is settled.
type PaymentMethod int

const (
	CashLocal PaymentMethod = iota
	CashForeign
	CreditCard
	DebitCard
	MobileTransfer
	BankTransfer
	Check
	Cryptocurrency

	paymentMethodCount
)

var paymentMethodCodes = [...]string{
	CashLocal:      "cash_local",
	CashForeign:    "cash_foreign",
	CreditCard:     "credit_card",
	DebitCard:      "debit_card",
	MobileTransfer: "mobile_transfer",
	BankTransfer:   "bank_transfer",
	Check:          "check",
	Cryptocurrency: "crypto",
}

// PaymentMethodConfig holds the static attributes of a payment method.
type PaymentMethodConfig struct {
	Name               string          `json:"name"`
	Currency           string          `json:"currency"` // settlement currency
	CommissionRate     decimal.Decimal `json:"commissionRate"`
	RequiresValidation bool            `json:"requiresValidation"`
}

var defaultMethodConfigs = [...]PaymentMethodConfig{
	CashLocal:      {Name: "Cash (colones)", Currency: "CRC", CommissionRate: decimal.Zero},
	CashForeign:    {Name: "Cash (dollars)", Currency: "USD", CommissionRate: decimal.Zero},
	CreditCard:     {Name: "Credit card", Currency: "CRC", CommissionRate: decimal.RequireFromString("0.035"), RequiresValidation: true},
	DebitCard:      {Name: "Debit card", Currency: "CRC", CommissionRate: decimal.RequireFromString("0.02"), RequiresValidation: true},
	MobileTransfer: {Name: "SINPE Movil", Currency: "CRC", CommissionRate: decimal.Zero, RequiresValidation: true},
	BankTransfer:   {Name: "Bank transfer", Currency: "CRC", CommissionRate: decimal.Zero},
	Check:          {Name: "Check", Currency: "CRC", CommissionRate: decimal.Zero},
	Cryptocurrency: {Name: "Cryptocurrency", Currency: "USD", CommissionRate: decimal.RequireFromString("0.01")},
}

// Both tables above must carry exactly one entry per method; a mismatch
// overflows uint and fails compilation.
const (
	_ = uint(len(paymentMethodCodes) - int(paymentMethodCount))
	_ = uint(int(paymentMethodCount) - len(paymentMethodCodes))
	_ = uint(len(defaultMethodConfigs) - int(paymentMethodCount))
	_ = uint(int(paymentMethodCount) - len(defaultMethodConfigs))
)

// AllPaymentMethods returns every payment method in declaration order.
func AllPaymentMethods() []PaymentMethod {
	methods := make([]PaymentMethod, 0, paymentMethodCount)
	for m := PaymentMethod(0); m < paymentMethodCount; m++ {
		methods = append(methods, m)
	}
	return methods
}

// DefaultPaymentMethodConfigs returns a fresh copy of the built-in configuration table.
func DefaultPaymentMethodConfigs() map[PaymentMethod]PaymentMethodConfig {
	configs := make(map[PaymentMethod]PaymentMethodConfig, paymentMethodCount)
	for m := PaymentMethod(0); m < paymentMethodCount; m++ {
		configs[m] = defaultMethodConfigs[m]
	}
	return configs
}

// Valid reports whether m is one of the declared payment methods.
func (m PaymentMethod) Valid() bool {
	return m >= 0 && m < paymentMethodCount
}

func (m PaymentMethod) String() string {
	if !m.Valid() {
		return fmt.Sprintf("PaymentMethod(%d)", int(m))
	}
	return paymentMethodCodes[m]
}

// ParsePaymentMethod resolves a wire code such as "credit_card".
func ParsePaymentMethod(code string) (PaymentMethod, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	for m, c := range paymentMethodCodes {
		if c == normalized {
			return PaymentMethod(m), nil
		}
	}
	return 0, &apperrors.UnknownMethodError{Method: code}
}

func (m PaymentMethod) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, &apperrors.UnknownMethodError{Method: m.String()}
	}
	return []byte(paymentMethodCodes[m]), nil
}

func (m *PaymentMethod) UnmarshalText(text []byte) error {
	parsed, err := ParsePaymentMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ReferenceKind describes what a payment reference holds for a method.
type ReferenceKind string

const (
	ReferenceNone  ReferenceKind = ""
	ReferenceCard  ReferenceKind = "card"
	ReferencePhone ReferenceKind = "phone"
)

// ReferenceKind reports which validator applies to the method's reference.
func (m PaymentMethod) ReferenceKind() ReferenceKind {
	switch m {
	case CreditCard, DebitCard:
		return ReferenceCard
	case MobileTransfer:
		return ReferencePhone
	default:
		return ReferenceNone
	}
}

// PaymentMethodOption pairs an enabled method with its configuration.
type PaymentMethodOption struct {
	Method PaymentMethod `json:"method"`
	PaymentMethodConfig
}
