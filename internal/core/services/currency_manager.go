package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/SscSPs/pos_payments/internal/apperrors"
	"github.com/SscSPs/pos_payments/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	// DefaultBaseCurrency is the currency sale totals are expressed in.
	DefaultBaseCurrency = "CRC"
	// DefaultReferenceCurrency is the currency change is also shown in.
	DefaultReferenceCurrency = "USD"
)

// DefaultDenominations are the CRC bills and coins used for change, largest first.
var DefaultDenominations = []decimal.Decimal{
	decimal.NewFromInt(20000),
	decimal.NewFromInt(10000),
	decimal.NewFromInt(5000),
	decimal.NewFromInt(2000),
	decimal.NewFromInt(1000),
	decimal.NewFromInt(500),
	decimal.NewFromInt(100),
	decimal.NewFromInt(50),
	decimal.NewFromInt(25),
	decimal.NewFromInt(10),
	decimal.NewFromInt(5),
}

// CurrencyManager owns the exchange-rate table and converts amounts to and
// from the base currency. It is safe for concurrent use.
type CurrencyManager struct {
	mu                sync.RWMutex
	rates             map[string]decimal.Decimal
	baseCurrency      string
	referenceCurrency string
	denominations     []decimal.Decimal
}

// CurrencyManagerOption configures a CurrencyManager.
type CurrencyManagerOption func(*CurrencyManager)

// WithReferenceCurrency sets the currency change is additionally reported in.
func WithReferenceCurrency(code string) CurrencyManagerOption {
	return func(m *CurrencyManager) {
		m.referenceCurrency = normalizeCode(code)
	}
}

// WithDenominations replaces the cash denominations used for change suggestions.
// Non-positive values are ignored and the list is ordered largest first.
func WithDenominations(denominations []decimal.Decimal) CurrencyManagerOption {
	return func(m *CurrencyManager) {
		ds := make([]decimal.Decimal, 0, len(denominations))
		for _, d := range denominations {
			if d.IsPositive() {
				ds = append(ds, d)
			}
		}
		sort.Slice(ds, func(i, j int) bool { return ds[i].GreaterThan(ds[j]) })
		m.denominations = ds
	}
}

// NewCurrencyManager creates a manager for baseCurrency seeded with rates.
func NewCurrencyManager(baseCurrency string, rates map[string]decimal.Decimal, options ...CurrencyManagerOption) (*CurrencyManager, error) {
	if strings.TrimSpace(baseCurrency) == "" {
		baseCurrency = DefaultBaseCurrency
	}
	m := &CurrencyManager{
		rates:             make(map[string]decimal.Decimal, len(rates)),
		baseCurrency:      normalizeCode(baseCurrency),
		referenceCurrency: DefaultReferenceCurrency,
		denominations:     DefaultDenominations,
	}
	for _, option := range options {
		option(m)
	}
	for code, rate := range rates {
		if err := m.SetRate(code, rate); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// BaseCurrency returns the base currency code.
func (m *CurrencyManager) BaseCurrency() string {
	return m.baseCurrency
}

// ReferenceCurrency returns the display reference currency code.
func (m *CurrencyManager) ReferenceCurrency() string {
	return m.referenceCurrency
}

// Denominations returns a copy of the configured denominations, largest first.
func (m *CurrencyManager) Denominations() []decimal.Decimal {
	return append([]decimal.Decimal(nil), m.denominations...)
}

// Resolve returns the normalized code for currency; empty or "base" means
// the base currency.
func (m *CurrencyManager) Resolve(currency string) string {
	code := normalizeCode(currency)
	if code == "" || code == "BASE" {
		return m.baseCurrency
	}
	return code
}

func (m *CurrencyManager) isBase(currency string) bool {
	return m.Resolve(currency) == m.baseCurrency
}

// GetRate returns the rate for currency. Unknown currencies are treated as
// already being in the base currency and get a rate of 1.
func (m *CurrencyManager) GetRate(currency string) decimal.Decimal {
	if m.isBase(currency) {
		return decimal.NewFromInt(1)
	}
	m.mu.RLock()
	rate, ok := m.rates[m.Resolve(currency)]
	m.mu.RUnlock()
	if !ok {
		return decimal.NewFromInt(1)
	}
	return rate
}

// HasRate reports whether a rate is configured for currency.
func (m *CurrencyManager) HasRate(currency string) bool {
	if m.isBase(currency) {
		return true
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.rates[m.Resolve(currency)]
	return ok
}

// CheckRate validates a rate without storing it. A non-positive rate is
// reported before a malformed code.
func (m *CurrencyManager) CheckRate(currency string, rate decimal.Decimal) error {
	code := normalizeCode(currency)
	if !rate.IsPositive() {
		return fmt.Errorf("%w: rate for %s must be positive, got %s", apperrors.ErrInvalidRate, code, rate)
	}
	if len(code) != 3 {
		return fmt.Errorf("%w: currency code must be 3 letters, got %q", apperrors.ErrValidation, currency)
	}
	if code == m.baseCurrency && !rate.Equal(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: the base currency %s always has rate 1", apperrors.ErrInvalidRate, code)
	}
	return nil
}

// SetRate overwrites the rate for currency. Records already built keep the
// rate they were created with.
func (m *CurrencyManager) SetRate(currency string, rate decimal.Decimal) error {
	if err := m.CheckRate(currency, rate); err != nil {
		return err
	}
	code := normalizeCode(currency)
	if code == m.baseCurrency {
		return nil
	}
	m.mu.Lock()
	m.rates[code] = rate
	m.mu.Unlock()
	return nil
}

// Rates returns a snapshot of the rate table.
func (m *CurrencyManager) Rates() map[string]decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snapshot := make(map[string]decimal.Decimal, len(m.rates))
	for code, rate := range m.rates {
		snapshot[code] = rate
	}
	return snapshot
}

// ToBase converts amount in currency to the base currency.
func (m *CurrencyManager) ToBase(amount decimal.Decimal, currency string) decimal.Decimal {
	if m.isBase(currency) {
		return amount
	}
	return amount.Mul(m.GetRate(currency))
}

// FromBase converts an amount in the base currency to currency.
func (m *CurrencyManager) FromBase(amountBase decimal.Decimal, currency string) decimal.Decimal {
	if m.isBase(currency) {
		return amountBase
	}
	return amountBase.Div(m.GetRate(currency))
}

// ComputeChange compares amountPaid (in paymentCurrency) with saleTotalBase.
// The result holds either the change due or the shortfall.
func (m *CurrencyManager) ComputeChange(amountPaid, saleTotalBase decimal.Decimal, paymentCurrency string) domain.ChangeResult {
	paidBase := m.ToBase(amountPaid, paymentCurrency)
	diff := paidBase.Sub(saleTotalBase)

	if diff.IsNegative() {
		short := diff.Neg()
		return domain.ChangeResult{
			Shortfall: &domain.Shortfall{
				AmountBase:              short,
				AmountInPaymentCurrency: m.FromBase(short, paymentCurrency).Round(2),
				PaymentCurrency:         m.Resolve(paymentCurrency),
			},
		}
	}

	return domain.ChangeResult{
		Change: &domain.Change{
			AmountBase:        diff,
			AmountReference:   m.FromBase(diff, m.referenceCurrency).Round(2),
			ReferenceCurrency: m.referenceCurrency,
			Denominations:     m.SuggestDenominations(diff),
		},
	}
}

// SuggestDenominations breaks changeBase into bills and coins, taking as
// many of each denomination as fit before moving to the next smaller one.
// Whatever is left below the smallest denomination is dropped. Amounts
// above domain.MaxAmount get an empty breakdown.
func (m *CurrencyManager) SuggestDenominations(changeBase decimal.Decimal) []domain.DenominationCount {
	breakdown := []domain.DenominationCount{}
	if !domain.WithinMaxAmount(changeBase) {
		return breakdown
	}
	remaining := changeBase
	for _, d := range m.denominations {
		if !remaining.IsPositive() {
			break
		}
		q, r := remaining.QuoRem(d, 0)
		if !q.IsPositive() {
			continue
		}
		// Count is an int64; only tiny custom denominations can exceed it.
		if !q.BigInt().IsInt64() {
			q = decimal.NewFromInt(math.MaxInt64)
			r = remaining.Sub(q.Mul(d))
		}
		breakdown = append(breakdown, domain.DenominationCount{Denomination: d, Count: q.IntPart()})
		remaining = r
	}
	return breakdown
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
