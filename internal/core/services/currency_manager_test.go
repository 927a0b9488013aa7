package services_test

import (
	"math"
	"sync"
	"testing"

	"github.com/SscSPs/pos_payments/internal/apperrors"
	"github.com/SscSPs/pos_payments/internal/core/domain"
	"github.com/SscSPs/pos_payments/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestCurrencyManager(t *testing.T) *services.CurrencyManager {
	t.Helper()
	m, err := services.NewCurrencyManager("CRC", map[string]decimal.Decimal{
		"USD": d("520"),
		"EUR": d("565.25"),
	})
	require.NoError(t, err)
	return m
}

func TestCurrencyManager_GetRate(t *testing.T) {
	m := newTestCurrencyManager(t)

	assert.True(t, d("520").Equal(m.GetRate("USD")))
	assert.True(t, d("520").Equal(m.GetRate("usd")), "codes are case-insensitive")
	assert.True(t, decimal.NewFromInt(1).Equal(m.GetRate("CRC")))
	assert.True(t, decimal.NewFromInt(1).Equal(m.GetRate("")))
	assert.True(t, decimal.NewFromInt(1).Equal(m.GetRate("base")))
	assert.True(t, decimal.NewFromInt(1).Equal(m.GetRate("JPY")), "unknown currencies fall back to 1")
	assert.False(t, m.HasRate("JPY"))
	assert.True(t, m.HasRate("EUR"))
}

func TestCurrencyManager_SetRate(t *testing.T) {
	m := newTestCurrencyManager(t)

	require.NoError(t, m.SetRate("usd", d("530.5")))
	assert.True(t, d("530.5").Equal(m.GetRate("USD")))

	err := m.SetRate("USD", decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRate)
	err = m.SetRate("USD", d("-1"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidRate)
	assert.True(t, d("530.5").Equal(m.GetRate("USD")), "rejected rates must not change the table")

	assert.ErrorIs(t, m.SetRate("CRC", d("2")), apperrors.ErrInvalidRate)
	assert.NoError(t, m.SetRate("CRC", decimal.NewFromInt(1)))
	assert.ErrorIs(t, m.SetRate("DOLLAR", d("1")), apperrors.ErrValidation)
	assert.ErrorIs(t, m.SetRate("DOLLAR", d("-1")), apperrors.ErrInvalidRate)
	assert.ErrorIs(t, m.CheckRate("", decimal.Zero), apperrors.ErrInvalidRate)
}

func TestNewCurrencyManager_RejectsInvalidSeedRates(t *testing.T) {
	_, err := services.NewCurrencyManager("CRC", map[string]decimal.Decimal{"USD": decimal.Zero})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRate)

	m, err := services.NewCurrencyManager("", nil)
	require.NoError(t, err)
	assert.Equal(t, services.DefaultBaseCurrency, m.BaseCurrency())
	assert.Equal(t, services.DefaultReferenceCurrency, m.ReferenceCurrency())
}

func TestCurrencyManager_Conversions(t *testing.T) {
	m := newTestCurrencyManager(t)

	assert.True(t, d("52000").Equal(m.ToBase(d("100"), "USD")))
	assert.True(t, d("100").Equal(m.ToBase(d("100"), "CRC")))
	assert.True(t, d("100").Equal(m.FromBase(d("52000"), "USD")))
	assert.True(t, d("100").Equal(m.FromBase(d("100"), "")))
}

func TestCurrencyManager_RoundTrip(t *testing.T) {
	m := newTestCurrencyManager(t)
	require.NoError(t, m.SetRate("JPY", d("3.4567")))
	tolerance := d("0.0000000001")

	amounts := []string{"0.01", "1", "12.34", "999.99", "12345.678", "1000000"}
	for _, currency := range []string{"USD", "EUR", "JPY", "CRC", "GBP"} {
		for _, a := range amounts {
			x := d(a)
			got := m.FromBase(m.ToBase(x, currency), currency)
			assert.True(t, got.Sub(x).Abs().LessThan(tolerance), "%s %s round trip gave %s", a, currency, got)
		}
	}
}

func TestCurrencyManager_ComputeChange(t *testing.T) {
	m := newTestCurrencyManager(t)

	t.Run("change in base currency", func(t *testing.T) {
		result := m.ComputeChange(d("15000"), d("14000"), "CRC")

		require.False(t, result.IsShortfall())
		require.NotNil(t, result.Change)
		assert.True(t, d("1000").Equal(result.Change.AmountBase))
		assert.True(t, d("1.92").Equal(result.Change.AmountReference))
		assert.Equal(t, "USD", result.Change.ReferenceCurrency)
		assert.Equal(t, []domain.DenominationCount{{Denomination: d("1000"), Count: 1}}, result.Change.Denominations)
	})

	t.Run("paid in foreign currency", func(t *testing.T) {
		result := m.ComputeChange(d("50"), d("20000"), "USD")

		require.NotNil(t, result.Change)
		assert.True(t, d("6000").Equal(result.Change.AmountBase))
	})

	t.Run("exact payment", func(t *testing.T) {
		result := m.ComputeChange(d("14000"), d("14000"), "")

		require.NotNil(t, result.Change)
		assert.True(t, result.Change.AmountBase.IsZero())
		assert.Empty(t, result.Change.Denominations)
	})

	t.Run("shortfall", func(t *testing.T) {
		result := m.ComputeChange(d("20"), d("14000"), "USD")

		require.True(t, result.IsShortfall())
		assert.Nil(t, result.Change)
		assert.True(t, d("3600").Equal(result.Shortfall.AmountBase))
		assert.True(t, d("6.92").Equal(result.Shortfall.AmountInPaymentCurrency))
		assert.Equal(t, "USD", result.Shortfall.PaymentCurrency)
	})
}

func TestCurrencyManager_SuggestDenominations(t *testing.T) {
	m := newTestCurrencyManager(t)

	tests := []struct {
		name   string
		amount string
		want   []domain.DenominationCount
	}{
		{
			name:   "greedy largest first",
			amount: "27350",
			want: []domain.DenominationCount{
				{Denomination: d("20000"), Count: 1},
				{Denomination: d("5000"), Count: 1},
				{Denomination: d("2000"), Count: 1},
				{Denomination: d("100"), Count: 3},
				{Denomination: d("50"), Count: 1},
			},
		},
		{
			name:   "uses the 25 coin",
			amount: "27225",
			want: []domain.DenominationCount{
				{Denomination: d("20000"), Count: 1},
				{Denomination: d("5000"), Count: 1},
				{Denomination: d("2000"), Count: 1},
				{Denomination: d("100"), Count: 2},
				{Denomination: d("25"), Count: 1},
			},
		},
		{
			name:   "remainder below smallest denomination is dropped",
			amount: "41.75",
			want: []domain.DenominationCount{
				{Denomination: d("25"), Count: 1},
				{Denomination: d("10"), Count: 1},
				{Denomination: d("5"), Count: 1},
			},
		},
		{
			name:   "multiple of the largest",
			amount: "60000",
			want:   []domain.DenominationCount{{Denomination: d("20000"), Count: 3}},
		},
		{name: "zero", amount: "0", want: []domain.DenominationCount{}},
		{name: "below smallest", amount: "4", want: []domain.DenominationCount{}},
		{name: "negative", amount: "-100", want: []domain.DenominationCount{}},
		{
			name:   "every denomination counted on a large amount",
			amount: "1000000000000000",
			want:   []domain.DenominationCount{{Denomination: d("20000"), Count: 50000000000}},
		},
		{
			name:   "largest accepted amount keeps the smaller lines",
			amount: "999999999999995",
			want: []domain.DenominationCount{
				{Denomination: d("20000"), Count: 49999999999},
				{Denomination: d("10000"), Count: 1},
				{Denomination: d("5000"), Count: 1},
				{Denomination: d("2000"), Count: 2},
				{Denomination: d("500"), Count: 1},
				{Denomination: d("100"), Count: 4},
				{Denomination: d("50"), Count: 1},
				{Denomination: d("25"), Count: 1},
				{Denomination: d("10"), Count: 2},
			},
		},
		{name: "above the maximum amount", amount: "2e23", want: []domain.DenominationCount{}},
		{name: "huge exponent", amount: "1e2000000", want: []domain.DenominationCount{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.SuggestDenominations(d(tt.amount)))
		})
	}
}

func TestCurrencyManager_WithDenominations(t *testing.T) {
	m, err := services.NewCurrencyManager("USD", nil,
		services.WithDenominations([]decimal.Decimal{d("1"), d("20"), d("5"), decimal.Zero, d("10")}),
		services.WithReferenceCurrency("eur"),
	)
	require.NoError(t, err)

	assert.Equal(t, []decimal.Decimal{d("20"), d("10"), d("5"), d("1")}, m.Denominations())
	assert.Equal(t, "EUR", m.ReferenceCurrency())
	assert.Equal(t, []domain.DenominationCount{
		{Denomination: d("20"), Count: 1},
		{Denomination: d("10"), Count: 1},
		{Denomination: d("5"), Count: 1},
		{Denomination: d("1"), Count: 3},
	}, m.SuggestDenominations(d("38")))
}

func TestCurrencyManager_SuggestDenominationsClampsCount(t *testing.T) {
	m, err := services.NewCurrencyManager("BTC", nil,
		services.WithDenominations([]decimal.Decimal{d("0.00001")}),
	)
	require.NoError(t, err)

	breakdown := m.SuggestDenominations(d("1000000000000000"))
	require.Len(t, breakdown, 1)
	assert.Equal(t, int64(math.MaxInt64), breakdown[0].Count)
	assert.True(t, d("0.00001").Equal(breakdown[0].Denomination))
}

func TestCurrencyManager_ConcurrentAccess(t *testing.T) {
	m := newTestCurrencyManager(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = m.SetRate("USD", decimal.NewFromInt(int64(500+i)))
		}(i)
		go func() {
			defer wg.Done()
			rate := m.GetRate("USD")
			assert.True(t, rate.IsPositive())
		}()
	}
	wg.Wait()

	assert.Len(t, m.Rates(), 2)
}
