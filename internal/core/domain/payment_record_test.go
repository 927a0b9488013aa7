package domain_test

import (
	"testing"

	"github.com/SscSPs/pos_payments/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRecord_MaskedReference(t *testing.T) {
	tests := []struct {
		name   string
		record domain.PaymentRecord
		want   *string
	}{
		{
			name:   "no reference",
			record: domain.PaymentRecord{Method: domain.CreditCard},
			want:   nil,
		},
		{
			name:   "card number keeps last four digits",
			record: domain.PaymentRecord{Method: domain.CreditCard, Reference: stringPtr("4111 1111-1111 1111")},
			want:   stringPtr("************1111"),
		},
		{
			name:   "pasted card number with tabs and newline",
			record: domain.PaymentRecord{Method: domain.CreditCard, Reference: stringPtr("4111\t1111\t1111\t1111\n")},
			want:   stringPtr("************1111"),
		},
		{
			name:   "short card reference is not padded",
			record: domain.PaymentRecord{Method: domain.DebitCard, Reference: stringPtr("123")},
			want:   stringPtr("123"),
		},
		{
			name:   "phone number is left as is",
			record: domain.PaymentRecord{Method: domain.MobileTransfer, Reference: stringPtr("88887777")},
			want:   stringPtr("88887777"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.MaskedReference())
		})
	}
}

func TestSummarizeByMethod(t *testing.T) {
	records := []domain.PaymentRecord{
		{Method: domain.CreditCard, AmountBase: decimal.NewFromInt(5000)},
		{Method: domain.CashLocal, AmountBase: decimal.NewFromInt(10000)},
		{Method: domain.CreditCard, AmountBase: decimal.NewFromInt(2500)},
	}

	summary := domain.SummarizeByMethod(records)

	require.Len(t, summary, 2)
	assert.Equal(t, domain.CashLocal, summary[0].Method)
	assert.Equal(t, 1, summary[0].Count)
	assert.True(t, decimal.NewFromInt(10000).Equal(summary[0].AmountBase))
	assert.Equal(t, domain.CreditCard, summary[1].Method)
	assert.Equal(t, 2, summary[1].Count)
	assert.True(t, decimal.NewFromInt(7500).Equal(summary[1].AmountBase))

	assert.Empty(t, domain.SummarizeByMethod(nil))
}

func TestLookupCurrency(t *testing.T) {
	assert.Equal(t, "₡", domain.LookupCurrency("crc").Symbol)
	unknown := domain.LookupCurrency("JPY")
	assert.Equal(t, "JPY ", unknown.Symbol)
	assert.Equal(t, 2, unknown.Precision)
}

func stringPtr(s string) *string {
	return &s
}
