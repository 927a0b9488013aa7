package services

import (
	"fmt"

	"github.com/SscSPs/pos_payments/internal/apperrors"
	"github.com/SscSPs/pos_payments/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultTipPercentages are offered when no percentages are requested.
var DefaultTipPercentages = []decimal.Decimal{
	decimal.NewFromInt(10),
	decimal.NewFromInt(15),
	decimal.NewFromInt(20),
}

var hundred = decimal.NewFromInt(100)

// MultiPaymentHandler settles a sale total with one or more payment legs.
type MultiPaymentHandler struct {
	processor *PaymentProcessor
	currency  *CurrencyManager
}

// NewMultiPaymentHandler creates a MultiPaymentHandler.
func NewMultiPaymentHandler(processor *PaymentProcessor, currency *CurrencyManager) *MultiPaymentHandler {
	return &MultiPaymentHandler{processor: processor, currency: currency}
}

// Processor returns the underlying payment processor.
func (h *MultiPaymentHandler) Processor() *PaymentProcessor {
	return h.processor
}

// Currency returns the underlying currency manager.
func (h *MultiPaymentHandler) Currency() *CurrencyManager {
	return h.currency
}

// ProcessMixedPayment processes every leg and aggregates them against
// saleTotal (in base currency). If any leg fails validation nothing is
// aggregated and an *apperrors.InvalidPaymentError is returned. Change is
// computed on gross amounts; commissions are reported separately.
func (h *MultiPaymentHandler) ProcessMixedPayment(legs []domain.PaymentLeg, saleTotal decimal.Decimal) (*domain.MixedPaymentResult, error) {
	if len(legs) == 0 {
		return nil, fmt.Errorf("%w: at least one payment is required", apperrors.ErrValidation)
	}
	if saleTotal.IsNegative() {
		return nil, fmt.Errorf("%w: sale total must not be negative, got %s", apperrors.ErrValidation, saleTotal)
	}
	if !domain.ValidInputAmount(saleTotal) {
		return nil, fmt.Errorf("%w: sale total must be at most %s with %d decimals", apperrors.ErrValidation, domain.MaxAmount, domain.MaxAmountScale)
	}

	records := make([]domain.PaymentRecord, 0, len(legs))
	for i, leg := range legs {
		record, err := h.processor.Process(leg)
		if err != nil {
			return nil, fmt.Errorf("payment %d: %w", i, err)
		}
		if !record.Validated {
			return nil, &apperrors.InvalidPaymentError{
				Index:  i,
				Method: record.Method.String(),
				Reason: record.ValidationDetail,
			}
		}
		records = append(records, record)
	}

	totalPaid := decimal.Zero
	totalCommissions := decimal.Zero
	for _, r := range records {
		totalPaid = totalPaid.Add(r.AmountBase)
		totalCommissions = totalCommissions.Add(r.CommissionBase)
	}

	return &domain.MixedPaymentResult{
		Payments:         records,
		BaseCurrency:     h.currency.BaseCurrency(),
		SaleTotal:        saleTotal,
		TotalPaidBase:    totalPaid,
		TotalCommissions: totalCommissions,
		Change:           h.currency.ComputeChange(totalPaid, saleTotal, h.currency.BaseCurrency()),
		Summary:          domain.SummarizeByMethod(records),
		FullyPaid:        totalPaid.GreaterThanOrEqual(saleTotal),
	}, nil
}

// SuggestedTips returns saleTotal * p / 100 for each percentage p, keyed
// by labels such as "15%". With no percentages DefaultTipPercentages is used.
func (h *MultiPaymentHandler) SuggestedTips(saleTotal decimal.Decimal, percentages ...decimal.Decimal) map[string]decimal.Decimal {
	return SuggestedTips(saleTotal, percentages...)
}

// SuggestedTips is the stateless form of MultiPaymentHandler.SuggestedTips.
func SuggestedTips(saleTotal decimal.Decimal, percentages ...decimal.Decimal) map[string]decimal.Decimal {
	if len(percentages) == 0 {
		percentages = DefaultTipPercentages
	}
	tips := make(map[string]decimal.Decimal, len(percentages))
	for _, p := range percentages {
		tips[p.String()+"%"] = saleTotal.Mul(p).Div(hundred)
	}
	return tips
}
