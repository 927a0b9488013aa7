package dto

import (
	"github.com/SscSPs/pos_payments/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ChangeQuoteRequest asks for the change due on a single payment.
type ChangeQuoteRequest struct {
	AmountPaid   decimal.Decimal `json:"amountPaid" binding:"required,gt=0,lte=1000000000000000"`
	SaleTotal    decimal.Decimal `json:"saleTotal" binding:"required,gt=0,lte=1000000000000000"`
	CurrencyCode string          `json:"currencyCode" binding:"omitempty,len=3,alpha"`
}

// DenominationsResponse is a bills-and-coins breakdown.
type DenominationsResponse struct {
	Amount        decimal.Decimal            `json:"amount"`
	CurrencyCode  string                     `json:"currencyCode"`
	Denominations []domain.DenominationCount `json:"denominations"`
}

// TipsResponse lists suggested tips keyed by percentage label.
type TipsResponse struct {
	SaleTotal decimal.Decimal            `json:"saleTotal"`
	Tips      map[string]decimal.Decimal `json:"tips"`
}

// ValidateReferenceRequest carries a card or phone number to check.
type ValidateReferenceRequest struct {
	Number string `json:"number" binding:"required"`
}

// ValidationResponse is the outcome of a reference check.
type ValidationResponse struct {
	Valid  bool   `json:"valid"`
	Detail string `json:"detail"`
}

// PaymentMethodResponse describes an enabled payment method.
type PaymentMethodResponse struct {
	Code               string          `json:"code"`
	Name               string          `json:"name"`
	Currency           string          `json:"currency"`
	CommissionRate     decimal.Decimal `json:"commissionRate"`
	RequiresValidation bool            `json:"requiresValidation"`
}

// ToListPaymentMethodResponse converts enabled methods to PaymentMethodResponse DTOs
func ToListPaymentMethodResponse(options []domain.PaymentMethodOption) []PaymentMethodResponse {
	res := make([]PaymentMethodResponse, len(options))
	for i, o := range options {
		res[i] = PaymentMethodResponse{
			Code:               o.Method.String(),
			Name:               o.Name,
			Currency:           o.Currency,
			CommissionRate:     o.CommissionRate,
			RequiresValidation: o.RequiresValidation,
		}
	}
	return res
}
