package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/pos_payments/internal/core/domain"
	"github.com/SscSPs/pos_payments/internal/utils"
	"github.com/shopspring/decimal"
)

// PaymentLegRequest is one payment within a checkout request.
type PaymentLegRequest struct {
	Method       string          `json:"method" binding:"required"` // e.g. "credit_card"
	Amount       decimal.Decimal `json:"amount" binding:"required,gt=0,lte=1000000000000000"`
	CurrencyCode string          `json:"currencyCode" binding:"omitempty,len=3,alpha"` // defaults to base currency
	Reference    *string         `json:"reference,omitempty"`                         // card or phone number
	Bank         *string         `json:"bank,omitempty"`
}

// CreateCheckoutRequest settles a sale total with one or more payments.
type CreateCheckoutRequest struct {
	SaleTotal decimal.Decimal     `json:"saleTotal" binding:"required,gt=0,lte=1000000000000000"`
	Payments  []PaymentLegRequest `json:"payments" binding:"required,min=1,dive"`
}

// ToDomain converts the request into a payment leg.
func (r PaymentLegRequest) ToDomain() (domain.PaymentLeg, error) {
	method, err := domain.ParsePaymentMethod(r.Method)
	if err != nil {
		return domain.PaymentLeg{}, err
	}
	return domain.PaymentLeg{
		Method:       method,
		Amount:       r.Amount,
		CurrencyCode: r.CurrencyCode,
		Reference:    r.Reference,
		Bank:         r.Bank,
	}, nil
}

// ToPaymentLegs converts every leg of the request.
func (r CreateCheckoutRequest) ToPaymentLegs() ([]domain.PaymentLeg, error) {
	legs := make([]domain.PaymentLeg, len(r.Payments))
	for i, p := range r.Payments {
		leg, err := p.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("payment %d: %w", i, err)
		}
		legs[i] = leg
	}
	return legs, nil
}

// PaymentRecordResponse is a processed payment. Card numbers are masked.
type PaymentRecordResponse struct {
	PaymentID        string          `json:"paymentID"`
	Method           string          `json:"method"`
	Amount           decimal.Decimal `json:"amount"`
	CurrencyCode     string          `json:"currencyCode"`
	Reference        *string         `json:"reference,omitempty"`
	Bank             *string         `json:"bank,omitempty"`
	Commission       decimal.Decimal `json:"commission"`
	CommissionBase   decimal.Decimal `json:"commissionBase"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	AmountBase       decimal.Decimal `json:"amountBase"`
	Timestamp        time.Time       `json:"timestamp"`
	Validated        bool            `json:"validated"`
	ValidationDetail string          `json:"validationDetail,omitempty"`
}

// MethodSummaryResponse is the per-method subtotal of a checkout.
type MethodSummaryResponse struct {
	Method     string          `json:"method"`
	Count      int             `json:"count"`
	AmountBase decimal.Decimal `json:"amountBase"`
}

// ChangeResponse carries either the change due or the shortfall.
type ChangeResponse struct {
	Change    *domain.Change    `json:"change,omitempty"`
	Shortfall *domain.Shortfall `json:"shortfall,omitempty"`
	Display   string            `json:"display"`
}

// MixedPaymentResponse is the aggregate of a checkout's payments.
type MixedPaymentResponse struct {
	Payments         []PaymentRecordResponse `json:"payments"`
	BaseCurrency     string                  `json:"baseCurrency"`
	SaleTotal        decimal.Decimal         `json:"saleTotal"`
	TotalPaidBase    decimal.Decimal         `json:"totalPaidBase"`
	TotalCommissions decimal.Decimal         `json:"totalCommissions"`
	Change           ChangeResponse          `json:"change"`
	Summary          []MethodSummaryResponse `json:"summary"`
	FullyPaid        bool                    `json:"fullyPaid"`
}

// CheckoutResponse is a persisted checkout.
type CheckoutResponse struct {
	CheckoutID string `json:"checkoutID"`
	MixedPaymentResponse
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// ListCheckoutsParams defines query parameters for listing checkouts.
type ListCheckoutsParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListCheckoutsResponse is a page of checkouts.
type ListCheckoutsResponse struct {
	Checkouts []CheckoutResponse `json:"checkouts"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToPaymentRecordResponse converts a domain.PaymentRecord to PaymentRecordResponse DTO
func ToPaymentRecordResponse(r domain.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		PaymentID:        r.PaymentID,
		Method:           r.Method.String(),
		Amount:           r.Amount,
		CurrencyCode:     r.CurrencyCode,
		Reference:        r.MaskedReference(),
		Bank:             r.Bank,
		Commission:       r.Commission,
		CommissionBase:   r.CommissionBase,
		ExchangeRate:     r.ExchangeRate,
		AmountBase:       r.AmountBase,
		Timestamp:        r.Timestamp,
		Validated:        r.Validated,
		ValidationDetail: r.ValidationDetail,
	}
}

// ToChangeResponse converts a domain.ChangeResult, rendering the amount in baseCurrency.
func ToChangeResponse(c domain.ChangeResult, baseCurrency string) ChangeResponse {
	resp := ChangeResponse{Change: c.Change, Shortfall: c.Shortfall}
	switch {
	case c.Shortfall != nil:
		resp.Display = "short " + utils.FormatDisplay(c.Shortfall.AmountBase, baseCurrency)
	case c.Change != nil:
		resp.Display = "change " + utils.FormatDisplay(c.Change.AmountBase, baseCurrency)
	}
	return resp
}

// ToMixedPaymentResponse converts a domain.MixedPaymentResult to MixedPaymentResponse DTO
func ToMixedPaymentResponse(r *domain.MixedPaymentResult) MixedPaymentResponse {
	payments := make([]PaymentRecordResponse, len(r.Payments))
	for i, p := range r.Payments {
		payments[i] = ToPaymentRecordResponse(p)
	}
	summary := make([]MethodSummaryResponse, len(r.Summary))
	for i, s := range r.Summary {
		summary[i] = MethodSummaryResponse{Method: s.Method.String(), Count: s.Count, AmountBase: s.AmountBase}
	}
	return MixedPaymentResponse{
		Payments:         payments,
		BaseCurrency:     r.BaseCurrency,
		SaleTotal:        r.SaleTotal,
		TotalPaidBase:    r.TotalPaidBase,
		TotalCommissions: r.TotalCommissions,
		Change:           ToChangeResponse(r.Change, r.BaseCurrency),
		Summary:          summary,
		FullyPaid:        r.FullyPaid,
	}
}

// ToCheckoutResponse converts a domain.Checkout to CheckoutResponse DTO
func ToCheckoutResponse(c *domain.Checkout) CheckoutResponse {
	return CheckoutResponse{
		CheckoutID:           c.CheckoutID,
		MixedPaymentResponse: ToMixedPaymentResponse(&c.MixedPaymentResult),
		CreatedAt:            c.CreatedAt,
		CreatedBy:            c.CreatedBy,
	}
}

// ToListCheckoutResponse converts a slice of domain.Checkout to a slice of CheckoutResponse DTOs
func ToListCheckoutResponse(checkouts []domain.Checkout) []CheckoutResponse {
	res := make([]CheckoutResponse, len(checkouts))
	for i := range checkouts {
		res[i] = ToCheckoutResponse(&checkouts[i])
	}
	return res
}
