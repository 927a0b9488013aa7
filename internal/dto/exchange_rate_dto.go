package dto

import (
	"time"

	"github.com/SscSPs/pos_payments/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetExchangeRateRequest defines the structure for replacing a currency's rate.
// Positivity is checked by the service so it reports an invalid-rate error.
type SetExchangeRateRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	CurrencyCode  string          `json:"currencyCode"`
	BaseCurrency  string          `json:"baseCurrency"`
	Rate          decimal.Decimal `json:"rate"`
	LastUpdatedAt *time.Time      `json:"lastUpdatedAt,omitempty"`
	LastUpdatedBy string          `json:"lastUpdatedBy,omitempty"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate, baseCurrency string) ExchangeRateResponse {
	resp := ExchangeRateResponse{
		CurrencyCode:  rate.CurrencyCode,
		BaseCurrency:  baseCurrency,
		Rate:          rate.Rate,
		LastUpdatedBy: rate.LastUpdatedBy,
	}
	if !rate.LastUpdatedAt.IsZero() {
		updated := rate.LastUpdatedAt
		resp.LastUpdatedAt = &updated
	}
	return resp
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate, baseCurrency string) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i], baseCurrency)
	}
	return responses
}
