package services

import (
	"context"

	"github.com/SscSPs/pos_payments/internal/core/domain"
	"github.com/SscSPs/pos_payments/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves the current rate of a currency against the base currency.
	GetExchangeRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves every configured rate.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// SetExchangeRate persists a new rate and applies it to future conversions.
	SetExchangeRate(ctx context.Context, currencyCode string, req dto.SetExchangeRateRequest, userID string) (*domain.ExchangeRate, error)

	// LoadExchangeRates applies every stored rate to the in-memory table.
	LoadExchangeRates(ctx context.Context) (int, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
