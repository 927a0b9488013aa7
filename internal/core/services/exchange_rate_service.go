package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/pos_payments/internal/apperrors"
	"github.com/SscSPs/pos_payments/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_payments/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_payments/internal/core/ports/services"
	"github.com/SscSPs/pos_payments/internal/dto"
	"github.com/shopspring/decimal"
)

// exchangeRateService keeps the stored rates and the in-memory table in step.
type exchangeRateService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateRepositoryFacade
	currency *CurrencyManager
	now      func() time.Time
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currency *CurrencyManager) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo: rateRepo,
		currency: currency,
		now:      time.Now,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// SetExchangeRate validates the rate, stores it and then applies it in memory.
func (s *exchangeRateService) SetExchangeRate(ctx context.Context, currencyCode string, req dto.SetExchangeRateRequest, userID string) (*domain.ExchangeRate, error) {
	code := s.currency.Resolve(currencyCode)
	if err := s.currency.CheckRate(code, req.Rate); err != nil {
		return nil, err
	}
	if code == s.currency.BaseCurrency() {
		return nil, fmt.Errorf("%w: the rate of the base currency %s cannot be changed", apperrors.ErrValidation, code)
	}

	now := s.now().UTC()
	rate := domain.ExchangeRate{
		CurrencyCode: code,
		Rate:         req.Rate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate", slog.String("currency_code", code))
		return nil, fmt.Errorf("failed to save exchange rate: %w", err)
	}
	if err := s.currency.SetRate(code, req.Rate); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Exchange rate updated",
		slog.String("currency_code", code),
		slog.String("rate", req.Rate.String()),
		slog.String("user_id", userID))
	return &rate, nil
}

// GetExchangeRate returns the stored rate, falling back to the in-memory
// table for currencies that were only seeded from configuration.
func (s *exchangeRateService) GetExchangeRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	code := s.currency.Resolve(currencyCode)
	if len(code) != 3 {
		return nil, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}
	if code == s.currency.BaseCurrency() {
		return &domain.ExchangeRate{CurrencyCode: code, Rate: decimal.NewFromInt(1)}, nil
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, code)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	if !s.currency.HasRate(code) {
		return nil, apperrors.NewNotFoundError("exchange rate for " + code)
	}
	return &domain.ExchangeRate{CurrencyCode: code, Rate: s.currency.GetRate(code)}, nil
}

// ListExchangeRates returns the in-memory table merged with stored audit data.
func (s *exchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	stored, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	byCode := make(map[string]domain.ExchangeRate, len(stored))
	for _, r := range stored {
		byCode[r.CurrencyCode] = r
	}

	rates := make([]domain.ExchangeRate, 0, len(byCode))
	for code, value := range s.currency.Rates() {
		r, ok := byCode[code]
		if !ok {
			r = domain.ExchangeRate{CurrencyCode: code}
		}
		r.Rate = value
		rates = append(rates, r)
	}
	sortRates(rates)
	return rates, nil
}

// LoadExchangeRates applies stored rates over the configured seed rates.
// Invalid stored rows are skipped and logged.
func (s *exchangeRateService) LoadExchangeRates(ctx context.Context) (int, error) {
	stored, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load exchange rates: %w", err)
	}
	loaded := 0
	for _, r := range stored {
		if err := s.currency.SetRate(r.CurrencyCode, r.Rate); err != nil {
			s.LogError(ctx, err, "Skipping stored exchange rate", slog.String("currency_code", r.CurrencyCode))
			continue
		}
		loaded++
	}
	s.LogInfo(ctx, "Exchange rates loaded", slog.Int("count", loaded))
	return loaded, nil
}

func sortRates(rates []domain.ExchangeRate) {
	slices.SortFunc(rates, func(a, b domain.ExchangeRate) int {
		return strings.Compare(a.CurrencyCode, b.CurrencyCode)
	})
}
