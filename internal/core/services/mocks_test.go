package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/pos_payments/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

// --- Mock CheckoutRepository ---
type MockCheckoutRepository struct {
	mock.Mock
}

func (m *MockCheckoutRepository) SaveCheckout(ctx context.Context, checkout domain.Checkout) error {
	args := m.Called(ctx, checkout)
	return args.Error(0)
}

func (m *MockCheckoutRepository) FindCheckoutByID(ctx context.Context, checkoutID string) (*domain.Checkout, error) {
	args := m.Called(ctx, checkoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Checkout), args.Error(1)
}

func (m *MockCheckoutRepository) ListCheckouts(ctx context.Context, limit int, before *time.Time, beforeID string) ([]domain.Checkout, error) {
	args := m.Called(ctx, limit, before, beforeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Checkout), args.Error(1)
}
