package services

import (
	"context"

	"github.com/SscSPs/pos_payments/internal/core/domain"
	"github.com/SscSPs/pos_payments/internal/dto"
	"github.com/shopspring/decimal"
)

// PaymentQuoteSvc defines side-effect free payment calculations
type PaymentQuoteSvc interface {
	// BaseCurrency returns the currency sale totals are expressed in.
	BaseCurrency() string

	// ListPaymentMethods returns the enabled payment methods with their configuration.
	ListPaymentMethods(ctx context.Context) []domain.PaymentMethodOption

	// PreviewCheckout processes and aggregates payments without persisting them.
	PreviewCheckout(ctx context.Context, req dto.CreateCheckoutRequest) (*domain.MixedPaymentResult, error)

	// QuoteChange computes the change or shortfall for a single payment.
	QuoteChange(ctx context.Context, req dto.ChangeQuoteRequest) (domain.ChangeResult, error)

	// SuggestDenominations breaks an amount in base currency into bills and coins.
	SuggestDenominations(ctx context.Context, amountBase decimal.Decimal) []domain.DenominationCount

	// SuggestTips returns tip amounts keyed by percentage label.
	SuggestTips(ctx context.Context, saleTotal decimal.Decimal, percentages []decimal.Decimal) map[string]decimal.Decimal
}

// PaymentReferenceValidatorSvc defines checks on payment references
type PaymentReferenceValidatorSvc interface {
	// ValidateCard checks a card number and guesses its issuer.
	ValidateCard(ctx context.Context, number string) (bool, string)

	// ValidateMobileNumber checks a local mobile number.
	ValidateMobileNumber(ctx context.Context, number string) (bool, string)
}

// PaymentSvcFacade combines all payment calculation service interfaces
type PaymentSvcFacade interface {
	PaymentQuoteSvc
	PaymentReferenceValidatorSvc
}

// CheckoutReaderSvc defines read operations for persisted checkouts
type CheckoutReaderSvc interface {
	// GetCheckoutByID retrieves a checkout by its ID.
	GetCheckoutByID(ctx context.Context, checkoutID string) (*domain.Checkout, error)

	// ListCheckouts retrieves a page of checkouts, newest first.
	ListCheckouts(ctx context.Context, params dto.ListCheckoutsParams) (*dto.ListCheckoutsResponse, error)
}

// CheckoutWriterSvc defines write operations for checkouts
type CheckoutWriterSvc interface {
	// CreateCheckout processes the payments and persists the finalized result.
	CreateCheckout(ctx context.Context, req dto.CreateCheckoutRequest, cashierID string) (*domain.Checkout, error)
}

// CheckoutSvcFacade combines all checkout-related service interfaces
type CheckoutSvcFacade interface {
	CheckoutReaderSvc
	CheckoutWriterSvc
}
