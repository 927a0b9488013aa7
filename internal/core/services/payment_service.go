package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/pos_payments/internal/core/domain"
	portssvc "github.com/SscSPs/pos_payments/internal/core/ports/services"
	"github.com/SscSPs/pos_payments/internal/dto"
	"github.com/shopspring/decimal"
)

// paymentService exposes the payment core to handlers without persistence.
type paymentService struct {
	BaseService
	handler   *MultiPaymentHandler
	validator *PaymentValidator
}

// NewPaymentService creates a payment service over a configured handler.
func NewPaymentService(handler *MultiPaymentHandler, validator *PaymentValidator) portssvc.PaymentSvcFacade {
	return &paymentService{handler: handler, validator: validator}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) BaseCurrency() string {
	return s.handler.Currency().BaseCurrency()
}

func (s *paymentService) ListPaymentMethods(ctx context.Context) []domain.PaymentMethodOption {
	processor := s.handler.Processor()
	methods := processor.Methods()
	options := make([]domain.PaymentMethodOption, 0, len(methods))
	for _, m := range methods {
		cfg, _ := processor.MethodConfig(m)
		options = append(options, domain.PaymentMethodOption{Method: m, PaymentMethodConfig: cfg})
	}
	return options
}

func (s *paymentService) PreviewCheckout(ctx context.Context, req dto.CreateCheckoutRequest) (*domain.MixedPaymentResult, error) {
	legs, err := req.ToPaymentLegs()
	if err != nil {
		return nil, err
	}
	result, err := s.handler.ProcessMixedPayment(legs, req.SaleTotal)
	if err != nil {
		s.LogDebug(ctx, "Checkout preview rejected", slog.String("reason", err.Error()))
		return nil, err
	}
	return result, nil
}

func (s *paymentService) QuoteChange(ctx context.Context, req dto.ChangeQuoteRequest) (domain.ChangeResult, error) {
	return s.handler.Currency().ComputeChange(req.AmountPaid, req.SaleTotal, req.CurrencyCode), nil
}

func (s *paymentService) SuggestDenominations(ctx context.Context, amountBase decimal.Decimal) []domain.DenominationCount {
	return s.handler.Currency().SuggestDenominations(amountBase)
}

func (s *paymentService) SuggestTips(ctx context.Context, saleTotal decimal.Decimal, percentages []decimal.Decimal) map[string]decimal.Decimal {
	return s.handler.SuggestedTips(saleTotal, percentages...)
}

func (s *paymentService) ValidateCard(ctx context.Context, number string) (bool, string) {
	return s.validator.ValidateCard(number)
}

func (s *paymentService) ValidateMobileNumber(ctx context.Context, number string) (bool, string) {
	return s.validator.ValidateLocalMobileNumber(number)
}
