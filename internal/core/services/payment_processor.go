package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/pos_payments/internal/apperrors"
	"github.com/SscSPs/pos_payments/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentProcessor turns a single payment leg into a PaymentRecord.
type PaymentProcessor struct {
	configs   map[domain.PaymentMethod]domain.PaymentMethodConfig
	currency  *CurrencyManager
	validator *PaymentValidator
	now       func() time.Time
	newID     func() string
}

// ProcessorOption configures a PaymentProcessor.
type ProcessorOption func(*PaymentProcessor)

// WithMethodConfigs replaces the default method configuration table.
func WithMethodConfigs(configs map[domain.PaymentMethod]domain.PaymentMethodConfig) ProcessorOption {
	return func(p *PaymentProcessor) {
		p.configs = configs
	}
}

// WithClock sets the time source used for record timestamps.
func WithClock(now func() time.Time) ProcessorOption {
	return func(p *PaymentProcessor) {
		p.now = now
	}
}

// WithIDGenerator sets the generator used for payment IDs.
func WithIDGenerator(newID func() string) ProcessorOption {
	return func(p *PaymentProcessor) {
		p.newID = newID
	}
}

// NewPaymentProcessor creates a processor using the default method table
// unless WithMethodConfigs is given.
func NewPaymentProcessor(currency *CurrencyManager, validator *PaymentValidator, options ...ProcessorOption) *PaymentProcessor {
	p := &PaymentProcessor{
		configs:   domain.DefaultPaymentMethodConfigs(),
		currency:  currency,
		validator: validator,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// MethodConfig returns the configuration registered for method.
func (p *PaymentProcessor) MethodConfig(method domain.PaymentMethod) (domain.PaymentMethodConfig, bool) {
	cfg, ok := p.configs[method]
	return cfg, ok
}

// Methods returns the configured methods in declaration order.
func (p *PaymentProcessor) Methods() []domain.PaymentMethod {
	methods := make([]domain.PaymentMethod, 0, len(p.configs))
	for _, m := range domain.AllPaymentMethods() {
		if _, ok := p.configs[m]; ok {
			methods = append(methods, m)
		}
	}
	return methods
}

// Process builds the record for leg. Failed reference validation is
// reported through Validated and ValidationDetail, not as an error.
func (p *PaymentProcessor) Process(leg domain.PaymentLeg) (domain.PaymentRecord, error) {
	cfg, ok := p.configs[leg.Method]
	if !ok {
		return domain.PaymentRecord{}, &apperrors.UnknownMethodError{Method: leg.Method.String()}
	}
	if !leg.Amount.IsPositive() {
		return domain.PaymentRecord{}, fmt.Errorf("%w: payment amount must be positive, got %s", apperrors.ErrValidation, leg.Amount)
	}
	if !domain.ValidInputAmount(leg.Amount) {
		return domain.PaymentRecord{}, fmt.Errorf("%w: payment amount must be at most %s with %d decimals", apperrors.ErrValidation, domain.MaxAmount, domain.MaxAmountScale)
	}

	currency := p.currency.Resolve(leg.CurrencyCode)
	rate := p.currency.GetRate(currency)
	commission := leg.Amount.Mul(cfg.CommissionRate)

	record := domain.PaymentRecord{
		PaymentID:      p.newID(),
		Method:         leg.Method,
		Amount:         leg.Amount,
		CurrencyCode:   currency,
		Reference:      leg.Reference,
		Bank:           leg.Bank,
		Commission:     commission,
		CommissionBase: commission.Mul(rate),
		ExchangeRate:   rate,
		AmountBase:     leg.Amount.Mul(rate),
		Timestamp:      p.now(),
	}
	record.Validated, record.ValidationDetail = p.validate(leg.Method, cfg, leg.Reference)
	return record, nil
}

func (p *PaymentProcessor) validate(method domain.PaymentMethod, cfg domain.PaymentMethodConfig, reference *string) (bool, string) {
	if !cfg.RequiresValidation {
		return true, ""
	}
	ref := ""
	if reference != nil {
		ref = strings.TrimSpace(*reference)
	}
	switch method.ReferenceKind() {
	case domain.ReferenceCard:
		if ref == "" {
			return false, "card number is required"
		}
		return p.validator.ValidateCard(ref)
	case domain.ReferencePhone:
		if ref == "" {
			return false, "phone number is required"
		}
		return p.validator.ValidateLocalMobileNumber(ref)
	default:
		// Nothing to check for this method beyond its configuration.
		return true, ""
	}
}

// BuildMethodConfigs applies commission overrides and removes disabled
// methods from the default table. Keys are method codes such as "credit_card".
func BuildMethodConfigs(commissionRates map[string]decimal.Decimal, disabled []string) (map[domain.PaymentMethod]domain.PaymentMethodConfig, error) {
	configs := domain.DefaultPaymentMethodConfigs()
	for code, rate := range commissionRates {
		method, err := domain.ParsePaymentMethod(code)
		if err != nil {
			return nil, err
		}
		if rate.IsNegative() {
			return nil, fmt.Errorf("%w: commission rate for %s must not be negative, got %s", apperrors.ErrValidation, code, rate)
		}
		cfg := configs[method]
		cfg.CommissionRate = rate
		configs[method] = cfg
	}
	for _, code := range disabled {
		method, err := domain.ParsePaymentMethod(code)
		if err != nil {
			return nil, err
		}
		delete(configs, method)
	}
	return configs, nil
}
