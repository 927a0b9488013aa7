package services

import (
	"fmt"

	portsrepo "github.com/SscSPs/pos_payments/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_payments/internal/core/ports/services"
	"github.com/SscSPs/pos_payments/internal/platform/config"
)

// NewServiceContainer builds the payment core from configuration and wires
// it into the services used by the handlers.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	managerOptions := []CurrencyManagerOption{WithReferenceCurrency(cfg.ReferenceCurrency)}
	if len(cfg.Denominations) > 0 {
		managerOptions = append(managerOptions, WithDenominations(cfg.Denominations))
	}
	currency, err := NewCurrencyManager(cfg.BaseCurrency, cfg.ExchangeRates, managerOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create currency manager: %w", err)
	}

	methodConfigs, err := BuildMethodConfigs(cfg.CommissionRates, cfg.DisabledMethods)
	if err != nil {
		return nil, fmt.Errorf("failed to build payment method configs: %w", err)
	}

	validator := NewPaymentValidator()
	processor := NewPaymentProcessor(currency, validator, WithMethodConfigs(methodConfigs))
	handler := NewMultiPaymentHandler(processor, currency)

	return &portssvc.ServiceContainer{
		Payment:      NewPaymentService(handler, validator),
		Checkout:     NewCheckoutService(repos.CheckoutRepo, handler),
		ExchangeRate: NewExchangeRateService(repos.ExchangeRateRepo, currency),
	}, nil
}
