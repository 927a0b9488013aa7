package mapping

import (
	"github.com/SscSPs/pos_payments/internal/core/domain"
	"github.com/SscSPs/pos_payments/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		CurrencyCode: d.CurrencyCode,
		Rate:         d.Rate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		CurrencyCode: m.CurrencyCode,
		Rate:         m.Rate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
