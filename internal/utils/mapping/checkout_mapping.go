package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/pos_payments/internal/core/domain"
	"github.com/SscSPs/pos_payments/internal/models"
)

// ToModelPaymentRecord converts a domain PaymentRecord to a row. Card
// references are masked before they reach storage.
func ToModelPaymentRecord(checkoutID string, position int, d domain.PaymentRecord) models.PaymentRecord {
	return models.PaymentRecord{
		PaymentID:        d.PaymentID,
		CheckoutID:       checkoutID,
		Position:         position,
		Method:           d.Method.String(),
		Amount:           d.Amount,
		CurrencyCode:     d.CurrencyCode,
		Reference:        d.MaskedReference(),
		Bank:             d.Bank,
		Commission:       d.Commission,
		CommissionBase:   d.CommissionBase,
		ExchangeRate:     d.ExchangeRate,
		AmountBase:       d.AmountBase,
		ProcessedAt:      d.Timestamp,
		Validated:        d.Validated,
		ValidationDetail: d.ValidationDetail,
	}
}

// ToDomainPaymentRecord converts a payment_records row to a domain PaymentRecord
func ToDomainPaymentRecord(m models.PaymentRecord) (domain.PaymentRecord, error) {
	method, err := domain.ParsePaymentMethod(m.Method)
	if err != nil {
		return domain.PaymentRecord{}, fmt.Errorf("payment %s: %w", m.PaymentID, err)
	}
	return domain.PaymentRecord{
		PaymentID:        m.PaymentID,
		Method:           method,
		Amount:           m.Amount,
		CurrencyCode:     m.CurrencyCode,
		Reference:        m.Reference,
		Bank:             m.Bank,
		Commission:       m.Commission,
		CommissionBase:   m.CommissionBase,
		ExchangeRate:     m.ExchangeRate,
		AmountBase:       m.AmountBase,
		Timestamp:        m.ProcessedAt,
		Validated:        m.Validated,
		ValidationDetail: m.ValidationDetail,
	}, nil
}

// ToModelCheckout converts a fully paid checkout to its header row and record rows.
func ToModelCheckout(d domain.Checkout) (models.Checkout, []models.PaymentRecord, error) {
	if d.Change.Change == nil {
		return models.Checkout{}, nil, fmt.Errorf("checkout %s has no change result", d.CheckoutID)
	}
	denominations, err := json.Marshal(d.Change.Change.Denominations)
	if err != nil {
		return models.Checkout{}, nil, fmt.Errorf("encode denominations: %w", err)
	}

	header := models.Checkout{
		CheckoutID:        d.CheckoutID,
		BaseCurrency:      d.BaseCurrency,
		SaleTotal:         d.SaleTotal,
		TotalPaidBase:     d.TotalPaidBase,
		TotalCommissions:  d.TotalCommissions,
		ChangeBase:        d.Change.Change.AmountBase,
		ChangeReference:   d.Change.Change.AmountReference,
		ReferenceCurrency: d.Change.Change.ReferenceCurrency,
		Denominations:     denominations,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
	records := make([]models.PaymentRecord, len(d.Payments))
	for i, p := range d.Payments {
		records[i] = ToModelPaymentRecord(d.CheckoutID, i, p)
	}
	return header, records, nil
}

// ToDomainCheckout rebuilds a checkout from its header row and its records,
// which must already be in position order.
func ToDomainCheckout(m models.Checkout, rows []models.PaymentRecord) (domain.Checkout, error) {
	denominations := []domain.DenominationCount{}
	if len(m.Denominations) > 0 {
		if err := json.Unmarshal(m.Denominations, &denominations); err != nil {
			return domain.Checkout{}, fmt.Errorf("decode denominations of checkout %s: %w", m.CheckoutID, err)
		}
	}

	records := make([]domain.PaymentRecord, len(rows))
	for i, row := range rows {
		rec, err := ToDomainPaymentRecord(row)
		if err != nil {
			return domain.Checkout{}, err
		}
		records[i] = rec
	}

	return domain.Checkout{
		CheckoutID: m.CheckoutID,
		MixedPaymentResult: domain.MixedPaymentResult{
			Payments:         records,
			BaseCurrency:     m.BaseCurrency,
			SaleTotal:        m.SaleTotal,
			TotalPaidBase:    m.TotalPaidBase,
			TotalCommissions: m.TotalCommissions,
			Change: domain.ChangeResult{Change: &domain.Change{
				AmountBase:        m.ChangeBase,
				AmountReference:   m.ChangeReference,
				ReferenceCurrency: m.ReferenceCurrency,
				Denominations:     denominations,
			}},
			Summary:   domain.SummarizeByMethod(records),
			FullyPaid: m.TotalPaidBase.GreaterThanOrEqual(m.SaleTotal),
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}, nil
}

