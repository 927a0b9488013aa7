package domain

import "github.com/shopspring/decimal"

// MethodSummary aggregates the legs paid with one method.
type MethodSummary struct {
	Method     PaymentMethod   `json:"method"`
	Count      int             `json:"count"`
	AmountBase decimal.Decimal `json:"amountBase"`
}

// MixedPaymentResult is the aggregate of a checkout's payment legs. Every
// record in Payments is validated.
type MixedPaymentResult struct {
	Payments         []PaymentRecord `json:"payments"`
	BaseCurrency     string          `json:"baseCurrency"`
	SaleTotal        decimal.Decimal `json:"saleTotal"`
	TotalPaidBase    decimal.Decimal `json:"totalPaidBase"`
	TotalCommissions decimal.Decimal `json:"totalCommissions"`
	Change           ChangeResult    `json:"change"`
	Summary          []MethodSummary `json:"summary"`
	FullyPaid        bool            `json:"fullyPaid"`
}

// Checkout is a persisted, fully paid MixedPaymentResult.
type Checkout struct {
	CheckoutID string `json:"checkoutID"`
	MixedPaymentResult
	AuditFields
}

// SummarizeByMethod groups records by method, in method declaration order.
func SummarizeByMethod(records []PaymentRecord) []MethodSummary {
	byMethod := make(map[PaymentMethod]*MethodSummary)
	for _, r := range records {
		s, ok := byMethod[r.Method]
		if !ok {
			s = &MethodSummary{Method: r.Method, AmountBase: decimal.Zero}
			byMethod[r.Method] = s
		}
		s.Count++
		s.AmountBase = s.AmountBase.Add(r.AmountBase)
	}

	summary := make([]MethodSummary, 0, len(byMethod))
	for _, m := range AllPaymentMethods() {
		if s, ok := byMethod[m]; ok {
			summary = append(summary, *s)
		}
	}
	return summary
}
