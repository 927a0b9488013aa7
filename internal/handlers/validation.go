package handlers

import (
	"math"
	"reflect"
	"sync"

	"github.com/SscSPs/pos_payments/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidationOnce sync.Once

// RegisterValidation teaches gin's validator about decimal.Decimal so that
// tags such as `binding:"required,gt=0"` work on money fields.
func RegisterValidation() {
	registerValidationOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	})
}

// decimalValue exposes a decimal to the validator as a float64. A zero
// decimal maps to 0 so "required" rejects it. Amounts outside the accepted
// range map to NaN, which fails every numeric comparison tag.
func decimalValue(field reflect.Value) interface{} {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	if !domain.ValidInputAmount(d) {
		return math.NaN()
	}
	f, _ := d.Float64()
	return f
}

// parseAmountQuery reads a non-negative amount within domain.MaxAmount.
func parseAmountQuery(raw string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.IsNegative() || !domain.ValidInputAmount(amount) {
		return decimal.Zero, false
	}
	return amount, true
}
