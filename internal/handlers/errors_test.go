package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/pos_payments/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: bad", apperrors.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: zero", apperrors.ErrInvalidRate), http.StatusBadRequest},
		{&apperrors.UnknownMethodError{Method: "barter"}, http.StatusBadRequest},
		{&apperrors.InvalidPaymentError{Index: 0, Method: "credit_card", Reason: "bad"}, http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: short", apperrors.ErrInsufficientPayment), http.StatusUnprocessableEntity},
		{apperrors.NewNotFoundError("checkout"), http.StatusNotFound},
		{apperrors.ErrDuplicate, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusForError(tt.err), tt.err.Error())
	}
}
