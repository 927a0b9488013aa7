package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pos_payments/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidRate),
		errors.Is(err, apperrors.ErrUnknownMethod):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidPayment),
		errors.Is(err, apperrors.ErrInsufficientPayment):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError writes err as a JSON error body. Internal errors are
// logged and replaced by fallbackMsg.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallbackMsg})
		return
	}

	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	body := gin.H{"error": err.Error()}
	var invalid *apperrors.InvalidPaymentError
	if errors.As(err, &invalid) {
		body["paymentIndex"] = invalid.Index
		body["method"] = invalid.Method
		body["reason"] = invalid.Reason
	}
	c.JSON(status, body)
}

// bindError responds to a request body or query that failed to bind.
func bindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
