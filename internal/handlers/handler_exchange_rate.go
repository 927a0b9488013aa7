package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pos_payments/internal/core/ports/services"
	"github.com/SscSPs/pos_payments/internal/dto"
	"github.com/SscSPs/pos_payments/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	baseCurrency        string
}

func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade, baseCurrency string) *exchangeRateHandler {
	return &exchangeRateHandler{exchangeRateService: ers, baseCurrency: baseCurrency}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
// Reads are public; updates run the given guard handlers first.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade, baseCurrency string, guard ...gin.HandlerFunc) {
	h := newExchangeRateHandler(exchangeRateService, baseCurrency)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.GET("/:currency", h.getExchangeRate)
		exchangeRates.PUT("/:currency", append(guard, h.setExchangeRate)...)
	}
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Description Lists the rates currently applied to conversions, in base currency units per foreign unit
// @Tags exchange rates
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 500 {object} map[string]string "Failed to list exchange rates"
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list exchange rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates, h.baseCurrency))
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Retrieves the current rate of a currency against the base currency
// @Tags exchange rates
// @Produce  json
// @Param   currency path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code format"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Router /exchange-rates/{currency} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	currency := c.Param("currency")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency_code", currency))

	if len(currency) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), currency)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate, h.baseCurrency))
}

// setExchangeRate godoc
// @Summary Set an exchange rate
// @Description Replaces the rate of a currency. Payments already processed keep the rate they were created with
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   currency path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   rate body dto.SetExchangeRateRequest true "New rate"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code or rate"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to set exchange rate"
// @Security BearerAuth
// @Router /exchange-rates/{currency} [put]
func (h *exchangeRateHandler) setExchangeRate(c *gin.Context) {
	currency := c.Param("currency")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency_code", currency))

	var req dto.SetExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.exchangeRateService.SetExchangeRate(c.Request.Context(), currency, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to set exchange rate")
		return
	}

	logger.Info("Exchange rate set", slog.String("rate", rate.Rate.String()))
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate, h.baseCurrency))
}
