package handlers

import (
	"net/http"
	"strings"

	"github.com/SscSPs/pos_payments/internal/core/domain"
	portssvc "github.com/SscSPs/pos_payments/internal/core/ports/services"
	"github.com/SscSPs/pos_payments/internal/dto"
	"github.com/SscSPs/pos_payments/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// paymentHandler serves calculations that do not persist anything.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers the public quote and validation routes.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	rg.GET("/payment-methods", h.listPaymentMethods)
	rg.POST("/change", h.quoteChange)
	rg.GET("/denominations", h.suggestDenominations)
	rg.GET("/tips", h.suggestTips)

	validate := rg.Group("/validate")
	{
		validate.POST("/card", h.validateCard)
		validate.POST("/mobile", h.validateMobile)
	}
}

// listPaymentMethods godoc
// @Summary List payment methods
// @Description Lists the enabled payment methods with their settlement currency and commission
// @Tags payments
// @Produce  json
// @Success 200 {array} dto.PaymentMethodResponse
// @Router /payment-methods [get]
func (h *paymentHandler) listPaymentMethods(c *gin.Context) {
	methods := h.paymentService.ListPaymentMethods(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListPaymentMethodResponse(methods))
}

// quoteChange godoc
// @Summary Quote change for a single payment
// @Description Computes the change due, or the shortfall, when amountPaid in currencyCode is tendered against saleTotal
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   quote body dto.ChangeQuoteRequest true "Payment and sale total"
// @Success 200 {object} dto.ChangeResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Router /change [post]
func (h *paymentHandler) quoteChange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ChangeQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	result, err := h.paymentService.QuoteChange(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to quote change")
		return
	}
	c.JSON(http.StatusOK, dto.ToChangeResponse(result, h.paymentService.BaseCurrency()))
}

// suggestDenominations godoc
// @Summary Suggest bills and coins
// @Description Breaks an amount in base currency into denominations, largest first
// @Tags payments
// @Produce  json
// @Param   amount query string true "Amount in base currency"
// @Success 200 {object} dto.DenominationsResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Router /denominations [get]
func (h *paymentHandler) suggestDenominations(c *gin.Context) {
	amount, ok := parseAmountQuery(c.Query("amount"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a non-negative number no larger than " + domain.MaxAmount.String()})
		return
	}
	c.JSON(http.StatusOK, dto.DenominationsResponse{
		Amount:        amount,
		CurrencyCode:  h.paymentService.BaseCurrency(),
		Denominations: h.paymentService.SuggestDenominations(c.Request.Context(), amount),
	})
}

// suggestTips godoc
// @Summary Suggest tips
// @Description Computes tip amounts for a sale total. Percentages default to 10,15,20
// @Tags payments
// @Produce  json
// @Param   total query string true "Sale total"
// @Param   percentages query string false "Comma separated percentages, e.g. 10,15,20"
// @Success 200 {object} dto.TipsResponse
// @Failure 400 {object} map[string]string "Invalid total or percentages"
// @Router /tips [get]
func (h *paymentHandler) suggestTips(c *gin.Context) {
	total, ok := parseAmountQuery(c.Query("total"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "total must be a non-negative number no larger than " + domain.MaxAmount.String()})
		return
	}

	var percentages []decimal.Decimal
	for _, raw := range strings.Split(c.Query("percentages"), ",") {
		if raw = strings.TrimSpace(raw); raw == "" {
			continue
		}
		p, ok := parseAmountQuery(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "percentages must be non-negative numbers"})
			return
		}
		percentages = append(percentages, p)
	}

	c.JSON(http.StatusOK, dto.TipsResponse{
		SaleTotal: total,
		Tips:      h.paymentService.SuggestTips(c.Request.Context(), total, percentages),
	})
}

// validateCard godoc
// @Summary Validate a card number
// @Description Checks length and checksum of a card number and reports the issuer
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   card body dto.ValidateReferenceRequest true "Card number"
// @Success 200 {object} dto.ValidationResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Router /validate/card [post]
func (h *paymentHandler) validateCard(c *gin.Context) {
	var req dto.ValidateReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err)
		return
	}
	valid, detail := h.paymentService.ValidateCard(c.Request.Context(), req.Number)
	c.JSON(http.StatusOK, dto.ValidationResponse{Valid: valid, Detail: detail})
}

// validateMobile godoc
// @Summary Validate a mobile number
// @Description Checks a local mobile number used for mobile transfers
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   phone body dto.ValidateReferenceRequest true "Phone number"
// @Success 200 {object} dto.ValidationResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Router /validate/mobile [post]
func (h *paymentHandler) validateMobile(c *gin.Context) {
	var req dto.ValidateReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err)
		return
	}
	valid, detail := h.paymentService.ValidateMobileNumber(c.Request.Context(), req.Number)
	c.JSON(http.StatusOK, dto.ValidationResponse{Valid: valid, Detail: detail})
}
