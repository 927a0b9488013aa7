package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pos_payments/internal/core/ports/services"
	"github.com/SscSPs/pos_payments/internal/dto"
	"github.com/SscSPs/pos_payments/internal/middleware"
	"github.com/gin-gonic/gin"
)

// checkoutHandler handles HTTP requests related to checkouts.
type checkoutHandler struct {
	checkoutService portssvc.CheckoutSvcFacade
	paymentService  portssvc.PaymentSvcFacade
}

func newCheckoutHandler(cs portssvc.CheckoutSvcFacade, ps portssvc.PaymentSvcFacade) *checkoutHandler {
	return &checkoutHandler{checkoutService: cs, paymentService: ps}
}

// registerCheckoutRoutes registers checkout routes. rg must already require authentication.
func registerCheckoutRoutes(rg *gin.RouterGroup, checkoutService portssvc.CheckoutSvcFacade, paymentService portssvc.PaymentSvcFacade) {
	h := newCheckoutHandler(checkoutService, paymentService)

	checkouts := rg.Group("/checkouts")
	{
		checkouts.POST("", h.createCheckout)
		checkouts.POST("/preview", h.previewCheckout)
		checkouts.GET("", h.listCheckouts)
		checkouts.GET("/:checkoutID", h.getCheckout)
	}
}

// createCheckout godoc
// @Summary Settle a sale
// @Description Processes one or more payments against a sale total and stores the result. Every payment must pass validation and the payments must cover the total
// @Tags checkouts
// @Accept  json
// @Produce  json
// @Param   checkout body dto.CreateCheckoutRequest true "Sale total and payments"
// @Success 201 {object} dto.CheckoutResponse
// @Failure 400 {object} map[string]string "Invalid input format or unknown method"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]interface{} "A payment failed validation or the total is not covered"
// @Failure 500 {object} map[string]string "Failed to create checkout"
// @Security BearerAuth
// @Router /checkouts [post]
func (h *checkoutHandler) createCheckout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	cashierID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Cashier ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	checkout, err := h.checkoutService.CreateCheckout(c.Request.Context(), req, cashierID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create checkout")
		return
	}

	logger.Info("Checkout created", slog.String("checkout_id", checkout.CheckoutID))
	c.JSON(http.StatusCreated, dto.ToCheckoutResponse(checkout))
}

// previewCheckout godoc
// @Summary Preview a sale settlement
// @Description Processes the payments without storing them. Under-payment is reported as a shortfall instead of an error
// @Tags checkouts
// @Accept  json
// @Produce  json
// @Param   checkout body dto.CreateCheckoutRequest true "Sale total and payments"
// @Success 200 {object} dto.MixedPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input format or unknown method"
// @Failure 422 {object} map[string]interface{} "A payment failed validation"
// @Security BearerAuth
// @Router /checkouts/preview [post]
func (h *checkoutHandler) previewCheckout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	result, err := h.paymentService.PreviewCheckout(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to preview checkout")
		return
	}
	c.JSON(http.StatusOK, dto.ToMixedPaymentResponse(result))
}

// listCheckouts godoc
// @Summary List checkouts
// @Description Lists stored checkouts, newest first
// @Tags checkouts
// @Produce  json
// @Param   limit query int false "Page size (1-100, default 20)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListCheckoutsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list checkouts"
// @Security BearerAuth
// @Router /checkouts [get]
func (h *checkoutHandler) listCheckouts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCheckoutsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	resp, err := h.checkoutService.ListCheckouts(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list checkouts")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getCheckout godoc
// @Summary Get a checkout
// @Description Retrieves a stored checkout with its payments
// @Tags checkouts
// @Produce  json
// @Param   checkoutID path string true "Checkout ID"
// @Success 200 {object} dto.CheckoutResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Checkout not found"
// @Failure 500 {object} map[string]string "Failed to get checkout"
// @Security BearerAuth
// @Router /checkouts/{checkoutID} [get]
func (h *checkoutHandler) getCheckout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	checkoutID := c.Param("checkoutID")

	checkout, err := h.checkoutService.GetCheckoutByID(c.Request.Context(), checkoutID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("checkout_id", checkoutID)), err, "Failed to get checkout")
		return
	}
	c.JSON(http.StatusOK, dto.ToCheckoutResponse(checkout))
}
