package handlers

import (
	"net/http"

	"github.com/SscSPs/pos_payments/cmd/docs"
	portssvc "github.com/SscSPs/pos_payments/internal/core/ports/services"
	"github.com/SscSPs/pos_payments/internal/middleware"
	"github.com/SscSPs/pos_payments/internal/platform/config"
	"github.com/SscSPs/pos_payments/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	RegisterValidation()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group. Quotes and rate reads are
// public; checkouts need a signed-in user and rate updates an admin.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")
	auth := middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)

	registerPaymentRoutes(v1, service.Payment)
	registerExchangeRateRoutes(v1, service.ExchangeRate, service.Payment.BaseCurrency(),
		auth, middleware.RequireRole(utils.RoleAdmin))

	authed := v1.Group("", auth, middleware.RequireRole(utils.RoleCashier, utils.RoleAdmin))
	registerCheckoutRoutes(authed, service.Checkout, service.Payment)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
