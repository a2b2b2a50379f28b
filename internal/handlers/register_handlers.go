package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/nunsahui/cafeledger/internal/core/domain"
	portssvc "github.com/nunsahui/cafeledger/internal/core/ports/services"
	"github.com/nunsahui/cafeledger/internal/middleware"
	"github.com/nunsahui/cafeledger/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	authLimiter *limiter.Limiter,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, services.Auth, authLimiter)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// entity-specific route registrations. Every group below the auth middleware
// also declares the capability its operations require.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerFinanceRoutes(v1, services.Finance)
	registerDashboardRoutes(v1, services.Reporting)
	registerReportRoutes(v1, services.Reporting)
	registerInventoryRoutes(v1, services.Inventory)
	registerSettingsRoutes(v1, services.Settings)
	registerAuditRoutes(v1, services.Audit)
	registerUserRoutes(v1, services.User)
}

// requireCap is shorthand for the capability middleware.
func requireCap(capability domain.Capability) gin.HandlerFunc {
	return middleware.RequireCapability(capability)
}
