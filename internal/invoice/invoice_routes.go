package invoice

import (
	"go-bizdash/internal/middleware"
	"go-bizdash/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authMW gin.HandlerFunc,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	invoices := r.Group("/invoices")
	invoices.Use(authMW)
	invoices.Use(middleware.ContextLogger(logger))
	{
		invoices.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "invoice", "read"),
			handler.GetAll,
		)

		invoices.GET("/export",
			middleware.RateLimitByUser(0.2, 1),
			middleware.Authorize(rbacService, "invoice", "read"),
			handler.Export,
		)

		invoices.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "invoice", "read"),
			handler.GetById,
		)

		invoices.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(rbacService, "invoice", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		invoices.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(rbacService, "invoice", "update"),
			handler.Update,
		)

		invoices.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(rbacService, "invoice", "delete"),
			handler.Delete,
		)
	}
}
