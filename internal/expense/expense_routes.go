package expense

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
	expenses := r.Group("/expenses")
	expenses.Use(authMW)
	expenses.Use(middleware.ContextLogger(logger))
	{
		expenses.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "expense", "read"),
			handler.GetAll,
		)

		expenses.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "expense", "read"),
			handler.GetById,
		)

		expenses.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(rbacService, "expense", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		expenses.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(rbacService, "expense", "update"),
			handler.Update,
		)

		expenses.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(rbacService, "expense", "delete"),
			handler.Delete,
		)
	}
}
