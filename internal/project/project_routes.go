package project

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
	projects := r.Group("/projects")
	projects.Use(authMW)
	projects.Use(middleware.ContextLogger(logger))
	{
		projects.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "project", "read"),
			handler.GetAll,
		)

		projects.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "project", "read"),
			handler.GetById,
		)

		projects.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(rbacService, "project", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		projects.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(rbacService, "project", "update"),
			handler.Update,
		)

		projects.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(rbacService, "project", "delete"),
			handler.Delete,
		)
	}
}
