package draft

import (
	"go-bizdash/internal/middleware"
	"go-bizdash/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authMW gin.HandlerFunc,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	drafts := r.Group("/drafts")
	drafts.Use(authMW)
	drafts.Use(middleware.ContextLogger(logger))
	{
		drafts.POST("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "draft", "create"),
			handler.Open,
		)

		drafts.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.Authorize(rbacService, "draft", "read"),
			handler.Get,
		)

		drafts.POST("/:id/edit",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "draft", "update"),
			handler.Edit,
		)

		drafts.PATCH("/:id",
			middleware.RateLimitByUser(10, 30),
			middleware.Authorize(rbacService, "draft", "update"),
			handler.Apply,
		)

		drafts.POST("/:id/submit",
			middleware.RateLimitByUser(1, 3),
			middleware.Authorize(rbacService, "draft", "update"),
			handler.Submit,
		)

		drafts.DELETE("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "draft", "delete"),
			handler.Cancel,
		)
	}
}
