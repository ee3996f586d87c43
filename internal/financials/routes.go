package financials

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
	fin := r.Group("/financials")
	fin.Use(authMW)
	fin.Use(middleware.ContextLogger(logger))
	{
		fin.GET("/overview",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "financials", "read"),
			handler.Overview,
		)

		fin.GET("/projects/:id/chart",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(rbacService, "financials", "read"),
			handler.ProjectChart,
		)
	}
}
