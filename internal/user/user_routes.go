package user

import (
	"go-bizdash/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	users := r.Group("/users")
	users.Use(middleware.ContextLogger(logger))
	{
		users.POST("/register",
			middleware.RateLimitByIP(0.5, 2),
			handler.Register,
		)

		users.POST("/login",
			middleware.RateLimitByIP(1, 5),
			handler.Login,
		)

		users.POST("/logout",
			middleware.RateLimitByIP(1, 5),
			handler.Logout,
		)

		users.POST("/reset-password",
			middleware.RateLimitByIP(0.5, 2),
			handler.ResetPassword,
		)
	}
}
