package app

import (
	"go-bizdash/internal/config"
	"go-bizdash/internal/middleware"
	"go-bizdash/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// BuildApp wires infrastructure and registers every module's routes on the
// router. The caller owns the server lifecycle.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	logger := zap.L()

	dsn := connection.PostgresDSN(cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)

	if cfg.MigrateOnStart {
		if err := connection.RunMigrations(dsn); err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	gormDB, err := connection.ConnectGORMWithRetry(dsn, 5)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return registerModules(router, cfg, sqlDB, gormDB, redisClient)
}
