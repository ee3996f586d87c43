package app

import (
	"database/sql"

	"go-bizdash/internal/config"
	"go-bizdash/internal/draft"
	"go-bizdash/internal/employee"
	"go-bizdash/internal/expense"
	"go-bizdash/internal/financials"
	"go-bizdash/internal/invoice"
	"go-bizdash/internal/messaging/kafka"
	"go-bizdash/internal/middleware"
	"go-bizdash/internal/project"
	"go-bizdash/internal/rbac"
	"go-bizdash/internal/shared/counter"
	"go-bizdash/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	projectRepo := project.NewRepository(gormDB)
	invoiceRepo := invoice.NewRepository(gormDB)
	expenseRepo := expense.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	financialsSource := financials.NewSource(gormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	authMW := middleware.AuthMiddleware(cfg.JWTSecret, rdb)

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb)
	projectService := project.NewServiceWithOutbox(db, projectRepo, outboxRepo)
	invoiceService := invoice.NewServiceWithOutbox(db, invoiceRepo, counterRepo, outboxRepo)
	expenseService := expense.NewServiceWithOutbox(db, expenseRepo, outboxRepo)
	userService := user.NewService(userRepo, rdb, cfg.JWTSecret)
	financialsService := financials.NewService(
		financialsSource,
		rdb,
		financials.ParseProfitFormula(cfg.ProfitFormula),
	)
	draftService := draft.NewService(draft.NewRedisStore(rdb), employeeService, projectService)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	projectHandler := project.NewHandler(projectService)
	invoiceHandler := invoice.NewHandler(invoiceService)
	expenseHandler := expense.NewHandler(expenseService)
	userHandler := user.NewHandler(userService)
	financialsHandler := financials.NewHandler(financialsService)
	draftHandler := draft.NewHandler(draftService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		user.RegisterRoutes(api, userHandler, logger)
		employee.RegisterRoutes(api, employeeHandler, authMW, rbacService, rdb, logger)
		project.RegisterRoutes(api, projectHandler, authMW, rbacService, rdb, logger)
		invoice.RegisterRoutes(api, invoiceHandler, authMW, rbacService, rdb, logger)
		expense.RegisterRoutes(api, expenseHandler, authMW, rbacService, rdb, logger)
		financials.RegisterRoutes(api, financialsHandler, authMW, rbacService, logger)
		draft.RegisterRoutes(api, draftHandler, authMW, rbacService, logger)
	}

	return nil
}
