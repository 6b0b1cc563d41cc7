package routes

import (
	"time"

	"github.com/almadina/pos-api/internal/config"
	"github.com/almadina/pos-api/internal/domain/entity"
	domainRepo "github.com/almadina/pos-api/internal/domain/repository"
	"github.com/almadina/pos-api/internal/presentation/http/handler"
	"github.com/almadina/pos-api/internal/presentation/http/middleware"
	"github.com/almadina/pos-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Menu      *handler.MenuHandler
	Order     *handler.OrderHandler
	Employee  *handler.EmployeeHandler
	Expense   *handler.ExpenseHandler
	Report    *handler.ReportHandler
	Dashboard *handler.DashboardHandler
	Settings  *handler.SettingsHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: deps.Cfg.RateLimit.RequestsPerSecond,
			BurstSize:         deps.Cfg.RateLimit.BurstSize,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

// registerProtectedRoutes wires the authenticated API surface. Read endpoints
// are open to any signed-in account; every mutation of the catalog, roster,
// ledgers or settings goes through the admin gate.
func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	adminOnly := middleware.RequireRole(entity.RoleAdmin)

	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/auth/profile", h.Auth.Profile)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Stats)

	// Menu catalog
	menu := protected.Group("/menu")
	{
		menu.GET("", h.Menu.List)
		menu.GET("/available", h.Menu.ListAvailable)
		menu.GET("/:id", h.Menu.Get)
		menu.POST("", adminOnly, h.Menu.Create)
		menu.PUT("/:id", adminOnly, h.Menu.Update)
		menu.DELETE("/:id", adminOnly, h.Menu.Delete)
	}

	// Orders. Commits require an Idempotency-Key so retried confirms cannot
	// double-charge; previews are free of side effects and need none.
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/preview", h.Order.Preview)
		orders.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.POST("/:id/print", h.Printer.PrintOrder)
		orders.DELETE("/:id", adminOnly, h.Order.Delete)
	}

	// Employee roster
	employees := protected.Group("/employees")
	{
		employees.GET("", h.Employee.List)
		employees.GET("/:id", h.Employee.Get)
		employees.POST("", adminOnly, h.Employee.Create)
		employees.PUT("/:id", adminOnly, h.Employee.Update)
		employees.DELETE("/:id", adminOnly, h.Employee.Delete)
	}

	// Expense ledger
	expenses := protected.Group("/expenses")
	{
		expenses.GET("", h.Expense.List)
		expenses.GET("/:id", h.Expense.Get)
		expenses.POST("", adminOnly, h.Expense.Create)
		expenses.DELETE("/:id", adminOnly, h.Expense.Delete)
	}

	// Reports
	protected.GET("/analytics", adminOnly, h.Report.Analytics)
	protected.GET("/reports/monthly", adminOnly, h.Report.MonthlyProfit)

	// Billing settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", adminOnly, h.Settings.Update)

	// Printer
	protected.GET("/printer/status", h.Printer.Status)
	protected.POST("/printer/test", adminOnly, h.Printer.TestPrint)
}
