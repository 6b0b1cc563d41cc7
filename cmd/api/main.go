package main

import (
	"log"

	"github.com/almadina/pos-api/internal/application/service"
	"github.com/almadina/pos-api/internal/config"
	"github.com/almadina/pos-api/internal/infrastructure/database"
	"github.com/almadina/pos-api/internal/infrastructure/repository"
	"github.com/almadina/pos-api/internal/presentation/http/handler"
	"github.com/almadina/pos-api/internal/presentation/http/routes"
	"github.com/almadina/pos-api/pkg/printer"
	"github.com/almadina/pos-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	menuService := service.NewMenuService(menuRepo)
	orderService := service.NewOrderService(orderRepo, menuRepo, settingsRepo)
	employeeService := service.NewEmployeeService(employeeRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	reportService := service.NewReportService(orderRepo, expenseRepo, employeeRepo)
	dashboardService := service.NewDashboardService(orderRepo)
	printerService := service.NewPrinterService(thermalPrinter, orderRepo, settingsRepo, cfg.Billing, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Menu:      handler.NewMenuHandler(menuService),
		Order:     handler.NewOrderHandler(orderService, printerService),
		Employee:  handler.NewEmployeeHandler(employeeService),
		Expense:   handler.NewExpenseHandler(expenseService),
		Report:    handler.NewReportHandler(reportService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
