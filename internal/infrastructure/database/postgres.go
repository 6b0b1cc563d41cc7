package database

import (
	"fmt"
	"log"
	"time"

	"github.com/almadina/pos-api/internal/config"
	"github.com/almadina/pos-api/internal/domain/entity"
	"github.com/almadina/pos-api/internal/domain/enum"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Employee{},
		&entity.Expense{},
		&entity.BillingSettings{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default users, billing settings
// and the starter catalog. Each block is idempotent: existing rows are
// left untouched on restart.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	seedUsers(db)
	seedBillingSettings(db)
	seedMenu(db)
	seedEmployees(db)
	seedExpenses(db)

	log.Println("Default data seeding completed")
	return nil
}

func seedUsers(db *gorm.DB) {
	users := []struct {
		name     string
		username string
		password string
		role     string
	}{
		{"Administrator", "admin", viper.GetString("ADMIN_PASSWORD"), entity.RoleAdmin},
		{"Staff", "user", viper.GetString("STAFF_PASSWORD"), entity.RoleStaff},
	}

	for _, u := range users {
		if u.password == "" {
			// Development fallback matching the default frontend logins
			u.password = u.username
		}

		var existing entity.User
		if err := db.Where("username = ?", u.username).First(&existing).Error; err == nil {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Warning: failed to hash password for %s: %v", u.username, err)
			continue
		}

		user := entity.User{
			Name:     u.name,
			Username: u.username,
			Password: string(hashed),
			Role:     u.role,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Warning: failed to create user %s: %v", u.username, err)
		} else {
			log.Printf("Seeded user: %s (%s)", u.username, u.role)
		}
	}
}

func seedBillingSettings(db *gorm.DB) {
	var existing entity.BillingSettings
	if err := db.First(&existing).Error; err == nil {
		return
	}

	settings := entity.DefaultBillingSettings()
	if err := db.Create(settings).Error; err != nil {
		log.Printf("Warning: failed to create billing settings: %v", err)
	}
}

func seedMenu(db *gorm.DB) {
	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	if count > 0 {
		return
	}

	type item struct {
		name     string
		category enum.Category
		price    int64 // cents
		status   enum.ItemStatus
	}

	items := []item{
		{"Chicken Biriyani", enum.CategoryBiriyani, 18000, enum.ItemStatusAvailable},
		{"Mutton Biriyani", enum.CategoryBiriyani, 22000, enum.ItemStatusAvailable},
		{"Beef Biriyani", enum.CategoryBiriyani, 20000, enum.ItemStatusNotAvailable},
		{"Basmati Kacchi", enum.CategoryKacchi, 25000, enum.ItemStatusAvailable},
		{"Mutton Kacchi", enum.CategoryKacchi, 28000, enum.ItemStatusAvailable},
		{"Chicken Fry", enum.CategoryChicken, 9000, enum.ItemStatusAvailable},
		{"Chicken Roast", enum.CategoryChicken, 12000, enum.ItemStatusAvailable},
		{"Spicy Chicken Curry", enum.CategoryChicken, 15000, enum.ItemStatusAvailable},
		{"Beef Curry", enum.CategoryBeef, 16000, enum.ItemStatusAvailable},
		{"Beef Bhuna", enum.CategoryBeef, 18000, enum.ItemStatusAvailable},
		{"Mutton Curry", enum.CategoryMutton, 20000, enum.ItemStatusAvailable},
		{"Mutton Rezala", enum.CategoryMutton, 22000, enum.ItemStatusAvailable},
		{"Rui Fish Curry", enum.CategoryFish, 13000, enum.ItemStatusAvailable},
		{"Ilish Fish Fry", enum.CategoryFish, 25000, enum.ItemStatusAvailable},
		{"Mixed Vegetables", enum.CategoryVegetables, 8000, enum.ItemStatusAvailable},
		{"Dal Fry", enum.CategoryVegetables, 5000, enum.ItemStatusAvailable},
		{"Plain Rice", enum.CategoryRice, 3000, enum.ItemStatusAvailable},
		{"Polao", enum.CategoryRice, 7000, enum.ItemStatusAvailable},
		{"Plain Khichuri", enum.CategoryKhichuri, 8000, enum.ItemStatusAvailable},
		{"Beef Khichuri", enum.CategoryKhichuri, 15000, enum.ItemStatusAvailable},
		{"Cold Drink", enum.CategoryDrinks, 3000, enum.ItemStatusAvailable},
		{"Mineral Water", enum.CategoryDrinks, 2000, enum.ItemStatusAvailable},
		{"Lassi", enum.CategoryDrinks, 6000, enum.ItemStatusAvailable},
		{"Firni", enum.CategoryDesserts, 5000, enum.ItemStatusAvailable},
		{"Caramel Pudding", enum.CategoryDesserts, 7000, enum.ItemStatusAvailable},
	}

	for _, it := range items {
		menuItem := entity.MenuItem{
			Name:     it.name,
			Category: it.category,
			Price:    it.price,
			Status:   it.status,
		}
		if err := db.Create(&menuItem).Error; err != nil {
			log.Printf("Warning: failed to seed menu item %s: %v", it.name, err)
		}
	}
	log.Printf("Seeded %d menu items", len(items))
}

func seedEmployees(db *gorm.DB) {
	var count int64
	db.Model(&entity.Employee{}).Count(&count)
	if count > 0 {
		return
	}

	employees := []entity.Employee{
		{Name: "Rahim Sheikh", Role: "Head Chef", SalaryType: enum.SalaryTypeMonthly, Salary: 4000000, Status: enum.EmployeeStatusActive},
		{Name: "Karim Ahmed", Role: "Waiter", SalaryType: enum.SalaryTypeMonthly, Salary: 1500000, Status: enum.EmployeeStatusActive},
		{Name: "Fatima Begum", Role: "Waiter", SalaryType: enum.SalaryTypeMonthly, Salary: 1500000, Status: enum.EmployeeStatusActive},
		{Name: "Sultan Khan", Role: "Manager", SalaryType: enum.SalaryTypeMonthly, Salary: 5000000, Status: enum.EmployeeStatusActive},
		{Name: "Jahanara Islam", Role: "Cleaner", SalaryType: enum.SalaryTypeDaily, Salary: 50000, Status: enum.EmployeeStatusActive},
		{Name: "Ali Hossain", Role: "Dishwasher", SalaryType: enum.SalaryTypeDaily, Salary: 45000, Status: enum.EmployeeStatusInactive},
	}

	for i := range employees {
		if err := db.Create(&employees[i]).Error; err != nil {
			log.Printf("Warning: failed to seed employee %s: %v", employees[i].Name, err)
		}
	}
	log.Printf("Seeded %d employees", len(employees))
}

func seedExpenses(db *gorm.DB) {
	var count int64
	db.Model(&entity.Expense{}).Count(&count)
	if count > 0 {
		return
	}

	now := time.Now()
	monthDay := func(day int) time.Time {
		return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, time.Local)
	}

	expenses := []entity.Expense{
		{Date: monthDay(1), Category: enum.ExpenseCategoryRent, Description: "Monthly Rent", Amount: 8000000},
		{Date: monthDay(5), Category: enum.ExpenseCategorySupplies, Description: "Vegetables & Groceries", Amount: 1500000},
		{Date: monthDay(10), Category: enum.ExpenseCategoryUtilities, Description: "Electricity Bill", Amount: 1200000},
		{Date: monthDay(12), Category: enum.ExpenseCategorySupplies, Description: "Meat & Fish", Amount: 2500000},
		{Date: monthDay(15), Category: enum.ExpenseCategoryMaintenance, Description: "Kitchen Equipment Repair", Amount: 500000},
		{Date: monthDay(20), Category: enum.ExpenseCategoryUtilities, Description: "Gas Bill", Amount: 300000},
	}

	for i := range expenses {
		if err := db.Create(&expenses[i]).Error; err != nil {
			log.Printf("Warning: failed to seed expense %s: %v", expenses[i].Description, err)
		}
	}
	log.Printf("Seeded %d expenses", len(expenses))
}
