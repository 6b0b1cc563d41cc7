package entity

import (
	"encoding/json"
	"time"

	"github.com/almadina/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Employee represents a restaurant staff member on the payroll
type Employee struct {
	ID         uint                `gorm:"primaryKey" json:"id"`
	Name       string              `gorm:"size:255;not null" json:"name"`
	Role       string              `gorm:"size:100;not null" json:"role"`
	SalaryType enum.SalaryType     `gorm:"default:0" json:"salary_type"`
	Salary     int64               `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Status     enum.EmployeeStatus `gorm:"default:0" json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	DeletedAt  gorm.DeletedAt      `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (e Employee) MarshalJSON() ([]byte, error) {
	type Alias Employee
	return json.Marshal(&struct {
		Alias
		Salary float64 `json:"salary"`
	}{
		Alias:  Alias(e),
		Salary: float64(e.Salary) / 100,
	})
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}

// MonthlyCost returns the payroll cost of this employee for the given calendar
// month: monthly salaries count once, daily salaries are multiplied by the true
// number of days in the month (leap years included).
func (e *Employee) MonthlyCost(year int, month time.Month) int64 {
	if e.SalaryType == enum.SalaryTypeDaily {
		return e.Salary * int64(daysInMonth(year, month))
	}
	return e.Salary
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
