package entity

import (
	"encoding/json"
	"time"

	"github.com/almadina/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Expense represents a dated back-office expense record
type Expense struct {
	ID          uint                 `gorm:"primaryKey" json:"id"`
	Date        time.Time            `gorm:"not null;index" json:"date"`
	Category    enum.ExpenseCategory `gorm:"default:4" json:"category"`
	Description string               `gorm:"size:255;not null" json:"description"`
	Amount      int64                `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	DeletedAt   gorm.DeletedAt       `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (e Expense) MarshalJSON() ([]byte, error) {
	type Alias Expense
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(e),
		Amount: float64(e.Amount) / 100,
	})
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
