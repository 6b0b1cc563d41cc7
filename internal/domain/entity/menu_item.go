package entity

import (
	"encoding/json"
	"time"

	"github.com/almadina/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// MenuItem represents a purchasable dish on the menu
type MenuItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Category  enum.Category   `gorm:"default:0;index" json:"category"`
	Price     int64           `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Status    enum.ItemStatus `gorm:"default:0" json:"status"`
	ImageURL  *string         `gorm:"size:255" json:"image_url,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (m MenuItem) MarshalJSON() ([]byte, error) {
	type Alias MenuItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(m),
		Price: float64(m.Price) / 100,
	})
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}

// IsAvailable reports whether the item can be added to a new order.
func (m *MenuItem) IsAvailable() bool {
	return m.Status == enum.ItemStatusAvailable
}

// GetPriceDecimal returns the price as a decimal (for display)
func (m *MenuItem) GetPriceDecimal() float64 {
	return float64(m.Price) / 100
}

// SetPriceFromDecimal sets the price from a decimal value
func (m *MenuItem) SetPriceFromDecimal(price float64) {
	m.Price = ToCents(price)
}
