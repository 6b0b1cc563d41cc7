package entity

import (
	"encoding/json"
	"time"

	"github.com/almadina/pos-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order represents a finalized sale. Totals are captured once at commit time and
// never recomputed, so later changes to the tax or service charge configuration
// leave historical orders untouched.
type Order struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"-"`
	OrderNo       string         `gorm:"size:20;unique;not null" json:"id"`
	OrderDate     time.Time      `gorm:"not null;index" json:"date"`
	TotalItems    int            `gorm:"default:0" json:"total_items"`
	Subtotal      int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Tax           int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Discount      int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	ServiceCharge int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	GrandTotal    int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		Subtotal      float64 `json:"subtotal"`
		Tax           float64 `json:"tax"`
		Discount      float64 `json:"discount"`
		ServiceCharge float64 `json:"service_charge"`
		GrandTotal    float64 `json:"grand_total"`
	}{
		Alias:         Alias(o),
		Subtotal:      float64(o.Subtotal) / 100,
		Tax:           float64(o.Tax) / 100,
		Discount:      float64(o.Discount) / 100,
		ServiceCharge: float64(o.ServiceCharge) / 100,
		GrandTotal:    float64(o.GrandTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// GetGrandTotalDecimal returns the grand total as a decimal
func (o *Order) GetGrandTotalDecimal() float64 {
	return float64(o.GrandTotal) / 100
}

// OrderItem is a line item of an order. Name, category and unit price are a
// snapshot of the menu item taken when the line was added: editing or deleting
// the catalog entry afterwards must not rewrite order history.
type OrderItem struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"-"`
	OrderID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	MenuItemID uint           `gorm:"not null;index" json:"menu_item_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Category   enum.Category  `gorm:"default:0" json:"category"`
	UnitPrice  int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Quantity   int            `gorm:"not null" json:"quantity"`
	LineTotal  int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"price"`
		LineTotal float64 `json:"line_total"`
	}{
		Alias:     Alias(oi),
		UnitPrice: float64(oi.UnitPrice) / 100,
		LineTotal: float64(oi.LineTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
