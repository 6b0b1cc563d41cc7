package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillingSettings is the process-wide billing configuration. A single row is
// created with defaults at startup and mutated in place through the admin
// settings endpoint; the order builder and the reports read the current value.
type BillingSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Billing
	TaxRate           float64 `gorm:"type:decimal(5,4);default:0.05" json:"tax_rate"`
	ServiceChargeRate float64 `gorm:"type:decimal(5,4);default:0.10" json:"service_charge_rate"`
	CurrencyCode      string  `gorm:"size:10;default:'BDT'" json:"currency_code"`
	CurrencySymbol    string  `gorm:"size:10;default:'৳'" json:"currency_symbol"`

	// Appearance
	Theme   string  `gorm:"size:20;default:'light'" json:"theme"`
	LogoURL *string `gorm:"size:255" json:"logo_url,omitempty"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *BillingSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillingSettings model
func (BillingSettings) TableName() string {
	return "billing_settings"
}

// DefaultBillingSettings returns the configuration used until an admin changes it.
func DefaultBillingSettings() *BillingSettings {
	return &BillingSettings{
		TaxRate:           0.05,
		ServiceChargeRate: 0.10,
		CurrencyCode:      "BDT",
		CurrencySymbol:    "৳",
		Theme:             "light",
	}
}
