package request

// UpdateSettingsRequest represents a billing settings update request
type UpdateSettingsRequest struct {
	TaxRate           *float64 `json:"tax_rate" binding:"omitempty,min=0,lt=1"`
	ServiceChargeRate *float64 `json:"service_charge_rate" binding:"omitempty,min=0,lt=1"`
	CurrencyCode      *string  `json:"currency_code" binding:"omitempty,max=10"`
	CurrencySymbol    *string  `json:"currency_symbol" binding:"omitempty,max=10"`
	Theme             *string  `json:"theme" binding:"omitempty,oneof=light dark"`
	LogoURL           *string  `json:"logo_url"`
}
