package entity

// ReceiptHeader holds the restaurant header printed at the top of a receipt.
type ReceiptHeader struct {
	RestaurantName string `json:"restaurant_name"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable receipt.
// It is NOT a database entity — it is composed from order data at print time.
type Receipt struct {
	Header         ReceiptHeader `json:"header"`
	OrderNo        string        `json:"order_no"`
	Date           string        `json:"date"`
	Time           string        `json:"time"`
	Items          []ReceiptItem `json:"items"`
	Subtotal       float64       `json:"subtotal"`
	Tax            float64       `json:"tax"`
	Discount       float64       `json:"discount"`
	ServiceCharge  float64       `json:"service_charge"`
	GrandTotal     float64       `json:"grand_total"`
	CurrencySymbol string        `json:"currency_symbol"`
}
