package request

// OrderLineRequest represents one cart line in an order request
type OrderLineRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest represents an order preview or commit request.
// The server recomputes every total from the stored catalog prices; only the
// line selections, discount and service charge flag are taken from the client.
type CreateOrderRequest struct {
	Items            []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
	Discount         float64            `json:"discount"`
	UseServiceCharge bool               `json:"use_service_charge"`
}
