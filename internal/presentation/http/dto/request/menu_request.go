package request

// CreateMenuItemRequest represents a menu item creation request
type CreateMenuItemRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Category int     `json:"category" binding:"min=0,max=10"`
	Price    float64 `json:"price" binding:"min=0"`
	Status   int     `json:"status" binding:"min=0,max=1"`
	ImageURL *string `json:"image_url"`
}

// UpdateMenuItemRequest represents a menu item update request
type UpdateMenuItemRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Category *int     `json:"category" binding:"omitempty,min=0,max=10"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"`
	Status   *int     `json:"status" binding:"omitempty,min=0,max=1"`
	ImageURL *string  `json:"image_url"`
}

// MenuFilterRequest represents menu filter parameters
type MenuFilterRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}
