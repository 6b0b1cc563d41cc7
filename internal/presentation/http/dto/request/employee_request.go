package request

// CreateEmployeeRequest represents an employee creation request
type CreateEmployeeRequest struct {
	Name       string  `json:"name" binding:"required,min=2,max=255"`
	Role       string  `json:"role" binding:"required,max=100"`
	SalaryType int     `json:"salary_type" binding:"min=0,max=1"`
	Salary     float64 `json:"salary" binding:"min=0"`
	Status     int     `json:"status" binding:"min=0,max=1"`
}

// UpdateEmployeeRequest represents an employee update request
type UpdateEmployeeRequest struct {
	Name       *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Role       *string  `json:"role" binding:"omitempty,max=100"`
	SalaryType *int     `json:"salary_type" binding:"omitempty,min=0,max=1"`
	Salary     *float64 `json:"salary" binding:"omitempty,min=0"`
	Status     *int     `json:"status" binding:"omitempty,min=0,max=1"`
}
