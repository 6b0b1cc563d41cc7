package request

// CreateExpenseRequest represents an expense creation request.
// Date is "2006-01-02"; empty means today.
type CreateExpenseRequest struct {
	Date        string  `json:"date"`
	Category    int     `json:"category" binding:"min=0,max=4"`
	Description string  `json:"description" binding:"required,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}
