package service

import (
	"context"
	"time"

	"github.com/almadina/pos-api/internal/domain/entity"
	"github.com/almadina/pos-api/internal/domain/enum"
	"github.com/almadina/pos-api/internal/domain/repository"
	"github.com/almadina/pos-api/pkg/apperror"
)

// ExpenseService handles the expense ledger
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// CreateExpenseInput represents the create expense input.
// Amount is in currency units, not cents.
type CreateExpenseInput struct {
	Date        time.Time
	Category    enum.ExpenseCategory
	Description string
	Amount      float64
}

// CreateExpense records a dated expense
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	if input.Description == "" {
		return nil, apperror.NewBadRequestError("Expense description is required")
	}
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Expense amount must be positive")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	expense := &entity.Expense{
		Date:        date,
		Category:    input.Category,
		Description: input.Description,
		Amount:      entity.ToCents(input.Amount),
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, id uint) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// DeleteExpense removes an expense record
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uint) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}
	return s.expenseRepo.Delete(ctx, id)
}

// ListExpenses returns all expenses, most recent first
func (s *ExpenseService) ListExpenses(ctx context.Context) ([]entity.Expense, error) {
	return s.expenseRepo.List(ctx)
}
