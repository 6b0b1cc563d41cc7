package repository

import (
	"context"
	"time"

	"github.com/almadina/pos-api/internal/domain/entity"
)

// ExpenseRepository defines the interface for the expense ledger.
// All listings are sorted descending by expense date.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id uint) (*entity.Expense, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]entity.Expense, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]entity.Expense, error)
}
