package repository

import (
	"context"

	"github.com/almadina/pos-api/internal/domain/entity"
	"github.com/almadina/pos-api/internal/domain/enum"
)

// EmployeeRepository defines the interface for the employee roster
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id uint) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]entity.Employee, error)
	ListByStatus(ctx context.Context, status enum.EmployeeStatus) ([]entity.Employee, error)
}
