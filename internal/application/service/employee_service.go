package service

import (
	"context"

	"github.com/almadina/pos-api/internal/domain/entity"
	"github.com/almadina/pos-api/internal/domain/enum"
	"github.com/almadina/pos-api/internal/domain/repository"
	"github.com/almadina/pos-api/pkg/apperror"
)

// EmployeeService handles the staff roster
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// CreateEmployeeInput represents the create employee input.
// Salary is in currency units, not cents.
type CreateEmployeeInput struct {
	Name       string
	Role       string
	SalaryType enum.SalaryType
	Salary     float64
	Status     enum.EmployeeStatus
}

// UpdateEmployeeInput represents the update employee input. Nil fields are
// left unchanged.
type UpdateEmployeeInput struct {
	Name       *string
	Role       *string
	SalaryType *enum.SalaryType
	Salary     *float64
	Status     *enum.EmployeeStatus
}

// CreateEmployee adds a staff member to the roster
func (s *EmployeeService) CreateEmployee(ctx context.Context, input *CreateEmployeeInput) (*entity.Employee, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Employee name is required")
	}
	if input.Salary < 0 {
		return nil, apperror.NewBadRequestError("Salary cannot be negative")
	}

	employee := &entity.Employee{
		Name:       input.Name,
		Role:       input.Role,
		SalaryType: input.SalaryType,
		Salary:     entity.ToCents(input.Salary),
		Status:     input.Status,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// GetEmployee retrieves an employee by ID
func (s *EmployeeService) GetEmployee(ctx context.Context, id uint) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// UpdateEmployee applies a partial update to a roster entry
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uint, input *UpdateEmployeeInput) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewBadRequestError("Employee name cannot be empty")
		}
		employee.Name = *input.Name
	}
	if input.Role != nil {
		employee.Role = *input.Role
	}
	if input.SalaryType != nil {
		employee.SalaryType = *input.SalaryType
	}
	if input.Salary != nil {
		if *input.Salary < 0 {
			return nil, apperror.NewBadRequestError("Salary cannot be negative")
		}
		employee.Salary = entity.ToCents(*input.Salary)
	}
	if input.Status != nil {
		employee.Status = *input.Status
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee removes a staff member from the roster
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uint) error {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperror.NewNotFoundError("Employee")
	}
	return s.employeeRepo.Delete(ctx, id)
}

// ListEmployees returns the full roster
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]entity.Employee, error) {
	return s.employeeRepo.List(ctx)
}
