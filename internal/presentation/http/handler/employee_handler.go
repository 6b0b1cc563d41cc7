package handler

import (
	"strconv"

	"github.com/almadina/pos-api/internal/application/service"
	"github.com/almadina/pos-api/internal/domain/enum"
	"github.com/almadina/pos-api/internal/presentation/http/dto/request"
	"github.com/almadina/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles employee roster HTTP requests
type EmployeeHandler struct {
	employeeService *service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// List handles GET /employees
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Employees retrieved successfully", employees)
}

// Get handles GET /employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Employee retrieved successfully", employee)
}

// Create handles POST /employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req request.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), &service.CreateEmployeeInput{
		Name:       req.Name,
		Role:       req.Role,
		SalaryType: enum.SalaryType(req.SalaryType),
		Salary:     req.Salary,
		Status:     enum.EmployeeStatus(req.Status),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Employee created successfully", employee)
}

// Update handles PUT /employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	var req request.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateEmployeeInput{
		Name:   req.Name,
		Role:   req.Role,
		Salary: req.Salary,
	}
	if req.SalaryType != nil {
		salaryType := enum.SalaryType(*req.SalaryType)
		input.SalaryType = &salaryType
	}
	if req.Status != nil {
		status := enum.EmployeeStatus(*req.Status)
		input.Status = &status
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), uint(id), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Employee updated successfully", employee)
}

// Delete handles DELETE /employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Employee deleted successfully", nil)
}
