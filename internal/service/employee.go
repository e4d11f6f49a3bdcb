package service

import (
	"errors"
	"fmt"
	"time"

	"event-decor-backend/internal/database/models"
	apperrors "event-decor-backend/internal/errors"
	"event-decor-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeService handles business logic for employees
type EmployeeService struct {
	repo      repository.EmployeeRepositoryInterface
	validator *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{repo: repo, validator: validator}
}

// CreateEmployeeRequest represents the request to create an employee
type CreateEmployeeRequest struct {
	FullName   string              `json:"full_name" validate:"required,min=1,max=100"`
	Email      string              `json:"email" validate:"required,email"`
	Phone      string              `json:"phone,omitempty"`
	Role       models.EmployeeRole `json:"role" validate:"required"`
	HourlyRate float64             `json:"hourly_rate" validate:"min=0"`
}

// UpdateEmployeeRequest represents the request to update an employee
type UpdateEmployeeRequest struct {
	FullName   *string              `json:"full_name,omitempty"`
	Phone      *string              `json:"phone,omitempty"`
	Role       *models.EmployeeRole `json:"role,omitempty"`
	HourlyRate *float64             `json:"hourly_rate,omitempty"`
	IsActive   *bool                `json:"is_active,omitempty"`
}

// EmployeeResponse represents the response for employee operations
type EmployeeResponse struct {
	ID         uuid.UUID           `json:"id"`
	FullName   string              `json:"full_name"`
	Email      string              `json:"email"`
	Phone      string              `json:"phone"`
	Role       models.EmployeeRole `json:"role"`
	HourlyRate float64             `json:"hourly_rate"`
	IsActive   bool                `json:"is_active"`
	CreatedAt  string              `json:"created_at"`
	UpdatedAt  string              `json:"updated_at"`
}

// EmployeeListResponse represents a paginated list of employees
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create creates a new employee
func (s *EmployeeService) Create(req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", "invalid employee role")
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmployeeEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check employee email: %w", err)
	}

	employee := &models.Employee{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       req.Role,
		HourlyRate: req.HourlyRate,
		IsActive:   true,
	}

	if err := s.repo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return s.toResponse(employee), nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrEmployeeNotFound, "get employee")
	}
	return s.toResponse(employee), nil
}

// GetAll retrieves employees, optionally only active ones
func (s *EmployeeService) GetAll(page, pageSize int, activeOnly bool) (*EmployeeListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)
	offset := (page - 1) * pageSize

	var employees []models.Employee
	var total int64
	var err error
	if activeOnly {
		employees, total, err = s.repo.GetActive(pageSize, offset)
	} else {
		employees, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = *s.toResponse(&employees[i])
	}

	return &EmployeeListResponse{
		Employees: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update updates an employee
func (s *EmployeeService) Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrEmployeeNotFound, "get employee")
	}

	if req.FullName != nil {
		employee.FullName = *req.FullName
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, apperrors.NewValidationError("role", "invalid employee role")
		}
		employee.Role = *req.Role
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate < 0 {
			return nil, apperrors.NewValidationError("hourly_rate", "must not be negative")
		}
		employee.HourlyRate = *req.HourlyRate
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return s.toResponse(employee), nil
}

// Delete deletes an employee
func (s *EmployeeService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return notFoundOr(err, apperrors.ErrEmployeeNotFound, "get employee")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func (s *EmployeeService) toResponse(employee *models.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:         employee.ID,
		FullName:   employee.FullName,
		Email:      employee.Email,
		Phone:      employee.Phone,
		Role:       employee.Role,
		HourlyRate: employee.HourlyRate,
		IsActive:   employee.IsActive,
		CreatedAt:  employee.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  employee.UpdatedAt.Format(time.RFC3339),
	}
}
