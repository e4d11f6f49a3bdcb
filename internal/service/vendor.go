package service

import (
	"fmt"
	"time"

	"event-decor-backend/internal/database/models"
	apperrors "event-decor-backend/internal/errors"
	"event-decor-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// VendorService handles business logic for external suppliers
type VendorService struct {
	repo      repository.VendorRepositoryInterface
	validator *validator.Validate
}

// NewVendorService creates a new vendor service
func NewVendorService(repo repository.VendorRepositoryInterface, validator *validator.Validate) *VendorService {
	return &VendorService{repo: repo, validator: validator}
}

// CreateVendorRequest represents the request to create a vendor
type CreateVendorRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Category    string  `json:"category,omitempty"`
	ContactName string  `json:"contact_name,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	Email       string  `json:"email,omitempty" validate:"omitempty,email"`
	Rating      float64 `json:"rating" validate:"min=0,max=5"`
}

// UpdateVendorRequest represents the request to update a vendor
type UpdateVendorRequest struct {
	Name        *string  `json:"name,omitempty"`
	Category    *string  `json:"category,omitempty"`
	ContactName *string  `json:"contact_name,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// VendorResponse represents the response for vendor operations
type VendorResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	ContactName string    `json:"contact_name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Rating      float64   `json:"rating"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// VendorListResponse represents a paginated list of vendors
type VendorListResponse struct {
	Vendors  []VendorResponse `json:"vendors"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new vendor
func (s *VendorService) Create(req *CreateVendorRequest) (*VendorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	vendor := &models.Vendor{
		Name:        req.Name,
		Category:    req.Category,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Rating:      req.Rating,
		IsActive:    true,
	}

	if err := s.repo.Create(vendor); err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}
	return s.toResponse(vendor), nil
}

// GetByID retrieves a vendor by ID
func (s *VendorService) GetByID(id uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrVendorNotFound, "get vendor")
	}
	return s.toResponse(vendor), nil
}

// GetAll retrieves vendors, optionally filtered by category
func (s *VendorService) GetAll(page, pageSize int, category string) (*VendorListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)
	offset := (page - 1) * pageSize

	var vendors []models.Vendor
	var total int64
	var err error
	if category != "" {
		vendors, total, err = s.repo.GetByCategory(category, pageSize, offset)
	} else {
		vendors, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vendors: %w", err)
	}

	responses := make([]VendorResponse, len(vendors))
	for i := range vendors {
		responses[i] = *s.toResponse(&vendors[i])
	}

	return &VendorListResponse{
		Vendors:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a vendor
func (s *VendorService) Update(id uuid.UUID, req *UpdateVendorRequest) (*VendorResponse, error) {
	vendor, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrVendorNotFound, "get vendor")
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.Category != nil {
		vendor.Category = *req.Category
	}
	if req.ContactName != nil {
		vendor.ContactName = *req.ContactName
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.Email != nil {
		vendor.Email = *req.Email
	}
	if req.Rating != nil {
		if *req.Rating < 0 || *req.Rating > 5 {
			return nil, apperrors.NewValidationError("rating", "must be between 0 and 5")
		}
		vendor.Rating = *req.Rating
	}
	if req.IsActive != nil {
		vendor.IsActive = *req.IsActive
	}

	if err := s.repo.Update(vendor); err != nil {
		return nil, fmt.Errorf("failed to update vendor: %w", err)
	}
	return s.toResponse(vendor), nil
}

// Delete deletes a vendor
func (s *VendorService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return notFoundOr(err, apperrors.ErrVendorNotFound, "get vendor")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	return nil
}

func (s *VendorService) toResponse(vendor *models.Vendor) *VendorResponse {
	return &VendorResponse{
		ID:          vendor.ID,
		Name:        vendor.Name,
		Category:    vendor.Category,
		ContactName: vendor.ContactName,
		Phone:       vendor.Phone,
		Email:       vendor.Email,
		Rating:      vendor.Rating,
		IsActive:    vendor.IsActive,
		CreatedAt:   vendor.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   vendor.UpdatedAt.Format(time.RFC3339),
	}
}
