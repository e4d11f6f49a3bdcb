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

// VenueService handles business logic for venues
type VenueService struct {
	repo      repository.VenueRepositoryInterface
	validator *validator.Validate
}

// NewVenueService creates a new venue service
func NewVenueService(repo repository.VenueRepositoryInterface, validator *validator.Validate) *VenueService {
	return &VenueService{repo: repo, validator: validator}
}

// CreateVenueRequest represents the request to create a venue
type CreateVenueRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Address     string  `json:"address,omitempty"`
	City        string  `json:"city,omitempty"`
	Capacity    int     `json:"capacity" validate:"min=0"`
	PricePerDay float64 `json:"price_per_day" validate:"min=0"`
	Phone       string  `json:"phone,omitempty"`
}

// UpdateVenueRequest represents the request to update a venue
type UpdateVenueRequest struct {
	Name        *string  `json:"name,omitempty"`
	Address     *string  `json:"address,omitempty"`
	City        *string  `json:"city,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	PricePerDay *float64 `json:"price_per_day,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// VenueResponse represents the response for venue operations
type VenueResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Capacity    int       `json:"capacity"`
	PricePerDay float64   `json:"price_per_day"`
	Phone       string    `json:"phone"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// VenueListResponse represents a paginated list of venues
type VenueListResponse struct {
	Venues   []VenueResponse `json:"venues"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new venue
func (s *VenueService) Create(req *CreateVenueRequest) (*VenueResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	venue := &models.Venue{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		Capacity:    req.Capacity,
		PricePerDay: req.PricePerDay,
		Phone:       req.Phone,
		IsActive:    true,
	}

	if err := s.repo.Create(venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}
	return s.toResponse(venue), nil
}

// GetByID retrieves a venue by ID
func (s *VenueService) GetByID(id uuid.UUID) (*VenueResponse, error) {
	venue, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrVenueNotFound, "get venue")
	}
	return s.toResponse(venue), nil
}

// GetAll retrieves venues, optionally filtered by city
func (s *VenueService) GetAll(page, pageSize int, city string) (*VenueListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)
	offset := (page - 1) * pageSize

	var venues []models.Venue
	var total int64
	var err error
	if city != "" {
		venues, total, err = s.repo.GetByCity(city, pageSize, offset)
	} else {
		venues, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get venues: %w", err)
	}

	responses := make([]VenueResponse, len(venues))
	for i := range venues {
		responses[i] = *s.toResponse(&venues[i])
	}

	return &VenueListResponse{
		Venues:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a venue
func (s *VenueService) Update(id uuid.UUID, req *UpdateVenueRequest) (*VenueResponse, error) {
	venue, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrVenueNotFound, "get venue")
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Address != nil {
		venue.Address = *req.Address
	}
	if req.City != nil {
		venue.City = *req.City
	}
	if req.Capacity != nil {
		if *req.Capacity < 0 {
			return nil, apperrors.NewValidationError("capacity", "must not be negative")
		}
		venue.Capacity = *req.Capacity
	}
	if req.PricePerDay != nil {
		if *req.PricePerDay < 0 {
			return nil, apperrors.NewValidationError("price_per_day", "must not be negative")
		}
		venue.PricePerDay = *req.PricePerDay
	}
	if req.Phone != nil {
		venue.Phone = *req.Phone
	}
	if req.IsActive != nil {
		venue.IsActive = *req.IsActive
	}

	if err := s.repo.Update(venue); err != nil {
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}
	return s.toResponse(venue), nil
}

// Delete deletes a venue
func (s *VenueService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return notFoundOr(err, apperrors.ErrVenueNotFound, "get venue")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete venue: %w", err)
	}
	return nil
}

func (s *VenueService) toResponse(venue *models.Venue) *VenueResponse {
	return &VenueResponse{
		ID:          venue.ID,
		Name:        venue.Name,
		Address:     venue.Address,
		City:        venue.City,
		Capacity:    venue.Capacity,
		PricePerDay: venue.PricePerDay,
		Phone:       venue.Phone,
		IsActive:    venue.IsActive,
		CreatedAt:   venue.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   venue.UpdatedAt.Format(time.RFC3339),
	}
}
