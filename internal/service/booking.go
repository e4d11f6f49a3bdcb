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

// BookingService handles business logic for venue bookings
type BookingService struct {
	repo      repository.VenueBookingRepositoryInterface
	venueRepo repository.VenueRepositoryInterface
	validator *validator.Validate
}

// NewBookingService creates a new booking service
func NewBookingService(repo repository.VenueBookingRepositoryInterface, venueRepo repository.VenueRepositoryInterface, validator *validator.Validate) *BookingService {
	return &BookingService{
		repo:      repo,
		venueRepo: venueRepo,
		validator: validator,
	}
}

// CreateBookingRequest represents the request to create a venue booking
type CreateBookingRequest struct {
	VenueID     uuid.UUID `json:"venue_id" validate:"required"`
	BookingDate string    `json:"booking_date" validate:"required"`
	StartTime   string    `json:"start_time" validate:"required"`
	EndTime     string    `json:"end_time" validate:"required"`
	ClientName  string    `json:"client_name" validate:"required,min=1,max=100"`
	ClientPhone string    `json:"client_phone,omitempty"`
	EventType   string    `json:"event_type,omitempty"`
	GuestCount  int       `json:"guest_count" validate:"min=0"`
	TotalPrice  float64   `json:"total_price" validate:"min=0"`
}

// UpdateBookingRequest represents the request to update a venue booking
type UpdateBookingRequest struct {
	BookingDate *string  `json:"booking_date,omitempty"`
	StartTime   *string  `json:"start_time,omitempty"`
	EndTime     *string  `json:"end_time,omitempty"`
	ClientName  *string  `json:"client_name,omitempty"`
	ClientPhone *string  `json:"client_phone,omitempty"`
	EventType   *string  `json:"event_type,omitempty"`
	GuestCount  *int     `json:"guest_count,omitempty"`
	TotalPrice  *float64 `json:"total_price,omitempty"`
}

// UpdateBookingStatusRequest represents a status-only transition
type UpdateBookingStatusRequest struct {
	Status models.BookingStatus `json:"status" validate:"required"`
}

// BookingResponse represents the response for booking operations
type BookingResponse struct {
	ID          uuid.UUID            `json:"id"`
	VenueID     uuid.UUID            `json:"venue_id"`
	BookingDate string               `json:"booking_date"`
	StartTime   string               `json:"start_time"`
	EndTime     string               `json:"end_time"`
	Status      models.BookingStatus `json:"status"`
	ClientName  string               `json:"client_name"`
	ClientPhone string               `json:"client_phone"`
	EventType   string               `json:"event_type"`
	GuestCount  int                  `json:"guest_count"`
	TotalPrice  float64              `json:"total_price"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// BookingListResponse represents a paginated list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a venue booking after the availability and conflict checks
func (s *BookingService) Create(req *CreateBookingRequest) (*BookingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	date, err := parseDate(req.BookingDate)
	if err != nil {
		return nil, err
	}
	window := models.TimeWindow{Start: req.StartTime, End: req.EndTime}
	if err := window.Validate(); err != nil {
		return nil, apperrors.NewInvalidWindowError(req.StartTime, req.EndTime, err.Error())
	}

	booking := &models.VenueBooking{
		VenueID:     req.VenueID,
		BookingDate: date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      models.BookingStatusPending,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		EventType:   req.EventType,
		GuestCount:  req.GuestCount,
		TotalPrice:  req.TotalPrice,
	}

	if err := s.repo.CreateChecked(booking); err != nil {
		return nil, err
	}
	return s.toResponse(booking), nil
}

// GetByID retrieves a venue booking by ID
func (s *BookingService) GetByID(id uuid.UUID) (*BookingResponse, error) {
	booking, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrVenueBookingNotFound, "get venue booking")
	}
	return s.toResponse(booking), nil
}

// GetByVenue retrieves bookings for a venue
func (s *BookingService) GetByVenue(venueID uuid.UUID, page, pageSize int) (*BookingListResponse, error) {
	if _, err := s.venueRepo.GetByID(venueID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrVenueNotFound, "verify venue")
	}

	page, pageSize = normalizePage(page, pageSize)
	offset := (page - 1) * pageSize
	bookings, total, err := s.repo.GetByVenueID(venueID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue bookings: %w", err)
	}

	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *s.toResponse(&bookings[i])
	}

	return &BookingListResponse{
		Bookings: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByDateRange retrieves bookings whose date falls in [from, to],
// optionally filtered by venue and status
func (s *BookingService) GetByDateRange(fromStr, toStr string, venueID *uuid.UUID, status *models.BookingStatus) ([]BookingResponse, error) {
	from, err := parseDate(fromStr)
	if err != nil {
		return nil, err
	}
	to, err := parseDate(toStr)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, apperrors.ErrInvalidDateRange
	}
	if status != nil && !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	bookings, err := s.repo.GetByDateRange(from, to, venueID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue bookings: %w", err)
	}

	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *s.toResponse(&bookings[i])
	}
	return responses, nil
}

// Update changes a booking's window or client details, re-running the
// availability and conflict checks with the booking's own row excluded
func (s *BookingService) Update(id uuid.UUID, req *UpdateBookingRequest) (*BookingResponse, error) {
	booking, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrVenueBookingNotFound, "get venue booking")
	}
	if booking.Status.IsTerminal() {
		return nil, &apperrors.InvalidTransitionError{From: string(booking.Status), To: string(booking.Status)}
	}

	if req.BookingDate != nil {
		date, err := parseDate(*req.BookingDate)
		if err != nil {
			return nil, err
		}
		booking.BookingDate = date
	}
	if req.StartTime != nil {
		booking.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		booking.EndTime = *req.EndTime
	}
	if req.ClientName != nil {
		booking.ClientName = *req.ClientName
	}
	if req.ClientPhone != nil {
		booking.ClientPhone = *req.ClientPhone
	}
	if req.EventType != nil {
		booking.EventType = *req.EventType
	}
	if req.GuestCount != nil {
		if *req.GuestCount < 0 {
			return nil, apperrors.NewValidationError("guest_count", "must not be negative")
		}
		booking.GuestCount = *req.GuestCount
	}
	if req.TotalPrice != nil {
		if *req.TotalPrice < 0 {
			return nil, apperrors.NewValidationError("total_price", "must not be negative")
		}
		booking.TotalPrice = *req.TotalPrice
	}

	if err := booking.Window().Validate(); err != nil {
		return nil, apperrors.NewInvalidWindowError(booking.StartTime, booking.EndTime, err.Error())
	}

	if err := s.repo.UpdateChecked(booking); err != nil {
		return nil, err
	}
	return s.toResponse(booking), nil
}

// UpdateStatus performs a status-only transition, window untouched
func (s *BookingService) UpdateStatus(id uuid.UUID, req *UpdateBookingStatusRequest) (*BookingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	booking, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrVenueBookingNotFound, "get venue booking")
	}

	if !booking.Status.CanTransitionTo(req.Status) {
		return nil, &apperrors.InvalidTransitionError{From: string(booking.Status), To: string(req.Status)}
	}
	booking.Status = req.Status

	if err := s.repo.Update(booking); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return s.toResponse(booking), nil
}

// Delete removes a venue booking, freeing its window
func (s *BookingService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return notFoundOr(err, apperrors.ErrVenueBookingNotFound, "get venue booking")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete venue booking: %w", err)
	}
	return nil
}

// toResponse converts a booking model to response
func (s *BookingService) toResponse(booking *models.VenueBooking) *BookingResponse {
	return &BookingResponse{
		ID:          booking.ID,
		VenueID:     booking.VenueID,
		BookingDate: booking.BookingDate.Format(dateLayout),
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
		Status:      booking.Status,
		ClientName:  booking.ClientName,
		ClientPhone: booking.ClientPhone,
		EventType:   booking.EventType,
		GuestCount:  booking.GuestCount,
		TotalPrice:  booking.TotalPrice,
		CreatedAt:   booking.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   booking.UpdatedAt.Format(time.RFC3339),
	}
}
