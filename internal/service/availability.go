package service

import (
	"fmt"

	"event-decor-backend/internal/database/models"
	apperrors "event-decor-backend/internal/errors"
	"event-decor-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AvailabilityService manages the per-day venue blackout/override calendar
type AvailabilityService struct {
	repo      repository.VenueAvailabilityRepositoryInterface
	venueRepo repository.VenueRepositoryInterface
	validator *validator.Validate
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(repo repository.VenueAvailabilityRepositoryInterface, venueRepo repository.VenueRepositoryInterface, validator *validator.Validate) *AvailabilityService {
	return &AvailabilityService{
		repo:      repo,
		venueRepo: venueRepo,
		validator: validator,
	}
}

// SetDayRequest represents the request to set one day's availability
type SetDayRequest struct {
	IsAvailable       bool   `json:"is_available"`
	UnavailableReason string `json:"unavailable_reason,omitempty"`
	AvailableFrom     string `json:"available_from,omitempty"`
	AvailableUntil    string `json:"available_until,omitempty"`
}

// AvailabilityResponse represents one day's availability record
type AvailabilityResponse struct {
	ID                uuid.UUID `json:"id"`
	VenueID           uuid.UUID `json:"venue_id"`
	Date              string    `json:"date"`
	IsAvailable       bool      `json:"is_available"`
	UnavailableReason string    `json:"unavailable_reason,omitempty"`
	AvailableFrom     string    `json:"available_from,omitempty"`
	AvailableUntil    string    `json:"available_until,omitempty"`
}

// AvailabilityCalendarResponse represents a venue's calendar over a range
type AvailabilityCalendarResponse struct {
	VenueID uuid.UUID              `json:"venue_id"`
	From    string                 `json:"from"`
	To      string                 `json:"to"`
	Days    []AvailabilityResponse `json:"days"`
}

// SetDay creates or replaces the availability record for (venue, date).
// When restricted open hours are supplied both bounds are required and
// must form a valid window.
func (s *AvailabilityService) SetDay(venueID uuid.UUID, dateStr string, req *SetDayRequest) (*AvailabilityResponse, error) {
	if _, err := s.venueRepo.GetByID(venueID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrVenueNotFound, "verify venue")
	}

	date, err := parseDate(dateStr)
	if err != nil {
		return nil, err
	}

	if (req.AvailableFrom == "") != (req.AvailableUntil == "") {
		return nil, apperrors.NewValidationError("available_from", "available_from and available_until must be set together")
	}
	if req.AvailableFrom != "" {
		window := models.TimeWindow{Start: req.AvailableFrom, End: req.AvailableUntil}
		if err := window.Validate(); err != nil {
			return nil, apperrors.NewInvalidWindowError(req.AvailableFrom, req.AvailableUntil, err.Error())
		}
	}

	availability := &models.VenueAvailability{
		VenueID:           venueID,
		Date:              date,
		IsAvailable:       req.IsAvailable,
		UnavailableReason: req.UnavailableReason,
		AvailableFrom:     req.AvailableFrom,
		AvailableUntil:    req.AvailableUntil,
	}

	if err := s.repo.Upsert(availability); err != nil {
		return nil, fmt.Errorf("failed to set venue availability: %w", err)
	}
	return s.toResponse(availability), nil
}

// GetCalendar retrieves a venue's availability records over a range.
// Days without a record are fully open and omitted.
func (s *AvailabilityService) GetCalendar(venueID uuid.UUID, fromStr, toStr string) (*AvailabilityCalendarResponse, error) {
	if _, err := s.venueRepo.GetByID(venueID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrVenueNotFound, "verify venue")
	}

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

	records, err := s.repo.GetByVenueAndRange(venueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue availability: %w", err)
	}

	days := make([]AvailabilityResponse, len(records))
	for i := range records {
		days[i] = *s.toResponse(&records[i])
	}

	return &AvailabilityCalendarResponse{
		VenueID: venueID,
		From:    from.Format(dateLayout),
		To:      to.Format(dateLayout),
		Days:    days,
	}, nil
}

func (s *AvailabilityService) toResponse(a *models.VenueAvailability) *AvailabilityResponse {
	return &AvailabilityResponse{
		ID:                a.ID,
		VenueID:           a.VenueID,
		Date:              a.Date.Format(dateLayout),
		IsAvailable:       a.IsAvailable,
		UnavailableReason: a.UnavailableReason,
		AvailableFrom:     a.AvailableFrom,
		AvailableUntil:    a.AvailableUntil,
	}
}
