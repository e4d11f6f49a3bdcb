package service

import (
	"fmt"
	"time"

	"event-decor-backend/internal/database/models"
	apperrors "event-decor-backend/internal/errors"
	"event-decor-backend/internal/logger"
	"event-decor-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// ScheduleService handles business logic for employee schedules
type ScheduleService struct {
	repo         repository.ScheduleEntryRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	validator    *validator.Validate
}

// NewScheduleService creates a new schedule service
func NewScheduleService(repo repository.ScheduleEntryRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, validator *validator.Validate) *ScheduleService {
	return &ScheduleService{
		repo:         repo,
		employeeRepo: employeeRepo,
		validator:    validator,
	}
}

// CreateScheduleRequest represents the request to create a schedule entry
type CreateScheduleRequest struct {
	EmployeeID uuid.UUID        `json:"employee_id" validate:"required"`
	Date       string           `json:"date" validate:"required"`
	ShiftStart string           `json:"shift_start" validate:"required"`
	ShiftEnd   string           `json:"shift_end" validate:"required"`
	ShiftType  models.ShiftType `json:"shift_type" validate:"required"`
	Location   string           `json:"location,omitempty"`
	Notes      string           `json:"notes,omitempty"`
}

// BulkCreateScheduleRequest represents the request to create schedule
// entries for every selected weekday in a date range
type BulkCreateScheduleRequest struct {
	EmployeeID uuid.UUID        `json:"employee_id" validate:"required"`
	StartDate  string           `json:"start_date" validate:"required"`
	EndDate    string           `json:"end_date" validate:"required"`
	Days       []int            `json:"days" validate:"required"`
	ShiftStart string           `json:"shift_start" validate:"required"`
	ShiftEnd   string           `json:"shift_end" validate:"required"`
	ShiftType  models.ShiftType `json:"shift_type" validate:"required"`
	Location   string           `json:"location,omitempty"`
	Notes      string           `json:"notes,omitempty"`
}

// UpdateScheduleRequest represents the request to update a schedule entry
type UpdateScheduleRequest struct {
	Date       *string           `json:"date,omitempty"`
	ShiftStart *string           `json:"shift_start,omitempty"`
	ShiftEnd   *string           `json:"shift_end,omitempty"`
	ShiftType  *models.ShiftType `json:"shift_type,omitempty"`
	Location   *string           `json:"location,omitempty"`
	Notes      *string           `json:"notes,omitempty"`
}

// UpdateScheduleStatusRequest represents a status-only transition
type UpdateScheduleStatusRequest struct {
	Status models.ScheduleStatus `json:"status" validate:"required"`
}

// ScheduleResponse represents the response for schedule operations
type ScheduleResponse struct {
	ID         uuid.UUID             `json:"id"`
	EmployeeID uuid.UUID             `json:"employee_id"`
	Date       string                `json:"date"`
	ShiftStart string                `json:"shift_start"`
	ShiftEnd   string                `json:"shift_end"`
	ShiftType  models.ShiftType      `json:"shift_type"`
	Status     models.ScheduleStatus `json:"status"`
	Location   string                `json:"location"`
	Notes      string                `json:"notes"`
	CreatedAt  string                `json:"created_at"`
	UpdatedAt  string                `json:"updated_at"`
}

// ScheduleListResponse represents a paginated list of schedule entries
type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// ExpandDates returns every calendar date in [start, end] whose weekday
// is in the set. Weekday numbering follows time.Weekday: 0=Sunday
// through 6=Saturday. Both bounds are inclusive.
func ExpandDates(start, end time.Time, weekdays map[time.Weekday]bool) []time.Time {
	var dates []time.Time
	for d := models.DateOnly(start); !d.After(models.DateOnly(end)); d = d.AddDate(0, 0, 1) {
		if weekdays[d.Weekday()] {
			dates = append(dates, d)
		}
	}
	return dates
}

// Create creates a single schedule entry after a conflict check
func (s *ScheduleService) Create(req *CreateScheduleRequest) (*ScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	window := models.TimeWindow{Start: req.ShiftStart, End: req.ShiftEnd}
	if err := window.Validate(); err != nil {
		return nil, apperrors.NewInvalidWindowError(req.ShiftStart, req.ShiftEnd, err.Error())
	}
	if !req.ShiftType.IsValid() {
		return nil, apperrors.NewValidationError("shift_type", "invalid shift type")
	}

	entry := &models.ScheduleEntry{
		EmployeeID: req.EmployeeID,
		Date:       date,
		StartTime:  req.ShiftStart,
		EndTime:    req.ShiftEnd,
		ShiftType:  req.ShiftType,
		Status:     models.ScheduleStatusScheduled,
		Location:   req.Location,
		Notes:      req.Notes,
	}

	if err := s.repo.CreateChecked(entry); err != nil {
		return nil, err
	}

	return s.toResponse(entry), nil
}

// CreateBulk expands the date range over the selected weekdays and
// creates one entry per retained date. All-or-nothing: any conflicting
// date aborts the whole batch.
func (s *ScheduleService) CreateBulk(req *BulkCreateScheduleRequest) ([]ScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if len(req.Days) == 0 {
		return nil, apperrors.ErrEmptyWeekdaySet
	}
	weekdays := make(map[time.Weekday]bool, len(req.Days))
	for _, day := range req.Days {
		if day < 0 || day > 6 {
			return nil, apperrors.NewValidationError("days", fmt.Sprintf("weekday %d out of range 0-6", day))
		}
		weekdays[time.Weekday(day)] = true
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, apperrors.ErrInvalidDateRange
	}

	window := models.TimeWindow{Start: req.ShiftStart, End: req.ShiftEnd}
	if err := window.Validate(); err != nil {
		return nil, apperrors.NewInvalidWindowError(req.ShiftStart, req.ShiftEnd, err.Error())
	}
	if !req.ShiftType.IsValid() {
		return nil, apperrors.NewValidationError("shift_type", "invalid shift type")
	}

	dates := ExpandDates(start, end, weekdays)
	entries := make([]*models.ScheduleEntry, len(dates))
	for i, date := range dates {
		entries[i] = &models.ScheduleEntry{
			EmployeeID: req.EmployeeID,
			Date:       date,
			StartTime:  req.ShiftStart,
			EndTime:    req.ShiftEnd,
			ShiftType:  req.ShiftType,
			Status:     models.ScheduleStatusScheduled,
			Location:   req.Location,
			Notes:      req.Notes,
		}
	}

	if err := s.repo.CreateBatchChecked(entries); err != nil {
		return nil, err
	}
	logger.New().Infof("Bulk schedule created %d entries for employee %s", len(entries), req.EmployeeID)

	responses := make([]ScheduleResponse, len(entries))
	for i, entry := range entries {
		responses[i] = *s.toResponse(entry)
	}
	return responses, nil
}

// GetByID retrieves a schedule entry by ID
func (s *ScheduleService) GetByID(id uuid.UUID) (*ScheduleResponse, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrScheduleEntryNotFound, "get schedule entry")
	}
	return s.toResponse(entry), nil
}

// GetByEmployee retrieves schedule entries for an employee
func (s *ScheduleService) GetByEmployee(employeeID uuid.UUID, page, pageSize int) (*ScheduleListResponse, error) {
	if _, err := s.employeeRepo.GetByID(employeeID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrEmployeeNotFound, "verify employee")
	}

	page, pageSize = normalizePage(page, pageSize)
	offset := (page - 1) * pageSize
	entries, total, err := s.repo.GetByEmployeeID(employeeID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee schedules: %w", err)
	}

	responses := make([]ScheduleResponse, len(entries))
	for i := range entries {
		responses[i] = *s.toResponse(&entries[i])
	}

	return &ScheduleListResponse{
		Schedules: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// GetByDateRange retrieves entries whose date falls in [from, to],
// optionally filtered by employee and status
func (s *ScheduleService) GetByDateRange(fromStr, toStr string, employeeID *uuid.UUID, status *models.ScheduleStatus) ([]ScheduleResponse, error) {
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

	entries, err := s.repo.GetByDateRange(from, to, employeeID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule entries: %w", err)
	}

	responses := make([]ScheduleResponse, len(entries))
	for i := range entries {
		responses[i] = *s.toResponse(&entries[i])
	}
	return responses, nil
}

// Update changes an entry's window or details, re-running the conflict
// check with the entry's own row excluded
func (s *ScheduleService) Update(id uuid.UUID, req *UpdateScheduleRequest) (*ScheduleResponse, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrScheduleEntryNotFound, "get schedule entry")
	}
	if entry.Status.IsTerminal() {
		return nil, &apperrors.InvalidTransitionError{From: string(entry.Status), To: string(entry.Status)}
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		entry.Date = date
	}
	if req.ShiftStart != nil {
		entry.StartTime = *req.ShiftStart
	}
	if req.ShiftEnd != nil {
		entry.EndTime = *req.ShiftEnd
	}
	if req.ShiftType != nil {
		if !req.ShiftType.IsValid() {
			return nil, apperrors.NewValidationError("shift_type", "invalid shift type")
		}
		entry.ShiftType = *req.ShiftType
	}
	if req.Location != nil {
		entry.Location = *req.Location
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}

	if err := entry.Window().Validate(); err != nil {
		return nil, apperrors.NewInvalidWindowError(entry.StartTime, entry.EndTime, err.Error())
	}

	if err := s.repo.UpdateChecked(entry); err != nil {
		return nil, err
	}
	return s.toResponse(entry), nil
}

// UpdateStatus performs a status-only transition. The time window is
// untouched, so no conflict check runs; the state machine is enforced.
func (s *ScheduleService) UpdateStatus(id uuid.UUID, req *UpdateScheduleStatusRequest) (*ScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	entry, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrScheduleEntryNotFound, "get schedule entry")
	}

	if !entry.Status.CanTransitionTo(req.Status) {
		return nil, &apperrors.InvalidTransitionError{From: string(entry.Status), To: string(req.Status)}
	}
	entry.Status = req.Status

	if err := s.repo.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update schedule status: %w", err)
	}
	return s.toResponse(entry), nil
}

// Delete removes a schedule entry, freeing its window
func (s *ScheduleService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return notFoundOr(err, apperrors.ErrScheduleEntryNotFound, "get schedule entry")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete schedule entry: %w", err)
	}
	return nil
}

// toResponse converts a schedule entry model to response
func (s *ScheduleService) toResponse(entry *models.ScheduleEntry) *ScheduleResponse {
	return &ScheduleResponse{
		ID:         entry.ID,
		EmployeeID: entry.EmployeeID,
		Date:       entry.Date.Format(dateLayout),
		ShiftStart: entry.StartTime,
		ShiftEnd:   entry.EndTime,
		ShiftType:  entry.ShiftType,
		Status:     entry.Status,
		Location:   entry.Location,
		Notes:      entry.Notes,
		CreatedAt:  entry.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  entry.UpdatedAt.Format(time.RFC3339),
	}
}
