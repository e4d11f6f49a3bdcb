package errors

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InvalidWindowError signals a time window whose end does not come
// after its start, or that is not parseable as HH:MM.
type InvalidWindowError struct {
	Start   string
	End     string
	Message string
}

func (e *InvalidWindowError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid time window: %s", e.Message)
	}
	return fmt.Sprintf("invalid time window %s-%s", e.Start, e.End)
}

// ConflictError reports an overlapping commitment for the same resource
// on the same date. It carries the conflicting row's identity and
// window so the caller can produce a user-facing message.
type ConflictError struct {
	Entity         string // "schedule entry" or "venue booking"
	ConflictingID  uuid.UUID
	Date           time.Time
	ConflictStart  string
	ConflictEnd    string
	RequestedStart string
	RequestedEnd   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s-%s on %s conflicts with existing %s %s (%s-%s)",
		e.Entity, e.RequestedStart, e.RequestedEnd, e.Date.Format("2006-01-02"),
		e.Entity, e.ConflictingID, e.ConflictStart, e.ConflictEnd)
}

// BulkConflictError is a ConflictError raised during bulk expansion,
// carrying the first offending date. No entries are created when it is
// returned.
type BulkConflictError struct {
	ConflictError
}

func (e *BulkConflictError) Error() string {
	return fmt.Sprintf("bulk create aborted: %s", e.ConflictError.Error())
}

// Unwrap exposes the underlying ConflictError for errors.As
func (e *BulkConflictError) Unwrap() error {
	return &e.ConflictError
}

// InvalidTransitionError signals a status change the state machine
// does not allow (terminal states, or skipping the forward path).
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// Entity Not Found Errors
var (
	ErrEmployeeNotFound          = &NotFoundError{Entity: "employee"}
	ErrVenueNotFound             = &NotFoundError{Entity: "venue"}
	ErrScheduleEntryNotFound     = &NotFoundError{Entity: "schedule entry"}
	ErrVenueBookingNotFound      = &NotFoundError{Entity: "venue booking"}
	ErrVenueAvailabilityNotFound = &NotFoundError{Entity: "venue availability"}
	ErrOrderNotFound             = &NotFoundError{Entity: "order"}
	ErrInventoryItemNotFound     = &NotFoundError{Entity: "inventory item"}
	ErrVendorNotFound            = &NotFoundError{Entity: "vendor"}
)

// Business Logic Errors
var (
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
	ErrEmptyWeekdaySet    = errors.New("at least one weekday must be selected")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrVenueUnavailable   = errors.New("venue is not available on the requested date")
	ErrOutsideOpenHours   = errors.New("booking window falls outside the venue's open hours")
	ErrOrderNumberExists  = errors.New("order with this order number already exists")
	ErrEmployeeEmailTaken = errors.New("employee with this email already exists")
	ErrOverpayment        = errors.New("paid amount cannot exceed total amount")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidWindow checks if an error is an InvalidWindowError
func IsInvalidWindow(err error) bool {
	var windowErr *InvalidWindowError
	return errors.As(err, &windowErr)
}

// IsConflict checks if an error is a ConflictError (bulk included)
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsBulkConflict checks if an error is a BulkConflictError
func IsBulkConflict(err error) bool {
	var bulkErr *BulkConflictError
	return errors.As(err, &bulkErr)
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidWindowError creates a new InvalidWindowError from a parse failure
func NewInvalidWindowError(start, end, message string) error {
	return &InvalidWindowError{Start: start, End: end, Message: message}
}
