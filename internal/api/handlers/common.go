package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "event-decor-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// parseUUIDParam pulls a UUID path parameter, responding 400 on failure
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads page/page_size query parameters with defaults
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

// respondError maps service errors onto HTTP statuses:
// 404 for missing entities, 409 for window conflicts and uniqueness
// clashes, 422 for validation, window and state machine failures.
func respondError(c *gin.Context, err error) {
	var conflictErr *apperrors.ConflictError
	if errors.As(err, &conflictErr) {
		body := gin.H{
			"error":           err.Error(),
			"conflicting_id":  conflictErr.ConflictingID,
			"date":            conflictErr.Date.Format(dateLayout),
			"conflict_start":  conflictErr.ConflictStart,
			"conflict_end":    conflictErr.ConflictEnd,
			"requested_start": conflictErr.RequestedStart,
			"requested_end":   conflictErr.RequestedEnd,
		}
		c.JSON(http.StatusConflict, body)
		return
	}

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrVenueUnavailable),
		errors.Is(err, apperrors.ErrOutsideOpenHours),
		errors.Is(err, apperrors.ErrOrderNumberExists),
		errors.Is(err, apperrors.ErrEmployeeEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err),
		apperrors.IsInvalidWindow(err),
		apperrors.IsInvalidTransition(err),
		isValidatorError(err),
		errors.Is(err, apperrors.ErrInvalidDateRange),
		errors.Is(err, apperrors.ErrEmptyWeekdaySet),
		errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrOverpayment):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func isValidatorError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}
