package service

import (
	"errors"
	"fmt"
	"time"

	"event-decor-backend/internal/database/models"
	apperrors "event-decor-backend/internal/errors"

	"gorm.io/gorm"
)

// parseDate parses a "2006-01-02" date string into a UTC calendar date
func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("date", fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", value))
	}
	return models.DateOnly(date), nil
}

// notFoundOr maps gorm.ErrRecordNotFound to the given application error
// and wraps anything else with context
func notFoundOr(err error, notFound error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// normalizePage clamps pagination parameters to sane defaults
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
