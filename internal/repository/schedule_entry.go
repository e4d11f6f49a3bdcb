package repository

import (
	"errors"
	"time"

	"event-decor-backend/internal/database/models"
	apperrors "event-decor-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScheduleEntryRepository handles database operations for schedule
// entries. Every write that changes a time window goes through a
// conflict-checked transaction: the employee row is locked with
// SELECT ... FOR UPDATE so two concurrent writers for the same employee
// serialise, closing the check-then-insert race.
type ScheduleEntryRepository struct {
	db *gorm.DB
}

// NewScheduleEntryRepository creates a new schedule entry repository
func NewScheduleEntryRepository(db *gorm.DB) *ScheduleEntryRepository {
	return &ScheduleEntryRepository{db: db}
}

// lockEmployee takes a row lock on the employee for the duration of the
// transaction. Doubles as the existence check.
func lockEmployee(tx *gorm.DB, employeeID uuid.UUID) error {
	var employee models.Employee
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&employee, "id = ?", employeeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrEmployeeNotFound
	}
	return err
}

// findOverlapping returns the first non-cancelled entry for
// (employeeID, date) whose window overlaps the given one, excluding
// excludeID when editing an entry against itself. Touching endpoints do
// not overlap.
func (r *ScheduleEntryRepository) findOverlapping(tx *gorm.DB, employeeID uuid.UUID, date time.Time, window models.TimeWindow, excludeID *uuid.UUID) (*models.ScheduleEntry, error) {
	query := tx.Where("employee_id = ? AND date = ? AND status <> ?",
		employeeID, models.DateOnly(date), models.ScheduleStatusCancelled)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var existing []models.ScheduleEntry
	if err := query.Order("start_time ASC").Find(&existing).Error; err != nil {
		return nil, err
	}

	for i := range existing {
		if existing[i].Window().Overlaps(window) {
			return &existing[i], nil
		}
	}
	return nil, nil
}

// CheckConflict reports the first conflicting entry for the proposed
// window, or nil when the window is free. Read-only.
func (r *ScheduleEntryRepository) CheckConflict(employeeID uuid.UUID, date time.Time, window models.TimeWindow, excludeID *uuid.UUID) (*models.ScheduleEntry, error) {
	return r.findOverlapping(r.db, employeeID, date, window, excludeID)
}

// CreateChecked inserts the entry after re-running the conflict check
// inside a transaction that holds the employee row lock.
func (r *ScheduleEntryRepository) CreateChecked(entry *models.ScheduleEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockEmployee(tx, entry.EmployeeID); err != nil {
			return err
		}

		conflicting, err := r.findOverlapping(tx, entry.EmployeeID, entry.Date, entry.Window(), nil)
		if err != nil {
			return err
		}
		if conflicting != nil {
			return scheduleConflict(entry, conflicting)
		}

		return tx.Create(entry).Error
	})
}

// CreateBatchChecked inserts all entries in one transaction. The first
// conflicting date aborts the whole batch; no entries are committed.
func (r *ScheduleEntryRepository) CreateBatchChecked(entries []*models.ScheduleEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockEmployee(tx, entries[0].EmployeeID); err != nil {
			return err
		}

		for _, entry := range entries {
			conflicting, err := r.findOverlapping(tx, entry.EmployeeID, entry.Date, entry.Window(), nil)
			if err != nil {
				return err
			}
			if conflicting != nil {
				return &apperrors.BulkConflictError{ConflictError: *scheduleConflict(entry, conflicting)}
			}
			if err := tx.Create(entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateChecked saves the entry after re-running the conflict check,
// excluding the entry's own row (self-overlap is not a conflict).
func (r *ScheduleEntryRepository) UpdateChecked(entry *models.ScheduleEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockEmployee(tx, entry.EmployeeID); err != nil {
			return err
		}

		conflicting, err := r.findOverlapping(tx, entry.EmployeeID, entry.Date, entry.Window(), &entry.ID)
		if err != nil {
			return err
		}
		if conflicting != nil {
			return scheduleConflict(entry, conflicting)
		}

		return tx.Save(entry).Error
	})
}

// Update saves the entry without a conflict check. Only valid for
// changes that leave the time window untouched (status transitions).
func (r *ScheduleEntryRepository) Update(entry *models.ScheduleEntry) error {
	return r.db.Save(entry).Error
}

// GetByID retrieves a schedule entry by ID
func (r *ScheduleEntryRepository) GetByID(id uuid.UUID) (*models.ScheduleEntry, error) {
	var entry models.ScheduleEntry
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByEmployeeID retrieves schedule entries for an employee with pagination
func (r *ScheduleEntryRepository) GetByEmployeeID(employeeID uuid.UUID, limit, offset int) ([]models.ScheduleEntry, int64, error) {
	var entries []models.ScheduleEntry
	var total int64

	if err := r.db.Model(&models.ScheduleEntry{}).Where("employee_id = ?", employeeID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("employee_id = ?", employeeID).
		Order("date DESC, start_time ASC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}

// GetByDateRange retrieves entries between from and to inclusive, with
// optional employee and status filters. Used by the report read path.
func (r *ScheduleEntryRepository) GetByDateRange(from, to time.Time, employeeID *uuid.UUID, status *models.ScheduleStatus) ([]models.ScheduleEntry, error) {
	query := r.db.Where("date >= ? AND date <= ?", models.DateOnly(from), models.DateOnly(to))
	if employeeID != nil {
		query = query.Where("employee_id = ?", *employeeID)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var entries []models.ScheduleEntry
	err := query.Order("date ASC, start_time ASC").Find(&entries).Error
	return entries, err
}

// Delete removes a schedule entry, freeing its window
func (r *ScheduleEntryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ScheduleEntry{}, "id = ?", id).Error
}

func scheduleConflict(requested *models.ScheduleEntry, existing *models.ScheduleEntry) *apperrors.ConflictError {
	return &apperrors.ConflictError{
		Entity:         "schedule entry",
		ConflictingID:  existing.ID,
		Date:           models.DateOnly(requested.Date),
		ConflictStart:  existing.StartTime,
		ConflictEnd:    existing.EndTime,
		RequestedStart: requested.StartTime,
		RequestedEnd:   requested.EndTime,
	}
}
