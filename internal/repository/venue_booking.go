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

// VenueBookingRepository handles database operations for venue
// bookings. Window-changing writes run inside a transaction that locks
// the venue row, mirroring ScheduleEntryRepository, and additionally
// consult the per-day availability calendar before accepting.
type VenueBookingRepository struct {
	db *gorm.DB
}

// NewVenueBookingRepository creates a new venue booking repository
func NewVenueBookingRepository(db *gorm.DB) *VenueBookingRepository {
	return &VenueBookingRepository{db: db}
}

func lockVenue(tx *gorm.DB, venueID uuid.UUID) error {
	var venue models.Venue
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&venue, "id = ?", venueID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrVenueNotFound
	}
	return err
}

// checkAvailability enforces the blackout/override calendar: a day
// marked unavailable rejects outright; restricted open hours must
// contain the booking window. No record means fully open.
func checkAvailability(tx *gorm.DB, venueID uuid.UUID, date time.Time, window models.TimeWindow) error {
	var availability models.VenueAvailability
	err := tx.Where("venue_id = ? AND date = ?", venueID, models.DateOnly(date)).First(&availability).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if !availability.IsAvailable {
		return apperrors.ErrVenueUnavailable
	}
	if open, ok := availability.OpenWindow(); ok && !open.Contains(window) {
		return apperrors.ErrOutsideOpenHours
	}
	return nil
}

func (r *VenueBookingRepository) findOverlapping(tx *gorm.DB, venueID uuid.UUID, date time.Time, window models.TimeWindow, excludeID *uuid.UUID) (*models.VenueBooking, error) {
	query := tx.Where("venue_id = ? AND booking_date = ? AND status <> ?",
		venueID, models.DateOnly(date), models.BookingStatusCancelled)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var existing []models.VenueBooking
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

// CheckConflict reports the first conflicting booking for the proposed
// window, or nil when the window is free. Read-only.
func (r *VenueBookingRepository) CheckConflict(venueID uuid.UUID, date time.Time, window models.TimeWindow, excludeID *uuid.UUID) (*models.VenueBooking, error) {
	return r.findOverlapping(r.db, venueID, date, window, excludeID)
}

// CreateChecked inserts the booking after checking the availability
// calendar and re-running the conflict check under the venue row lock.
func (r *VenueBookingRepository) CreateChecked(booking *models.VenueBooking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockVenue(tx, booking.VenueID); err != nil {
			return err
		}
		if err := checkAvailability(tx, booking.VenueID, booking.BookingDate, booking.Window()); err != nil {
			return err
		}

		conflicting, err := r.findOverlapping(tx, booking.VenueID, booking.BookingDate, booking.Window(), nil)
		if err != nil {
			return err
		}
		if conflicting != nil {
			return bookingConflict(booking, conflicting)
		}

		return tx.Create(booking).Error
	})
}

// UpdateChecked saves the booking after re-running the availability and
// conflict checks, excluding the booking's own row.
func (r *VenueBookingRepository) UpdateChecked(booking *models.VenueBooking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockVenue(tx, booking.VenueID); err != nil {
			return err
		}
		if err := checkAvailability(tx, booking.VenueID, booking.BookingDate, booking.Window()); err != nil {
			return err
		}

		conflicting, err := r.findOverlapping(tx, booking.VenueID, booking.BookingDate, booking.Window(), &booking.ID)
		if err != nil {
			return err
		}
		if conflicting != nil {
			return bookingConflict(booking, conflicting)
		}

		return tx.Save(booking).Error
	})
}

// Update saves the booking without a conflict check. Only valid for
// changes that leave the time window untouched (status transitions).
func (r *VenueBookingRepository) Update(booking *models.VenueBooking) error {
	return r.db.Save(booking).Error
}

// GetByID retrieves a venue booking by ID
func (r *VenueBookingRepository) GetByID(id uuid.UUID) (*models.VenueBooking, error) {
	var booking models.VenueBooking
	err := r.db.First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByVenueID retrieves bookings for a venue with pagination
func (r *VenueBookingRepository) GetByVenueID(venueID uuid.UUID, limit, offset int) ([]models.VenueBooking, int64, error) {
	var bookings []models.VenueBooking
	var total int64

	if err := r.db.Model(&models.VenueBooking{}).Where("venue_id = ?", venueID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("venue_id = ?", venueID).
		Order("booking_date DESC, start_time ASC").Limit(limit).Offset(offset).Find(&bookings).Error
	return bookings, total, err
}

// GetByDateRange retrieves bookings between from and to inclusive, with
// optional venue and status filters. Used by the report read path.
func (r *VenueBookingRepository) GetByDateRange(from, to time.Time, venueID *uuid.UUID, status *models.BookingStatus) ([]models.VenueBooking, error) {
	query := r.db.Where("booking_date >= ? AND booking_date <= ?", models.DateOnly(from), models.DateOnly(to))
	if venueID != nil {
		query = query.Where("venue_id = ?", *venueID)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var bookings []models.VenueBooking
	err := query.Order("booking_date ASC, start_time ASC").Find(&bookings).Error
	return bookings, err
}

// Delete removes a venue booking, freeing its window
func (r *VenueBookingRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.VenueBooking{}, "id = ?", id).Error
}

func bookingConflict(requested *models.VenueBooking, existing *models.VenueBooking) *apperrors.ConflictError {
	return &apperrors.ConflictError{
		Entity:         "venue booking",
		ConflictingID:  existing.ID,
		Date:           models.DateOnly(requested.BookingDate),
		ConflictStart:  existing.StartTime,
		ConflictEnd:    existing.EndTime,
		RequestedStart: requested.StartTime,
		RequestedEnd:   requested.EndTime,
	}
}
