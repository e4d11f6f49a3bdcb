package repository

import (
	"time"

	"event-decor-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VenueAvailabilityRepository handles database operations for the
// per-day venue blackout/override calendar
type VenueAvailabilityRepository struct {
	db *gorm.DB
}

// NewVenueAvailabilityRepository creates a new venue availability repository
func NewVenueAvailabilityRepository(db *gorm.DB) *VenueAvailabilityRepository {
	return &VenueAvailabilityRepository{db: db}
}

// Upsert creates or replaces the availability record for (venue, date)
func (r *VenueAvailabilityRepository) Upsert(availability *models.VenueAvailability) error {
	availability.Date = models.DateOnly(availability.Date)
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "venue_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"is_available", "unavailable_reason", "available_from", "available_until", "updated_at",
		}),
	}).Create(availability).Error
}

// GetByVenueAndDate retrieves the availability record for one day
func (r *VenueAvailabilityRepository) GetByVenueAndDate(venueID uuid.UUID, date time.Time) (*models.VenueAvailability, error) {
	var availability models.VenueAvailability
	err := r.db.Where("venue_id = ? AND date = ?", venueID, models.DateOnly(date)).First(&availability).Error
	if err != nil {
		return nil, err
	}
	return &availability, nil
}

// GetByVenueAndRange retrieves availability records for a venue between
// from and to inclusive
func (r *VenueAvailabilityRepository) GetByVenueAndRange(venueID uuid.UUID, from, to time.Time) ([]models.VenueAvailability, error) {
	var records []models.VenueAvailability
	err := r.db.Where("venue_id = ? AND date >= ? AND date <= ?",
		venueID, models.DateOnly(from), models.DateOnly(to)).
		Order("date ASC").Find(&records).Error
	return records, err
}

// Delete removes an availability record
func (r *VenueAvailabilityRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.VenueAvailability{}, "id = ?", id).Error
}
