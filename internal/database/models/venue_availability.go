package models

import (
	"time"

	"github.com/google/uuid"
)

// VenueAvailability is a per-day override/blackout record for a venue,
// consulted before a booking is accepted. When IsAvailable is false the
// whole day is blocked; when AvailableFrom/AvailableUntil are set the
// booking window must fit inside them.
type VenueAvailability struct {
	BaseModel
	VenueID           uuid.UUID `json:"venue_id" gorm:"type:uuid;not null;uniqueIndex:idx_availability_venue_date" validate:"required"`
	Date              time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_availability_venue_date" validate:"required"`
	// No gorm default here: with one, gorm drops an explicit false from
	// the INSERT and a blocked day would be stored as available.
	IsAvailable       bool      `json:"is_available" gorm:"not null"`
	UnavailableReason string    `json:"unavailable_reason" gorm:"size:200"`
	AvailableFrom     string    `json:"available_from" gorm:"type:varchar(5)"`
	AvailableUntil    string    `json:"available_until" gorm:"type:varchar(5)"`

	// Relationships
	Venue Venue `json:"venue,omitempty" gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for VenueAvailability
func (VenueAvailability) TableName() string {
	return "venue_availabilities"
}

// OpenWindow returns the restricted open hours, if any
func (a *VenueAvailability) OpenWindow() (TimeWindow, bool) {
	if a.AvailableFrom == "" || a.AvailableUntil == "" {
		return TimeWindow{}, false
	}
	return TimeWindow{Start: a.AvailableFrom, End: a.AvailableUntil}, true
}
