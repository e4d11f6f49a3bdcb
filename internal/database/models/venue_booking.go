package models

import (
	"time"

	"github.com/google/uuid"
)

// VenueBooking represents a client booking of a venue on one calendar
// date. Same overlap invariant as ScheduleEntry, scoped to
// (venue, booking_date).
type VenueBooking struct {
	BaseModel
	VenueID     uuid.UUID     `json:"venue_id" gorm:"type:uuid;not null;index:idx_booking_venue_date" validate:"required"`
	BookingDate time.Time     `json:"booking_date" gorm:"type:date;not null;index:idx_booking_venue_date" validate:"required"`
	StartTime   string        `json:"start_time" gorm:"type:varchar(5);not null" validate:"required"`
	EndTime     string        `json:"end_time" gorm:"type:varchar(5);not null" validate:"required"`
	Status      BookingStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	ClientName  string        `json:"client_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	ClientPhone string        `json:"client_phone" gorm:"size:30"`
	EventType   string        `json:"event_type" gorm:"size:100"`
	GuestCount  int           `json:"guest_count" gorm:"not null;default:0" validate:"min=0"`
	TotalPrice  float64       `json:"total_price" gorm:"not null;default:0" validate:"min=0"`

	// Relationships
	Venue Venue `json:"venue,omitempty" gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for VenueBooking
func (VenueBooking) TableName() string {
	return "venue_bookings"
}

// Window returns the booking's time window
func (b *VenueBooking) Window() TimeWindow {
	return TimeWindow{Start: b.StartTime, End: b.EndTime}
}
