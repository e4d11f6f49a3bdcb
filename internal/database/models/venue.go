package models

// Venue represents an event venue available for bookings
type Venue struct {
	BaseModel
	Name        string  `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Address     string  `json:"address" gorm:"size:200"`
	City        string  `json:"city" gorm:"size:100"`
	Capacity    int     `json:"capacity" gorm:"not null;default:0" validate:"min=0"`
	PricePerDay float64 `json:"price_per_day" gorm:"not null;default:0" validate:"min=0"`
	Phone       string  `json:"phone" gorm:"size:30"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`

	// Relationships
	Bookings     []VenueBooking      `json:"bookings,omitempty" gorm:"foreignKey:VenueID"`
	Availability []VenueAvailability `json:"availability,omitempty" gorm:"foreignKey:VenueID"`
}

// TableName returns the table name for Venue
func (Venue) TableName() string {
	return "venues"
}
