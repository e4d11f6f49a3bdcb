package models

// Vendor represents an external supplier (flowers, catering, rentals)
type Vendor struct {
	BaseModel
	Name        string  `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Category    string  `json:"category" gorm:"size:100"`
	ContactName string  `json:"contact_name" gorm:"size:100"`
	Phone       string  `json:"phone" gorm:"size:30"`
	Email       string  `json:"email" gorm:"size:100" validate:"omitempty,email"`
	Rating      float64 `json:"rating" gorm:"not null;default:0" validate:"min=0,max=5"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for Vendor
func (Vendor) TableName() string {
	return "vendors"
}
