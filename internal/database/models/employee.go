package models

// Employee represents a member of the decoration crew
type Employee struct {
	BaseModel
	FullName   string       `json:"full_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Email      string       `json:"email" gorm:"size:100;uniqueIndex;not null" validate:"required,email"`
	Phone      string       `json:"phone" gorm:"size:30"`
	Role       EmployeeRole `json:"role" gorm:"type:varchar(50);not null" validate:"required"`
	HourlyRate float64      `json:"hourly_rate" gorm:"not null;default:0" validate:"min=0"`
	IsActive   bool         `json:"is_active" gorm:"default:true"`

	// Relationships
	Schedules []ScheduleEntry `json:"schedules,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
