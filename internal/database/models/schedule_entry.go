package models

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleEntry represents one employee shift on one calendar date.
// For a given (employee, date) no two non-cancelled entries may have
// overlapping [start_time, end_time) windows.
type ScheduleEntry struct {
	BaseModel
	EmployeeID uuid.UUID      `json:"employee_id" gorm:"type:uuid;not null;index:idx_schedule_employee_date" validate:"required"`
	Date       time.Time      `json:"date" gorm:"type:date;not null;index:idx_schedule_employee_date" validate:"required"`
	StartTime  string         `json:"start_time" gorm:"type:varchar(5);not null" validate:"required"`
	EndTime    string         `json:"end_time" gorm:"type:varchar(5);not null" validate:"required"`
	ShiftType  ShiftType      `json:"shift_type" gorm:"type:varchar(20);not null" validate:"required"`
	Status     ScheduleStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled'"`
	Location   string         `json:"location" gorm:"size:200"`
	Notes      string         `json:"notes" gorm:"type:text"`

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ScheduleEntry
func (ScheduleEntry) TableName() string {
	return "schedule_entries"
}

// Window returns the entry's time window
func (e *ScheduleEntry) Window() TimeWindow {
	return TimeWindow{Start: e.StartTime, End: e.EndTime}
}

// DateOnly truncates a timestamp to its calendar date in UTC, the form
// all date columns are stored in.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
