package repository

import (
	"time"

	"event-decor-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetByEmail(email string) (*models.Employee, error)
	GetAll(limit, offset int) ([]models.Employee, int64, error)
	GetActive(limit, offset int) ([]models.Employee, int64, error)
	Update(employee *models.Employee) error
	Delete(id uuid.UUID) error
}

// VenueRepositoryInterface defines the interface for venue repository operations
type VenueRepositoryInterface interface {
	Create(venue *models.Venue) error
	GetByID(id uuid.UUID) (*models.Venue, error)
	GetAll(limit, offset int) ([]models.Venue, int64, error)
	GetByCity(city string, limit, offset int) ([]models.Venue, int64, error)
	Update(venue *models.Venue) error
	Delete(id uuid.UUID) error
}

// ScheduleEntryRepositoryInterface defines the interface for schedule entry repository operations
type ScheduleEntryRepositoryInterface interface {
	CheckConflict(employeeID uuid.UUID, date time.Time, window models.TimeWindow, excludeID *uuid.UUID) (*models.ScheduleEntry, error)
	CreateChecked(entry *models.ScheduleEntry) error
	CreateBatchChecked(entries []*models.ScheduleEntry) error
	UpdateChecked(entry *models.ScheduleEntry) error
	Update(entry *models.ScheduleEntry) error
	GetByID(id uuid.UUID) (*models.ScheduleEntry, error)
	GetByEmployeeID(employeeID uuid.UUID, limit, offset int) ([]models.ScheduleEntry, int64, error)
	GetByDateRange(from, to time.Time, employeeID *uuid.UUID, status *models.ScheduleStatus) ([]models.ScheduleEntry, error)
	Delete(id uuid.UUID) error
}

// VenueBookingRepositoryInterface defines the interface for venue booking repository operations
type VenueBookingRepositoryInterface interface {
	CheckConflict(venueID uuid.UUID, date time.Time, window models.TimeWindow, excludeID *uuid.UUID) (*models.VenueBooking, error)
	CreateChecked(booking *models.VenueBooking) error
	UpdateChecked(booking *models.VenueBooking) error
	Update(booking *models.VenueBooking) error
	GetByID(id uuid.UUID) (*models.VenueBooking, error)
	GetByVenueID(venueID uuid.UUID, limit, offset int) ([]models.VenueBooking, int64, error)
	GetByDateRange(from, to time.Time, venueID *uuid.UUID, status *models.BookingStatus) ([]models.VenueBooking, error)
	Delete(id uuid.UUID) error
}

// VenueAvailabilityRepositoryInterface defines the interface for venue availability repository operations
type VenueAvailabilityRepositoryInterface interface {
	Upsert(availability *models.VenueAvailability) error
	GetByVenueAndDate(venueID uuid.UUID, date time.Time) (*models.VenueAvailability, error)
	GetByVenueAndRange(venueID uuid.UUID, from, to time.Time) ([]models.VenueAvailability, error)
	Delete(id uuid.UUID) error
}

// OrderRepositoryInterface defines the interface for order repository operations
type OrderRepositoryInterface interface {
	Create(order *models.Order) error
	GetByID(id uuid.UUID) (*models.Order, error)
	GetByOrderNumber(orderNumber string) (*models.Order, error)
	GetAll(limit, offset int) ([]models.Order, int64, error)
	GetByStatus(status models.OrderStatus, limit, offset int) ([]models.Order, int64, error)
	GetByEventDateRange(from, to time.Time) ([]models.Order, error)
	Update(order *models.Order) error
	Delete(id uuid.UUID) error
}

// InventoryItemRepositoryInterface defines the interface for inventory item repository operations
type InventoryItemRepositoryInterface interface {
	Create(item *models.InventoryItem) error
	GetByID(id uuid.UUID) (*models.InventoryItem, error)
	GetAll(limit, offset int) ([]models.InventoryItem, int64, error)
	GetByCategory(category string, limit, offset int) ([]models.InventoryItem, int64, error)
	GetAllUnpaged() ([]models.InventoryItem, error)
	Update(item *models.InventoryItem) error
	Delete(id uuid.UUID) error
}

// VendorRepositoryInterface defines the interface for vendor repository operations
type VendorRepositoryInterface interface {
	Create(vendor *models.Vendor) error
	GetByID(id uuid.UUID) (*models.Vendor, error)
	GetAll(limit, offset int) ([]models.Vendor, int64, error)
	GetByCategory(category string, limit, offset int) ([]models.Vendor, int64, error)
	Update(vendor *models.Vendor) error
	Delete(id uuid.UUID) error
}
