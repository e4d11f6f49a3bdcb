package testutils

import (
	"fmt"
	"time"

	"event-decor-backend/internal/database/models"

	"github.com/google/uuid"
)

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values
func (f *EmployeeFactory) Create() *models.Employee {
	id := uuid.New()
	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:   "Dana Crew",
		Email:      fmt.Sprintf("dana.%s@test.com", id.String()[:8]),
		Phone:      "+1-555-0123",
		Role:       models.EmployeeRoleDecorator,
		HourlyRate: 25,
		IsActive:   true,
	}
}

// WithName sets a custom full name for the employee
func (f *EmployeeFactory) WithName(name string) *models.Employee {
	emp := f.Create()
	emp.FullName = name
	return emp
}

// WithEmail sets a custom email for the employee
func (f *EmployeeFactory) WithEmail(email string) *models.Employee {
	emp := f.Create()
	emp.Email = email
	return emp
}

// WithRole sets a custom role for the employee
func (f *EmployeeFactory) WithRole(role models.EmployeeRole) *models.Employee {
	emp := f.Create()
	emp.Role = role
	return emp
}

// Inactive marks the employee as inactive
func (f *EmployeeFactory) Inactive() *models.Employee {
	emp := f.Create()
	emp.IsActive = false
	return emp
}

// VenueFactory provides methods to create test Venue data
type VenueFactory struct{}

// NewVenueFactory creates a new VenueFactory
func NewVenueFactory() *VenueFactory {
	return &VenueFactory{}
}

// Create creates a test Venue with default values
func (f *VenueFactory) Create() *models.Venue {
	return &models.Venue{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Grand Hall",
		Address:     "1 Garden Street",
		City:        "Springfield",
		Capacity:    200,
		PricePerDay: 1500,
		Phone:       "+1-555-0200",
		IsActive:    true,
	}
}

// WithName sets a custom name for the venue
func (f *VenueFactory) WithName(name string) *models.Venue {
	venue := f.Create()
	venue.Name = name
	return venue
}

// WithCity sets a custom city for the venue
func (f *VenueFactory) WithCity(city string) *models.Venue {
	venue := f.Create()
	venue.City = city
	return venue
}

// ScheduleEntryFactory provides methods to create test ScheduleEntry data
type ScheduleEntryFactory struct{}

// NewScheduleEntryFactory creates a new ScheduleEntryFactory
func NewScheduleEntryFactory() *ScheduleEntryFactory {
	return &ScheduleEntryFactory{}
}

// Create creates a test ScheduleEntry with default values
func (f *ScheduleEntryFactory) Create() *models.ScheduleEntry {
	return &models.ScheduleEntry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID: uuid.New(),
		Date:       models.DateOnly(time.Now().AddDate(0, 0, 7)),
		StartTime:  "09:00",
		EndTime:    "17:00",
		ShiftType:  models.ShiftTypeFullDay,
		Status:     models.ScheduleStatusScheduled,
		Location:   "Grand Hall",
	}
}

// WithEmployee sets the employee ID for the entry
func (f *ScheduleEntryFactory) WithEmployee(employeeID uuid.UUID) *models.ScheduleEntry {
	entry := f.Create()
	entry.EmployeeID = employeeID
	return entry
}

// WithDate sets the calendar date for the entry
func (f *ScheduleEntryFactory) WithDate(date time.Time) *models.ScheduleEntry {
	entry := f.Create()
	entry.Date = models.DateOnly(date)
	return entry
}

// WithWindow sets the start and end times for the entry
func (f *ScheduleEntryFactory) WithWindow(start, end string) *models.ScheduleEntry {
	entry := f.Create()
	entry.StartTime = start
	entry.EndTime = end
	return entry
}

// WithStatus sets a custom status for the entry
func (f *ScheduleEntryFactory) WithStatus(status models.ScheduleStatus) *models.ScheduleEntry {
	entry := f.Create()
	entry.Status = status
	return entry
}

// VenueBookingFactory provides methods to create test VenueBooking data
type VenueBookingFactory struct{}

// NewVenueBookingFactory creates a new VenueBookingFactory
func NewVenueBookingFactory() *VenueBookingFactory {
	return &VenueBookingFactory{}
}

// Create creates a test VenueBooking with default values
func (f *VenueBookingFactory) Create() *models.VenueBooking {
	return &models.VenueBooking{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		VenueID:     uuid.New(),
		BookingDate: models.DateOnly(time.Now().AddDate(0, 0, 14)),
		StartTime:   "10:00",
		EndTime:     "18:00",
		Status:      models.BookingStatusPending,
		ClientName:  "Ayala Cohen",
		ClientPhone: "+1-555-0300",
		EventType:   "wedding",
		GuestCount:  120,
		TotalPrice:  3200,
	}
}

// WithVenue sets the venue ID for the booking
func (f *VenueBookingFactory) WithVenue(venueID uuid.UUID) *models.VenueBooking {
	booking := f.Create()
	booking.VenueID = venueID
	return booking
}

// WithDate sets the booking date
func (f *VenueBookingFactory) WithDate(date time.Time) *models.VenueBooking {
	booking := f.Create()
	booking.BookingDate = models.DateOnly(date)
	return booking
}

// WithWindow sets the start and end times for the booking
func (f *VenueBookingFactory) WithWindow(start, end string) *models.VenueBooking {
	booking := f.Create()
	booking.StartTime = start
	booking.EndTime = end
	return booking
}

// WithStatus sets a custom status for the booking
func (f *VenueBookingFactory) WithStatus(status models.BookingStatus) *models.VenueBooking {
	booking := f.Create()
	booking.Status = status
	return booking
}

// VenueAvailabilityFactory provides methods to create test VenueAvailability data
type VenueAvailabilityFactory struct{}

// NewVenueAvailabilityFactory creates a new VenueAvailabilityFactory
func NewVenueAvailabilityFactory() *VenueAvailabilityFactory {
	return &VenueAvailabilityFactory{}
}

// Create creates a test VenueAvailability with default values
func (f *VenueAvailabilityFactory) Create() *models.VenueAvailability {
	return &models.VenueAvailability{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		VenueID:     uuid.New(),
		Date:        models.DateOnly(time.Now().AddDate(0, 0, 14)),
		IsAvailable: true,
	}
}

// Blocked marks the whole day as unavailable
func (f *VenueAvailabilityFactory) Blocked(reason string) *models.VenueAvailability {
	av := f.Create()
	av.IsAvailable = false
	av.UnavailableReason = reason
	return av
}

// WithOpenHours restricts the day to the given window
func (f *VenueAvailabilityFactory) WithOpenHours(from, until string) *models.VenueAvailability {
	av := f.Create()
	av.AvailableFrom = from
	av.AvailableUntil = until
	return av
}

// OrderFactory provides methods to create test Order data
type OrderFactory struct{}

// NewOrderFactory creates a new OrderFactory
func NewOrderFactory() *OrderFactory {
	return &OrderFactory{}
}

// Create creates a test Order with default values
func (f *OrderFactory) Create() *models.Order {
	id := uuid.New()
	return &models.Order{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrderNumber: "ORD-" + id.String()[:8],
		ClientName:  "Noa Levi",
		ClientPhone: "+1-555-0400",
		EventDate:   models.DateOnly(time.Now().AddDate(0, 1, 0)),
		EventType:   "wedding",
		Status:      models.OrderStatusPending,
		TotalAmount: 5000,
		PaidAmount:  0,
	}
}

// WithAmounts sets the billed and paid amounts for the order
func (f *OrderFactory) WithAmounts(total, paid float64) *models.Order {
	order := f.Create()
	order.TotalAmount = total
	order.PaidAmount = paid
	return order
}

// WithStatus sets a custom status for the order
func (f *OrderFactory) WithStatus(status models.OrderStatus) *models.Order {
	order := f.Create()
	order.Status = status
	return order
}

// InventoryItemFactory provides methods to create test InventoryItem data
type InventoryItemFactory struct{}

// NewInventoryItemFactory creates a new InventoryItemFactory
func NewInventoryItemFactory() *InventoryItemFactory {
	return &InventoryItemFactory{}
}

// Create creates a test InventoryItem with default values
func (f *InventoryItemFactory) Create() *models.InventoryItem {
	return &models.InventoryItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Silk Rose Bouquet",
		Category:     "flowers",
		Quantity:     40,
		UnitCost:     8,
		SellingPrice: 20,
		MinimumStock: 10,
	}
}

// WithStock sets the quantity and minimum stock for the item
func (f *InventoryItemFactory) WithStock(quantity, minimum int) *models.InventoryItem {
	item := f.Create()
	item.Quantity = quantity
	item.MinimumStock = minimum
	return item
}

// WithCategory sets a custom category for the item
func (f *InventoryItemFactory) WithCategory(category string) *models.InventoryItem {
	item := f.Create()
	item.Category = category
	return item
}

// VendorFactory provides methods to create test Vendor data
type VendorFactory struct{}

// NewVendorFactory creates a new VendorFactory
func NewVendorFactory() *VendorFactory {
	return &VendorFactory{}
}

// Create creates a test Vendor with default values
func (f *VendorFactory) Create() *models.Vendor {
	return &models.Vendor{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Bloom Supply Co",
		Category:    "flowers",
		ContactName: "Sam Porter",
		Phone:       "+1-555-0500",
		Email:       "orders@bloomsupply.test",
		Rating:      4.5,
		IsActive:    true,
	}
}

// WithCategory sets a custom category for the vendor
func (f *VendorFactory) WithCategory(category string) *models.Vendor {
	vendor := f.Create()
	vendor.Category = category
	return vendor
}

// FactorySet provides access to all factories
type FactorySet struct {
	Employee          *EmployeeFactory
	Venue             *VenueFactory
	ScheduleEntry     *ScheduleEntryFactory
	VenueBooking      *VenueBookingFactory
	VenueAvailability *VenueAvailabilityFactory
	Order             *OrderFactory
	InventoryItem     *InventoryItemFactory
	Vendor            *VendorFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Employee:          NewEmployeeFactory(),
		Venue:             NewVenueFactory(),
		ScheduleEntry:     NewScheduleEntryFactory(),
		VenueBooking:      NewVenueBookingFactory(),
		VenueAvailability: NewVenueAvailabilityFactory(),
		Order:             NewOrderFactory(),
		InventoryItem:     NewInventoryItemFactory(),
		Vendor:            NewVendorFactory(),
	}
}
