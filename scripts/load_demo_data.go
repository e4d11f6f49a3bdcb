package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"event-decor-backend/internal/config"
	"event-decor-backend/internal/database"
	"event-decor-backend/internal/database/models"
	"event-decor-backend/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type EmployeeData struct {
	FullName   string  `yaml:"full_name"`
	Email      string  `yaml:"email"`
	Phone      string  `yaml:"phone,omitempty"`
	Role       string  `yaml:"role"`
	HourlyRate float64 `yaml:"hourly_rate"`
	IsActive   bool    `yaml:"is_active"`
}

type VenueData struct {
	Name        string  `yaml:"name"`
	Address     string  `yaml:"address,omitempty"`
	City        string  `yaml:"city,omitempty"`
	Capacity    int     `yaml:"capacity"`
	PricePerDay float64 `yaml:"price_per_day"`
	Phone       string  `yaml:"phone,omitempty"`
	IsActive    bool    `yaml:"is_active"`
}

type ScheduleData struct {
	EmployeeEmail string `yaml:"employee_email"`
	Date          string `yaml:"date"`
	StartTime     string `yaml:"start_time"`
	EndTime       string `yaml:"end_time"`
	ShiftType     string `yaml:"shift_type"`
	Status        string `yaml:"status,omitempty"`
	Location      string `yaml:"location,omitempty"`
	Notes         string `yaml:"notes,omitempty"`
}

type BookingData struct {
	VenueName   string  `yaml:"venue_name"`
	BookingDate string  `yaml:"booking_date"`
	StartTime   string  `yaml:"start_time"`
	EndTime     string  `yaml:"end_time"`
	Status      string  `yaml:"status,omitempty"`
	ClientName  string  `yaml:"client_name"`
	ClientPhone string  `yaml:"client_phone,omitempty"`
	EventType   string  `yaml:"event_type,omitempty"`
	GuestCount  int     `yaml:"guest_count"`
	TotalPrice  float64 `yaml:"total_price"`
}

type AvailabilityData struct {
	VenueName         string `yaml:"venue_name"`
	Date              string `yaml:"date"`
	IsAvailable       bool   `yaml:"is_available"`
	UnavailableReason string `yaml:"unavailable_reason,omitempty"`
	AvailableFrom     string `yaml:"available_from,omitempty"`
	AvailableUntil    string `yaml:"available_until,omitempty"`
}

type OrderData struct {
	OrderNumber string  `yaml:"order_number"`
	ClientName  string  `yaml:"client_name"`
	ClientPhone string  `yaml:"client_phone,omitempty"`
	EventDate   string  `yaml:"event_date"`
	EventType   string  `yaml:"event_type,omitempty"`
	Status      string  `yaml:"status,omitempty"`
	TotalAmount float64 `yaml:"total_amount"`
	PaidAmount  float64 `yaml:"paid_amount"`
	Notes       string  `yaml:"notes,omitempty"`
}

type InventoryData struct {
	Name         string  `yaml:"name"`
	Category     string  `yaml:"category,omitempty"`
	Quantity     int     `yaml:"quantity"`
	UnitCost     float64 `yaml:"unit_cost"`
	SellingPrice float64 `yaml:"selling_price"`
	MinimumStock int     `yaml:"minimum_stock"`
}

type VendorData struct {
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category,omitempty"`
	ContactName string  `yaml:"contact_name,omitempty"`
	Phone       string  `yaml:"phone,omitempty"`
	Email       string  `yaml:"email,omitempty"`
	Rating      float64 `yaml:"rating"`
	IsActive    bool    `yaml:"is_active"`
}

// File structures
type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type VenuesFile struct {
	Venues []VenueData `yaml:"venues"`
}

type SchedulesFile struct {
	Schedules []ScheduleData `yaml:"schedules"`
}

type BookingsFile struct {
	Bookings []BookingData `yaml:"bookings"`
}

type AvailabilityFile struct {
	Availability []AvailabilityData `yaml:"availability"`
}

type OrdersFile struct {
	Orders []OrderData `yaml:"orders"`
}

type InventoryFile struct {
	Inventory []InventoryData `yaml:"inventory"`
}

type VendorsFile struct {
	Vendors []VendorData `yaml:"vendors"`
}

const seedDateLayout = "2006-01-02"

func main() {
	log.Println("Loading demo data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Demo data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var employees EmployeesFile
	if err := readYAML(dataDir, "employees", &employees); err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	var venues VenuesFile
	if err := readYAML(dataDir, "venues", &venues); err != nil {
		return fmt.Errorf("failed to load venues: %w", err)
	}

	var vendors VendorsFile
	if err := readYAML(dataDir, "vendors", &vendors); err != nil {
		return fmt.Errorf("failed to load vendors: %w", err)
	}

	var inventory InventoryFile
	if err := readYAML(dataDir, "inventory", &inventory); err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	var orders OrdersFile
	if err := readYAML(dataDir, "orders", &orders); err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	var availability AvailabilityFile
	if err := readYAML(dataDir, "availability", &availability); err != nil {
		return fmt.Errorf("failed to load availability: %w", err)
	}

	var schedules SchedulesFile
	if err := readYAML(dataDir, "schedules", &schedules); err != nil {
		return fmt.Errorf("failed to load schedules: %w", err)
	}

	var bookings BookingsFile
	if err := readYAML(dataDir, "bookings", &bookings); err != nil {
		return fmt.Errorf("failed to load bookings: %w", err)
	}

	// Create employees first; schedules reference them by email
	employeeMap := make(map[string]*models.Employee)
	employeeCreated := 0
	for _, empData := range employees.Employees {
		emp, created, err := createEmployee(db, empData)
		if err != nil {
			return fmt.Errorf("failed to create employee %s: %w", empData.Email, err)
		}
		employeeMap[empData.Email] = emp
		if created {
			employeeCreated++
		}
	}
	log.Printf("Employees: %d created, %d total", employeeCreated, len(employees.Employees))

	// Create venues; bookings and availability reference them by name
	venueMap := make(map[string]*models.Venue)
	venueCreated := 0
	for _, venueData := range venues.Venues {
		venue, created, err := createVenue(db, venueData)
		if err != nil {
			return fmt.Errorf("failed to create venue %s: %w", venueData.Name, err)
		}
		venueMap[venueData.Name] = venue
		if created {
			venueCreated++
		}
	}
	log.Printf("Venues: %d created, %d total", venueCreated, len(venues.Venues))

	vendorCreated := 0
	for _, vendorData := range vendors.Vendors {
		created, err := createVendor(db, vendorData)
		if err != nil {
			log.Printf("Warning: failed to create vendor %s: %v", vendorData.Name, err)
			continue
		}
		if created {
			vendorCreated++
		}
	}
	log.Printf("Vendors: %d created, %d total", vendorCreated, len(vendors.Vendors))

	itemCreated := 0
	for _, itemData := range inventory.Inventory {
		created, err := createInventoryItem(db, itemData)
		if err != nil {
			log.Printf("Warning: failed to create inventory item %s: %v", itemData.Name, err)
			continue
		}
		if created {
			itemCreated++
		}
	}
	log.Printf("Inventory items: %d created, %d total", itemCreated, len(inventory.Inventory))

	orderCreated := 0
	for _, orderData := range orders.Orders {
		created, err := createOrder(db, orderData)
		if err != nil {
			log.Printf("Warning: failed to create order %s: %v", orderData.OrderNumber, err)
			continue
		}
		if created {
			orderCreated++
		}
	}
	log.Printf("Orders: %d created, %d total", orderCreated, len(orders.Orders))

	availCreated := 0
	availRepo := repository.NewVenueAvailabilityRepository(db)
	for _, availData := range availability.Availability {
		created, err := createAvailability(availRepo, availData, venueMap)
		if err != nil {
			log.Printf("Warning: failed to create availability for %s on %s: %v", availData.VenueName, availData.Date, err)
			continue
		}
		if created {
			availCreated++
		}
	}
	log.Printf("Availability overrides: %d created, %d total", availCreated, len(availability.Availability))

	// Schedules and bookings go through the conflict-checked repositories so
	// the seed data can never violate the overlap invariant.
	scheduleCreated := 0
	scheduleRepo := repository.NewScheduleEntryRepository(db)
	for _, schedData := range schedules.Schedules {
		created, err := createSchedule(db, scheduleRepo, schedData, employeeMap)
		if err != nil {
			log.Printf("Warning: failed to create schedule for %s on %s: %v", schedData.EmployeeEmail, schedData.Date, err)
			continue
		}
		if created {
			scheduleCreated++
		}
	}
	log.Printf("Schedule entries: %d created, %d total", scheduleCreated, len(schedules.Schedules))

	bookingCreated := 0
	bookingRepo := repository.NewVenueBookingRepository(db)
	for _, bookingData := range bookings.Bookings {
		created, err := createBooking(db, bookingRepo, bookingData, venueMap)
		if err != nil {
			log.Printf("Warning: failed to create booking for %s on %s: %v", bookingData.VenueName, bookingData.BookingDate, err)
			continue
		}
		if created {
			bookingCreated++
		}
	}
	log.Printf("Venue bookings: %d created, %d total", bookingCreated, len(bookings.Bookings))

	return nil
}

// readYAML walks dataDir and merges every YAML file whose path contains the
// given keyword into target.
func readYAML(dataDir, keyword string, target interface{}) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, keyword) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if err := yaml.Unmarshal(data, target); err != nil {
				return err
			}
		}
		return nil
	})
}

func createEmployee(db *gorm.DB, empData EmployeeData) (*models.Employee, bool, error) {
	var emp models.Employee
	if err := db.Where("email = ?", empData.Email).First(&emp).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			emp = models.Employee{
				FullName:   empData.FullName,
				Email:      empData.Email,
				Phone:      empData.Phone,
				Role:       models.EmployeeRole(empData.Role),
				HourlyRate: empData.HourlyRate,
				IsActive:   empData.IsActive,
			}
			if err := db.Create(&emp).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create employee: %w", err)
			}
			return &emp, true, nil
		}
		return nil, false, fmt.Errorf("failed to query employee: %w", err)
	}
	return &emp, false, nil
}

func createVenue(db *gorm.DB, venueData VenueData) (*models.Venue, bool, error) {
	var venue models.Venue
	if err := db.Where("name = ?", venueData.Name).First(&venue).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			venue = models.Venue{
				Name:        venueData.Name,
				Address:     venueData.Address,
				City:        venueData.City,
				Capacity:    venueData.Capacity,
				PricePerDay: venueData.PricePerDay,
				Phone:       venueData.Phone,
				IsActive:    venueData.IsActive,
			}
			if err := db.Create(&venue).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create venue: %w", err)
			}
			return &venue, true, nil
		}
		return nil, false, fmt.Errorf("failed to query venue: %w", err)
	}
	return &venue, false, nil
}

func createVendor(db *gorm.DB, vendorData VendorData) (bool, error) {
	var vendor models.Vendor
	if err := db.Where("name = ?", vendorData.Name).First(&vendor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			vendor = models.Vendor{
				Name:        vendorData.Name,
				Category:    vendorData.Category,
				ContactName: vendorData.ContactName,
				Phone:       vendorData.Phone,
				Email:       vendorData.Email,
				Rating:      vendorData.Rating,
				IsActive:    vendorData.IsActive,
			}
			if err := db.Create(&vendor).Error; err != nil {
				return false, fmt.Errorf("failed to create vendor: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query vendor: %w", err)
	}
	return false, nil
}

func createInventoryItem(db *gorm.DB, itemData InventoryData) (bool, error) {
	var item models.InventoryItem
	if err := db.Where("name = ?", itemData.Name).First(&item).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			item = models.InventoryItem{
				Name:         itemData.Name,
				Category:     itemData.Category,
				Quantity:     itemData.Quantity,
				UnitCost:     itemData.UnitCost,
				SellingPrice: itemData.SellingPrice,
				MinimumStock: itemData.MinimumStock,
			}
			if err := db.Create(&item).Error; err != nil {
				return false, fmt.Errorf("failed to create inventory item: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query inventory item: %w", err)
	}
	return false, nil
}

func createOrder(db *gorm.DB, orderData OrderData) (bool, error) {
	eventDate, err := time.Parse(seedDateLayout, orderData.EventDate)
	if err != nil {
		return false, fmt.Errorf("invalid event_date %q: %w", orderData.EventDate, err)
	}

	status := models.OrderStatusPending
	if orderData.Status != "" {
		status = models.OrderStatus(orderData.Status)
	}

	var order models.Order
	if err := db.Where("order_number = ?", orderData.OrderNumber).First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			order = models.Order{
				OrderNumber: orderData.OrderNumber,
				ClientName:  orderData.ClientName,
				ClientPhone: orderData.ClientPhone,
				EventDate:   models.DateOnly(eventDate),
				EventType:   orderData.EventType,
				Status:      status,
				TotalAmount: orderData.TotalAmount,
				PaidAmount:  orderData.PaidAmount,
				Notes:       orderData.Notes,
			}
			if err := db.Create(&order).Error; err != nil {
				return false, fmt.Errorf("failed to create order: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query order: %w", err)
	}
	return false, nil
}

func createAvailability(repo *repository.VenueAvailabilityRepository, availData AvailabilityData, venueMap map[string]*models.Venue) (bool, error) {
	venue := venueMap[availData.VenueName]
	if venue == nil {
		return false, fmt.Errorf("venue %s not found", availData.VenueName)
	}

	date, err := time.Parse(seedDateLayout, availData.Date)
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", availData.Date, err)
	}

	av := models.VenueAvailability{
		VenueID:           venue.ID,
		Date:              models.DateOnly(date),
		IsAvailable:       availData.IsAvailable,
		UnavailableReason: availData.UnavailableReason,
		AvailableFrom:     availData.AvailableFrom,
		AvailableUntil:    availData.AvailableUntil,
	}
	if err := repo.Upsert(&av); err != nil {
		return false, err
	}
	return true, nil
}

func createSchedule(db *gorm.DB, repo *repository.ScheduleEntryRepository, schedData ScheduleData, employeeMap map[string]*models.Employee) (bool, error) {
	emp := employeeMap[schedData.EmployeeEmail]
	if emp == nil {
		return false, fmt.Errorf("employee %s not found", schedData.EmployeeEmail)
	}

	date, err := time.Parse(seedDateLayout, schedData.Date)
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", schedData.Date, err)
	}

	status := models.ScheduleStatusScheduled
	if schedData.Status != "" {
		status = models.ScheduleStatus(schedData.Status)
	}

	var existing models.ScheduleEntry
	err = db.Where("employee_id = ? AND date = ? AND start_time = ?", emp.ID, models.DateOnly(date), schedData.StartTime).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query schedule entry: %w", err)
	}

	entry := models.ScheduleEntry{
		EmployeeID: emp.ID,
		Date:       models.DateOnly(date),
		StartTime:  schedData.StartTime,
		EndTime:    schedData.EndTime,
		ShiftType:  models.ShiftType(schedData.ShiftType),
		Status:     status,
		Location:   schedData.Location,
		Notes:      schedData.Notes,
	}
	if err := repo.CreateChecked(&entry); err != nil {
		return false, err
	}
	return true, nil
}

func createBooking(db *gorm.DB, repo *repository.VenueBookingRepository, bookingData BookingData, venueMap map[string]*models.Venue) (bool, error) {
	venue := venueMap[bookingData.VenueName]
	if venue == nil {
		return false, fmt.Errorf("venue %s not found", bookingData.VenueName)
	}

	date, err := time.Parse(seedDateLayout, bookingData.BookingDate)
	if err != nil {
		return false, fmt.Errorf("invalid booking_date %q: %w", bookingData.BookingDate, err)
	}

	status := models.BookingStatusPending
	if bookingData.Status != "" {
		status = models.BookingStatus(bookingData.Status)
	}

	var existing models.VenueBooking
	err = db.Where("venue_id = ? AND booking_date = ? AND start_time = ?", venue.ID, models.DateOnly(date), bookingData.StartTime).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query venue booking: %w", err)
	}

	booking := models.VenueBooking{
		VenueID:     venue.ID,
		BookingDate: models.DateOnly(date),
		StartTime:   bookingData.StartTime,
		EndTime:     bookingData.EndTime,
		Status:      status,
		ClientName:  bookingData.ClientName,
		ClientPhone: bookingData.ClientPhone,
		EventType:   bookingData.EventType,
		GuestCount:  bookingData.GuestCount,
		TotalPrice:  bookingData.TotalPrice,
	}
	if err := repo.CreateChecked(&booking); err != nil {
		return false, err
	}
	return true, nil
}
