package service

import (
	"bytes"

	"event-decor-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ScheduleServiceInterface defines the interface for schedule service
type ScheduleServiceInterface interface {
	Create(req *CreateScheduleRequest) (*ScheduleResponse, error)
	CreateBulk(req *BulkCreateScheduleRequest) ([]ScheduleResponse, error)
	GetByID(id uuid.UUID) (*ScheduleResponse, error)
	GetByEmployee(employeeID uuid.UUID, page, pageSize int) (*ScheduleListResponse, error)
	GetByDateRange(fromStr, toStr string, employeeID *uuid.UUID, status *models.ScheduleStatus) ([]ScheduleResponse, error)
	Update(id uuid.UUID, req *UpdateScheduleRequest) (*ScheduleResponse, error)
	UpdateStatus(id uuid.UUID, req *UpdateScheduleStatusRequest) (*ScheduleResponse, error)
	Delete(id uuid.UUID) error
}

// BookingServiceInterface defines the interface for booking service
type BookingServiceInterface interface {
	Create(req *CreateBookingRequest) (*BookingResponse, error)
	GetByID(id uuid.UUID) (*BookingResponse, error)
	GetByVenue(venueID uuid.UUID, page, pageSize int) (*BookingListResponse, error)
	GetByDateRange(fromStr, toStr string, venueID *uuid.UUID, status *models.BookingStatus) ([]BookingResponse, error)
	Update(id uuid.UUID, req *UpdateBookingRequest) (*BookingResponse, error)
	UpdateStatus(id uuid.UUID, req *UpdateBookingStatusRequest) (*BookingResponse, error)
	Delete(id uuid.UUID) error
}

// AvailabilityServiceInterface defines the interface for availability service
type AvailabilityServiceInterface interface {
	SetDay(venueID uuid.UUID, dateStr string, req *SetDayRequest) (*AvailabilityResponse, error)
	GetCalendar(venueID uuid.UUID, fromStr, toStr string) (*AvailabilityCalendarResponse, error)
}

// EmployeeServiceInterface defines the interface for employee service
type EmployeeServiceInterface interface {
	Create(req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetByID(id uuid.UUID) (*EmployeeResponse, error)
	GetAll(page, pageSize int, activeOnly bool) (*EmployeeListResponse, error)
	Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(id uuid.UUID) error
}

// VenueServiceInterface defines the interface for venue service
type VenueServiceInterface interface {
	Create(req *CreateVenueRequest) (*VenueResponse, error)
	GetByID(id uuid.UUID) (*VenueResponse, error)
	GetAll(page, pageSize int, city string) (*VenueListResponse, error)
	Update(id uuid.UUID, req *UpdateVenueRequest) (*VenueResponse, error)
	Delete(id uuid.UUID) error
}

// OrderServiceInterface defines the interface for order service
type OrderServiceInterface interface {
	Create(req *CreateOrderRequest) (*OrderResponse, error)
	GetByID(id uuid.UUID) (*OrderResponse, error)
	GetAll(page, pageSize int, status *models.OrderStatus) (*OrderListResponse, error)
	Update(id uuid.UUID, req *UpdateOrderRequest) (*OrderResponse, error)
	RecordPayment(id uuid.UUID, req *RecordPaymentRequest) (*OrderResponse, error)
	Delete(id uuid.UUID) error
}

// InventoryServiceInterface defines the interface for inventory service
type InventoryServiceInterface interface {
	Create(req *CreateInventoryItemRequest) (*InventoryItemResponse, error)
	GetByID(id uuid.UUID) (*InventoryItemResponse, error)
	GetAll(page, pageSize int, category string) (*InventoryListResponse, error)
	Update(id uuid.UUID, req *UpdateInventoryItemRequest) (*InventoryItemResponse, error)
	Delete(id uuid.UUID) error
}

// VendorServiceInterface defines the interface for vendor service
type VendorServiceInterface interface {
	Create(req *CreateVendorRequest) (*VendorResponse, error)
	GetByID(id uuid.UUID) (*VendorResponse, error)
	GetAll(page, pageSize int, category string) (*VendorListResponse, error)
	Update(id uuid.UUID, req *UpdateVendorRequest) (*VendorResponse, error)
	Delete(id uuid.UUID) error
}

// ReportServiceInterface defines the interface for report service
type ReportServiceInterface interface {
	ScheduleCalendar(fromStr, toStr string, employeeID *uuid.UUID, status *models.ScheduleStatus) (*ScheduleCalendarResponse, error)
	BookingSummary(fromStr, toStr string, venueID *uuid.UUID) (*BookingSummaryResponse, error)
	FinancialReport(fromStr, toStr string) (*FinancialReportResponse, error)
	InventoryReport() (*InventoryReportResponse, error)
	ExportScheduleCalendar(fromStr, toStr string, employeeID *uuid.UUID, status *models.ScheduleStatus) (*bytes.Buffer, string, error)
}
