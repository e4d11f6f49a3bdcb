package service_test

import (
	"testing"
	"time"

	"event-decor-backend/internal/database/models"
	apperrors "event-decor-backend/internal/errors"
	"event-decor-backend/internal/mocks"
	"event-decor-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReportServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockScheduleRepo  *mocks.MockScheduleEntryRepositoryInterface
	mockBookingRepo   *mocks.MockVenueBookingRepositoryInterface
	mockOrderRepo     *mocks.MockOrderRepositoryInterface
	mockInventoryRepo *mocks.MockInventoryItemRepositoryInterface
	mockEmployeeRepo  *mocks.MockEmployeeRepositoryInterface
	svc               *service.ReportService
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockScheduleRepo = mocks.NewMockScheduleEntryRepositoryInterface(suite.ctrl)
	suite.mockBookingRepo = mocks.NewMockVenueBookingRepositoryInterface(suite.ctrl)
	suite.mockOrderRepo = mocks.NewMockOrderRepositoryInterface(suite.ctrl)
	suite.mockInventoryRepo = mocks.NewMockInventoryItemRepositoryInterface(suite.ctrl)
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.svc = service.NewReportService(
		suite.mockScheduleRepo,
		suite.mockBookingRepo,
		suite.mockOrderRepo,
		suite.mockInventoryRepo,
		suite.mockEmployeeRepo,
	)
}

func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportServiceTestSuite) TestScheduleCalendarGroupsAndSorts() {
	dana := models.Employee{BaseModel: models.BaseModel{ID: uuid.New()}, FullName: "Dana Peretz"}
	yossi := models.Employee{BaseModel: models.BaseModel{ID: uuid.New()}, FullName: "Yossi Azulay"}

	day1 := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
	entries := []models.ScheduleEntry{
		{BaseModel: models.BaseModel{ID: uuid.New()}, EmployeeID: yossi.ID, Date: day2, StartTime: "14:00", EndTime: "22:00", ShiftType: models.ShiftTypeEvening, Status: models.ScheduleStatusScheduled},
		{BaseModel: models.BaseModel{ID: uuid.New()}, EmployeeID: dana.ID, Date: day1, StartTime: "09:00", EndTime: "17:00", ShiftType: models.ShiftTypeFullDay, Status: models.ScheduleStatusConfirmed},
		{BaseModel: models.BaseModel{ID: uuid.New()}, EmployeeID: yossi.ID, Date: day1, StartTime: "08:00", EndTime: "12:00", ShiftType: models.ShiftTypeMorning, Status: models.ScheduleStatusScheduled},
	}

	suite.mockScheduleRepo.EXPECT().GetByDateRange(day1, day2, nil, nil).Return(entries, nil)
	suite.mockEmployeeRepo.EXPECT().GetAll(200, 0).Return([]models.Employee{dana, yossi}, int64(2), nil)

	resp, err := suite.svc.ScheduleCalendar("2025-10-18", "2025-10-19", nil, nil)
	suite.NoError(err)
	suite.Equal(3, resp.TotalEntries)
	suite.Len(resp.Days, 2)

	suite.Equal("2025-10-18", resp.Days[0].Date)
	suite.Len(resp.Days[0].Entries, 2)
	suite.Equal("08:00", resp.Days[0].Entries[0].StartTime)
	suite.Equal("Yossi Azulay", resp.Days[0].Entries[0].EmployeeName)
	suite.Equal("09:00", resp.Days[0].Entries[1].StartTime)
	suite.Equal("Dana Peretz", resp.Days[0].Entries[1].EmployeeName)

	suite.Equal("2025-10-19", resp.Days[1].Date)
	suite.Len(resp.Days[1].Entries, 1)
}

func (suite *ReportServiceTestSuite) TestScheduleCalendarInvertedRange() {
	resp, err := suite.svc.ScheduleCalendar("2025-10-19", "2025-10-18", nil, nil)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidDateRange)
}

func (suite *ReportServiceTestSuite) TestScheduleCalendarInvalidStatus() {
	bad := models.ScheduleStatus("unknown")
	resp, err := suite.svc.ScheduleCalendar("2025-10-18", "2025-10-19", nil, &bad)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
}

func (suite *ReportServiceTestSuite) TestBookingSummaryExcludesCancelledRevenue() {
	venueID := uuid.New()
	day1 := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
	bookings := []models.VenueBooking{
		{VenueID: venueID, BookingDate: day1, Status: models.BookingStatusConfirmed, TotalPrice: 20000},
		{VenueID: venueID, BookingDate: day1, Status: models.BookingStatusCancelled, TotalPrice: 15000},
		{VenueID: venueID, BookingDate: day2, Status: models.BookingStatusPending, TotalPrice: 8000},
	}
	suite.mockBookingRepo.EXPECT().GetByDateRange(day1, day2, &venueID, nil).Return(bookings, nil)

	resp, err := suite.svc.BookingSummary("2025-10-18", "2025-10-19", &venueID)
	suite.NoError(err)
	suite.Equal(3, resp.TotalBookings)
	suite.Equal(28000.0, resp.TotalRevenue)
	suite.Equal(1, resp.ByStatus["cancelled"])

	suite.Len(resp.Days, 2)
	suite.Equal("2025-10-18", resp.Days[0].Date)
	suite.Equal(2, resp.Days[0].Count)
	suite.Equal(20000.0, resp.Days[0].Revenue)
	suite.Equal(8000.0, resp.Days[1].Revenue)
}

func (suite *ReportServiceTestSuite) TestFinancialReportClampsOutstanding() {
	from := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{BaseModel: models.BaseModel{ID: uuid.New()}, OrderNumber: "ORD-1", EventDate: from, TotalAmount: 10000, PaidAmount: 4000},
		{BaseModel: models.BaseModel{ID: uuid.New()}, OrderNumber: "ORD-2", EventDate: to, TotalAmount: 5000, PaidAmount: 6000},
	}
	suite.mockOrderRepo.EXPECT().GetByEventDateRange(from, to).Return(orders, nil)

	resp, err := suite.svc.FinancialReport("2025-11-01", "2025-11-30")
	suite.NoError(err)
	suite.Equal(15000.0, resp.TotalBilled)
	suite.Equal(10000.0, resp.TotalCollected)
	suite.Equal(6000.0, resp.TotalOutstanding)
	suite.Equal(6000.0, resp.Orders[0].Outstanding)
	suite.Equal(0.0, resp.Orders[1].Outstanding, "overpaid order clamps to zero outstanding")
}

func (suite *ReportServiceTestSuite) TestInventoryReport() {
	items := []models.InventoryItem{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "LED string lights", Category: "lighting", Quantity: 8, MinimumStock: 12, UnitCost: 28, SellingPrice: 45},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Round table cover", Category: "textiles", Quantity: 60, MinimumStock: 20, UnitCost: 7, SellingPrice: 12},
	}
	suite.mockInventoryRepo.EXPECT().GetAllUnpaged().Return(items, nil)

	resp, err := suite.svc.InventoryReport()
	suite.NoError(err)
	suite.Equal(2, resp.TotalItems)
	suite.Equal(1, resp.LowStockCount)
	suite.Len(resp.LowStockItems, 1)
	suite.Equal("LED string lights", resp.LowStockItems[0].Name)
	suite.InDelta(8*45.0+60*12.0, resp.TotalStockValue, 0.001)
}

func (suite *ReportServiceTestSuite) TestExportScheduleCalendar() {
	day := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	suite.mockScheduleRepo.EXPECT().GetByDateRange(day, day, nil, nil).Return([]models.ScheduleEntry{
		{BaseModel: models.BaseModel{ID: uuid.New()}, EmployeeID: uuid.New(), Date: day, StartTime: "09:00", EndTime: "17:00", ShiftType: models.ShiftTypeFullDay, Status: models.ScheduleStatusScheduled},
	}, nil)
	suite.mockEmployeeRepo.EXPECT().GetAll(200, 0).Return([]models.Employee{}, int64(0), nil)

	buf, filename, err := suite.svc.ExportScheduleCalendar("2025-10-18", "2025-10-18", nil, nil)
	suite.NoError(err)
	suite.Equal("schedule_2025-10-18_2025-10-18.xlsx", filename)
	suite.Greater(buf.Len(), 0)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
