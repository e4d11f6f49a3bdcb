package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-decor-backend/internal/api/handlers"
	apperrors "event-decor-backend/internal/errors"
	"event-decor-backend/internal/mocks"
	"event-decor-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ReportHandlerTestSuite defines the test suite for ReportHandler
type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockReportSvc *mocks.MockReportServiceInterface
	handler       *handlers.ReportHandler
	router        *gin.Engine
}

func (suite *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockReportSvc = mocks.NewMockReportServiceInterface(suite.ctrl)
	suite.handler = handlers.NewReportHandler(suite.mockReportSvc)

	suite.router = gin.New()
	suite.router.GET("/reports/schedule-calendar", suite.handler.ScheduleCalendar)
	suite.router.GET("/reports/schedule-calendar/export", suite.handler.ExportScheduleCalendar)
	suite.router.GET("/reports/bookings", suite.handler.BookingSummary)
	suite.router.GET("/reports/financial", suite.handler.Financial)
	suite.router.GET("/reports/inventory", suite.handler.Inventory)
}

func (suite *ReportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportHandlerTestSuite) TestScheduleCalendar_Success() {
	resp := &service.ScheduleCalendarResponse{
		From:         "2025-10-01",
		To:           "2025-10-31",
		TotalEntries: 2,
		Days: []service.CalendarDay{
			{Date: "2025-10-18", Entries: []service.CalendarEntry{{ID: uuid.New()}, {ID: uuid.New()}}},
		},
	}
	suite.mockReportSvc.EXPECT().ScheduleCalendar("2025-10-01", "2025-10-31", nil, nil).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/reports/schedule-calendar?from=2025-10-01&to=2025-10-31", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ScheduleCalendarResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), 2, got.TotalEntries)
	assert.Len(suite.T(), got.Days, 1)
}

func (suite *ReportHandlerTestSuite) TestScheduleCalendar_MissingRange() {
	req := httptest.NewRequest(http.MethodGet, "/reports/schedule-calendar", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ReportHandlerTestSuite) TestScheduleCalendar_InvertedRange() {
	suite.mockReportSvc.EXPECT().ScheduleCalendar("2025-10-31", "2025-10-01", nil, nil).
		Return(nil, apperrors.ErrInvalidDateRange)

	req := httptest.NewRequest(http.MethodGet, "/reports/schedule-calendar?from=2025-10-31&to=2025-10-01", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
}

func (suite *ReportHandlerTestSuite) TestExportScheduleCalendar_Success() {
	buf := bytes.NewBufferString("workbook-bytes")
	suite.mockReportSvc.EXPECT().ExportScheduleCalendar("2025-10-01", "2025-10-31", nil, nil).
		Return(buf, "schedule_2025-10-01_2025-10-31.xlsx", nil)

	req := httptest.NewRequest(http.MethodGet, "/reports/schedule-calendar/export?from=2025-10-01&to=2025-10-31", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Header().Get("Content-Disposition"), "schedule_2025-10-01_2025-10-31.xlsx")
	assert.Contains(suite.T(), w.Header().Get("Content-Type"), "spreadsheet")
	assert.Equal(suite.T(), "workbook-bytes", w.Body.String())
}

func (suite *ReportHandlerTestSuite) TestBookingSummary_Success() {
	venueID := uuid.New()
	resp := &service.BookingSummaryResponse{
		From:          "2025-10-01",
		To:            "2025-10-31",
		TotalBookings: 3,
		TotalRevenue:  28000,
		ByStatus:      map[string]int{"confirmed": 2, "cancelled": 1},
	}
	suite.mockReportSvc.EXPECT().BookingSummary("2025-10-01", "2025-10-31", &venueID).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/reports/bookings?from=2025-10-01&to=2025-10-31&venue_id="+venueID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.BookingSummaryResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), 3, got.TotalBookings)
	assert.Equal(suite.T(), 28000.0, got.TotalRevenue)
}

func (suite *ReportHandlerTestSuite) TestFinancial_Success() {
	resp := &service.FinancialReportResponse{
		From:             "2025-11-01",
		To:               "2025-11-30",
		TotalBilled:      15000,
		TotalCollected:   10000,
		TotalOutstanding: 6000,
	}
	suite.mockReportSvc.EXPECT().FinancialReport("2025-11-01", "2025-11-30").Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/reports/financial?from=2025-11-01&to=2025-11-30", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.FinancialReportResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), 6000.0, got.TotalOutstanding)
}

func (suite *ReportHandlerTestSuite) TestInventory_Success() {
	resp := &service.InventoryReportResponse{
		TotalItems:      2,
		TotalStockValue: 1080,
		LowStockCount:   1,
	}
	suite.mockReportSvc.EXPECT().InventoryReport().Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/reports/inventory", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.InventoryReportResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), 1, got.LowStockCount)
}

func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
