package handlers

import (
	"fmt"
	"net/http"

	"event-decor-backend/internal/database/models"
	"event-decor-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles HTTP requests for reports
type ReportHandler struct {
	reportService service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// scheduleFilters reads the shared calendar query parameters
func scheduleFilters(c *gin.Context) (string, string, *uuid.UUID, *models.ScheduleStatus, bool) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})
		return "", "", nil, nil, false
	}

	var employeeID *uuid.UUID
	if raw := c.Query("employee_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee_id"})
			return "", "", nil, nil, false
		}
		employeeID = &id
	}

	var status *models.ScheduleStatus
	if raw := c.Query("status"); raw != "" {
		s := models.ScheduleStatus(raw)
		status = &s
	}

	return from, to, employeeID, status, true
}

// ScheduleCalendar handles GET /reports/schedule-calendar
// @Summary Schedule calendar report
// @Description Get schedule entries grouped by date over a range, optionally filtered by employee and status
// @Tags reports
// @Accept json
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param employee_id query string false "Filter by employee UUID"
// @Param status query string false "Filter by status"
// @Success 200 {object} service.ScheduleCalendarResponse "Schedule calendar"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Router /reports/schedule-calendar [get]
func (h *ReportHandler) ScheduleCalendar(c *gin.Context) {
	from, to, employeeID, status, ok := scheduleFilters(c)
	if !ok {
		return
	}

	calendar, err := h.reportService.ScheduleCalendar(from, to, employeeID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, calendar)
}

// ExportScheduleCalendar handles GET /reports/schedule-calendar/export
// @Summary Export the schedule calendar as Excel
// @Description Download the schedule calendar over a range as an .xlsx workbook
// @Tags reports
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param employee_id query string false "Filter by employee UUID"
// @Param status query string false "Filter by status"
// @Success 200 {file} binary "Excel workbook"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Router /reports/schedule-calendar/export [get]
func (h *ReportHandler) ExportScheduleCalendar(c *gin.Context) {
	from, to, employeeID, status, ok := scheduleFilters(c)
	if !ok {
		return
	}

	buf, filename, err := h.reportService.ExportScheduleCalendar(from, to, employeeID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// BookingSummary handles GET /reports/bookings
// @Summary Booking summary report
// @Description Get bookings aggregated per date with status counts and revenue over non-cancelled bookings
// @Tags reports
// @Accept json
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param venue_id query string false "Filter by venue UUID"
// @Success 200 {object} service.BookingSummaryResponse "Booking summary"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Router /reports/bookings [get]
func (h *ReportHandler) BookingSummary(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})
		return
	}

	var venueID *uuid.UUID
	if raw := c.Query("venue_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid venue_id"})
			return
		}
		venueID = &id
	}

	summary, err := h.reportService.BookingSummary(from, to, venueID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Financial handles GET /reports/financial
// @Summary Financial report
// @Description Get billed, collected and outstanding totals over orders in an event date range
// @Tags reports
// @Accept json
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} service.FinancialReportResponse "Financial report"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Router /reports/financial [get]
func (h *ReportHandler) Financial(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})
		return
	}

	report, err := h.reportService.FinancialReport(from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Inventory handles GET /reports/inventory
// @Summary Inventory report
// @Description Get per-item stock values, the total stock value and the low-stock list
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} service.InventoryReportResponse "Inventory report"
// @Router /reports/inventory [get]
func (h *ReportHandler) Inventory(c *gin.Context) {
	report, err := h.reportService.InventoryReport()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
