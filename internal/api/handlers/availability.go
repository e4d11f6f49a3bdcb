package handlers

import (
	"net/http"

	"event-decor-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler handles HTTP requests for venue availability calendars
type AvailabilityHandler struct {
	availabilityService service.AvailabilityServiceInterface
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(availabilityService service.AvailabilityServiceInterface) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityService: availabilityService}
}

// GetCalendar handles GET /venues/:id/availability
// @Summary Get a venue's availability calendar
// @Description Get per-day availability overrides for a venue over a date range. Dates without a record are fully open.
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Venue UUID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} service.AvailabilityCalendarResponse "Availability calendar"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 404 {object} ErrorResponse "Venue not found"
// @Router /venues/{id}/availability [get]
func (h *AvailabilityHandler) GetCalendar(c *gin.Context) {
	venueID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})
		return
	}

	calendar, err := h.availabilityService.GetCalendar(venueID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, calendar)
}

// SetDay handles PUT /venues/:id/availability/:date
// @Summary Set a venue's availability for one date
// @Description Create or replace the availability record for a date. Set is_available=false to block the day, or supply available_from/available_until to restrict open hours.
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Venue UUID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param availability body service.SetDayRequest true "Availability data"
// @Success 200 {object} service.AvailabilityResponse "Stored availability record"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Venue not found"
// @Failure 422 {object} ErrorResponse "Validation or window error"
// @Router /venues/{id}/availability/{date} [put]
func (h *AvailabilityHandler) SetDay(c *gin.Context) {
	venueID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.SetDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	availability, err := h.availabilityService.SetDay(venueID, c.Param("date"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, availability)
}
