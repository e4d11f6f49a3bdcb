package handlers

import (
	"net/http"

	"event-decor-backend/internal/database/models"
	"event-decor-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingHandler handles HTTP requests for venue bookings
type BookingHandler struct {
	bookingService service.BookingServiceInterface
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService service.BookingServiceInterface) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create handles POST /bookings
// @Summary Create a venue booking
// @Description Book a venue for a client event. Rejected with 409 when the window overlaps an existing non-cancelled booking, the venue is blocked for the date, or the window falls outside the venue's open hours.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body service.CreateBookingRequest true "Booking data"
// @Success 201 {object} service.BookingResponse "Successfully created booking"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Venue not found"
// @Failure 409 {object} map[string]interface{} "Window conflicts or venue unavailable"
// @Failure 422 {object} ErrorResponse "Validation or window error"
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req service.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookingService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// List handles GET /bookings
// @Summary List venue bookings
// @Description Get bookings in a date range, optionally filtered by venue and status
// @Tags bookings
// @Accept json
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param venue_id query string false "Filter by venue UUID"
// @Param status query string false "Filter by status"
// @Success 200 {object} map[string]interface{} "Bookings"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
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

	var status *models.BookingStatus
	if raw := c.Query("status"); raw != "" {
		s := models.BookingStatus(raw)
		status = &s
	}

	bookings, err := h.bookingService.GetByDateRange(from, to, venueID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    len(bookings),
	})
}

// GetByID handles GET /bookings/:id
// @Summary Get booking by ID
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking UUID"
// @Success 200 {object} service.BookingResponse "Booking"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Booking not found"
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// Update handles PUT /bookings/:id
// @Summary Update a venue booking
// @Description Change a booking's window or client details, re-running the availability and conflict checks with the booking's own row excluded
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking UUID"
// @Param booking body service.UpdateBookingRequest true "Fields to update"
// @Success 200 {object} service.BookingResponse "Updated booking"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Booking not found"
// @Failure 409 {object} map[string]interface{} "Window conflicts or venue unavailable"
// @Failure 422 {object} ErrorResponse "Validation or state machine error"
// @Router /bookings/{id} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookingService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateStatus handles PATCH /bookings/:id/status
// @Summary Transition a booking's status
// @Description Status-only transition following pending -> confirmed -> completed, with cancellation allowed from any non-terminal state. Cancelling frees the window for new bookings.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking UUID"
// @Param status body service.UpdateBookingStatusRequest true "Target status"
// @Success 200 {object} service.BookingResponse "Updated booking"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Booking not found"
// @Failure 422 {object} ErrorResponse "Transition not allowed"
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookingService.UpdateStatus(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// Delete handles DELETE /bookings/:id
// @Summary Delete a venue booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking UUID"
// @Success 204 "Booking deleted"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Booking not found"
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.bookingService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
