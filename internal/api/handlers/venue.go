package handlers

import (
	"net/http"

	"event-decor-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VenueHandler handles HTTP requests for venues
type VenueHandler struct {
	venueService   service.VenueServiceInterface
	bookingService service.BookingServiceInterface
}

// NewVenueHandler creates a new venue handler
func NewVenueHandler(venueService service.VenueServiceInterface, bookingService service.BookingServiceInterface) *VenueHandler {
	return &VenueHandler{
		venueService:   venueService,
		bookingService: bookingService,
	}
}

// Create handles POST /venues
// @Summary Create a venue
// @Tags venues
// @Accept json
// @Produce json
// @Param venue body service.CreateVenueRequest true "Venue data"
// @Success 201 {object} service.VenueResponse "Successfully created venue"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /venues [post]
func (h *VenueHandler) Create(c *gin.Context) {
	var req service.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venue, err := h.venueService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, venue)
}

// List handles GET /venues
// @Summary List venues
// @Tags venues
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Param city query string false "Filter by city"
// @Success 200 {object} service.VenueListResponse "Venues"
// @Router /venues [get]
func (h *VenueHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)

	venues, err := h.venueService.GetAll(page, pageSize, c.Query("city"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, venues)
}

// GetByID handles GET /venues/:id
// @Summary Get venue by ID
// @Tags venues
// @Accept json
// @Produce json
// @Param id path string true "Venue UUID"
// @Success 200 {object} service.VenueResponse "Venue"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Venue not found"
// @Router /venues/{id} [get]
func (h *VenueHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	venue, err := h.venueService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, venue)
}

// GetBookings handles GET /venues/:id/bookings
// @Summary Get a venue's bookings
// @Tags venues
// @Accept json
// @Produce json
// @Param id path string true "Venue UUID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.BookingListResponse "Bookings"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Venue not found"
// @Router /venues/{id}/bookings [get]
func (h *VenueHandler) GetBookings(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	bookings, err := h.bookingService.GetByVenue(id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// Update handles PUT /venues/:id
// @Summary Update a venue
// @Tags venues
// @Accept json
// @Produce json
// @Param id path string true "Venue UUID"
// @Param venue body service.UpdateVenueRequest true "Fields to update"
// @Success 200 {object} service.VenueResponse "Updated venue"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Venue not found"
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /venues/{id} [put]
func (h *VenueHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venue, err := h.venueService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, venue)
}

// Delete handles DELETE /venues/:id
// @Summary Delete a venue
// @Tags venues
// @Accept json
// @Produce json
// @Param id path string true "Venue UUID"
// @Success 204 "Venue deleted"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Venue not found"
// @Router /venues/{id} [delete]
func (h *VenueHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.venueService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
