package handlers

import (
	"net/http"

	"event-decor-backend/internal/database/models"
	"event-decor-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleHandler handles HTTP requests for employee schedules
type ScheduleHandler struct {
	scheduleService service.ScheduleServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService service.ScheduleServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// Create handles POST /schedules
// @Summary Create a schedule entry
// @Description Create a single shift for an employee. Rejected with 409 when the window overlaps an existing non-cancelled entry for the same employee and date.
// @Tags schedules
// @Accept json
// @Produce json
// @Param schedule body service.CreateScheduleRequest true "Schedule data"
// @Success 201 {object} service.ScheduleResponse "Successfully created schedule entry"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 409 {object} map[string]interface{} "Window conflicts with an existing entry"
// @Failure 422 {object} ErrorResponse "Validation or window error"
// @Router /schedules [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req service.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.scheduleService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// CreateBulk handles POST /schedules/bulk
// @Summary Bulk create schedule entries
// @Description Expand a date range over selected weekdays into one entry per matching date. All-or-nothing: the first conflict aborts the whole batch.
// @Tags schedules
// @Accept json
// @Produce json
// @Param schedule body service.BulkCreateScheduleRequest true "Bulk schedule data"
// @Success 201 {object} map[string]interface{} "Successfully created schedule entries"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 409 {object} map[string]interface{} "A generated entry conflicts with an existing one"
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /schedules/bulk [post]
func (h *ScheduleHandler) CreateBulk(c *gin.Context) {
	var req service.BulkCreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedules, err := h.scheduleService.CreateBulk(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"created":   len(schedules),
		"schedules": schedules,
	})
}

// List handles GET /schedules
// @Summary List schedule entries
// @Description Get schedule entries in a date range, optionally filtered by employee and status
// @Tags schedules
// @Accept json
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param employee_id query string false "Filter by employee UUID"
// @Param status query string false "Filter by status"
// @Success 200 {object} map[string]interface{} "Schedule entries"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Router /schedules [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})
		return
	}

	var employeeID *uuid.UUID
	if raw := c.Query("employee_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee_id"})
			return
		}
		employeeID = &id
	}

	var status *models.ScheduleStatus
	if raw := c.Query("status"); raw != "" {
		s := models.ScheduleStatus(raw)
		status = &s
	}

	schedules, err := h.scheduleService.GetByDateRange(from, to, employeeID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"schedules": schedules,
		"total":     len(schedules),
	})
}

// GetByID handles GET /schedules/:id
// @Summary Get schedule entry by ID
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule entry UUID"
// @Success 200 {object} service.ScheduleResponse "Schedule entry"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Schedule entry not found"
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	schedule, err := h.scheduleService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// Update handles PUT /schedules/:id
// @Summary Update a schedule entry
// @Description Change an entry's window or details. The conflict check runs again with the entry's own row excluded, so saving an unchanged window succeeds.
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule entry UUID"
// @Param schedule body service.UpdateScheduleRequest true "Fields to update"
// @Success 200 {object} service.ScheduleResponse "Updated schedule entry"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Schedule entry not found"
// @Failure 409 {object} map[string]interface{} "Window conflicts with another entry"
// @Failure 422 {object} ErrorResponse "Validation or state machine error"
// @Router /schedules/{id} [put]
func (h *ScheduleHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.scheduleService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// UpdateStatus handles PATCH /schedules/:id/status
// @Summary Transition a schedule entry's status
// @Description Status-only transition following scheduled -> confirmed -> completed, with cancellation allowed from any non-terminal state
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule entry UUID"
// @Param status body service.UpdateScheduleStatusRequest true "Target status"
// @Success 200 {object} service.ScheduleResponse "Updated schedule entry"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Schedule entry not found"
// @Failure 422 {object} ErrorResponse "Transition not allowed"
// @Router /schedules/{id}/status [patch]
func (h *ScheduleHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateScheduleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.scheduleService.UpdateStatus(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// Delete handles DELETE /schedules/:id
// @Summary Delete a schedule entry
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule entry UUID"
// @Success 204 "Schedule entry deleted"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Schedule entry not found"
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.scheduleService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
