package handlers

import (
	"net/http"

	"event-decor-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles HTTP requests for employees
type EmployeeHandler struct {
	employeeService service.EmployeeServiceInterface
	scheduleService service.ScheduleServiceInterface
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService service.EmployeeServiceInterface, scheduleService service.ScheduleServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		scheduleService: scheduleService,
	}
}

// Create handles POST /employees
// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body service.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} service.EmployeeResponse "Successfully created employee"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.employeeService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// List handles GET /employees
// @Summary List employees
// @Tags employees
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Param active query bool false "Only active employees"
// @Success 200 {object} service.EmployeeListResponse "Employees"
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)
	activeOnly := c.Query("active") == "true"

	employees, err := h.employeeService.GetAll(page, pageSize, activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// GetByID handles GET /employees/:id
// @Summary Get employee by ID
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee UUID"
// @Success 200 {object} service.EmployeeResponse "Employee"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	employee, err := h.employeeService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// GetSchedules handles GET /employees/:id/schedules
// @Summary Get an employee's schedule entries
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee UUID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.ScheduleListResponse "Schedule entries"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Router /employees/{id}/schedules [get]
func (h *EmployeeHandler) GetSchedules(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)

	schedules, err := h.scheduleService.GetByEmployee(id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// Update handles PUT /employees/:id
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee UUID"
// @Param employee body service.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} service.EmployeeResponse "Updated employee"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.employeeService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// Delete handles DELETE /employees/:id
// @Summary Delete an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee UUID"
// @Success 204 "Employee deleted"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.employeeService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
