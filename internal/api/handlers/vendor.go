package handlers

import (
	"net/http"

	"event-decor-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VendorHandler handles HTTP requests for vendors
type VendorHandler struct {
	vendorService service.VendorServiceInterface
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorService service.VendorServiceInterface) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// Create handles POST /vendors
// @Summary Create a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param vendor body service.CreateVendorRequest true "Vendor data"
// @Success 201 {object} service.VendorResponse "Successfully created vendor"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /vendors [post]
func (h *VendorHandler) Create(c *gin.Context) {
	var req service.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := h.vendorService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vendor)
}

// List handles GET /vendors
// @Summary List vendors
// @Tags vendors
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Param category query string false "Filter by category"
// @Success 200 {object} service.VendorListResponse "Vendors"
// @Router /vendors [get]
func (h *VendorHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)

	vendors, err := h.vendorService.GetAll(page, pageSize, c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vendors)
}

// GetByID handles GET /vendors/:id
// @Summary Get vendor by ID
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor UUID"
// @Success 200 {object} service.VendorResponse "Vendor"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Vendor not found"
// @Router /vendors/{id} [get]
func (h *VendorHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	vendor, err := h.vendorService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// Update handles PUT /vendors/:id
// @Summary Update a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor UUID"
// @Param vendor body service.UpdateVendorRequest true "Fields to update"
// @Success 200 {object} service.VendorResponse "Updated vendor"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Vendor not found"
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /vendors/{id} [put]
func (h *VendorHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := h.vendorService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// Delete handles DELETE /vendors/:id
// @Summary Delete a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor UUID"
// @Success 204 "Vendor deleted"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Vendor not found"
// @Router /vendors/{id} [delete]
func (h *VendorHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.vendorService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
