package handlers

import (
	"net/http"

	"event-decor-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InventoryHandler handles HTTP requests for inventory items
type InventoryHandler struct {
	inventoryService service.InventoryServiceInterface
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService service.InventoryServiceInterface) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Create handles POST /inventory
// @Summary Create an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body service.CreateInventoryItemRequest true "Item data"
// @Success 201 {object} service.InventoryItemResponse "Successfully created item"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /inventory [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	var req service.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.inventoryService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// List handles GET /inventory
// @Summary List inventory items
// @Tags inventory
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Param category query string false "Filter by category"
// @Success 200 {object} service.InventoryListResponse "Inventory items"
// @Router /inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)

	items, err := h.inventoryService.GetAll(page, pageSize, c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetByID handles GET /inventory/:id
// @Summary Get inventory item by ID
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item UUID"
// @Success 200 {object} service.InventoryItemResponse "Inventory item"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Router /inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.inventoryService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Update handles PUT /inventory/:id
// @Summary Update an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item UUID"
// @Param item body service.UpdateInventoryItemRequest true "Fields to update"
// @Success 200 {object} service.InventoryItemResponse "Updated item"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /inventory/{id} [put]
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.inventoryService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /inventory/:id
// @Summary Delete an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item UUID"
// @Success 204 "Item deleted"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.inventoryService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
