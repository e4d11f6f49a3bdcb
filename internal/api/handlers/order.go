package handlers

import (
	"net/http"

	"event-decor-backend/internal/database/models"
	"event-decor-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles HTTP requests for decoration orders
type OrderHandler struct {
	orderService service.OrderServiceInterface
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService service.OrderServiceInterface) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles POST /orders
// @Summary Create an order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body service.CreateOrderRequest true "Order data"
// @Success 201 {object} service.OrderResponse "Successfully created order"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Order number already exists"
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// List handles GET /orders
// @Summary List orders
// @Tags orders
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Param status query string false "Filter by status"
// @Success 200 {object} service.OrderListResponse "Orders"
// @Failure 422 {object} ErrorResponse "Invalid status"
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)

	var status *models.OrderStatus
	if raw := c.Query("status"); raw != "" {
		s := models.OrderStatus(raw)
		status = &s
	}

	orders, err := h.orderService.GetAll(page, pageSize, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetByID handles GET /orders/:id
// @Summary Get order by ID
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order UUID"
// @Success 200 {object} service.OrderResponse "Order"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Router /orders/{id} [get]
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// Update handles PUT /orders/:id
// @Summary Update an order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order UUID"
// @Param order body service.UpdateOrderRequest true "Fields to update"
// @Success 200 {object} service.OrderResponse "Updated order"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 422 {object} ErrorResponse "Validation error"
// @Router /orders/{id} [put]
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// RecordPayment handles PATCH /orders/:id/payment
// @Summary Record a payment against an order
// @Description Add a payment amount to the order's paid total. Rejected when the payment would exceed the total amount.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order UUID"
// @Param payment body service.RecordPaymentRequest true "Payment amount"
// @Success 200 {object} service.OrderResponse "Updated order"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 422 {object} ErrorResponse "Validation error or overpayment"
// @Router /orders/{id}/payment [patch]
func (h *OrderHandler) RecordPayment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderService.RecordPayment(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// Delete handles DELETE /orders/:id
// @Summary Delete an order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order UUID"
// @Success 204 "Order deleted"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
