package repository

import (
	"time"

	"event-decor-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepository handles database operations for orders
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create creates a new order
func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByOrderNumber retrieves an order by its order number
func (r *OrderRepository) GetByOrderNumber(orderNumber string) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, "order_number = ?", orderNumber).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetAll retrieves all orders with pagination, newest events first
func (r *OrderRepository) GetAll(limit, offset int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	if err := r.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("event_date DESC").Limit(limit).Offset(offset).Find(&orders).Error
	return orders, total, err
}

// GetByStatus retrieves orders by status with pagination
func (r *OrderRepository) GetByStatus(status models.OrderStatus, limit, offset int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	if err := r.db.Model(&models.Order{}).Where("status = ?", status).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("status = ?", status).Order("event_date DESC").Limit(limit).Offset(offset).Find(&orders).Error
	return orders, total, err
}

// GetByEventDateRange retrieves orders whose event date falls between
// from and to inclusive. Used by the financial report.
func (r *OrderRepository) GetByEventDateRange(from, to time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("event_date >= ? AND event_date <= ?", models.DateOnly(from), models.DateOnly(to)).
		Order("event_date ASC").Find(&orders).Error
	return orders, err
}

// Update updates an order
func (r *OrderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

// Delete deletes an order
func (r *OrderRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Order{}, "id = ?", id).Error
}
