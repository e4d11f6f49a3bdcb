package repository

import (
	"event-decor-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItemRepository handles database operations for inventory items
type InventoryItemRepository struct {
	db *gorm.DB
}

// NewInventoryItemRepository creates a new inventory item repository
func NewInventoryItemRepository(db *gorm.DB) *InventoryItemRepository {
	return &InventoryItemRepository{db: db}
}

// Create creates a new inventory item
func (r *InventoryItemRepository) Create(item *models.InventoryItem) error {
	return r.db.Create(item).Error
}

// GetByID retrieves an inventory item by ID
func (r *InventoryItemRepository) GetByID(id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetAll retrieves all inventory items with pagination, ordered by name
func (r *InventoryItemRepository) GetAll(limit, offset int) ([]models.InventoryItem, int64, error) {
	var items []models.InventoryItem
	var total int64

	if err := r.db.Model(&models.InventoryItem{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

// GetByCategory retrieves items in a category with pagination
func (r *InventoryItemRepository) GetByCategory(category string, limit, offset int) ([]models.InventoryItem, int64, error) {
	var items []models.InventoryItem
	var total int64

	if err := r.db.Model(&models.InventoryItem{}).Where("category = ?", category).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("category = ?", category).Order("name ASC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

// GetAllUnpaged retrieves every item. Used by the inventory report.
func (r *InventoryItemRepository) GetAllUnpaged() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.Order("name ASC").Find(&items).Error
	return items, err
}

// Update updates an inventory item
func (r *InventoryItemRepository) Update(item *models.InventoryItem) error {
	return r.db.Save(item).Error
}

// Delete deletes an inventory item
func (r *InventoryItemRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.InventoryItem{}, "id = ?", id).Error
}
