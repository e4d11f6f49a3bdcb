package repository

import (
	"event-decor-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VendorRepository handles database operations for vendors
type VendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

// Create creates a new vendor
func (r *VendorRepository) Create(vendor *models.Vendor) error {
	return r.db.Create(vendor).Error
}

// GetByID retrieves a vendor by ID
func (r *VendorRepository) GetByID(id uuid.UUID) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.First(&vendor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

// GetAll retrieves all vendors with pagination, best rated first
func (r *VendorRepository) GetAll(limit, offset int) ([]models.Vendor, int64, error) {
	var vendors []models.Vendor
	var total int64

	if err := r.db.Model(&models.Vendor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("rating DESC, name ASC").Limit(limit).Offset(offset).Find(&vendors).Error
	return vendors, total, err
}

// GetByCategory retrieves vendors in a category with pagination
func (r *VendorRepository) GetByCategory(category string, limit, offset int) ([]models.Vendor, int64, error) {
	var vendors []models.Vendor
	var total int64

	if err := r.db.Model(&models.Vendor{}).Where("category = ?", category).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("category = ?", category).Order("rating DESC, name ASC").Limit(limit).Offset(offset).Find(&vendors).Error
	return vendors, total, err
}

// Update updates a vendor
func (r *VendorRepository) Update(vendor *models.Vendor) error {
	return r.db.Save(vendor).Error
}

// Delete deletes a vendor
func (r *VendorRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Vendor{}, "id = ?", id).Error
}
