package service

import (
	"fmt"
	"time"

	"event-decor-backend/internal/database/models"
	apperrors "event-decor-backend/internal/errors"
	"event-decor-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// InventoryService handles business logic for decoration stock
type InventoryService struct {
	repo      repository.InventoryItemRepositoryInterface
	validator *validator.Validate
}

// NewInventoryService creates a new inventory service
func NewInventoryService(repo repository.InventoryItemRepositoryInterface, validator *validator.Validate) *InventoryService {
	return &InventoryService{repo: repo, validator: validator}
}

// CreateInventoryItemRequest represents the request to create an inventory item
type CreateInventoryItemRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Category     string  `json:"category,omitempty"`
	Quantity     int     `json:"quantity" validate:"min=0"`
	UnitCost     float64 `json:"unit_cost" validate:"min=0"`
	SellingPrice float64 `json:"selling_price" validate:"min=0"`
	MinimumStock int     `json:"minimum_stock" validate:"min=0"`
}

// UpdateInventoryItemRequest represents the request to update an inventory item
type UpdateInventoryItemRequest struct {
	Name         *string  `json:"name,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Quantity     *int     `json:"quantity,omitempty"`
	UnitCost     *float64 `json:"unit_cost,omitempty"`
	SellingPrice *float64 `json:"selling_price,omitempty"`
	MinimumStock *int     `json:"minimum_stock,omitempty"`
}

// InventoryItemResponse represents the response for inventory operations
type InventoryItemResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Quantity     int       `json:"quantity"`
	UnitCost     float64   `json:"unit_cost"`
	SellingPrice float64   `json:"selling_price"`
	MinimumStock int       `json:"minimum_stock"`
	StockValue   float64   `json:"stock_value"`
	LowStock     bool      `json:"low_stock"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// InventoryListResponse represents a paginated list of inventory items
type InventoryListResponse struct {
	Items    []InventoryItemResponse `json:"items"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

// Create creates a new inventory item
func (s *InventoryService) Create(req *CreateInventoryItemRequest) (*InventoryItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	item := &models.InventoryItem{
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		UnitCost:     req.UnitCost,
		SellingPrice: req.SellingPrice,
		MinimumStock: req.MinimumStock,
	}

	if err := s.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}
	return s.toResponse(item), nil
}

// GetByID retrieves an inventory item by ID
func (s *InventoryService) GetByID(id uuid.UUID) (*InventoryItemResponse, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrInventoryItemNotFound, "get inventory item")
	}
	return s.toResponse(item), nil
}

// GetAll retrieves items, optionally filtered by category
func (s *InventoryService) GetAll(page, pageSize int, category string) (*InventoryListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)
	offset := (page - 1) * pageSize

	var items []models.InventoryItem
	var total int64
	var err error
	if category != "" {
		items, total, err = s.repo.GetByCategory(category, pageSize, offset)
	} else {
		items, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory items: %w", err)
	}

	responses := make([]InventoryItemResponse, len(items))
	for i := range items {
		responses[i] = *s.toResponse(&items[i])
	}

	return &InventoryListResponse{
		Items:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates an inventory item
func (s *InventoryService) Update(id uuid.UUID, req *UpdateInventoryItemRequest) (*InventoryItemResponse, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrInventoryItemNotFound, "get inventory item")
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, apperrors.NewValidationError("quantity", "must not be negative")
		}
		item.Quantity = *req.Quantity
	}
	if req.UnitCost != nil {
		if *req.UnitCost < 0 {
			return nil, apperrors.NewValidationError("unit_cost", "must not be negative")
		}
		item.UnitCost = *req.UnitCost
	}
	if req.SellingPrice != nil {
		if *req.SellingPrice < 0 {
			return nil, apperrors.NewValidationError("selling_price", "must not be negative")
		}
		item.SellingPrice = *req.SellingPrice
	}
	if req.MinimumStock != nil {
		if *req.MinimumStock < 0 {
			return nil, apperrors.NewValidationError("minimum_stock", "must not be negative")
		}
		item.MinimumStock = *req.MinimumStock
	}

	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}
	return s.toResponse(item), nil
}

// Delete deletes an inventory item
func (s *InventoryService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return notFoundOr(err, apperrors.ErrInventoryItemNotFound, "get inventory item")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return nil
}

func (s *InventoryService) toResponse(item *models.InventoryItem) *InventoryItemResponse {
	return &InventoryItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Category:     item.Category,
		Quantity:     item.Quantity,
		UnitCost:     item.UnitCost,
		SellingPrice: item.SellingPrice,
		MinimumStock: item.MinimumStock,
		StockValue:   item.StockValue(),
		LowStock:     item.IsLowStock(),
		CreatedAt:    item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    item.UpdatedAt.Format(time.RFC3339),
	}
}
