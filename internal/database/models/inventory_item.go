package models

// InventoryItem represents a decoration stock item
type InventoryItem struct {
	BaseModel
	Name         string  `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Category     string  `json:"category" gorm:"size:100"`
	Quantity     int     `json:"quantity" gorm:"not null;default:0" validate:"min=0"`
	UnitCost     float64 `json:"unit_cost" gorm:"not null;default:0" validate:"min=0"`
	SellingPrice float64 `json:"selling_price" gorm:"not null;default:0" validate:"min=0"`
	MinimumStock int     `json:"minimum_stock" gorm:"not null;default:0" validate:"min=0"`
}

// TableName returns the table name for InventoryItem
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// StockValue returns quantity x selling price
func (i *InventoryItem) StockValue() float64 {
	return float64(i.Quantity) * i.SellingPrice
}

// IsLowStock reports whether the quantity fell below the minimum
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity < i.MinimumStock
}
