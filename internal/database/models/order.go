package models

import "time"

// Order represents a client decoration order with payment tracking
type Order struct {
	BaseModel
	OrderNumber string      `json:"order_number" gorm:"size:40;uniqueIndex;not null" validate:"required,min=1,max=40"`
	ClientName  string      `json:"client_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	ClientPhone string      `json:"client_phone" gorm:"size:30"`
	EventDate   time.Time   `json:"event_date" gorm:"type:date;not null" validate:"required"`
	EventType   string      `json:"event_type" gorm:"size:100"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	TotalAmount float64     `json:"total_amount" gorm:"not null;default:0" validate:"min=0"`
	PaidAmount  float64     `json:"paid_amount" gorm:"not null;default:0" validate:"min=0"`
	Notes       string      `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for Order
func (Order) TableName() string {
	return "orders"
}

// PaymentPercentage returns paid/total*100 clamped to [0,100].
// A zero total reports 0, never NaN.
func (o *Order) PaymentPercentage() float64 {
	if o.TotalAmount <= 0 {
		return 0
	}
	pct := o.PaidAmount / o.TotalAmount * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// PaymentStatus derives the payment state from the amounts
func (o *Order) PaymentStatus() PaymentStatus {
	pct := o.PaymentPercentage()
	switch {
	case pct >= 100:
		return PaymentStatusPaid
	case pct > 0:
		return PaymentStatusPartial
	default:
		return PaymentStatusUnpaid
	}
}
