package service

import (
	"errors"
	"fmt"
	"time"

	"event-decor-backend/internal/database/models"
	apperrors "event-decor-backend/internal/errors"
	"event-decor-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderService handles business logic for client orders and their
// payment tracking
type OrderService struct {
	repo      repository.OrderRepositoryInterface
	validator *validator.Validate
}

// NewOrderService creates a new order service
func NewOrderService(repo repository.OrderRepositoryInterface, validator *validator.Validate) *OrderService {
	return &OrderService{repo: repo, validator: validator}
}

// CreateOrderRequest represents the request to create an order
type CreateOrderRequest struct {
	OrderNumber string  `json:"order_number" validate:"required,min=1,max=40"`
	ClientName  string  `json:"client_name" validate:"required,min=1,max=100"`
	ClientPhone string  `json:"client_phone,omitempty"`
	EventDate   string  `json:"event_date" validate:"required"`
	EventType   string  `json:"event_type,omitempty"`
	TotalAmount float64 `json:"total_amount" validate:"min=0"`
	Notes       string  `json:"notes,omitempty"`
}

// UpdateOrderRequest represents the request to update an order
type UpdateOrderRequest struct {
	ClientName  *string             `json:"client_name,omitempty"`
	ClientPhone *string             `json:"client_phone,omitempty"`
	EventDate   *string             `json:"event_date,omitempty"`
	EventType   *string             `json:"event_type,omitempty"`
	Status      *models.OrderStatus `json:"status,omitempty"`
	TotalAmount *float64            `json:"total_amount,omitempty"`
	Notes       *string             `json:"notes,omitempty"`
}

// RecordPaymentRequest represents a payment against an order
type RecordPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// OrderResponse represents the response for order operations
type OrderResponse struct {
	ID                uuid.UUID            `json:"id"`
	OrderNumber       string               `json:"order_number"`
	ClientName        string               `json:"client_name"`
	ClientPhone       string               `json:"client_phone"`
	EventDate         string               `json:"event_date"`
	EventType         string               `json:"event_type"`
	Status            models.OrderStatus   `json:"status"`
	TotalAmount       float64              `json:"total_amount"`
	PaidAmount        float64              `json:"paid_amount"`
	PaymentPercentage float64              `json:"payment_percentage"`
	PaymentStatus     models.PaymentStatus `json:"payment_status"`
	Notes             string               `json:"notes"`
	CreatedAt         string               `json:"created_at"`
	UpdatedAt         string               `json:"updated_at"`
}

// OrderListResponse represents a paginated list of orders
type OrderListResponse struct {
	Orders   []OrderResponse `json:"orders"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new order
func (s *OrderService) Create(req *CreateOrderRequest) (*OrderResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	eventDate, err := parseDate(req.EventDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByOrderNumber(req.OrderNumber); err == nil {
		return nil, apperrors.ErrOrderNumberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check order number: %w", err)
	}

	order := &models.Order{
		OrderNumber: req.OrderNumber,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		EventDate:   eventDate,
		EventType:   req.EventType,
		Status:      models.OrderStatusPending,
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
	}

	if err := s.repo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return s.toResponse(order), nil
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(id uuid.UUID) (*OrderResponse, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrOrderNotFound, "get order")
	}
	return s.toResponse(order), nil
}

// GetAll retrieves orders, optionally filtered by status
func (s *OrderService) GetAll(page, pageSize int, status *models.OrderStatus) (*OrderListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)
	offset := (page - 1) * pageSize

	var orders []models.Order
	var total int64
	var err error
	if status != nil {
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		orders, total, err = s.repo.GetByStatus(*status, pageSize, offset)
	} else {
		orders, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = *s.toResponse(&orders[i])
	}

	return &OrderListResponse{
		Orders:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates an order
func (s *OrderService) Update(id uuid.UUID, req *UpdateOrderRequest) (*OrderResponse, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrOrderNotFound, "get order")
	}

	if req.ClientName != nil {
		order.ClientName = *req.ClientName
	}
	if req.ClientPhone != nil {
		order.ClientPhone = *req.ClientPhone
	}
	if req.EventDate != nil {
		eventDate, err := parseDate(*req.EventDate)
		if err != nil {
			return nil, err
		}
		order.EventDate = eventDate
	}
	if req.EventType != nil {
		order.EventType = *req.EventType
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		order.Status = *req.Status
	}
	if req.TotalAmount != nil {
		if *req.TotalAmount < 0 {
			return nil, apperrors.NewValidationError("total_amount", "must not be negative")
		}
		order.TotalAmount = *req.TotalAmount
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}

	if err := s.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return s.toResponse(order), nil
}

// RecordPayment adds a payment to the order. The running paid amount
// may not exceed the total.
func (s *OrderService) RecordPayment(id uuid.UUID, req *RecordPaymentRequest) (*OrderResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrOrderNotFound, "get order")
	}

	if order.PaidAmount+req.Amount > order.TotalAmount {
		return nil, apperrors.ErrOverpayment
	}
	order.PaidAmount += req.Amount

	if err := s.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return s.toResponse(order), nil
}

// Delete deletes an order
func (s *OrderService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return notFoundOr(err, apperrors.ErrOrderNotFound, "get order")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func (s *OrderService) toResponse(order *models.Order) *OrderResponse {
	return &OrderResponse{
		ID:                order.ID,
		OrderNumber:       order.OrderNumber,
		ClientName:        order.ClientName,
		ClientPhone:       order.ClientPhone,
		EventDate:         order.EventDate.Format(dateLayout),
		EventType:         order.EventType,
		Status:            order.Status,
		TotalAmount:       order.TotalAmount,
		PaidAmount:        order.PaidAmount,
		PaymentPercentage: order.PaymentPercentage(),
		PaymentStatus:     order.PaymentStatus(),
		Notes:             order.Notes,
		CreatedAt:         order.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         order.UpdatedAt.Format(time.RFC3339),
	}
}
