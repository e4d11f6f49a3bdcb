package models

// ShiftType defines the types of shifts for schedule entries
type ShiftType string

const (
	ShiftTypeMorning   ShiftType = "morning"
	ShiftTypeAfternoon ShiftType = "afternoon"
	ShiftTypeEvening   ShiftType = "evening"
	ShiftTypeNight     ShiftType = "night"
	ShiftTypeFullDay   ShiftType = "full_day"
)

// IsValid checks if the ShiftType is valid
func (s ShiftType) IsValid() bool {
	switch s {
	case ShiftTypeMorning, ShiftTypeAfternoon, ShiftTypeEvening, ShiftTypeNight, ShiftTypeFullDay:
		return true
	}
	return false
}

// ScheduleStatus defines the lifecycle states of a schedule entry
type ScheduleStatus string

const (
	ScheduleStatusScheduled ScheduleStatus = "scheduled"
	ScheduleStatusConfirmed ScheduleStatus = "confirmed"
	ScheduleStatusCompleted ScheduleStatus = "completed"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
)

// IsValid checks if the ScheduleStatus is valid
func (s ScheduleStatus) IsValid() bool {
	switch s {
	case ScheduleStatusScheduled, ScheduleStatusConfirmed, ScheduleStatusCompleted, ScheduleStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition leaves this status
func (s ScheduleStatus) IsTerminal() bool {
	return s == ScheduleStatusCompleted || s == ScheduleStatusCancelled
}

// CanTransitionTo reports whether the status machine allows s -> target.
// Forward path: scheduled -> confirmed -> completed; cancellation is
// allowed from any non-terminal state.
func (s ScheduleStatus) CanTransitionTo(target ScheduleStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch target {
	case ScheduleStatusConfirmed:
		return s == ScheduleStatusScheduled
	case ScheduleStatusCompleted:
		return s == ScheduleStatusConfirmed
	case ScheduleStatusCancelled:
		return true
	}
	return false
}

// BookingStatus defines the lifecycle states of a venue booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid checks if the BookingStatus is valid
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition leaves this status
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// CanTransitionTo reports whether the status machine allows s -> target
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch target {
	case BookingStatusConfirmed:
		return s == BookingStatusPending
	case BookingStatusCompleted:
		return s == BookingStatusConfirmed
	case BookingStatusCancelled:
		return true
	}
	return false
}

// OrderStatus defines the lifecycle states of a client order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the OrderStatus is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus is derived from paid vs total amount, never stored
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// EmployeeRole defines the roles employees can hold
type EmployeeRole string

const (
	EmployeeRoleDecorator   EmployeeRole = "decorator"
	EmployeeRoleFlorist     EmployeeRole = "florist"
	EmployeeRoleDriver      EmployeeRole = "driver"
	EmployeeRoleCoordinator EmployeeRole = "coordinator"
	EmployeeRoleManager     EmployeeRole = "manager"
)

// IsValid checks if the EmployeeRole is valid
func (r EmployeeRole) IsValid() bool {
	switch r {
	case EmployeeRoleDecorator, EmployeeRoleFlorist, EmployeeRoleDriver, EmployeeRoleCoordinator, EmployeeRoleManager:
		return true
	}
	return false
}
