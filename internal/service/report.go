package service

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"event-decor-backend/internal/database/models"
	apperrors "event-decor-backend/internal/errors"
	"event-decor-backend/internal/logger"
	"event-decor-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ReportService aggregates read-only reports over schedules, bookings,
// orders and inventory. Every report is recomputed from the database on
// each call.
type ReportService struct {
	scheduleRepo  repository.ScheduleEntryRepositoryInterface
	bookingRepo   repository.VenueBookingRepositoryInterface
	orderRepo     repository.OrderRepositoryInterface
	inventoryRepo repository.InventoryItemRepositoryInterface
	employeeRepo  repository.EmployeeRepositoryInterface
}

// NewReportService creates a new report service
func NewReportService(
	scheduleRepo repository.ScheduleEntryRepositoryInterface,
	bookingRepo repository.VenueBookingRepositoryInterface,
	orderRepo repository.OrderRepositoryInterface,
	inventoryRepo repository.InventoryItemRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
) *ReportService {
	return &ReportService{
		scheduleRepo:  scheduleRepo,
		bookingRepo:   bookingRepo,
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
		employeeRepo:  employeeRepo,
	}
}

// CalendarEntry represents one schedule entry inside a calendar day
type CalendarEntry struct {
	ID           uuid.UUID `json:"id"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	ShiftType    string    `json:"shift_type"`
	Status       string    `json:"status"`
	Location     string    `json:"location"`
}

// CalendarDay groups the entries of one calendar date
type CalendarDay struct {
	Date    string          `json:"date"`
	Entries []CalendarEntry `json:"entries"`
}

// ScheduleCalendarResponse represents the schedule calendar report
type ScheduleCalendarResponse struct {
	From         string        `json:"from"`
	To           string        `json:"to"`
	TotalEntries int           `json:"total_entries"`
	Days         []CalendarDay `json:"days"`
}

// BookingDaySummary aggregates the bookings of one calendar date
type BookingDaySummary struct {
	Date     string         `json:"date"`
	Count    int            `json:"count"`
	ByStatus map[string]int `json:"by_status"`
	Revenue  float64        `json:"revenue"`
}

// BookingSummaryResponse represents the booking summary report.
// Revenue counts non-cancelled bookings only.
type BookingSummaryResponse struct {
	From          string              `json:"from"`
	To            string              `json:"to"`
	TotalBookings int                 `json:"total_bookings"`
	TotalRevenue  float64             `json:"total_revenue"`
	ByStatus      map[string]int      `json:"by_status"`
	Days          []BookingDaySummary `json:"days"`
}

// OrderFinancial represents one order's financial line
type OrderFinancial struct {
	ID                uuid.UUID `json:"id"`
	OrderNumber       string    `json:"order_number"`
	ClientName        string    `json:"client_name"`
	EventDate         string    `json:"event_date"`
	TotalAmount       float64   `json:"total_amount"`
	PaidAmount        float64   `json:"paid_amount"`
	Outstanding       float64   `json:"outstanding"`
	PaymentPercentage float64   `json:"payment_percentage"`
	PaymentStatus     string    `json:"payment_status"`
}

// FinancialReportResponse represents the financial report
type FinancialReportResponse struct {
	From             string           `json:"from"`
	To               string           `json:"to"`
	TotalBilled      float64          `json:"total_billed"`
	TotalCollected   float64          `json:"total_collected"`
	TotalOutstanding float64          `json:"total_outstanding"`
	Orders           []OrderFinancial `json:"orders"`
}

// InventoryReportLine represents one inventory item's stock position
type InventoryReportLine struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Quantity     int       `json:"quantity"`
	MinimumStock int       `json:"minimum_stock"`
	StockValue   float64   `json:"stock_value"`
	LowStock     bool      `json:"low_stock"`
}

// InventoryReportResponse represents the inventory report
type InventoryReportResponse struct {
	TotalItems      int                   `json:"total_items"`
	TotalStockValue float64               `json:"total_stock_value"`
	LowStockCount   int                   `json:"low_stock_count"`
	Items           []InventoryReportLine `json:"items"`
	LowStockItems   []InventoryReportLine `json:"low_stock_items"`
}

// ScheduleCalendar builds the schedule calendar for [from, to],
// optionally filtered by employee and status.
func (s *ReportService) ScheduleCalendar(fromStr, toStr string, employeeID *uuid.UUID, status *models.ScheduleStatus) (*ScheduleCalendarResponse, error) {
	from, to, err := parseRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	entries, err := s.scheduleRepo.GetByDateRange(from, to, employeeID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule entries: %w", err)
	}

	names, err := s.employeeNames()
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]CalendarEntry)
	for i := range entries {
		e := &entries[i]
		key := e.Date.Format(dateLayout)
		byDate[key] = append(byDate[key], CalendarEntry{
			ID:           e.ID,
			EmployeeID:   e.EmployeeID,
			EmployeeName: names[e.EmployeeID],
			StartTime:    e.StartTime,
			EndTime:      e.EndTime,
			ShiftType:    string(e.ShiftType),
			Status:       string(e.Status),
			Location:     e.Location,
		})
	}

	days := make([]CalendarDay, 0, len(byDate))
	for date, dayEntries := range byDate {
		sort.Slice(dayEntries, func(i, j int) bool {
			if dayEntries[i].StartTime != dayEntries[j].StartTime {
				return dayEntries[i].StartTime < dayEntries[j].StartTime
			}
			return dayEntries[i].EmployeeName < dayEntries[j].EmployeeName
		})
		days = append(days, CalendarDay{Date: date, Entries: dayEntries})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return &ScheduleCalendarResponse{
		From:         from.Format(dateLayout),
		To:           to.Format(dateLayout),
		TotalEntries: len(entries),
		Days:         days,
	}, nil
}

// BookingSummary aggregates bookings per date over [from, to],
// optionally scoped to one venue.
func (s *ReportService) BookingSummary(fromStr, toStr string, venueID *uuid.UUID) (*BookingSummaryResponse, error) {
	from, to, err := parseRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.GetByDateRange(from, to, venueID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue bookings: %w", err)
	}

	totalByStatus := make(map[string]int)
	byDate := make(map[string]*BookingDaySummary)
	var totalRevenue float64
	for i := range bookings {
		b := &bookings[i]
		key := b.BookingDate.Format(dateLayout)
		day, ok := byDate[key]
		if !ok {
			day = &BookingDaySummary{Date: key, ByStatus: make(map[string]int)}
			byDate[key] = day
		}
		day.Count++
		day.ByStatus[string(b.Status)]++
		totalByStatus[string(b.Status)]++
		if b.Status != models.BookingStatusCancelled {
			day.Revenue += b.TotalPrice
			totalRevenue += b.TotalPrice
		}
	}

	days := make([]BookingDaySummary, 0, len(byDate))
	for _, day := range byDate {
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return &BookingSummaryResponse{
		From:          from.Format(dateLayout),
		To:            to.Format(dateLayout),
		TotalBookings: len(bookings),
		TotalRevenue:  totalRevenue,
		ByStatus:      totalByStatus,
		Days:          days,
	}, nil
}

// FinancialReport sums billed, collected and outstanding amounts over
// orders whose event date falls in [from, to].
func (s *ReportService) FinancialReport(fromStr, toStr string) (*FinancialReportResponse, error) {
	from, to, err := parseRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.GetByEventDateRange(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	resp := &FinancialReportResponse{
		From:   from.Format(dateLayout),
		To:     to.Format(dateLayout),
		Orders: make([]OrderFinancial, 0, len(orders)),
	}
	for i := range orders {
		o := &orders[i]
		outstanding := o.TotalAmount - o.PaidAmount
		if outstanding < 0 {
			outstanding = 0
		}
		resp.TotalBilled += o.TotalAmount
		resp.TotalCollected += o.PaidAmount
		resp.TotalOutstanding += outstanding
		resp.Orders = append(resp.Orders, OrderFinancial{
			ID:                o.ID,
			OrderNumber:       o.OrderNumber,
			ClientName:        o.ClientName,
			EventDate:         o.EventDate.Format(dateLayout),
			TotalAmount:       o.TotalAmount,
			PaidAmount:        o.PaidAmount,
			Outstanding:       outstanding,
			PaymentPercentage: o.PaymentPercentage(),
			PaymentStatus:     string(o.PaymentStatus()),
		})
	}
	return resp, nil
}

// InventoryReport values the current stock and flags low-stock items
func (s *ReportService) InventoryReport() (*InventoryReportResponse, error) {
	items, err := s.inventoryRepo.GetAllUnpaged()
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory items: %w", err)
	}

	resp := &InventoryReportResponse{
		TotalItems:    len(items),
		Items:         make([]InventoryReportLine, 0, len(items)),
		LowStockItems: []InventoryReportLine{},
	}
	for i := range items {
		item := &items[i]
		line := InventoryReportLine{
			ID:           item.ID,
			Name:         item.Name,
			Category:     item.Category,
			Quantity:     item.Quantity,
			MinimumStock: item.MinimumStock,
			StockValue:   item.StockValue(),
			LowStock:     item.IsLowStock(),
		}
		resp.TotalStockValue += line.StockValue
		resp.Items = append(resp.Items, line)
		if line.LowStock {
			resp.LowStockCount++
			resp.LowStockItems = append(resp.LowStockItems, line)
		}
	}
	return resp, nil
}

// ExportScheduleCalendar renders the schedule calendar as an .xlsx
// workbook. Returns the file content and a suggested filename.
func (s *ReportService) ExportScheduleCalendar(fromStr, toStr string, employeeID *uuid.UUID, status *models.ScheduleStatus) (*bytes.Buffer, string, error) {
	calendar, err := s.ScheduleCalendar(fromStr, toStr, employeeID, status)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Schedule"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 24)
	f.SetColWidth(sheetName, "C", "D", 10)
	f.SetColWidth(sheetName, "E", "F", 14)
	f.SetColWidth(sheetName, "G", "G", 24)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	title := fmt.Sprintf("Schedule calendar %s to %s", calendar.From, calendar.To)
	f.SetCellValue(sheetName, "A1", title)
	f.MergeCell(sheetName, "A1", "G1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	headers := []string{"Date", "Employee", "Start", "End", "Shift", "Status", "Location"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, fmt.Sprintf("%s2", col), h)
		f.SetCellStyle(sheetName, fmt.Sprintf("%s2", col), fmt.Sprintf("%s2", col), headerStyle)
	}

	row := 3
	for _, day := range calendar.Days {
		for _, e := range day.Entries {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), day.Date)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), e.EmployeeName)
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), e.StartTime)
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), e.EndTime)
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), e.ShiftType)
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), e.Status)
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), e.Location)
			row++
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", fmt.Errorf("failed to write excel file: %w", err)
	}

	filename := fmt.Sprintf("schedule_%s_%s.xlsx", calendar.From, calendar.To)
	logger.New().Infof("Exported schedule calendar %s (%d rows)", filename, row-3)
	return buf, filename, nil
}

// employeeNames loads all employees and indexes their display names
func (s *ReportService) employeeNames() (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string)
	const pageSize = 200
	offset := 0
	for {
		employees, total, err := s.employeeRepo.GetAll(pageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to get employees: %w", err)
		}
		for i := range employees {
			names[employees[i].ID] = employees[i].FullName
		}
		offset += len(employees)
		if len(employees) == 0 || int64(offset) >= total {
			break
		}
	}
	return names, nil
}

// parseRange parses a from/to date pair and validates its order
func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := parseDate(fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseDate(toStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidDateRange
	}
	return from, to, nil
}
