package service_test

import (
	"testing"
	"time"

	"event-decor-backend/internal/database/models"
	apperrors "event-decor-backend/internal/errors"
	"event-decor-backend/internal/mocks"
	"event-decor-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ScheduleServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockScheduleEntryRepositoryInterface
	mockEmployeeRepo *mocks.MockEmployeeRepositoryInterface
	svc              *service.ScheduleService
}

func (suite *ScheduleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockScheduleEntryRepositoryInterface(suite.ctrl)
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.svc = service.NewScheduleService(suite.mockRepo, suite.mockEmployeeRepo, validator.New())
}

func (suite *ScheduleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ScheduleServiceTestSuite) TestCreateSuccess() {
	employeeID := uuid.New()
	req := &service.CreateScheduleRequest{
		EmployeeID: employeeID,
		Date:       "2025-06-02",
		ShiftStart: "09:00",
		ShiftEnd:   "17:00",
		ShiftType:  models.ShiftTypeFullDay,
		Location:   "Orchid Garden Hall",
	}

	suite.mockRepo.EXPECT().CreateChecked(gomock.Any()).DoAndReturn(func(entry *models.ScheduleEntry) error {
		entry.ID = uuid.New()
		return nil
	})

	resp, err := suite.svc.Create(req)
	suite.NoError(err)
	suite.Equal(employeeID, resp.EmployeeID)
	suite.Equal("2025-06-02", resp.Date)
	suite.Equal("09:00", resp.ShiftStart)
	suite.Equal("17:00", resp.ShiftEnd)
	suite.Equal(models.ScheduleStatusScheduled, resp.Status)
}

func (suite *ScheduleServiceTestSuite) TestCreateInvalidWindow() {
	req := &service.CreateScheduleRequest{
		EmployeeID: uuid.New(),
		Date:       "2025-06-02",
		ShiftStart: "17:00",
		ShiftEnd:   "09:00",
		ShiftType:  models.ShiftTypeFullDay,
	}

	resp, err := suite.svc.Create(req)
	suite.Nil(resp)
	suite.True(apperrors.IsInvalidWindow(err))
}

func (suite *ScheduleServiceTestSuite) TestCreateZeroLengthWindow() {
	req := &service.CreateScheduleRequest{
		EmployeeID: uuid.New(),
		Date:       "2025-06-02",
		ShiftStart: "09:00",
		ShiftEnd:   "09:00",
		ShiftType:  models.ShiftTypeMorning,
	}

	resp, err := suite.svc.Create(req)
	suite.Nil(resp)
	suite.True(apperrors.IsInvalidWindow(err))
}

func (suite *ScheduleServiceTestSuite) TestCreateInvalidShiftType() {
	req := &service.CreateScheduleRequest{
		EmployeeID: uuid.New(),
		Date:       "2025-06-02",
		ShiftStart: "09:00",
		ShiftEnd:   "17:00",
		ShiftType:  models.ShiftType("graveyard"),
	}

	resp, err := suite.svc.Create(req)
	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

func (suite *ScheduleServiceTestSuite) TestCreateInvalidDate() {
	req := &service.CreateScheduleRequest{
		EmployeeID: uuid.New(),
		Date:       "02/06/2025",
		ShiftStart: "09:00",
		ShiftEnd:   "17:00",
		ShiftType:  models.ShiftTypeFullDay,
	}

	resp, err := suite.svc.Create(req)
	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

func (suite *ScheduleServiceTestSuite) TestCreateConflictPassthrough() {
	conflict := &apperrors.ConflictError{
		Entity:         "schedule entry",
		ConflictingID:  uuid.New(),
		Date:           time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		ConflictStart:  "08:00",
		ConflictEnd:    "16:00",
		RequestedStart: "15:00",
		RequestedEnd:   "20:00",
	}
	suite.mockRepo.EXPECT().CreateChecked(gomock.Any()).Return(conflict)

	req := &service.CreateScheduleRequest{
		EmployeeID: uuid.New(),
		Date:       "2025-06-02",
		ShiftStart: "15:00",
		ShiftEnd:   "20:00",
		ShiftType:  models.ShiftTypeEvening,
	}

	resp, err := suite.svc.Create(req)
	suite.Nil(resp)
	suite.True(apperrors.IsConflict(err))
}

func (suite *ScheduleServiceTestSuite) TestCreateBulkExpandsWeekdays() {
	employeeID := uuid.New()
	// 2025-06-02 is a Monday; two weeks through Sunday 2025-06-15.
	req := &service.BulkCreateScheduleRequest{
		EmployeeID: employeeID,
		StartDate:  "2025-06-02",
		EndDate:    "2025-06-15",
		Days:       []int{1, 3}, // Monday, Wednesday
		ShiftStart: "09:00",
		ShiftEnd:   "17:00",
		ShiftType:  models.ShiftTypeFullDay,
	}

	var captured []*models.ScheduleEntry
	suite.mockRepo.EXPECT().CreateBatchChecked(gomock.Any()).DoAndReturn(func(entries []*models.ScheduleEntry) error {
		captured = entries
		return nil
	})

	resp, err := suite.svc.CreateBulk(req)
	suite.NoError(err)
	suite.Len(resp, 4)
	suite.Len(captured, 4)

	wantDates := []string{"2025-06-02", "2025-06-04", "2025-06-09", "2025-06-11"}
	for i, entry := range captured {
		suite.Equal(wantDates[i], entry.Date.Format("2006-01-02"))
		suite.Equal(employeeID, entry.EmployeeID)
		suite.Equal(models.ScheduleStatusScheduled, entry.Status)
	}
}

func (suite *ScheduleServiceTestSuite) TestCreateBulkEmptyWeekdaySet() {
	req := &service.BulkCreateScheduleRequest{
		EmployeeID: uuid.New(),
		StartDate:  "2025-06-02",
		EndDate:    "2025-06-15",
		Days:       []int{},
		ShiftStart: "09:00",
		ShiftEnd:   "17:00",
		ShiftType:  models.ShiftTypeFullDay,
	}

	resp, err := suite.svc.CreateBulk(req)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrEmptyWeekdaySet)
}

func (suite *ScheduleServiceTestSuite) TestCreateBulkWeekdayOutOfRange() {
	req := &service.BulkCreateScheduleRequest{
		EmployeeID: uuid.New(),
		StartDate:  "2025-06-02",
		EndDate:    "2025-06-15",
		Days:       []int{7},
		ShiftStart: "09:00",
		ShiftEnd:   "17:00",
		ShiftType:  models.ShiftTypeFullDay,
	}

	resp, err := suite.svc.CreateBulk(req)
	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

func (suite *ScheduleServiceTestSuite) TestCreateBulkInvertedRange() {
	req := &service.BulkCreateScheduleRequest{
		EmployeeID: uuid.New(),
		StartDate:  "2025-06-15",
		EndDate:    "2025-06-02",
		Days:       []int{1},
		ShiftStart: "09:00",
		ShiftEnd:   "17:00",
		ShiftType:  models.ShiftTypeFullDay,
	}

	resp, err := suite.svc.CreateBulk(req)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidDateRange)
}

func (suite *ScheduleServiceTestSuite) TestCreateBulkAllOrNothing() {
	conflict := &apperrors.BulkConflictError{ConflictError: apperrors.ConflictError{
		Entity:        "schedule entry",
		ConflictingID: uuid.New(),
		Date:          time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
	}}
	suite.mockRepo.EXPECT().CreateBatchChecked(gomock.Any()).Return(conflict)

	req := &service.BulkCreateScheduleRequest{
		EmployeeID: uuid.New(),
		StartDate:  "2025-06-02",
		EndDate:    "2025-06-15",
		Days:       []int{1},
		ShiftStart: "09:00",
		ShiftEnd:   "17:00",
		ShiftType:  models.ShiftTypeFullDay,
	}

	resp, err := suite.svc.CreateBulk(req)
	suite.Nil(resp)
	suite.True(apperrors.IsBulkConflict(err))
	suite.True(apperrors.IsConflict(err), "bulk conflict unwraps to conflict")
}

func (suite *ScheduleServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.GetByID(id)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrScheduleEntryNotFound)
}

func (suite *ScheduleServiceTestSuite) TestGetByEmployeeVerifiesEmployee() {
	employeeID := uuid.New()
	suite.mockEmployeeRepo.EXPECT().GetByID(employeeID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.GetByEmployee(employeeID, 1, 20)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrEmployeeNotFound)
}

func (suite *ScheduleServiceTestSuite) TestGetByEmployeePaginates() {
	employeeID := uuid.New()
	entries := []models.ScheduleEntry{
		{EmployeeID: employeeID, Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), StartTime: "09:00", EndTime: "17:00", ShiftType: models.ShiftTypeFullDay, Status: models.ScheduleStatusScheduled},
	}
	suite.mockEmployeeRepo.EXPECT().GetByID(employeeID).Return(&models.Employee{}, nil)
	suite.mockRepo.EXPECT().GetByEmployeeID(employeeID, 20, 0).Return(entries, int64(1), nil)

	resp, err := suite.svc.GetByEmployee(employeeID, 0, 0)
	suite.NoError(err)
	suite.Equal(int64(1), resp.Total)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.PageSize)
	suite.Len(resp.Schedules, 1)
}

func (suite *ScheduleServiceTestSuite) TestGetByDateRangeInverted() {
	resp, err := suite.svc.GetByDateRange("2025-06-15", "2025-06-02", nil, nil)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidDateRange)
}

func (suite *ScheduleServiceTestSuite) TestGetByDateRangeInvalidStatus() {
	bad := models.ScheduleStatus("unknown")
	resp, err := suite.svc.GetByDateRange("2025-06-02", "2025-06-15", nil, &bad)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
}

func (suite *ScheduleServiceTestSuite) TestUpdateReChecksConflicts() {
	id := uuid.New()
	entry := &models.ScheduleEntry{
		BaseModel:  models.BaseModel{ID: id},
		EmployeeID: uuid.New(),
		Date:       time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime:  "09:00",
		EndTime:    "17:00",
		ShiftType:  models.ShiftTypeFullDay,
		Status:     models.ScheduleStatusScheduled,
	}
	suite.mockRepo.EXPECT().GetByID(id).Return(entry, nil)
	suite.mockRepo.EXPECT().UpdateChecked(entry).Return(nil)

	newEnd := "18:00"
	resp, err := suite.svc.Update(id, &service.UpdateScheduleRequest{ShiftEnd: &newEnd})
	suite.NoError(err)
	suite.Equal("18:00", resp.ShiftEnd)
}

func (suite *ScheduleServiceTestSuite) TestUpdateTerminalEntryRejected() {
	id := uuid.New()
	entry := &models.ScheduleEntry{
		BaseModel: models.BaseModel{ID: id},
		StartTime: "09:00",
		EndTime:   "17:00",
		Status:    models.ScheduleStatusCancelled,
	}
	suite.mockRepo.EXPECT().GetByID(id).Return(entry, nil)

	newEnd := "18:00"
	resp, err := suite.svc.Update(id, &service.UpdateScheduleRequest{ShiftEnd: &newEnd})
	suite.Nil(resp)
	suite.True(apperrors.IsInvalidTransition(err))
}

func (suite *ScheduleServiceTestSuite) TestUpdateStatusForwardPath() {
	id := uuid.New()
	entry := &models.ScheduleEntry{
		BaseModel: models.BaseModel{ID: id},
		StartTime: "09:00",
		EndTime:   "17:00",
		Status:    models.ScheduleStatusScheduled,
	}
	suite.mockRepo.EXPECT().GetByID(id).Return(entry, nil)
	suite.mockRepo.EXPECT().Update(entry).Return(nil)

	resp, err := suite.svc.UpdateStatus(id, &service.UpdateScheduleStatusRequest{Status: models.ScheduleStatusConfirmed})
	suite.NoError(err)
	suite.Equal(models.ScheduleStatusConfirmed, resp.Status)
}

func (suite *ScheduleServiceTestSuite) TestUpdateStatusSkipRejected() {
	id := uuid.New()
	entry := &models.ScheduleEntry{
		BaseModel: models.BaseModel{ID: id},
		Status:    models.ScheduleStatusScheduled,
	}
	suite.mockRepo.EXPECT().GetByID(id).Return(entry, nil)

	resp, err := suite.svc.UpdateStatus(id, &service.UpdateScheduleStatusRequest{Status: models.ScheduleStatusCompleted})
	suite.Nil(resp)
	suite.True(apperrors.IsInvalidTransition(err))
}

func (suite *ScheduleServiceTestSuite) TestUpdateStatusInvalidValue() {
	resp, err := suite.svc.UpdateStatus(uuid.New(), &service.UpdateScheduleStatusRequest{Status: models.ScheduleStatus("unknown")})
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
}

func (suite *ScheduleServiceTestSuite) TestDelete() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.ScheduleEntry{}, nil)
	suite.mockRepo.EXPECT().Delete(id).Return(nil)

	suite.NoError(suite.svc.Delete(id))
}

func (suite *ScheduleServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.svc.Delete(id), apperrors.ErrScheduleEntryNotFound)
}

func TestScheduleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}

func TestExpandDates(t *testing.T) {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC) // Monday
	end := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)   // Sunday

	dates := service.ExpandDates(start, end, map[time.Weekday]bool{
		time.Monday: true,
		time.Sunday: true,
	})

	if len(dates) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(dates))
	}
	if got := dates[0].Format("2006-01-02"); got != "2025-06-02" {
		t.Errorf("first date = %s, want 2025-06-02", got)
	}
	if got := dates[1].Format("2006-01-02"); got != "2025-06-08" {
		t.Errorf("second date = %s, want 2025-06-08 (end date inclusive)", got)
	}
}
