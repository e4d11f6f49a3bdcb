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

type BookingServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockVenueBookingRepositoryInterface
	mockVenueRepo *mocks.MockVenueRepositoryInterface
	svc           *service.BookingService
}

func (suite *BookingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockVenueBookingRepositoryInterface(suite.ctrl)
	suite.mockVenueRepo = mocks.NewMockVenueRepositoryInterface(suite.ctrl)
	suite.svc = service.NewBookingService(suite.mockRepo, suite.mockVenueRepo, validator.New())
}

func (suite *BookingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BookingServiceTestSuite) validCreateRequest() *service.CreateBookingRequest {
	return &service.CreateBookingRequest{
		VenueID:     uuid.New(),
		BookingDate: "2025-10-18",
		StartTime:   "17:00",
		EndTime:     "23:00",
		ClientName:  "Levi family",
		EventType:   "wedding",
		GuestCount:  180,
		TotalPrice:  24000,
	}
}

func (suite *BookingServiceTestSuite) TestCreateSuccess() {
	req := suite.validCreateRequest()
	suite.mockRepo.EXPECT().CreateChecked(gomock.Any()).DoAndReturn(func(b *models.VenueBooking) error {
		b.ID = uuid.New()
		return nil
	})

	resp, err := suite.svc.Create(req)
	suite.NoError(err)
	suite.Equal(models.BookingStatusPending, resp.Status)
	suite.Equal("2025-10-18", resp.BookingDate)
	suite.Equal("Levi family", resp.ClientName)
}

func (suite *BookingServiceTestSuite) TestCreateInvalidWindow() {
	req := suite.validCreateRequest()
	req.StartTime = "23:00"
	req.EndTime = "17:00"

	resp, err := suite.svc.Create(req)
	suite.Nil(resp)
	suite.True(apperrors.IsInvalidWindow(err))
}

func (suite *BookingServiceTestSuite) TestCreateVenueUnavailable() {
	req := suite.validCreateRequest()
	suite.mockRepo.EXPECT().CreateChecked(gomock.Any()).Return(apperrors.ErrVenueUnavailable)

	resp, err := suite.svc.Create(req)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrVenueUnavailable)
}

func (suite *BookingServiceTestSuite) TestCreateOutsideOpenHours() {
	req := suite.validCreateRequest()
	req.StartTime = "08:00"
	req.EndTime = "11:00"
	suite.mockRepo.EXPECT().CreateChecked(gomock.Any()).Return(apperrors.ErrOutsideOpenHours)

	resp, err := suite.svc.Create(req)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrOutsideOpenHours)
}

func (suite *BookingServiceTestSuite) TestCreateConflictPassthrough() {
	req := suite.validCreateRequest()
	suite.mockRepo.EXPECT().CreateChecked(gomock.Any()).Return(&apperrors.ConflictError{
		Entity:        "venue booking",
		ConflictingID: uuid.New(),
	})

	resp, err := suite.svc.Create(req)
	suite.Nil(resp)
	suite.True(apperrors.IsConflict(err))
}

func (suite *BookingServiceTestSuite) TestCreateMissingClientName() {
	req := suite.validCreateRequest()
	req.ClientName = ""

	resp, err := suite.svc.Create(req)
	suite.Nil(resp)
	suite.Error(err)
}

func (suite *BookingServiceTestSuite) TestGetByVenueVerifiesVenue() {
	venueID := uuid.New()
	suite.mockVenueRepo.EXPECT().GetByID(venueID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.GetByVenue(venueID, 1, 20)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrVenueNotFound)
}

func (suite *BookingServiceTestSuite) TestGetByDateRangeInverted() {
	resp, err := suite.svc.GetByDateRange("2025-10-20", "2025-10-18", nil, nil)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidDateRange)
}

func (suite *BookingServiceTestSuite) TestUpdateTerminalBookingRejected() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.VenueBooking{
		BaseModel: models.BaseModel{ID: id},
		StartTime: "17:00",
		EndTime:   "23:00",
		Status:    models.BookingStatusCompleted,
	}, nil)

	newPrice := 30000.0
	resp, err := suite.svc.Update(id, &service.UpdateBookingRequest{TotalPrice: &newPrice})
	suite.Nil(resp)
	suite.True(apperrors.IsInvalidTransition(err))
}

func (suite *BookingServiceTestSuite) TestUpdateReChecksWindow() {
	id := uuid.New()
	booking := &models.VenueBooking{
		BaseModel:   models.BaseModel{ID: id},
		VenueID:     uuid.New(),
		BookingDate: time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC),
		StartTime:   "17:00",
		EndTime:     "23:00",
		Status:      models.BookingStatusPending,
	}
	suite.mockRepo.EXPECT().GetByID(id).Return(booking, nil)
	suite.mockRepo.EXPECT().UpdateChecked(booking).Return(nil)

	newStart := "16:00"
	resp, err := suite.svc.Update(id, &service.UpdateBookingRequest{StartTime: &newStart})
	suite.NoError(err)
	suite.Equal("16:00", resp.StartTime)
}

func (suite *BookingServiceTestSuite) TestUpdateNegativeGuestCount() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.VenueBooking{
		BaseModel: models.BaseModel{ID: id},
		StartTime: "17:00",
		EndTime:   "23:00",
		Status:    models.BookingStatusPending,
	}, nil)

	bad := -5
	resp, err := suite.svc.Update(id, &service.UpdateBookingRequest{GuestCount: &bad})
	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

func (suite *BookingServiceTestSuite) TestUpdateStatusConfirm() {
	id := uuid.New()
	booking := &models.VenueBooking{
		BaseModel: models.BaseModel{ID: id},
		StartTime: "17:00",
		EndTime:   "23:00",
		Status:    models.BookingStatusPending,
	}
	suite.mockRepo.EXPECT().GetByID(id).Return(booking, nil)
	suite.mockRepo.EXPECT().Update(booking).Return(nil)

	resp, err := suite.svc.UpdateStatus(id, &service.UpdateBookingStatusRequest{Status: models.BookingStatusConfirmed})
	suite.NoError(err)
	suite.Equal(models.BookingStatusConfirmed, resp.Status)
}

func (suite *BookingServiceTestSuite) TestUpdateStatusSkipRejected() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.VenueBooking{
		BaseModel: models.BaseModel{ID: id},
		Status:    models.BookingStatusPending,
	}, nil)

	resp, err := suite.svc.UpdateStatus(id, &service.UpdateBookingStatusRequest{Status: models.BookingStatusCompleted})
	suite.Nil(resp)
	suite.True(apperrors.IsInvalidTransition(err))
}

func (suite *BookingServiceTestSuite) TestUpdateStatusCancelFromConfirmed() {
	id := uuid.New()
	booking := &models.VenueBooking{
		BaseModel: models.BaseModel{ID: id},
		StartTime: "17:00",
		EndTime:   "23:00",
		Status:    models.BookingStatusConfirmed,
	}
	suite.mockRepo.EXPECT().GetByID(id).Return(booking, nil)
	suite.mockRepo.EXPECT().Update(booking).Return(nil)

	resp, err := suite.svc.UpdateStatus(id, &service.UpdateBookingStatusRequest{Status: models.BookingStatusCancelled})
	suite.NoError(err)
	suite.Equal(models.BookingStatusCancelled, resp.Status)
}

func (suite *BookingServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.svc.Delete(id), apperrors.ErrVenueBookingNotFound)
}

func TestBookingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}
