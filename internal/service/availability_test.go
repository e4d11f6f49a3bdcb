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

type AvailabilityServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockVenueAvailabilityRepositoryInterface
	mockVenueRepo *mocks.MockVenueRepositoryInterface
	svc           *service.AvailabilityService
}

func (suite *AvailabilityServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockVenueAvailabilityRepositoryInterface(suite.ctrl)
	suite.mockVenueRepo = mocks.NewMockVenueRepositoryInterface(suite.ctrl)
	suite.svc = service.NewAvailabilityService(suite.mockRepo, suite.mockVenueRepo, validator.New())
}

func (suite *AvailabilityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AvailabilityServiceTestSuite) TestSetDayBlocked() {
	venueID := uuid.New()
	suite.mockVenueRepo.EXPECT().GetByID(venueID).Return(&models.Venue{}, nil)
	suite.mockRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(a *models.VenueAvailability) error {
		a.ID = uuid.New()
		return nil
	})

	resp, err := suite.svc.SetDay(venueID, "2025-10-20", &service.SetDayRequest{
		IsAvailable:       false,
		UnavailableReason: "private maintenance day",
	})
	suite.NoError(err)
	suite.False(resp.IsAvailable)
	suite.Equal("2025-10-20", resp.Date)
	suite.Equal("private maintenance day", resp.UnavailableReason)
}

func (suite *AvailabilityServiceTestSuite) TestSetDayOpenHours() {
	venueID := uuid.New()
	suite.mockVenueRepo.EXPECT().GetByID(venueID).Return(&models.Venue{}, nil)
	suite.mockRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	resp, err := suite.svc.SetDay(venueID, "2025-10-18", &service.SetDayRequest{
		IsAvailable:    true,
		AvailableFrom:  "12:00",
		AvailableUntil: "23:00",
	})
	suite.NoError(err)
	suite.Equal("12:00", resp.AvailableFrom)
	suite.Equal("23:00", resp.AvailableUntil)
}

func (suite *AvailabilityServiceTestSuite) TestSetDayHalfOpenHoursRejected() {
	venueID := uuid.New()
	suite.mockVenueRepo.EXPECT().GetByID(venueID).Return(&models.Venue{}, nil)

	resp, err := suite.svc.SetDay(venueID, "2025-10-18", &service.SetDayRequest{
		IsAvailable:   true,
		AvailableFrom: "12:00",
	})
	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

func (suite *AvailabilityServiceTestSuite) TestSetDayInvalidOpenWindow() {
	venueID := uuid.New()
	suite.mockVenueRepo.EXPECT().GetByID(venueID).Return(&models.Venue{}, nil)

	resp, err := suite.svc.SetDay(venueID, "2025-10-18", &service.SetDayRequest{
		IsAvailable:    true,
		AvailableFrom:  "23:00",
		AvailableUntil: "12:00",
	})
	suite.Nil(resp)
	suite.True(apperrors.IsInvalidWindow(err))
}

func (suite *AvailabilityServiceTestSuite) TestSetDayVenueNotFound() {
	venueID := uuid.New()
	suite.mockVenueRepo.EXPECT().GetByID(venueID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.SetDay(venueID, "2025-10-20", &service.SetDayRequest{IsAvailable: false})
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrVenueNotFound)
}

func (suite *AvailabilityServiceTestSuite) TestGetCalendar() {
	venueID := uuid.New()
	suite.mockVenueRepo.EXPECT().GetByID(venueID).Return(&models.Venue{}, nil)
	suite.mockRepo.EXPECT().GetByVenueAndRange(venueID,
		time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC),
	).Return([]models.VenueAvailability{
		{VenueID: venueID, Date: time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), IsAvailable: false, UnavailableReason: "maintenance"},
	}, nil)

	resp, err := suite.svc.GetCalendar(venueID, "2025-10-01", "2025-10-31")
	suite.NoError(err)
	suite.Equal("2025-10-01", resp.From)
	suite.Equal("2025-10-31", resp.To)
	suite.Len(resp.Days, 1)
	suite.Equal("2025-10-20", resp.Days[0].Date)
}

func (suite *AvailabilityServiceTestSuite) TestGetCalendarInvertedRange() {
	venueID := uuid.New()
	suite.mockVenueRepo.EXPECT().GetByID(venueID).Return(&models.Venue{}, nil)

	resp, err := suite.svc.GetCalendar(venueID, "2025-10-31", "2025-10-01")
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidDateRange)
}

func TestAvailabilityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityServiceTestSuite))
}
