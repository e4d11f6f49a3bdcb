package repository

import (
	"testing"
	"time"

	"event-decor-backend/internal/database/models"
	apperrors "event-decor-backend/internal/errors"
	"event-decor-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// VenueBookingRepositoryTestSuite tests the VenueBookingRepository
type VenueBookingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite    *testutils.BaseTestSuite
	repo             *VenueBookingRepository
	availabilityRepo *VenueAvailabilityRepository
	factories        *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *VenueBookingRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewVenueBookingRepository(suite.baseTestSuite.DB)
	suite.availabilityRepo = NewVenueAvailabilityRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *VenueBookingRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *VenueBookingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *VenueBookingRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *VenueBookingRepositoryTestSuite) createVenue() *models.Venue {
	venue := suite.factories.Venue.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(venue).Error)
	return venue
}

// booking builds a booking for the venue on a fixed date
func (suite *VenueBookingRepositoryTestSuite) booking(venueID uuid.UUID, start, end string) *models.VenueBooking {
	b := suite.factories.VenueBooking.WithVenue(venueID)
	b.BookingDate = time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	b.StartTime = start
	b.EndTime = end
	return b
}

// setAvailability writes an availability record for the fixed test date
func (suite *VenueBookingRepositoryTestSuite) setAvailability(venueID uuid.UUID, available bool, from, until string) {
	record := &models.VenueAvailability{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		VenueID:        venueID,
		Date:           time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC),
		IsAvailable:    available,
		AvailableFrom:  from,
		AvailableUntil: until,
	}
	suite.NoError(suite.availabilityRepo.Upsert(record))
}

func (suite *VenueBookingRepositoryTestSuite) TestCreateChecked() {
	venue := suite.createVenue()

	booking := suite.booking(venue.ID, "17:00", "23:00")
	suite.NoError(suite.repo.CreateChecked(booking))

	found, err := suite.repo.GetByID(booking.ID)
	suite.NoError(err)
	suite.Equal("17:00", found.StartTime)
}

func (suite *VenueBookingRepositoryTestSuite) TestCreateCheckedUnknownVenue() {
	booking := suite.booking(uuid.New(), "17:00", "23:00")
	suite.ErrorIs(suite.repo.CreateChecked(booking), apperrors.ErrVenueNotFound)
}

func (suite *VenueBookingRepositoryTestSuite) TestCreateCheckedOverlapRejected() {
	venue := suite.createVenue()
	suite.NoError(suite.repo.CreateChecked(suite.booking(venue.ID, "12:00", "18:00")))

	err := suite.repo.CreateChecked(suite.booking(venue.ID, "17:00", "23:00"))
	suite.True(apperrors.IsConflict(err))
}

func (suite *VenueBookingRepositoryTestSuite) TestCreateCheckedTouchingWindowsAllowed() {
	venue := suite.createVenue()
	suite.NoError(suite.repo.CreateChecked(suite.booking(venue.ID, "10:00", "16:00")))
	suite.NoError(suite.repo.CreateChecked(suite.booking(venue.ID, "16:00", "23:00")))
}

func (suite *VenueBookingRepositoryTestSuite) TestCreateCheckedBlockedDayRejected() {
	venue := suite.createVenue()
	suite.setAvailability(venue.ID, false, "", "")

	err := suite.repo.CreateChecked(suite.booking(venue.ID, "17:00", "23:00"))
	suite.ErrorIs(err, apperrors.ErrVenueUnavailable)
}

func (suite *VenueBookingRepositoryTestSuite) TestCreateCheckedOutsideOpenHoursRejected() {
	venue := suite.createVenue()
	suite.setAvailability(venue.ID, true, "12:00", "23:00")

	err := suite.repo.CreateChecked(suite.booking(venue.ID, "10:00", "14:00"))
	suite.ErrorIs(err, apperrors.ErrOutsideOpenHours)
}

func (suite *VenueBookingRepositoryTestSuite) TestCreateCheckedInsideOpenHours() {
	venue := suite.createVenue()
	suite.setAvailability(venue.ID, true, "12:00", "23:00")

	suite.NoError(suite.repo.CreateChecked(suite.booking(venue.ID, "12:00", "23:00")))
}

func (suite *VenueBookingRepositoryTestSuite) TestCreateCheckedNoRecordMeansOpen() {
	venue := suite.createVenue()
	suite.NoError(suite.repo.CreateChecked(suite.booking(venue.ID, "00:00", "23:59")))
}

func (suite *VenueBookingRepositoryTestSuite) TestCreateCheckedCancelledBookingFreesWindow() {
	venue := suite.createVenue()

	cancelled := suite.booking(venue.ID, "17:00", "23:00")
	cancelled.Status = models.BookingStatusCancelled
	suite.NoError(suite.baseTestSuite.DB.Create(cancelled).Error)

	suite.NoError(suite.repo.CreateChecked(suite.booking(venue.ID, "18:00", "22:00")))
}

func (suite *VenueBookingRepositoryTestSuite) TestUpdateCheckedExcludesSelf() {
	venue := suite.createVenue()
	booking := suite.booking(venue.ID, "17:00", "23:00")
	suite.NoError(suite.repo.CreateChecked(booking))

	booking.GuestCount = 220
	suite.NoError(suite.repo.UpdateChecked(booking))
}

func (suite *VenueBookingRepositoryTestSuite) TestUpdateCheckedConflictWithOther() {
	venue := suite.createVenue()
	suite.NoError(suite.repo.CreateChecked(suite.booking(venue.ID, "10:00", "14:00")))

	booking := suite.booking(venue.ID, "15:00", "20:00")
	suite.NoError(suite.repo.CreateChecked(booking))

	booking.StartTime = "13:00"
	suite.True(apperrors.IsConflict(suite.repo.UpdateChecked(booking)))
}

func (suite *VenueBookingRepositoryTestSuite) TestGetByDateRangeFilters() {
	venue := suite.createVenue()
	other := suite.createVenue()

	suite.NoError(suite.repo.CreateChecked(suite.booking(venue.ID, "10:00", "14:00")))
	suite.NoError(suite.repo.CreateChecked(suite.booking(other.ID, "10:00", "14:00")))

	from := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	bookings, err := suite.repo.GetByDateRange(from, from, &venue.ID, nil)
	suite.NoError(err)
	suite.Len(bookings, 1)
	suite.Equal(venue.ID, bookings[0].VenueID)
}

func TestVenueBookingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(VenueBookingRepositoryTestSuite))
}
