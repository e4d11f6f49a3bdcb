package repository

import (
	"testing"
	"time"

	"event-decor-backend/internal/database/models"
	"event-decor-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// VenueAvailabilityRepositoryTestSuite tests the VenueAvailabilityRepository
type VenueAvailabilityRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *VenueAvailabilityRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *VenueAvailabilityRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewVenueAvailabilityRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *VenueAvailabilityRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *VenueAvailabilityRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *VenueAvailabilityRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *VenueAvailabilityRepositoryTestSuite) createVenue() *models.Venue {
	venue := suite.factories.Venue.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(venue).Error)
	return venue
}

func (suite *VenueAvailabilityRepositoryTestSuite) record(venueID uuid.UUID, date time.Time) *models.VenueAvailability {
	return &models.VenueAvailability{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		VenueID:     venueID,
		Date:        date,
		IsAvailable: true,
	}
}

func (suite *VenueAvailabilityRepositoryTestSuite) TestUpsertInsert() {
	venue := suite.createVenue()
	date := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

	record := suite.record(venue.ID, date)
	record.IsAvailable = false
	record.UnavailableReason = "maintenance"
	suite.NoError(suite.repo.Upsert(record))

	found, err := suite.repo.GetByVenueAndDate(venue.ID, date)
	suite.NoError(err)
	suite.False(found.IsAvailable)
	suite.Equal("maintenance", found.UnavailableReason)
}

func (suite *VenueAvailabilityRepositoryTestSuite) TestUpsertReplacesExistingDay() {
	venue := suite.createVenue()
	date := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

	blocked := suite.record(venue.ID, date)
	blocked.IsAvailable = false
	blocked.UnavailableReason = "maintenance"
	suite.NoError(suite.repo.Upsert(blocked))

	reopened := suite.record(venue.ID, date)
	reopened.AvailableFrom = "12:00"
	reopened.AvailableUntil = "23:00"
	suite.NoError(suite.repo.Upsert(reopened))

	found, err := suite.repo.GetByVenueAndDate(venue.ID, date)
	suite.NoError(err)
	suite.True(found.IsAvailable)
	suite.Equal("12:00", found.AvailableFrom)
	suite.Equal("23:00", found.AvailableUntil)

	// Still one record for the day
	records, err := suite.repo.GetByVenueAndRange(venue.ID, date, date)
	suite.NoError(err)
	suite.Len(records, 1)
}

func (suite *VenueAvailabilityRepositoryTestSuite) TestGetByVenueAndRangeOrdered() {
	venue := suite.createVenue()
	d1 := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC)

	suite.NoError(suite.repo.Upsert(suite.record(venue.ID, d2)))
	suite.NoError(suite.repo.Upsert(suite.record(venue.ID, d1)))

	records, err := suite.repo.GetByVenueAndRange(venue.ID, d1, d2)
	suite.NoError(err)
	suite.Len(records, 2)
	suite.True(records[0].Date.Before(records[1].Date))
}

func (suite *VenueAvailabilityRepositoryTestSuite) TestDelete() {
	venue := suite.createVenue()
	date := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

	record := suite.record(venue.ID, date)
	suite.NoError(suite.repo.Upsert(record))
	suite.NoError(suite.repo.Delete(record.ID))

	_, err := suite.repo.GetByVenueAndDate(venue.ID, date)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestVenueAvailabilityRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(VenueAvailabilityRepositoryTestSuite))
}
