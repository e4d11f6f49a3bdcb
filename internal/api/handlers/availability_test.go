package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-decor-backend/internal/api/handlers"
	apperrors "event-decor-backend/internal/errors"
	"event-decor-backend/internal/mocks"
	"event-decor-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AvailabilityHandlerTestSuite defines the test suite for AvailabilityHandler
type AvailabilityHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockAvailabilitySvc *mocks.MockAvailabilityServiceInterface
	handler             *handlers.AvailabilityHandler
	router              *gin.Engine
}

func (suite *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAvailabilitySvc = mocks.NewMockAvailabilityServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAvailabilityHandler(suite.mockAvailabilitySvc)

	suite.router = gin.New()
	suite.router.GET("/venues/:id/availability", suite.handler.GetCalendar)
	suite.router.PUT("/venues/:id/availability/:date", suite.handler.SetDay)
}

func (suite *AvailabilityHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AvailabilityHandlerTestSuite) TestSetDay_BlockDay() {
	venueID := uuid.New()
	resp := &service.AvailabilityResponse{
		ID:                uuid.New(),
		VenueID:           venueID,
		Date:              "2025-10-20",
		IsAvailable:       false,
		UnavailableReason: "maintenance",
	}
	suite.mockAvailabilitySvc.EXPECT().SetDay(venueID, "2025-10-20", gomock.Any()).Return(resp, nil)

	data, _ := json.Marshal(service.SetDayRequest{IsAvailable: false, UnavailableReason: "maintenance"})
	req := httptest.NewRequest(http.MethodPut, "/venues/"+venueID.String()+"/availability/2025-10-20", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.AvailabilityResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(suite.T(), got.IsAvailable)
	assert.Equal(suite.T(), "2025-10-20", got.Date)
}

func (suite *AvailabilityHandlerTestSuite) TestSetDay_InvalidVenueID() {
	req := httptest.NewRequest(http.MethodPut, "/venues/nope/availability/2025-10-20", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *AvailabilityHandlerTestSuite) TestSetDay_VenueNotFound() {
	venueID := uuid.New()
	suite.mockAvailabilitySvc.EXPECT().SetDay(venueID, "2025-10-20", gomock.Any()).
		Return(nil, apperrors.ErrVenueNotFound)

	data, _ := json.Marshal(service.SetDayRequest{IsAvailable: false})
	req := httptest.NewRequest(http.MethodPut, "/venues/"+venueID.String()+"/availability/2025-10-20", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *AvailabilityHandlerTestSuite) TestGetCalendar_Success() {
	venueID := uuid.New()
	resp := &service.AvailabilityCalendarResponse{
		VenueID: venueID,
		From:    "2025-10-01",
		To:      "2025-10-31",
		Days: []service.AvailabilityResponse{
			{VenueID: venueID, Date: "2025-10-20", IsAvailable: false, UnavailableReason: "maintenance"},
		},
	}
	suite.mockAvailabilitySvc.EXPECT().GetCalendar(venueID, "2025-10-01", "2025-10-31").Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/venues/"+venueID.String()+"/availability?from=2025-10-01&to=2025-10-31", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.AvailabilityCalendarResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got.Days, 1)
}

func (suite *AvailabilityHandlerTestSuite) TestGetCalendar_MissingRange() {
	venueID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/venues/"+venueID.String()+"/availability", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestAvailabilityHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}
