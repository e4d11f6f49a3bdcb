package handlers_test

import (
	"net/http"
	"testing"

	"event-decor-backend/internal/api/handlers"
	apperrors "event-decor-backend/internal/errors"
	"event-decor-backend/internal/mocks"
	"event-decor-backend/internal/service"
	"event-decor-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// VendorHandlerTestSuite defines the test suite for VendorHandler
type VendorHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockVendorSvc *mocks.MockVendorServiceInterface
	httpSuite     *testutils.HTTPTestSuite
}

func (suite *VendorHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockVendorSvc = mocks.NewMockVendorServiceInterface(suite.ctrl)
	handler := handlers.NewVendorHandler(suite.mockVendorSvc)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/vendors", handler.Create)
	suite.httpSuite.Router.GET("/vendors", handler.List)
	suite.httpSuite.Router.GET("/vendors/:id", handler.GetByID)
	suite.httpSuite.Router.PUT("/vendors/:id", handler.Update)
	suite.httpSuite.Router.DELETE("/vendors/:id", handler.Delete)
}

func (suite *VendorHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VendorHandlerTestSuite) TestCreate_Success() {
	resp := &service.VendorResponse{
		ID:       uuid.New(),
		Name:     "Perach Flowers",
		Category: "florist",
		Rating:   4.5,
		IsActive: true,
	}
	suite.mockVendorSvc.EXPECT().Create(gomock.Any()).Return(resp, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/vendors", service.CreateVendorRequest{
		Name:     "Perach Flowers",
		Category: "florist",
		Rating:   4.5,
	})

	var got service.VendorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &got)
	assert.Equal(suite.T(), "Perach Flowers", got.Name)
	assert.True(suite.T(), got.IsActive)
}

func (suite *VendorHandlerTestSuite) TestCreate_ValidationError() {
	suite.mockVendorSvc.EXPECT().Create(gomock.Any()).
		Return(nil, apperrors.NewValidationError("rating", "must be at most 5"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/vendors", service.CreateVendorRequest{
		Name:   "Perach Flowers",
		Rating: 9,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnprocessableEntity, "rating")
}

func (suite *VendorHandlerTestSuite) TestList_CategoryFilter() {
	suite.mockVendorSvc.EXPECT().
		GetAll(1, 20, "catering").
		Return(&service.VendorListResponse{
			Vendors:  []service.VendorResponse{{ID: uuid.New(), Category: "catering"}},
			Total:    1,
			Page:     1,
			PageSize: 20,
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/vendors?category=catering", nil)

	var got service.VendorListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Len(suite.T(), got.Vendors, 1)
	assert.Equal(suite.T(), int64(1), got.Total)
}

func (suite *VendorHandlerTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockVendorSvc.EXPECT().GetByID(id).Return(nil, apperrors.ErrVendorNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/vendors/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "vendor")
}

func (suite *VendorHandlerTestSuite) TestGetByID_InvalidUUID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/vendors/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *VendorHandlerTestSuite) TestDelete_Success() {
	id := uuid.New()
	suite.mockVendorSvc.EXPECT().Delete(id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/vendors/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func TestVendorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VendorHandlerTestSuite))
}
