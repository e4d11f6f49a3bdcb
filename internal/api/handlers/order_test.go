package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-decor-backend/internal/api/handlers"
	"event-decor-backend/internal/database/models"
	apperrors "event-decor-backend/internal/errors"
	"event-decor-backend/internal/mocks"
	"event-decor-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrderHandlerTestSuite defines the test suite for OrderHandler
type OrderHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockOrderSvc *mocks.MockOrderServiceInterface
	handler      *handlers.OrderHandler
	router       *gin.Engine
}

func (suite *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrderSvc = mocks.NewMockOrderServiceInterface(suite.ctrl)
	suite.handler = handlers.NewOrderHandler(suite.mockOrderSvc)

	suite.router = gin.New()
	suite.router.POST("/orders", suite.handler.Create)
	suite.router.GET("/orders", suite.handler.List)
	suite.router.GET("/orders/:id", suite.handler.GetByID)
	suite.router.PUT("/orders/:id", suite.handler.Update)
	suite.router.PATCH("/orders/:id/payment", suite.handler.RecordPayment)
	suite.router.DELETE("/orders/:id", suite.handler.Delete)
}

func (suite *OrderHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrderHandlerTestSuite) postJSON(url string, body interface{}) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	suite.NoError(err)
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *OrderHandlerTestSuite) validCreateRequest() service.CreateOrderRequest {
	return service.CreateOrderRequest{
		OrderNumber: "ORD-2025-0142",
		ClientName:  "Mizrahi family",
		ClientPhone: "050-1234567",
		EventDate:   "2025-11-06",
		EventType:   "bar mitzvah",
		TotalAmount: 18000,
	}
}

func (suite *OrderHandlerTestSuite) TestCreate_Success() {
	resp := &service.OrderResponse{
		ID:            uuid.New(),
		OrderNumber:   "ORD-2025-0142",
		ClientName:    "Mizrahi family",
		EventDate:     "2025-11-06",
		Status:        models.OrderStatusPending,
		TotalAmount:   18000,
		PaymentStatus: models.PaymentStatusUnpaid,
	}
	suite.mockOrderSvc.EXPECT().Create(gomock.Any()).Return(resp, nil)

	w := suite.postJSON("/orders", suite.validCreateRequest())

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.OrderResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "ORD-2025-0142", got.OrderNumber)
	assert.Equal(suite.T(), models.PaymentStatusUnpaid, got.PaymentStatus)
}

func (suite *OrderHandlerTestSuite) TestCreate_DuplicateOrderNumber() {
	suite.mockOrderSvc.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrOrderNumberExists)

	w := suite.postJSON("/orders", suite.validCreateRequest())

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *OrderHandlerTestSuite) TestCreate_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader([]byte("{not-json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *OrderHandlerTestSuite) TestList_StatusFilter() {
	status := models.OrderStatusConfirmed
	suite.mockOrderSvc.EXPECT().
		GetAll(1, 20, &status).
		Return(&service.OrderListResponse{
			Orders:   []service.OrderResponse{{ID: uuid.New(), Status: status}},
			Total:    1,
			Page:     1,
			PageSize: 20,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders?status=confirmed", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), float64(1), body["total"])
}

func (suite *OrderHandlerTestSuite) TestList_InvalidStatus() {
	status := models.OrderStatus("shipped")
	suite.mockOrderSvc.EXPECT().GetAll(1, 20, &status).Return(nil, apperrors.ErrInvalidStatus)

	req := httptest.NewRequest(http.MethodGet, "/orders?status=shipped", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
}

func (suite *OrderHandlerTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockOrderSvc.EXPECT().GetByID(id).Return(nil, apperrors.ErrOrderNotFound)

	req := httptest.NewRequest(http.MethodGet, "/orders/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *OrderHandlerTestSuite) TestRecordPayment_Success() {
	id := uuid.New()
	resp := &service.OrderResponse{
		ID:                id,
		OrderNumber:       "ORD-2025-0142",
		TotalAmount:       18000,
		PaidAmount:        9000,
		PaymentPercentage: 50,
		PaymentStatus:     models.PaymentStatusPartial,
	}
	suite.mockOrderSvc.EXPECT().
		RecordPayment(id, &service.RecordPaymentRequest{Amount: 4000}).
		Return(resp, nil)

	data, _ := json.Marshal(service.RecordPaymentRequest{Amount: 4000})
	req := httptest.NewRequest(http.MethodPatch, "/orders/"+id.String()+"/payment", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.OrderResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), float64(9000), got.PaidAmount)
	assert.Equal(suite.T(), models.PaymentStatusPartial, got.PaymentStatus)
}

func (suite *OrderHandlerTestSuite) TestRecordPayment_Overpayment() {
	id := uuid.New()
	suite.mockOrderSvc.EXPECT().
		RecordPayment(id, gomock.Any()).
		Return(nil, apperrors.ErrOverpayment)

	data, _ := json.Marshal(service.RecordPaymentRequest{Amount: 50000})
	req := httptest.NewRequest(http.MethodPatch, "/orders/"+id.String()+"/payment", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
}

func (suite *OrderHandlerTestSuite) TestRecordPayment_InvalidID() {
	req := httptest.NewRequest(http.MethodPatch, "/orders/not-a-uuid/payment", bytes.NewReader([]byte(`{"amount": 100}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *OrderHandlerTestSuite) TestDelete_Success() {
	id := uuid.New()
	suite.mockOrderSvc.EXPECT().Delete(id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/orders/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func TestOrderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}
