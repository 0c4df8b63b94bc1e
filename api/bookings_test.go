package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avelov/flightdesk/internal/domain"
	"github.com/avelov/flightdesk/internal/mapper"
	"github.com/avelov/flightdesk/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Detail(ctx context.Context, id int64) (mapper.BookingDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(mapper.BookingDetail), args.Error(1)
}

func (m *MockBookingUseCase) StaffUpdate(ctx context.Context, id int64, input booking.StaffUpdateInput) (booking.UpdateResult, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(booking.UpdateResult), args.Error(1)
}

func (m *MockBookingUseCase) SelfUpdate(ctx context.Context, id int64, input booking.SelfUpdateInput) (booking.UpdateResult, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(booking.UpdateResult), args.Error(1)
}

func bookingTestContext(t *testing.T, method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	c.Request = httptest.NewRequest(method, "/bookings/7", strings.NewReader(body))
	return c, w
}

func TestBookingHandler_detail(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := bookingTestContext(t, "GET", "")

	detail := mapper.BookingDetail{
		ID:         7,
		Date:       "2025-03-01",
		Passengers: 3,
		Flight:     mapper.Flight{ID: 42, Destination: "Lisbon", Price: 250.00},
		Total:      750.00,
	}
	mockService.On("Detail", c.Request.Context(), int64(7)).Return(detail, nil)

	handler.detail(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":750`)
	assert.Contains(t, w.Body.String(), `"destination":"Lisbon"`)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_detail_NotFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := bookingTestContext(t, "GET", "")

	mockService.On("Detail", c.Request.Context(), int64(7)).Return(mapper.BookingDetail{}, domain.ErrNotFound)

	handler.detail(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_detail_IntegrityFault(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := bookingTestContext(t, "GET", "")

	mockService.On("Detail", c.Request.Context(), int64(7)).Return(mapper.BookingDetail{}, domain.ErrFlightIntegrity)

	handler.detail(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestBookingHandler_selfUpdate(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := bookingTestContext(t, "PUT", `{"passengers":2}`)

	passengers := 2
	mockService.On("SelfUpdate", c.Request.Context(), int64(7), mock.MatchedBy(func(input booking.SelfUpdateInput) bool {
		return input.Passengers != nil && *input.Passengers == 2
	})).Return(booking.UpdateResult{ID: 7, Passengers: &passengers}, nil)

	handler.selfUpdate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"passengers":2`)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_selfUpdate_RejectsDateField(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	// Valid passenger count does not save the request: date is not
	// writable on the self-service path.
	c, w := bookingTestContext(t, "PUT", `{"passengers":2,"date":"2030-01-01"}`)

	handler.selfUpdate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"date"`)
	assert.Contains(t, w.Body.String(), "not writable")
	mockService.AssertNotCalled(t, "SelfUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingHandler_selfUpdate_NonPositivePassengers(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := bookingTestContext(t, "PUT", `{"passengers":0}`)

	handler.selfUpdate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"passengers"`)
	mockService.AssertNotCalled(t, "SelfUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingHandler_staffUpdate(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := bookingTestContext(t, "PUT", `{"date":"2024-02-10","passengers":4}`)

	date := "2024-02-10"
	passengers := 4
	mockService.On("StaffUpdate", c.Request.Context(), int64(7), mock.MatchedBy(func(input booking.StaffUpdateInput) bool {
		return input.Date != nil && *input.Date == "2024-02-10" && input.Passengers != nil && *input.Passengers == 4
	})).Return(booking.UpdateResult{ID: 7, Date: &date, Passengers: &passengers}, nil)

	handler.staffUpdate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"date":"2024-02-10"`)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_staffUpdate_InvalidDateFormat(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := bookingTestContext(t, "PUT", `{"date":"tomorrow"}`)

	handler.staffUpdate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"date"`)
	mockService.AssertNotCalled(t, "StaffUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingHandler_staffUpdate_InvalidPassengers(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := bookingTestContext(t, "PUT", `{"passengers":0}`)

	handler.staffUpdate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"passengers"`)
	mockService.AssertNotCalled(t, "StaffUpdate", mock.Anything, mock.Anything, mock.Anything)
}
