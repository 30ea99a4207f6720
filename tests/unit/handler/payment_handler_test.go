package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bini/internal/domain"
	"bini/internal/handler"
	"bini/mocks"
)

func newPaymentRouter() (*gin.Engine, *mocks.MockPaymentService) {
	mockSvc := new(mocks.MockPaymentService)
	h := handler.NewPaymentHandler(mockSvc)

	r := gin.New()
	r.GET("/payments/breakdown", h.Breakdown)
	r.GET("/payments/breakdown/export", h.Export)
	r.GET("/payments/distribution", h.Distribution)
	r.GET("/payments/methods/:method", h.Details)
	r.GET("/payments/trends", h.Trends)
	return r, mockSvc
}

func TestPaymentHandler_Breakdown_Success(t *testing.T) {
	r, mockSvc := newPaymentRouter()

	report := &domain.PaymentReport{
		Data: []domain.PaymentMethodGroup{
			{Method: "mtn", Revenue: 400, Transactions: 2, Percentage: 80, AverageTransaction: 200},
		},
		Summary: domain.PaymentSummary{TotalRevenue: 500, TotalTransactions: 3, MethodsCount: 2},
	}
	mockSvc.On("Breakdown", mock.Anything, mock.Anything).Return(report, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/payments/breakdown", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestPaymentHandler_Breakdown_BadDate(t *testing.T) {
	r, _ := newPaymentRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/payments/breakdown?from=not-a-date", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentHandler_Breakdown_BadSiteID(t *testing.T) {
	r, _ := newPaymentRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/payments/breakdown?site_id=nope", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentHandler_Breakdown_InvertedRange(t *testing.T) {
	r, mockSvc := newPaymentRouter()

	mockSvc.On("Breakdown", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidRange)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/payments/breakdown?from=2026-06-01&to=2026-05-01", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_DATE_RANGE", resp.Error.Code)
}

func TestPaymentHandler_Details_PassesMethodParam(t *testing.T) {
	r, mockSvc := newPaymentRouter()

	details := &domain.PaymentMethodDetails{Method: "orange", Transactions: []domain.Booking{}}
	mockSvc.On("Details", mock.Anything, "orange", mock.Anything).Return(details, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/payments/methods/orange", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestPaymentHandler_Trends_BadYear(t *testing.T) {
	r, _ := newPaymentRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/payments/trends?year=abc", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentHandler_Trends_InvalidYearFromService(t *testing.T) {
	r, mockSvc := newPaymentRouter()

	mockSvc.On("Trends", mock.Anything, 1900).Return(nil, domain.ErrInvalidYear)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/payments/trends?year=1900", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_YEAR", resp.Error.Code)
}

func TestPaymentHandler_Distribution_Success(t *testing.T) {
	r, mockSvc := newPaymentRouter()

	report := &domain.DistributionReport{
		Distribution: []domain.DistributionRow{{Method: "mtn", Transactions: 2, Revenue: 400}},
		Total:        domain.DistributionTotal{Bookings: 2, Revenue: 400},
	}
	mockSvc.On("Distribution", mock.Anything, (*uuid.UUID)(nil)).Return(report, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/payments/distribution", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestPaymentHandler_Distribution_AllLiftsSiteFilter(t *testing.T) {
	r, mockSvc := newPaymentRouter()

	report := &domain.DistributionReport{Distribution: []domain.DistributionRow{}}
	mockSvc.On("Distribution", mock.Anything, (*uuid.UUID)(nil)).Return(report, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/payments/distribution?site_id=all", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestPaymentHandler_Distribution_PassesSiteID(t *testing.T) {
	r, mockSvc := newPaymentRouter()

	siteID := uuid.New()
	report := &domain.DistributionReport{Distribution: []domain.DistributionRow{}}
	mockSvc.On("Distribution", mock.Anything, mock.MatchedBy(func(id *uuid.UUID) bool {
		return id != nil && *id == siteID
	})).Return(report, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/payments/distribution?site_id="+siteID.String(), http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestPaymentHandler_Distribution_BadSiteID(t *testing.T) {
	r, _ := newPaymentRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/payments/distribution?site_id=nope", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentHandler_Export_SetsAttachmentHeaders(t *testing.T) {
	r, mockSvc := newPaymentRouter()

	report := &domain.PaymentReport{
		Data:    []domain.PaymentMethodGroup{{Method: "mtn", Revenue: 100, Transactions: 1}},
		Summary: domain.PaymentSummary{TotalRevenue: 100, TotalTransactions: 1, MethodsCount: 1},
	}
	mockSvc.On("Breakdown", mock.Anything, mock.Anything).Return(report, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/payments/breakdown/export", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}
