package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bini/internal/domain"
	"bini/internal/service"
	"bini/internal/xlsxexport"
)

// PaymentHandler handles payment-method report endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// parseReportFilters extracts common report filter parameters from query params.
func parseReportFilters(c *gin.Context) (domain.ReportFilters, error) {
	var filters domain.ReportFilters

	if fromStr := c.Query("from"); fromStr != "" {
		t, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return filters, fmt.Errorf("invalid 'from' date: must be YYYY-MM-DD")
		}
		filters.From = &t
	}
	if toStr := c.Query("to"); toStr != "" {
		t, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return filters, fmt.Errorf("invalid 'to' date: must be YYYY-MM-DD")
		}
		// Inclusive upper bound: cover the whole day.
		t = t.Add(24*time.Hour - time.Nanosecond)
		filters.To = &t
	}

	if sidStr := c.Query("site_id"); sidStr != "" {
		sid, err := uuid.Parse(sidStr)
		if err != nil {
			return filters, fmt.Errorf("invalid 'site_id': must be a valid UUID")
		}
		filters.SiteID = &sid
	}

	return filters, nil
}

// Breakdown handles GET /api/v1/payments/breakdown
func (h *PaymentHandler) Breakdown(c *gin.Context) {
	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	report, err := h.paymentService.Breakdown(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// Details handles GET /api/v1/payments/methods/:method
func (h *PaymentHandler) Details(c *gin.Context) {
	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	details, err := h.paymentService.Details(c.Request.Context(), c.Param("method"), filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, details)
}

// Trends handles GET /api/v1/payments/trends
func (h *PaymentHandler) Trends(c *gin.Context) {
	year := 0
	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid 'year': must be an integer")
			return
		}
		year = parsed
	}

	report, err := h.paymentService.Trends(c.Request.Context(), year)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// Distribution handles GET /api/v1/payments/distribution
// A site_id of "all" or an absent one means platform-wide.
func (h *PaymentHandler) Distribution(c *gin.Context) {
	var siteID *uuid.UUID
	if sidStr := c.Query("site_id"); sidStr != "" && sidStr != "all" {
		sid, err := uuid.Parse(sidStr)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid 'site_id': must be a valid UUID")
			return
		}
		siteID = &sid
	}

	report, err := h.paymentService.Distribution(c.Request.Context(), siteID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// Export handles GET /api/v1/payments/breakdown/export
// Streams the breakdown report as an XLSX workbook.
func (h *PaymentHandler) Export(c *gin.Context) {
	filters, err := parseReportFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	report, err := h.paymentService.Breakdown(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := xlsxexport.WritePaymentReport(&buf, report); err != nil {
		HandleError(c, err)
		return
	}

	filename := xlsxexport.BuildFilename("payment_breakdown")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
