package handler

import (
	"github.com/gin-gonic/gin"

	"bini/internal/service"
)

// AnalyticsHandler handles advanced analytics endpoints.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Advanced handles GET /api/v1/analytics/advanced
func (h *AnalyticsHandler) Advanced(c *gin.Context) {
	report, err := h.analyticsService.AdvancedAnalytics(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}
