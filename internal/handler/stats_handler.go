package handler

import (
	"github.com/gin-gonic/gin"

	"bini/internal/service"
)

// StatsHandler handles dashboard statistics endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard handles GET /api/v1/stats/dashboard
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}

// Summary handles GET /api/v1/stats/summary
func (h *StatsHandler) Summary(c *gin.Context) {
	summary, err := h.statsService.Summary(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}

// Revenue handles GET /api/v1/stats/revenue
func (h *StatsHandler) Revenue(c *gin.Context) {
	revenue, err := h.statsService.Revenue(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, revenue)
}

// PdgDashboard handles GET /api/v1/stats/pdg-dashboard
func (h *StatsHandler) PdgDashboard(c *gin.Context) {
	dashboard, err := h.statsService.PdgDashboard(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, dashboard)
}
