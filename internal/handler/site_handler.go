package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bini/internal/service"
)

// SiteHandler handles site read and occupancy endpoints.
type SiteHandler struct {
	siteService service.SiteService
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(siteService service.SiteService) *SiteHandler {
	return &SiteHandler{siteService: siteService}
}

// List handles GET /api/v1/sites
func (h *SiteHandler) List(c *gin.Context) {
	sites, err := h.siteService.ListActive(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, sites)
}

// GetByID handles GET /api/v1/sites/:id
func (h *SiteHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid site id")
		return
	}

	site, err := h.siteService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, site)
}

// TopRated handles GET /api/v1/sites/top-rated
func (h *SiteHandler) TopRated(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid 'limit': must be an integer")
			return
		}
		limit = parsed
	}

	sites, err := h.siteService.TopRated(c.Request.Context(), limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, sites)
}

// Occupancy handles GET /api/v1/sites/:id/occupancy
func (h *SiteHandler) Occupancy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid site id")
		return
	}

	occupancy, err := h.siteService.Occupancy(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, occupancy)
}
