package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bini/internal/service"
)

// ReviewHandler handles review intake and moderation endpoints.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// createReviewRequest is the JSON body of POST /reviews.
type createReviewRequest struct {
	SiteID  uuid.UUID  `json:"site_id" binding:"required"`
	UserID  *uuid.UUID `json:"user_id"`
	Rating  int        `json:"rating" binding:"required"`
	Comment string     `json:"comment"`
}

// Create handles POST /api/v1/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), service.CreateReviewInput{
		SiteID:  req.SiteID,
		UserID:  req.UserID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, review)
}

// Approve handles POST /api/v1/reviews/:id/approve
func (h *ReviewHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid review id")
		return
	}

	review, err := h.reviewService.Approve(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, review)
}

// Reject handles POST /api/v1/reviews/:id/reject
func (h *ReviewHandler) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid review id")
		return
	}

	review, err := h.reviewService.Reject(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, review)
}

// SiteStats handles GET /api/v1/sites/:id/reviews/stats
func (h *ReviewHandler) SiteStats(c *gin.Context) {
	siteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid site id")
		return
	}

	stats, err := h.reviewService.SiteStats(c.Request.Context(), siteID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}
