package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bini/internal/domain"
	"bini/internal/service"
)

// BookingHandler handles booking lifecycle endpoints.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// createBookingRequest is the JSON body of POST /bookings.
type createBookingRequest struct {
	SiteID          uuid.UUID  `json:"site_id" binding:"required"`
	UserID          *uuid.UUID `json:"user_id"`
	StartDate       time.Time  `json:"start_date" binding:"required"`
	NumberOfPeople  int        `json:"number_of_people" binding:"required"`
	TotalPrice      *float64   `json:"total_price"`
	PaymentMethod   string     `json:"payment_method"`
	PaymentProvider string     `json:"payment_provider"`
	PaymentStatus   string     `json:"payment_status"`
	VisitorName     string     `json:"visitor_name"`
	VisitorEmail    string     `json:"visitor_email"`
	VisitorPhone    string     `json:"visitor_phone"`
	Notes           string     `json:"notes"`
}

// Create handles POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), service.CreateBookingInput{
		SiteID:          req.SiteID,
		UserID:          req.UserID,
		StartDate:       req.StartDate,
		NumberOfPeople:  req.NumberOfPeople,
		TotalPrice:      req.TotalPrice,
		PaymentMethod:   req.PaymentMethod,
		PaymentProvider: req.PaymentProvider,
		PaymentStatus:   req.PaymentStatus,
		VisitorName:     req.VisitorName,
		VisitorEmail:    req.VisitorEmail,
		VisitorPhone:    req.VisitorPhone,
		Notes:           req.Notes,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, booking)
}

// GetByID handles GET /api/v1/bookings/:id
func (h *BookingHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid booking id")
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, booking)
}

// GetByReference handles GET /api/v1/bookings/reference/:reference
func (h *BookingHandler) GetByReference(c *gin.Context) {
	booking, err := h.bookingService.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, booking)
}

// Confirm handles POST /api/v1/bookings/:id/confirm
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.bookingService.Confirm)
}

// Complete handles POST /api/v1/bookings/:id/complete
func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, h.bookingService.Complete)
}

// Cancel handles POST /api/v1/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.bookingService.Cancel)
}

func (h *BookingHandler) transition(c *gin.Context, op func(ctx context.Context, id uuid.UUID) (*domain.Booking, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid booking id")
		return
	}

	booking, err := op(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, booking)
}
