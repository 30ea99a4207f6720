package router

import (
	"github.com/gin-gonic/gin"

	"bini/internal/config"
	"bini/internal/handler"
	"bini/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	statsH *handler.StatsHandler,
	analyticsH *handler.AnalyticsHandler,
	paymentH *handler.PaymentHandler,
	bookingH *handler.BookingHandler,
	reviewH *handler.ReviewHandler,
	siteH *handler.SiteHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Dashboard statistics
	stats := v1.Group("/stats")
	stats.GET("/dashboard", statsH.Dashboard)
	stats.GET("/summary", statsH.Summary)
	stats.GET("/revenue", statsH.Revenue)
	stats.GET("/pdg-dashboard", statsH.PdgDashboard)

	// Advanced analytics
	v1.GET("/analytics/advanced", analyticsH.Advanced)

	// Payment reports
	payments := v1.Group("/payments")
	payments.GET("/breakdown", paymentH.Breakdown)
	payments.GET("/breakdown/export", paymentH.Export)
	payments.GET("/distribution", paymentH.Distribution)
	payments.GET("/methods/:method", paymentH.Details)
	payments.GET("/trends", paymentH.Trends)

	// Booking lifecycle
	bookings := v1.Group("/bookings")
	bookings.POST("", bookingH.Create)
	bookings.GET("/:id", bookingH.GetByID)
	bookings.GET("/reference/:reference", bookingH.GetByReference)
	bookings.POST("/:id/confirm", bookingH.Confirm)
	bookings.POST("/:id/complete", bookingH.Complete)
	bookings.POST("/:id/cancel", bookingH.Cancel)

	// Reviews
	reviews := v1.Group("/reviews")
	reviews.POST("", reviewH.Create)
	reviews.POST("/:id/approve", reviewH.Approve)
	reviews.POST("/:id/reject", reviewH.Reject)

	// Sites
	sites := v1.Group("/sites")
	sites.GET("", siteH.List)
	sites.GET("/top-rated", siteH.TopRated)
	sites.GET("/:id", siteH.GetByID)
	sites.GET("/:id/occupancy", siteH.Occupancy)
	sites.GET("/:id/reviews/stats", reviewH.SiteStats)

	return r
}
