package main

import (
	"fmt"
	"log"

	"bini/internal/config"
	"bini/internal/handler"
	"bini/internal/repository/postgres"
	"bini/internal/router"
	"bini/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	siteRepo := postgres.NewSiteRepo(db)
	bookingRepo := postgres.NewBookingRepo(db)
	reviewRepo := postgres.NewReviewRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Initialize services
	statsSvc := service.NewStatsService(statsRepo)
	analyticsSvc := service.NewAnalyticsService(siteRepo, bookingRepo, reviewRepo, cfg.Analytics)
	paymentSvc := service.NewPaymentService(bookingRepo, siteRepo)
	bookingSvc := service.NewBookingService(bookingRepo, siteRepo)
	reviewSvc := service.NewReviewService(reviewRepo, siteRepo)
	siteSvc := service.NewSiteService(siteRepo, bookingRepo, cfg.Analytics)

	// Initialize handlers
	statsH := handler.NewStatsHandler(statsSvc)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc)
	paymentH := handler.NewPaymentHandler(paymentSvc)
	bookingH := handler.NewBookingHandler(bookingSvc)
	reviewH := handler.NewReviewHandler(reviewSvc)
	siteH := handler.NewSiteHandler(siteSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, statsH, analyticsH, paymentH, bookingH, reviewH, siteH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
