package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"housequay/internal/config"
	"housequay/internal/database"
	"housequay/internal/middleware"
	"housequay/internal/modules/admin"
	"housequay/internal/modules/auth"
	"housequay/internal/modules/booking"
	"housequay/internal/modules/catalog"
	"housequay/internal/modules/chat"
	"housequay/internal/modules/payment"
	"housequay/internal/modules/report"
	"housequay/internal/modules/review"
	jwtsvc "housequay/internal/pkg/jwt"
	"housequay/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	blockedRepo := repository.NewBlockedDateRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	reportRepo := repository.NewReportRepository(db)
	chatRepo := repository.NewChatRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	catalogHandler := catalog.NewHandler(catalog.NewService(listingRepo, blockedRepo, cfg.ServiceFeeRate))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, listingRepo, blockedRepo))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, bookingRepo))
	reportHandler := report.NewHandler(report.NewService(reportRepo))
	adminHandler := admin.NewHandler(admin.NewService(userRepo, listingRepo, reportRepo, bookingRepo))

	hub := chat.NewHub()
	defer hub.Close()
	chatHandler := chat.NewHandler(chat.NewService(chatRepo, hub), hub)

	paymentHandler := payment.NewHandler(payment.NewService(paymentRepo, bookingRepo, payment.Config{
		CheckoutBaseURL: cfg.CheckoutBaseURL,
		SuccessURL:      cfg.CheckoutSuccessURL,
		Currency:        cfg.Currency,
	}))

	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)
		paymentHandler.RegisterCallbackRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(protected)
			reportHandler.RegisterRoutes(protected)
			chatHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)

			host := protected.Group("/")
			host.Use(middleware.HostOnly())
			{
				catalogHandler.RegisterHostRoutes(host)
			}
		}

		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
