package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lenslink/config"
	"lenslink/database"
	bookingRepoPkg "lenslink/database/repository/booking"
	photographerRepoPkg "lenslink/database/repository/photographer"
	portfolioRepoPkg "lenslink/database/repository/portfolio"
	reviewRepoPkg "lenslink/database/repository/review"
	userRepoPkg "lenslink/database/repository/user"
	"lenslink/handlers"
	"lenslink/middleware"
	"lenslink/routes"
	"lenslink/services/booking"
	"lenslink/services/photographer"
	"lenslink/services/portfolio"
	"lenslink/services/review"
	"lenslink/services/storage"
	"lenslink/services/user"
	"lenslink/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	storageService, err := storage.NewStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize media storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	photogRepo := photographerRepoPkg.NewMongoPhotographerRepo()
	portfolioRepo := portfolioRepoPkg.NewMongoPortfolioRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	photographerService := &photographer.DefaultPhotographerService{
		Repo:     photogRepo,
		UserRepo: userRepo,
	}
	portfolioService := &portfolio.DefaultPortfolioService{
		Repo:             portfolioRepo,
		PhotographerRepo: photogRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:             bookingRepo,
		PhotographerRepo: photogRepo,
		UserRepo:         userRepo,
		Transitions:      booking.DefaultTransitions(),
	}
	reviewService := &review.DefaultReviewService{
		Repo:             reviewRepo,
		PhotographerRepo: photogRepo,
		BookingRepo:      bookingRepo,
		UserRepo:         userRepo,
	}

	userHandler := handlers.NewUserHandler(userService)
	photographerHandler := handlers.NewPhotographerHandler(photographerService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, storageService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Account endpoints.
		RegisterHandler:    userHandler.RegisterHandler,
		LoginHandler:       userHandler.LoginHandler,
		LogoutHandler:      userHandler.LogoutHandler,
		CurrentUserHandler: userHandler.CurrentUserHandler,

		// Photographer endpoints.
		CreateProfileHandler:        photographerHandler.CreateProfileHandler,
		GetMyProfileHandler:         photographerHandler.GetMyProfileHandler,
		GetProfileByUsernameHandler: photographerHandler.GetProfileByUsernameHandler,
		UpdateProfileHandler:        photographerHandler.UpdateProfileHandler,
		BrowseHandler:               photographerHandler.BrowseHandler,

		// Portfolio endpoints.
		AddPortfolioItemHandler:       portfolioHandler.AddItemHandler,
		AddPortfolioItemsHandler:      portfolioHandler.AddItemsHandler,
		UploadMediaHandler:            portfolioHandler.UploadMediaHandler,
		GetMyPortfolioHandler:         portfolioHandler.GetMyPortfolioHandler,
		GetPortfolioByUsernameHandler: portfolioHandler.GetPortfolioByUsernameHandler,
		UpdatePortfolioItemHandler:    portfolioHandler.UpdateItemHandler,
		DeletePortfolioItemHandler:    portfolioHandler.DeleteItemHandler,
		DeletePortfolioItemsHandler:   portfolioHandler.DeleteItemsHandler,

		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		GetMyBookingsHandler:       bookingHandler.GetMyBookingsHandler,
		GetBookingRequestsHandler:  bookingHandler.GetBookingRequestsHandler,
		GetBookingByIDHandler:      bookingHandler.GetBookingByIDHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,
		UpdateBookingHandler:       bookingHandler.UpdateBookingHandler,
		CancelBookingHandler:       bookingHandler.CancelBookingHandler,

		// Review endpoints.
		CreateReviewHandler:           reviewHandler.CreateReviewHandler,
		GetPhotographerReviewsHandler: reviewHandler.GetPhotographerReviewsHandler,
		GetMyReviewsHandler:           reviewHandler.GetMyReviewsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
