package routes

import (
	"net/http"
	"time"

	"lenslink/handlers"
	"lenslink/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/me", hb.CurrentUserHandler)
	}
}

// RegisterPhotographerRoutes registers profile management and discovery endpoints.
func RegisterPhotographerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/photographers")
	{
		// Public discovery endpoints.
		api.GET("", hb.BrowseHandler)
		api.GET("/:username", hb.GetProfileByUsernameHandler)

		// Endpoints that modify profile data require strict authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("", hb.CreateProfileHandler)
		protected.GET("/me/profile", hb.GetMyProfileHandler)
		protected.PATCH("/me/profile", hb.UpdateProfileHandler)
	}
}

// RegisterPortfolioRoutes registers portfolio media endpoints.
func RegisterPortfolioRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/portfolio")
	{
		// Public portfolio listing.
		api.GET("/photographer/:username", hb.GetPortfolioByUsernameHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("", hb.AddPortfolioItemHandler)
		protected.POST("/batch", hb.AddPortfolioItemsHandler)
		protected.POST("/upload", hb.UploadMediaHandler)
		protected.GET("/me", hb.GetMyPortfolioHandler)
		protected.PATCH("/:itemId", hb.UpdatePortfolioItemHandler)
		protected.DELETE("/:itemId", hb.DeletePortfolioItemHandler)
		protected.DELETE("", hb.DeletePortfolioItemsHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/v1/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		bookingGroup.POST("", hb.CreateBookingHandler)
		bookingGroup.GET("/me", hb.GetMyBookingsHandler)
		bookingGroup.GET("/requests", hb.GetBookingRequestsHandler)
		bookingGroup.GET("/:bookingId", hb.GetBookingByIDHandler)
		bookingGroup.PATCH("/:bookingId/status", hb.UpdateBookingStatusHandler)
		bookingGroup.PATCH("/:bookingId", hb.UpdateBookingHandler)
		bookingGroup.DELETE("/:bookingId", hb.CancelBookingHandler)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/reviews")
	{
		api.GET("/photographer/:username", hb.GetPhotographerReviewsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("", hb.CreateReviewHandler)
		protected.GET("/me", hb.GetMyReviewsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm LensLink"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterPhotographerRoutes(r, hb)
	RegisterPortfolioRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
}
