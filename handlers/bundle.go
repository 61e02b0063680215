package handlers

import (
	userRepoPkg "lenslink/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Account endpoints
	RegisterHandler    gin.HandlerFunc
	LoginHandler       gin.HandlerFunc
	LogoutHandler      gin.HandlerFunc
	CurrentUserHandler gin.HandlerFunc

	// Photographer endpoints
	CreateProfileHandler        gin.HandlerFunc
	GetMyProfileHandler         gin.HandlerFunc
	GetProfileByUsernameHandler gin.HandlerFunc
	UpdateProfileHandler        gin.HandlerFunc
	BrowseHandler               gin.HandlerFunc

	// Portfolio endpoints
	AddPortfolioItemHandler       gin.HandlerFunc
	AddPortfolioItemsHandler      gin.HandlerFunc
	UploadMediaHandler            gin.HandlerFunc
	GetMyPortfolioHandler         gin.HandlerFunc
	GetPortfolioByUsernameHandler gin.HandlerFunc
	UpdatePortfolioItemHandler    gin.HandlerFunc
	DeletePortfolioItemHandler    gin.HandlerFunc
	DeletePortfolioItemsHandler   gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	GetMyBookingsHandler       gin.HandlerFunc
	GetBookingRequestsHandler  gin.HandlerFunc
	GetBookingByIDHandler      gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	UpdateBookingHandler       gin.HandlerFunc
	CancelBookingHandler       gin.HandlerFunc

	// Review endpoints
	CreateReviewHandler           gin.HandlerFunc
	GetPhotographerReviewsHandler gin.HandlerFunc
	GetMyReviewsHandler           gin.HandlerFunc
}
