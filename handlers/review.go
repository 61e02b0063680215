package handlers

import (
	"net/http"

	"lenslink/services/review"
	"lenslink/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler serves review endpoints.
type ReviewHandler struct {
	Service review.ReviewService
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

type createReviewRequest struct {
	PhotographerID string `json:"photographerId" binding:"required"`
	Rating         int    `json:"rating" binding:"required,min=1,max=5"`
	Comment        string `json:"comment" binding:"max=1000"`
}

// CreateReviewHandler handles POST /reviews.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError("Invalid review payload", err.Error()))
		return
	}

	rev, err := h.Service.CreateReview(review.CreateReviewInput{
		UserID:         userID,
		PhotographerID: req.PhotographerID,
		Rating:         req.Rating,
		Comment:        req.Comment,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusCreated, rev, "Review submitted successfully")
}

// GetPhotographerReviewsHandler handles GET /reviews/photographer/:username (public).
func (h *ReviewHandler) GetPhotographerReviewsHandler(c *gin.Context) {
	listing, err := h.Service.GetPhotographerReviews(c.Param("username"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, listing, "Reviews fetched successfully")
}

// GetMyReviewsHandler handles GET /reviews/me.
func (h *ReviewHandler) GetMyReviewsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	reviews, err := h.Service.GetMyReviews(userID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, reviews, "Reviews fetched successfully")
}
