package handlers

import (
	"net/http"
	"strconv"

	photographerRepo "lenslink/database/repository/photographer"
	"lenslink/services/photographer"
	"lenslink/utils"

	"github.com/gin-gonic/gin"
)

// PhotographerHandler serves photographer profile endpoints.
type PhotographerHandler struct {
	Service photographer.PhotographerService
}

// NewPhotographerHandler creates a PhotographerHandler.
func NewPhotographerHandler(svc photographer.PhotographerService) *PhotographerHandler {
	return &PhotographerHandler{Service: svc}
}

type createProfileRequest struct {
	Username    string   `json:"username" binding:"required,min=3,max=30"`
	Bio         string   `json:"bio"`
	Location    string   `json:"location"`
	Specialties []string `json:"specialties"`
	PriceFrom   float64  `json:"priceFrom" binding:"omitempty,gt=0"`
}

// CreateProfileHandler handles POST /photographers.
func (h *PhotographerHandler) CreateProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError("Invalid profile payload", err.Error()))
		return
	}

	p, err := h.Service.CreateProfile(photographer.CreateProfileInput{
		UserID:      userID,
		Username:    req.Username,
		Bio:         req.Bio,
		Location:    req.Location,
		Specialties: req.Specialties,
		PriceFrom:   req.PriceFrom,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusCreated, p, "Photographer profile created successfully")
}

// GetMyProfileHandler handles GET /photographers/me/profile.
func (h *PhotographerHandler) GetMyProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	p, err := h.Service.GetProfileByUserID(userID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, p, "Photographer profile fetched successfully")
}

// GetProfileByUsernameHandler handles GET /photographers/:username (public).
func (h *PhotographerHandler) GetProfileByUsernameHandler(c *gin.Context) {
	p, err := h.Service.GetProfileByUsername(c.Param("username"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, p, "Photographer profile fetched successfully")
}

type updateProfileRequest struct {
	Bio         *string  `json:"bio"`
	Location    *string  `json:"location"`
	Specialties []string `json:"specialties"`
	PriceFrom   *float64 `json:"priceFrom" binding:"omitempty,gt=0"`
}

// UpdateProfileHandler handles PATCH /photographers/me/profile.
func (h *PhotographerHandler) UpdateProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError("Invalid profile payload", err.Error()))
		return
	}

	p, err := h.Service.UpdateProfile(userID, photographer.UpdateProfileInput{
		Bio:         req.Bio,
		Location:    req.Location,
		Specialties: req.Specialties,
		PriceFrom:   req.PriceFrom,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, p, "Photographer profile updated successfully")
}

// BrowseHandler handles GET /photographers (public).
func (h *PhotographerHandler) BrowseHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
	minPrice, _ := strconv.ParseFloat(c.Query("minPrice"), 64)
	maxPrice, _ := strconv.ParseFloat(c.Query("maxPrice"), 64)

	result, err := h.Service.Browse(
		photographerRepo.BrowseFilter{
			Location:  c.Query("location"),
			Specialty: c.Query("specialty"),
			MinPrice:  minPrice,
			MaxPrice:  maxPrice,
			Search:    c.Query("search"),
		},
		photographerRepo.BrowseOptions{
			Page:      page,
			Limit:     limit,
			SortBy:    c.DefaultQuery("sortBy", "createdAt"),
			SortOrder: c.DefaultQuery("sortOrder", "desc"),
		},
	)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, result, "Photographers fetched successfully")
}
