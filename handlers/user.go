package handlers

import (
	"net/http"

	"lenslink/services/user"
	"lenslink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves account endpoints.
type UserHandler struct {
	UserService user.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// RegisterHandler handles POST /auth/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError("Invalid registration payload", err.Error()))
		return
	}

	u, err := h.UserService.Register(user.RegisterInput{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusCreated, u, "User has been registered successfully!")
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler handles POST /auth/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError("Invalid login payload", err.Error()))
		return
	}

	resp, err := h.UserService.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.GetLogger().Warn("Login failed", zap.String("email", req.Email))
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, resp, "You've been logged in successfully!")
}

// LogoutHandler handles POST /auth/logout.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.UserService.Logout(userID); err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, gin.H{}, "You've logged out successfully!")
}

// CurrentUserHandler handles GET /auth/me.
func (h *UserHandler) CurrentUserHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	u, err := h.UserService.GetUserByID(userID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, u, "Fetched current user details")
}
