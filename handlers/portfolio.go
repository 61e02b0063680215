package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"lenslink/services/portfolio"
	"lenslink/services/storage"
	"lenslink/utils"

	"github.com/gin-gonic/gin"
)

// PortfolioHandler serves portfolio media endpoints.
type PortfolioHandler struct {
	Service portfolio.PortfolioService
	Storage storage.StorageService
}

// NewPortfolioHandler creates a PortfolioHandler.
func NewPortfolioHandler(svc portfolio.PortfolioService, store storage.StorageService) *PortfolioHandler {
	return &PortfolioHandler{Service: svc, Storage: store}
}

type portfolioItemRequest struct {
	MediaURL  string `json:"mediaUrl" binding:"required,url"`
	MediaType string `json:"mediaType" binding:"required,oneof=image video"`
	Category  string `json:"category"`
}

// AddItemHandler handles POST /portfolio.
func (h *PortfolioHandler) AddItemHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req portfolioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError("Invalid portfolio payload", err.Error()))
		return
	}

	item, err := h.Service.AddItem(userID, portfolio.ItemInput{
		MediaURL:  req.MediaURL,
		MediaType: req.MediaType,
		Category:  req.Category,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusCreated, item, "Portfolio item added successfully")
}

type portfolioBatchRequest struct {
	Items []portfolioItemRequest `json:"items" binding:"required,min=1,dive"`
}

// AddItemsHandler handles POST /portfolio/batch.
func (h *PortfolioHandler) AddItemsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req portfolioBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError("Invalid portfolio payload", err.Error()))
		return
	}

	inputs := make([]portfolio.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		inputs = append(inputs, portfolio.ItemInput{
			MediaURL:  item.MediaURL,
			MediaType: item.MediaType,
			Category:  item.Category,
		})
	}

	items, err := h.Service.AddItems(userID, inputs)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusCreated, items, "Portfolio items added successfully")
}

// UploadMediaHandler handles POST /portfolio/upload. The multipart file is
// staged to a temp path, pushed to Cloudinary, and the hosted URL returned
// for use as mediaUrl.
func (h *PortfolioHandler) UploadMediaHandler(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, utils.ValidationError("A media file is required", nil))
		return
	}

	tmpPath := filepath.Join(os.TempDir(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		utils.JSONError(c, err)
		return
	}
	defer os.Remove(tmpPath)

	publicID, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, "portfolio")
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	resourceType := c.DefaultPostForm("mediaType", "image")
	url, err := h.Storage.GetDownloadURL(resourceType, publicID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusCreated, gin.H{"publicId": publicID, "mediaUrl": url}, "Media uploaded successfully")
}

// GetMyPortfolioHandler handles GET /portfolio/me.
func (h *PortfolioHandler) GetMyPortfolioHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	items, err := h.Service.GetMyPortfolio(userID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, items, "Portfolio fetched successfully")
}

// GetPortfolioByUsernameHandler handles GET /portfolio/photographer/:username (public).
func (h *PortfolioHandler) GetPortfolioByUsernameHandler(c *gin.Context) {
	items, err := h.Service.GetPortfolioByUsername(c.Param("username"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, items, "Portfolio fetched successfully")
}

type updateItemRequest struct {
	Category string `json:"category" binding:"required"`
}

// UpdateItemHandler handles PATCH /portfolio/:itemId.
func (h *PortfolioHandler) UpdateItemHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError("Invalid portfolio payload", err.Error()))
		return
	}

	item, err := h.Service.UpdateItem(userID, c.Param("itemId"), req.Category)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, item, "Portfolio item updated successfully")
}

// DeleteItemHandler handles DELETE /portfolio/:itemId.
func (h *PortfolioHandler) DeleteItemHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteItem(userID, c.Param("itemId")); err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, gin.H{}, "Portfolio item deleted successfully")
}

type deleteItemsRequest struct {
	ItemIDs []string `json:"itemIds" binding:"required,min=1"`
}

// DeleteItemsHandler handles DELETE /portfolio.
func (h *PortfolioHandler) DeleteItemsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req deleteItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError("Invalid portfolio payload", err.Error()))
		return
	}

	count, err := h.Service.DeleteItems(userID, req.ItemIDs)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, gin.H{"deletedCount": count}, "Portfolio items deleted")
}
