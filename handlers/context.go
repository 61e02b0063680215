package handlers

import (
	"net/http"

	"lenslink/utils"

	"github.com/gin-gonic/gin"
)

// currentUserID reads the authenticated user ID set by the auth middleware.
// It aborts with 401 when absent.
func currentUserID(c *gin.Context) (string, bool) {
	val, ok := c.Get("userID")
	if !ok {
		utils.JSONError(c, utils.UnauthorizedError(utils.MsgAuthRequired))
		return "", false
	}
	id, ok := val.(string)
	if !ok || id == "" {
		utils.JSONError(c, utils.NewApiError(http.StatusInternalServerError, "Invalid user ID type"))
		return "", false
	}
	return id, true
}
