package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "lenslink/database/repository/user"
	"lenslink/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const authCacheTTL = 15 * time.Minute

// JWTAuthMiddleware authenticates a bearer access token and sets "userID" on
// the context. A redis lookaside keyed by user ID and token hash skips the
// database on repeat requests; a miss falls through to Mongo to confirm the
// account still exists.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, utils.MsgAuthRequired)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abortUnauthorized(c, utils.MsgAuthRequired)
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			abortUnauthorized(c, utils.MsgInvalidToken)
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID
		authCache := utils.GetAuthCacheClient()
		ctx := context.Background()

		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil && cachedHash == computedHash {
			c.Set("userID", userID)
			c.Next()
			return
		}
		if err != nil && err != redis.Nil {
			// Redis trouble is not an auth failure; fall through to Mongo.
			utils.GetLogger().Warn("auth cache lookup failed: " + err.Error())
		}

		usr, err := repo.GetByID(userID)
		if err != nil || usr == nil {
			abortUnauthorized(c, utils.MsgInvalidToken)
			return
		}

		_ = authCache.Set(ctx, cacheKey, computedHash, authCacheTTL).Err()
		c.Set("userID", userID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ApiResponse{
		Success:    false,
		StatusCode: http.StatusUnauthorized,
		Message:    message,
		Data:       nil,
	})
}
