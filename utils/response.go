package utils

import (
	"errors"
	"net/http"

	"lenslink/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ApiResponse is the uniform envelope returned on every path.
type ApiResponse struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
	Errors     any    `json:"errors,omitempty"`
}

// ApiError is a service-level failure carrying the HTTP status it maps to.
type ApiError struct {
	StatusCode int
	Message    string
	Errs       any
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(statusCode int, message string) *ApiError {
	return &ApiError{StatusCode: statusCode, Message: message}
}

func NotFoundError(message string) *ApiError {
	return NewApiError(http.StatusNotFound, message)
}

func ForbiddenError(message string) *ApiError {
	return NewApiError(http.StatusForbidden, message)
}

func ConflictError(message string) *ApiError {
	return NewApiError(http.StatusConflict, message)
}

func UnauthorizedError(message string) *ApiError {
	return NewApiError(http.StatusUnauthorized, message)
}

func ValidationError(message string, errs any) *ApiError {
	return &ApiError{StatusCode: http.StatusBadRequest, Message: message, Errs: errs}
}

// JSON writes a success envelope.
func JSON(c *gin.Context, statusCode int, data any, message string) {
	c.JSON(statusCode, ApiResponse{
		Success:    statusCode < 400,
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	})
}

// JSONError writes an error envelope. ApiError values keep their status and
// message; anything else is logged and redacted to a generic 500 in
// production contexts.
func JSONError(c *gin.Context, err error) {
	logger := GetLogger()

	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, ApiResponse{
			Success:    false,
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			Data:       nil,
			Errors:     apiErr.Errs,
		})
		return
	}

	logger.Error("Unhandled service error", zap.Error(err))
	message := "Something went wrong"
	if config.Debug() {
		message = err.Error()
	}
	c.JSON(http.StatusInternalServerError, ApiResponse{
		Success:    false,
		StatusCode: http.StatusInternalServerError,
		Message:    message,
		Data:       nil,
	})
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ApiResponse{
					Success:    false,
					StatusCode: http.StatusInternalServerError,
					Message:    "Internal Server Error",
					Data:       nil,
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
