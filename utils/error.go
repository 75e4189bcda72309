package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses. The frontend reads
// the "message" field and shows it verbatim.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Ocurrió un error inesperado. Por favor, inténtalo más tarde.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response. Internal detail stays in
// the logs; the body only carries the user-facing message.
func JSONError(c *gin.Context, status int, message string, err error) {
	logger := GetLogger()
	logger.Warn(message, zap.Int("status", status), zap.Error(err))
	c.JSON(status, ErrorResponse{Message: message})
}
