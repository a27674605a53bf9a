package middleware

import (
	"errors"
	"net/http"

	"contact-mail-backend/internal/delivery/http/response"
	"contact-mail-backend/pkg/apperror"
	"contact-mail-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("Request failed", "status", appErr.Code, "path", c.FullPath(), "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// Never expose internal error details to clients.
		logger.Log.Error("Internal Server Error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "Server error", nil)
	}
}

// Recovery turns a panic into the generic server error response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rvr any) {
		logger.Log.Error("Panic recovered", "path", c.FullPath(), "panic", rvr)
		response.Error(c, http.StatusInternalServerError, "Server error", nil)
		c.Abort()
	})
}
