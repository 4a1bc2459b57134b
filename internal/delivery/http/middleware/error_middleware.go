package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"standeal-backend/internal/delivery/http/response"
	"standeal-backend/internal/domain"
	"standeal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		requestID := c.GetString(string(domain.KeyRequestID))

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Error("Request failed", "request_id", requestID, "path", c.FullPath(), "error", err, "cause", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// Never expose internal error details to clients
		logger.Error("Internal Server Error", "request_id", requestID, "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "A apărut o eroare neașteptată. Vă rugăm să încercați din nou.", nil)
	}
}
