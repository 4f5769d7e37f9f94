package middleware

import (
	"errors"
	"net/http"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/validation"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			var valErr *validation.Error
			if errors.As(err, &valErr) {
				// Mandatory-field rejection: structured label list plus the
				// field the UI should focus first.
				response.Error(c, http.StatusBadRequest, valErr.Error(), valErr.Result)
				return
			}

			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("Request failed", "code", appErr.Code, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
				return
			}

			// Never expose internal error details to clients. Log the cause
			// server-side, send a generic message.
			logger.Log.Error("Unhandled error", "error", err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
